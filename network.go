// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

// Network is the read-only view of a logic network needed to encode it as an
// index list. N is the type of node handles and S the type of signals, that is
// possibly complemented references to a node.
//
// Iteration methods call fn on each element together with its position in the
// iteration. They stop and return the first non-nil error returned by fn.
type Network[N comparable, S any] interface {
	// GetNode returns the node referenced by signal f.
	GetNode(f S) N

	// IsComplemented returns true if f is a complemented reference to its node.
	IsComplemented(f S) bool

	// NodeToIndex returns the creation index of node n. Indexes are dense: the
	// constant node has index 0 and indexes are contiguous.
	NodeToIndex(n N) uint32

	// IsConstant returns true if n is a constant node.
	IsConstant(n N) bool

	// IsPI returns true if n is a primary input.
	IsPI(n N) bool

	// NumPIs returns the number of primary inputs.
	NumPIs() int

	// NumPOs returns the number of primary outputs.
	NumPOs() int

	// NumGates returns the number of gates, that is nodes that are neither
	// constants nor primary inputs.
	NumGates() int

	// ForeachPI iterates over the primary inputs in declaration order.
	ForeachPI(fn func(n N, i int) error) error

	// ForeachGate iterates over the gates in creation order.
	ForeachGate(fn func(n N, i int) error) error

	// ForeachPO iterates over the signals driving the primary outputs.
	ForeachPO(fn func(f S, i int) error) error

	// ForeachFanin iterates over the fanins of node n.
	ForeachFanin(n N, fn func(f S, i int) error) error
}

// TwoInputNetwork is a network made of two-input AND and XOR gates.
type TwoInputNetwork[N comparable, S any] interface {
	Network[N, S]

	// IsAnd returns true if n is an AND gate.
	IsAnd(n N) bool

	// IsXor returns true if n is a XOR gate.
	IsXor(n N) bool
}

// MajorityNetwork is a network made of three-input majority gates.
type MajorityNetwork[N comparable, S any] interface {
	Network[N, S]

	// IsMaj returns true if n is a majority gate.
	IsMaj(n N) bool
}

// MappedNetwork is a network covered by technology-mapped cells. Each cell is
// identified by its root node, and its inputs are given by the cell fanins of
// the root. Windows also need a traversal marker on nodes, so that several
// graph walks can be made without clearing marks in between.
type MappedNetwork[N comparable, S any] interface {
	Network[N, S]

	// Size returns the number of nodes, constants included. All node indexes
	// are strictly less than Size.
	Size() int

	// GetConstant returns the signal for the constant value.
	GetConstant(value bool) S

	// IsCellRoot returns true if n is the root of a mapped cell.
	IsCellRoot(n N) bool

	// ForeachCellFanin iterates over the input nodes of the cell rooted at n.
	ForeachCellFanin(n N, fn func(m N) error) error

	// IncrTravID starts a new traversal.
	IncrTravID()

	// TravID returns the identifier of the current traversal.
	TravID() uint32

	// Visited returns the traversal identifier last stored on n.
	Visited(n N) uint32

	// SetVisited stores traversal identifier v on n.
	SetVisited(n N, v uint32)
}

// SignalBuilder gives access to the constants and inverters of a network.
type SignalBuilder[S any] interface {
	// GetConstant returns the signal for the constant value.
	GetConstant(value bool) S

	// CreateNot returns the negation of f.
	CreateNot(f S) S
}

// XAGBuilder is the part of a network needed to insert two-input index lists.
type XAGBuilder[S any] interface {
	SignalBuilder[S]

	// CreateAnd returns a signal computing (a and b).
	CreateAnd(a, b S) S

	// CreateXor returns a signal computing (a xor b).
	CreateXor(a, b S) S
}

// MIGBuilder is the part of a network needed to insert majority index lists.
type MIGBuilder[S any] interface {
	SignalBuilder[S]

	// CreateMaj returns a signal computing the majority of a, b and c.
	CreateMaj(a, b, c S) S
}

// PortBuilder creates the primary inputs and outputs of a network.
type PortBuilder[S any] interface {
	// CreatePI adds a new primary input and returns its signal.
	CreatePI() S

	// CreatePO adds a new primary output driven by f.
	CreatePO(f S)
}

// XAGDecoder is a network in which a two-input index list can be decoded.
type XAGDecoder[S any] interface {
	XAGBuilder[S]
	PortBuilder[S]
}

// MIGDecoder is a network in which a majority index list can be decoded.
type MIGDecoder[S any] interface {
	MIGBuilder[S]
	PortBuilder[S]
}

// IndexList is the interface shared by all the index list variants.
type IndexList interface {
	// Raw returns a copy of the sequence of words of the list. This is the
	// format exchanged with external synthesis tools.
	Raw() []uint32

	// Size returns the number of words in the list.
	Size() int

	// NumPIs returns the number of primary inputs.
	NumPIs() int

	// NumPOs returns the number of primary outputs.
	NumPOs() int

	// NumGates returns the number of gates.
	NumGates() int

	// ForeachPO calls fn on each output literal. It stops and returns the
	// first non-nil error returned by fn.
	ForeachPO(fn func(lit Lit) error) error

	// String returns a textual representation of the list, for debugging.
	String() string
}
