// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package gatenet implements a small logic network made of AND, XOR and
// majority gates, with an optional cell mapping. It implements the network
// interfaces of package logicir and is used to test the encoders, the
// decoders and the window engine.
package gatenet

import (
	"sort"

	"github.com/pkg/errors"
)

// Node is the index of a node in a Network. Node 0 is the constant false.
type Node uint32

// Signal is a possibly complemented reference to a node: 2*n for node n and
// 2*n+1 for its negation.
type Signal uint32

// MakeSignal returns the signal of node n, complemented if c is true.
func MakeSignal(n Node, c bool) Signal {
	if c {
		return Signal(n<<1 | 1)
	}
	return Signal(n << 1)
}

// Node returns the node referenced by s.
func (s Signal) Node() Node {
	return Node(s >> 1)
}

// IsComplemented returns true if s is a complemented reference.
func (s Signal) IsComplemented() bool {
	return s&1 == 1
}

type kind uint8

const (
	constant kind = iota
	input
	and
	xor
	maj
)

type node struct {
	kind   kind
	fanins []Signal
}

// ErrTooManyInputs is returned by Simulate and TruthTables on networks with
// too many primary inputs.
var ErrTooManyInputs = errors.New("too many inputs to simulate")

// Network is a logic network. Nodes are numbered in creation order, so that
// the network is always in topological order. Gates are structurally hashed:
// creating a gate with the same kind and fanins, in any order, twice returns
// the same node.
type Network struct {
	nodes        []node
	pis          []Node
	pos          []Signal
	unique       map[[4]uint32]Node // Unicity table, from (kind, sorted fanins) to gates
	uniqueAccess int                // accesses to the unique table
	uniqueHit    int                // entries actually found in the unique table
	cells        map[Node][]Node    // leaves of each mapped cell, indexed by root
	travid       uint32
	visited      []uint32
}

// New returns a network with only the constant node.
func New() *Network {
	return &Network{
		nodes:   []node{{kind: constant}},
		unique:  make(map[[4]uint32]Node),
		cells:   make(map[Node][]Node),
		visited: []uint32{0},
	}
}

func (ntk *Network) addnode(k kind, fanins ...Signal) Signal {
	n := Node(len(ntk.nodes))
	ntk.nodes = append(ntk.nodes, node{kind: k, fanins: fanins})
	ntk.visited = append(ntk.visited, 0)
	return MakeSignal(n, false)
}

// addgate returns the gate of kind k with the given fanins, creating it only
// if it is not already in the unique table. All gate kinds are commutative, so
// the key uses the sorted fanins.
func (ntk *Network) addgate(k kind, fanins ...Signal) Signal {
	key := [4]uint32{uint32(k)}
	for i, f := range fanins {
		key[i+1] = uint32(f)
	}
	sort.Slice(key[1:1+len(fanins)], func(i, j int) bool { return key[1+i] < key[1+j] })
	ntk.uniqueAccess++
	if n, ok := ntk.unique[key]; ok {
		ntk.uniqueHit++
		return MakeSignal(n, false)
	}
	s := ntk.addnode(k, fanins...)
	ntk.unique[key] = s.Node()
	return s
}

// UniqueStats returns the number of accesses to the unique table and the
// number of gates found in it.
func (ntk *Network) UniqueStats() (access, hit int) {
	return ntk.uniqueAccess, ntk.uniqueHit
}

// CreatePI adds a new primary input.
func (ntk *Network) CreatePI() Signal {
	s := ntk.addnode(input)
	ntk.pis = append(ntk.pis, s.Node())
	return s
}

// CreatePO adds a new primary output driven by f.
func (ntk *Network) CreatePO(f Signal) {
	ntk.pos = append(ntk.pos, f)
}

// GetConstant returns the signal for the constant value.
func (ntk *Network) GetConstant(value bool) Signal {
	return MakeSignal(0, value)
}

// CreateNot returns the negation of f.
func (ntk *Network) CreateNot(f Signal) Signal {
	return f ^ 1
}

// CreateAnd returns a signal for (a and b). Trivial cases are simplified and
// do not create a gate.
func (ntk *Network) CreateAnd(a, b Signal) Signal {
	switch {
	case a == b:
		return a
	case a == b^1:
		return ntk.GetConstant(false)
	case a.Node() == 0:
		if a.IsComplemented() {
			return b
		}
		return a
	case b.Node() == 0:
		if b.IsComplemented() {
			return a
		}
		return b
	}
	return ntk.addgate(and, a, b)
}

// CreateXor returns a signal for (a xor b). Trivial cases are simplified and
// do not create a gate.
func (ntk *Network) CreateXor(a, b Signal) Signal {
	switch {
	case a == b:
		return ntk.GetConstant(false)
	case a == b^1:
		return ntk.GetConstant(true)
	case a.Node() == 0:
		return b ^ (a & 1)
	case b.Node() == 0:
		return a ^ (b & 1)
	}
	return ntk.addgate(xor, a, b)
}

// CreateMaj returns a signal for the majority of a, b and c. Trivial cases are
// simplified and do not create a gate.
func (ntk *Network) CreateMaj(a, b, c Signal) Signal {
	switch {
	case a == b || a == c:
		return a
	case b == c:
		return b
	case a == b^1:
		return c
	case a == c^1:
		return b
	case b == c^1:
		return a
	}
	return ntk.addgate(maj, a, b, c)
}

// AddCell declares a mapped cell rooted at gate root with the given leaves.
func (ntk *Network) AddCell(root Node, leaves ...Node) {
	ntk.cells[root] = leaves
}

// ************************************************************

// GetNode returns the node referenced by f.
func (ntk *Network) GetNode(f Signal) Node {
	return f.Node()
}

// IsComplemented returns true if f is complemented.
func (ntk *Network) IsComplemented(f Signal) bool {
	return f.IsComplemented()
}

// NodeToIndex returns the index of n.
func (ntk *Network) NodeToIndex(n Node) uint32 {
	return uint32(n)
}

// IsConstant returns true for node 0.
func (ntk *Network) IsConstant(n Node) bool {
	return ntk.nodes[n].kind == constant
}

// IsPI returns true if n is a primary input.
func (ntk *Network) IsPI(n Node) bool {
	return ntk.nodes[n].kind == input
}

// IsAnd returns true if n is an AND gate.
func (ntk *Network) IsAnd(n Node) bool {
	return ntk.nodes[n].kind == and
}

// IsXor returns true if n is a XOR gate.
func (ntk *Network) IsXor(n Node) bool {
	return ntk.nodes[n].kind == xor
}

// IsMaj returns true if n is a majority gate.
func (ntk *Network) IsMaj(n Node) bool {
	return ntk.nodes[n].kind == maj
}

// Size returns the number of nodes, constant included.
func (ntk *Network) Size() int {
	return len(ntk.nodes)
}

// NumPIs returns the number of primary inputs.
func (ntk *Network) NumPIs() int {
	return len(ntk.pis)
}

// NumPOs returns the number of primary outputs.
func (ntk *Network) NumPOs() int {
	return len(ntk.pos)
}

// NumGates returns the number of gates.
func (ntk *Network) NumGates() int {
	return len(ntk.nodes) - 1 - len(ntk.pis)
}

// ForeachPI iterates over the primary inputs.
func (ntk *Network) ForeachPI(fn func(n Node, i int) error) error {
	for i, n := range ntk.pis {
		if err := fn(n, i); err != nil {
			return err
		}
	}
	return nil
}

// ForeachGate iterates over the gates in creation order.
func (ntk *Network) ForeachGate(fn func(n Node, i int) error) error {
	i := 0
	for k := range ntk.nodes {
		if ntk.nodes[k].kind < and {
			continue
		}
		if err := fn(Node(k), i); err != nil {
			return err
		}
		i++
	}
	return nil
}

// ForeachPO iterates over the output signals.
func (ntk *Network) ForeachPO(fn func(f Signal, i int) error) error {
	for i, f := range ntk.pos {
		if err := fn(f, i); err != nil {
			return err
		}
	}
	return nil
}

// ForeachFanin iterates over the fanins of n.
func (ntk *Network) ForeachFanin(n Node, fn func(f Signal, i int) error) error {
	for i, f := range ntk.nodes[n].fanins {
		if err := fn(f, i); err != nil {
			return err
		}
	}
	return nil
}

// IsCellRoot returns true if a cell was declared with root n.
func (ntk *Network) IsCellRoot(n Node) bool {
	_, ok := ntk.cells[n]
	return ok
}

// ForeachCellFanin iterates over the leaves of the cell rooted at n.
func (ntk *Network) ForeachCellFanin(n Node, fn func(m Node) error) error {
	for _, m := range ntk.cells[n] {
		if err := fn(m); err != nil {
			return err
		}
	}
	return nil
}

// IncrTravID starts a new traversal.
func (ntk *Network) IncrTravID() {
	ntk.travid++
}

// TravID returns the current traversal identifier.
func (ntk *Network) TravID() uint32 {
	return ntk.travid
}

// Visited returns the traversal identifier stored on n.
func (ntk *Network) Visited(n Node) uint32 {
	return ntk.visited[n]
}

// SetVisited stores v on n.
func (ntk *Network) SetVisited(n Node, v uint32) {
	ntk.visited[n] = v
}

// ************************************************************

// projections of the six variables on 64-bit truth tables
var projections = [6]uint64{
	0xAAAAAAAAAAAAAAAA,
	0xCCCCCCCCCCCCCCCC,
	0xF0F0F0F0F0F0F0F0,
	0xFF00FF00FF00FF00,
	0xFFFF0000FFFF0000,
	0xFFFFFFFF00000000,
}

// _MAXSIMPIS is the maximal number of inputs accepted by TruthTables.
const _MAXSIMPIS = 10

// Simulate returns the truth table of each output for networks with at most 6
// inputs. Bit k of a table is the value of the output when input i has value
// (k >> i) & 1. Only the first 2^NumPIs() bits are meaningful, the others are
// cleared. Use TruthTables for larger networks.
func (ntk *Network) Simulate() ([]uint64, error) {
	if len(ntk.pis) > 6 {
		return nil, errors.Wrapf(ErrTooManyInputs, "%d inputs in Simulate (max 6)", len(ntk.pis))
	}
	tts, err := ntk.TruthTables()
	if err != nil {
		return nil, err
	}
	res := make([]uint64, len(tts))
	for i, tt := range tts {
		res[i] = tt[0]
	}
	return res, nil
}

// TruthTables returns the truth table of each output for networks with at
// most 10 inputs. A table with n inputs is made of max(1, 2^(n-6)) words and
// bit k of word w is the value of the output on assignment 64*w + k, with the
// same convention than Simulate.
func (ntk *Network) TruthTables() ([][]uint64, error) {
	numpis := len(ntk.pis)
	if numpis > _MAXSIMPIS {
		return nil, errors.Wrapf(ErrTooManyInputs, "%d inputs (max %d)", numpis, _MAXSIMPIS)
	}
	words := 1
	mask := ^uint64(0)
	if numpis > 6 {
		words = 1 << (numpis - 6)
	} else if numpis < 6 {
		mask = (uint64(1) << (uint64(1) << numpis)) - 1
	}

	values := make([][]uint64, len(ntk.nodes))
	for k := range values {
		values[k] = make([]uint64, words)
	}
	for i, n := range ntk.pis {
		for w := range values[n] {
			switch {
			case i < 6:
				values[n][w] = projections[i]
			case (w>>(i-6))&1 == 1:
				values[n][w] = ^uint64(0)
			}
		}
	}
	value := func(f Signal, w int) uint64 {
		if f.IsComplemented() {
			return ^values[f.Node()][w]
		}
		return values[f.Node()][w]
	}
	for k, n := range ntk.nodes {
		for w := 0; w < words; w++ {
			switch n.kind {
			case and:
				values[k][w] = value(n.fanins[0], w) & value(n.fanins[1], w)
			case xor:
				values[k][w] = value(n.fanins[0], w) ^ value(n.fanins[1], w)
			case maj:
				a, b, c := value(n.fanins[0], w), value(n.fanins[1], w), value(n.fanins[2], w)
				values[k][w] = (a & b) | (a & c) | (b & c)
			}
		}
	}

	res := make([][]uint64, len(ntk.pos))
	for i, f := range ntk.pos {
		res[i] = make([]uint64, words)
		for w := range res[i] {
			res[i][w] = value(f, w) & mask
		}
	}
	return res, nil
}
