// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import "github.com/pkg/errors"

// ABCList is an index list of two-input gates compatible with the encoding
// used by ABC. The list has no header. It starts with the pair (0, 1) for the
// constants, followed by one pair (0, 0) for each primary input, one pair of
// literals for each gate, and one pair (lit, lit) for each output.
//
// The kind of a gate is given by the order of its literals: (lit0 < lit1) is
// an AND and (lit0 > lit1) is a XOR. For example, the list
//
//	{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 2, 4, 6, 8, 12, 10, 14, 14}
//
// has 4 inputs, 3 gates and computes the single output (x1 & x2) ^ (x3 & x4).
type ABCList struct {
	numpis int
	numpos int
	values []uint32
}

// NewABCList returns an empty list with numPIs primary inputs.
func NewABCList(numPIs int) (*ABCList, error) {
	if numPIs < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "%d inputs in NewABCList", numPIs)
	}
	l := &ABCList{values: make([]uint32, 2, 2*(numPIs+1))}
	l.values[1] = 1
	if err := l.AddInputs(numPIs); err != nil {
		return nil, err
	}
	return l, nil
}

// ParseABCList builds a list from a sequence of literals, for instance one
// returned by Raw. The number of inputs is the number of (0, 0) pairs after
// the constants and the number of outputs is the number of trailing pairs with
// equal literals. We return an error if the sequence is not well formed. Note
// that an output driven by the constant false, in a list without gates, is
// read back as an additional input.
func ParseABCList(values []uint32) (*ABCList, error) {
	if len(values) < 2 || len(values)%2 != 0 {
		return nil, errors.Wrapf(ErrMalformed, "ABC list of length %d", len(values))
	}
	if values[0] != 0 || values[1] != 1 {
		return nil, errors.Wrapf(ErrMalformed, "ABC list starts with (%d, %d) instead of (0, 1)", values[0], values[1])
	}
	l := &ABCList{values: make([]uint32, len(values))}
	copy(l.values, values)
	i := 2
	for ; i+1 < len(values); i += 2 {
		if values[i] != 0 || values[i+1] != 0 {
			break
		}
		l.numpis++
	}
	end := len(values)
	for ; end-2 >= i; end -= 2 {
		if values[end-2] != values[end-1] {
			break
		}
		l.numpos++
	}
	nodes := 1 + l.numpis
	for ; i < end; i += 2 {
		lit0, lit1 := Lit(values[i]), Lit(values[i+1])
		if err := checkentry(lit0, lit1, nodes); err != nil {
			return nil, errors.Wrapf(err, "gate %d of ABC list", nodes)
		}
		nodes++
	}
	for ; i < len(values); i += 2 {
		if err := checklit(Lit(values[i]), nodes); err != nil {
			return nil, errors.Wrap(err, "output of ABC list")
		}
	}
	return l, nil
}

// Raw returns a copy of the sequence of literals in the list.
func (l *ABCList) Raw() []uint32 {
	res := make([]uint32, len(l.values))
	copy(res, l.values)
	return res
}

// Size returns the number of literals in the list.
func (l *ABCList) Size() int {
	return len(l.values)
}

// NumGates returns the number of gates.
func (l *ABCList) NumGates() int {
	return (len(l.values) - 2*(1+l.numpis+l.numpos)) / 2
}

// NumPIs returns the number of primary inputs.
func (l *ABCList) NumPIs() int {
	return l.numpis
}

// NumPOs returns the number of primary outputs.
func (l *ABCList) NumPOs() int {
	return l.numpos
}

// ForeachEntry calls fn on the two literals of each gate, in creation order.
func (l *ABCList) ForeachEntry(fn func(lit0, lit1 Lit) error) error {
	end := len(l.values) - 2*l.numpos
	for i := 2 * (1 + l.numpis); i < end; i += 2 {
		if err := fn(Lit(l.values[i]), Lit(l.values[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// ForeachPO calls fn on the literal of each output.
func (l *ABCList) ForeachPO(fn func(lit Lit) error) error {
	for i := len(l.values) - 2*l.numpos; i < len(l.values); i += 2 {
		if err := fn(Lit(l.values[i])); err != nil {
			return err
		}
	}
	return nil
}

// AddInputs adds n primary inputs. Inputs must be added before any gate. The
// pairs of outputs already in the list are moved after the new inputs.
func (l *ABCList) AddInputs(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrNegativeCount, "%d inputs in AddInputs", n)
	}
	if l.NumGates() > 0 {
		return errors.Wrap(ErrLayout, "inputs added after gates")
	}
	pos := l.values[2*(1+l.numpis):]
	values := make([]uint32, 2*(1+l.numpis+n), 2*(1+l.numpis+n)+len(pos))
	copy(values, l.values[:2*(1+l.numpis)])
	l.values = append(values, pos...)
	l.numpis += n
	return nil
}

// AddAnd adds the gate (lit0 & lit1). We must have lit0 < lit1.
func (l *ABCList) AddAnd(lit0, lit1 Lit) error {
	if lit0 > lit1 {
		return errors.Wrapf(ErrLiteralOrder, "AddAnd(%d, %d)", lit0, lit1)
	}
	return l.addgate(lit0, lit1)
}

// AddXor adds the gate (lit0 ^ lit1). We must have lit0 > lit1.
func (l *ABCList) AddXor(lit0, lit1 Lit) error {
	if lit0 < lit1 {
		return errors.Wrapf(ErrLiteralOrder, "AddXor(%d, %d)", lit0, lit1)
	}
	return l.addgate(lit0, lit1)
}

func (l *ABCList) addgate(lit0, lit1 Lit) error {
	if l.numpos > 0 {
		return errors.Wrap(ErrLayout, "gate added after outputs")
	}
	if err := checkentry(lit0, lit1, l.numnodes()); err != nil {
		return err
	}
	l.values = append(l.values, uint32(lit0), uint32(lit1))
	return nil
}

// AddOutput adds a primary output driven by lit.
func (l *ABCList) AddOutput(lit Lit) error {
	if err := checklit(lit, l.numnodes()); err != nil {
		return err
	}
	l.numpos++
	l.values = append(l.values, uint32(lit), uint32(lit))
	return nil
}

// numnodes returns the number of nodes defined so far, constant included.
func (l *ABCList) numnodes() int {
	return 1 + l.numpis + l.NumGates()
}

// ************************************************************

// checklit returns an error if lit does not refer to one of the first nodes.
func checklit(lit Lit, nodes int) error {
	if int64(lit.Index()) >= int64(nodes) {
		return errors.Wrapf(ErrLiteralRange, "literal %d with only %d nodes defined", lit, nodes)
	}
	return nil
}

// checkentry returns an error if a two-input entry has equal literals or
// refers to nodes that are not yet defined.
func checkentry(lit0, lit1 Lit, nodes int) error {
	if lit0 == lit1 {
		return errors.Wrapf(ErrDegenerateGate, "entry (%d, %d)", lit0, lit1)
	}
	if err := checklit(lit0, nodes); err != nil {
		return err
	}
	return checklit(lit1, nodes)
}
