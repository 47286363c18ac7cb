// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import "github.com/pkg/errors"

// XAGList is an index list of two-input AND and XOR gates with a packed
// header. The first word is (numPIs | numPOs << 8 | numGates << 16), followed
// by two literals for each gate and one literal for each output.
//
// A gate whose first literal is greater than the second one is a XOR,
// otherwise it is an AND. For example, the list
//
//	{4 | 1 << 8 | 3 << 16, 2, 4, 6, 8, 12, 10, 14}
//
// has 4 inputs, 3 gates and computes the single output (x1 & x2) ^ (x3 & x4).
type XAGList struct {
	packed
}

// NewXAGList returns an empty list with numPIs primary inputs (at most 255).
func NewXAGList(numPIs int) (*XAGList, error) {
	p, err := makepacked(numPIs)
	if err != nil {
		return nil, err
	}
	return &XAGList{p}, nil
}

// ParseXAGList builds a list from a sequence of words, for instance one
// returned by Raw. We return an error if the length of the sequence does not
// match its header, if an entry has two equal literals, or if a literal
// refers to a node defined after it.
func ParseXAGList(values []uint32) (*XAGList, error) {
	p, err := parsepacked(values, 2)
	if err != nil {
		return nil, err
	}
	l := &XAGList{p}
	nodes := 1 + l.NumPIs()
	err = l.ForeachEntry(func(lit0, lit1 Lit) error {
		if err := checkentry(lit0, lit1, nodes); err != nil {
			return errors.Wrapf(err, "gate %d of XAG list", nodes)
		}
		nodes++
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := l.checkoutputs(); err != nil {
		return nil, err
	}
	return l, nil
}

// ForeachEntry calls fn on the two literals of each gate, in creation order.
func (l *XAGList) ForeachEntry(fn func(lit0, lit1 Lit) error) error {
	end := len(l.values) - l.NumPOs()
	for i := 1; i+1 < end; i += 2 {
		if err := fn(Lit(l.values[i]), Lit(l.values[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// AddAnd adds a gate computing (lit0 & lit1). The kind of the gate is decoded
// from the order of its literals, so callers should have lit0 < lit1.
func (l *XAGList) AddAnd(lit0, lit1 Lit) error {
	return l.addtwo(lit0, lit1)
}

// AddXor adds a gate computing (lit0 ^ lit1). The kind of the gate is decoded
// from the order of its literals, so callers should have lit0 > lit1.
func (l *XAGList) AddXor(lit0, lit1 Lit) error {
	return l.addtwo(lit0, lit1)
}

func (l *XAGList) addtwo(lit0, lit1 Lit) error {
	if lit0 == lit1 {
		return errors.Wrapf(ErrDegenerateGate, "entry (%d, %d)", lit0, lit1)
	}
	return l.addgate(lit0, lit1)
}
