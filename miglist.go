// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import "github.com/pkg/errors"

// MIGList is an index list of majority gates with a packed header. The first
// word is (numPIs | numPOs << 8 | numGates << 16), followed by three literals
// for each gate and one literal for each output. For example, the list
//
//	{4 | 1 << 8 | 2 << 16, 2, 4, 6, 4, 8, 10, 12}
//
// has 4 inputs, 2 gates and computes the single output <<x1, x2, x3>, x2, x4>.
type MIGList struct {
	packed
}

// NewMIGList returns an empty list with numPIs primary inputs (at most 255).
func NewMIGList(numPIs int) (*MIGList, error) {
	p, err := makepacked(numPIs)
	if err != nil {
		return nil, err
	}
	return &MIGList{p}, nil
}

// ParseMIGList builds a list from a sequence of words, for instance one
// returned by Raw. We return an error if the length of the sequence does not
// match its header or if a literal refers to a node defined after it.
func ParseMIGList(values []uint32) (*MIGList, error) {
	p, err := parsepacked(values, 3)
	if err != nil {
		return nil, err
	}
	l := &MIGList{p}
	nodes := 1 + l.NumPIs()
	err = l.ForeachEntry(func(lit0, lit1, lit2 Lit) error {
		for _, lit := range [3]Lit{lit0, lit1, lit2} {
			if err := checklit(lit, nodes); err != nil {
				return errors.Wrapf(err, "gate %d of MIG list", nodes)
			}
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

// ForeachEntry calls fn on the three literals of each gate, in creation order.
func (l *MIGList) ForeachEntry(fn func(lit0, lit1, lit2 Lit) error) error {
	end := len(l.values) - l.NumPOs()
	for i := 1; i+2 < end; i += 3 {
		if err := fn(Lit(l.values[i]), Lit(l.values[i+1]), Lit(l.values[i+2])); err != nil {
			return err
		}
	}
	return nil
}

// AddMaj adds a gate computing the majority of lit0, lit1 and lit2.
func (l *MIGList) AddMaj(lit0, lit1, lit2 Lit) error {
	return l.addgate(lit0, lit1, lit2)
}
