// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EncodeABC returns the ABCList of a network made of AND and XOR gates. The
// network must be in normalized index order: the i'th primary input has index
// i and gates are numbered consecutively, in topological order, after the
// inputs. We return a *NormalizationError or a *TopologyError otherwise. The
// operands of each gate are listed in the order required by its kind.
func EncodeABC[N comparable, S any](ntk TwoInputNetwork[N, S]) (*ABCList, error) {
	l, err := NewABCList(ntk.NumPIs())
	if err != nil {
		return nil, err
	}
	err = encode[N, S](ntk, 2,
		func(n N, lits []Lit) error {
			kind, lit0, lit1, err := twoinput[N, S](ntk, n, lits)
			if err != nil {
				return err
			}
			if kind == KindAnd {
				return l.AddAnd(lit0, lit1)
			}
			return l.AddXor(lit0, lit1)
		},
		l.AddOutput)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// EncodeXAG returns the XAGList of a network made of AND and XOR gates. See
// EncodeABC for the requirements on the network. We also return an error if
// the network has more inputs, outputs or gates than fit in the header.
func EncodeXAG[N comparable, S any](ntk TwoInputNetwork[N, S]) (*XAGList, error) {
	l, err := NewXAGList(ntk.NumPIs())
	if err != nil {
		return nil, err
	}
	err = encode[N, S](ntk, 2,
		func(n N, lits []Lit) error {
			kind, lit0, lit1, err := twoinput[N, S](ntk, n, lits)
			if err != nil {
				return err
			}
			if kind == KindAnd {
				return l.AddAnd(lit0, lit1)
			}
			return l.AddXor(lit0, lit1)
		},
		l.AddOutput)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// EncodeMIG returns the MIGList of a network made of majority gates. See
// EncodeXAG for the requirements on the network.
func EncodeMIG[N comparable, S any](ntk MajorityNetwork[N, S]) (*MIGList, error) {
	l, err := NewMIGList(ntk.NumPIs())
	if err != nil {
		return nil, err
	}
	err = encode[N, S](ntk, 3,
		func(n N, lits []Lit) error {
			if !ntk.IsMaj(n) {
				return errors.Wrapf(ErrGateKind, "node %d is not a majority gate", ntk.NodeToIndex(n))
			}
			return l.AddMaj(lits[0], lits[1], lits[2])
		},
		l.AddOutput)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// encode checks that ntk is in normalized index order and calls gate on each
// gate with the literals of its fanins, then output on the literal of each
// output. We stop at the first error.
func encode[N comparable, S any](ntk Network[N, S], arity int, gate func(n N, lits []Lit) error, output func(lit Lit) error) error {
	err := ntk.ForeachPI(func(n N, i int) error {
		if index := ntk.NodeToIndex(n); index != uint32(i+1) {
			return &NormalizationError{PI: true, Position: i, Index: index}
		}
		return nil
	})
	if err != nil {
		return logencode(err)
	}
	numpis := uint32(ntk.NumPIs())
	lits := make([]Lit, 0, arity)
	err = ntk.ForeachGate(func(n N, i int) error {
		index := ntk.NodeToIndex(n)
		if index != numpis+uint32(i)+1 {
			return &NormalizationError{Position: i, Index: index}
		}
		lits = lits[:0]
		err := ntk.ForeachFanin(n, func(f S, _ int) error {
			fanin := ntk.NodeToIndex(ntk.GetNode(f))
			if fanin >= index {
				return &TopologyError{Node: index, Fanin: fanin}
			}
			lits = append(lits, MakeLit(fanin, ntk.IsComplemented(f)))
			return nil
		})
		if err != nil {
			return err
		}
		if len(lits) != arity {
			return errors.Wrapf(ErrFaninCount, "node %d has %d fanins, expected %d", index, len(lits), arity)
		}
		return gate(n, lits)
	})
	if err != nil {
		return logencode(err)
	}
	return logencode(ntk.ForeachPO(func(f S, _ int) error {
		return output(MakeLit(ntk.NodeToIndex(ntk.GetNode(f)), ntk.IsComplemented(f)))
	}))
}

// twoinput returns the kind of a two-input gate together with its literals in
// the order expected by the index lists: increasing for AND and decreasing for
// XOR. Both operations are commutative, so this is not a renumbering.
func twoinput[N comparable, S any](ntk TwoInputNetwork[N, S], n N, lits []Lit) (GateKind, Lit, Lit, error) {
	lit0, lit1 := lits[0], lits[1]
	if lit0 == lit1 {
		return KindAnd, 0, 0, errors.Wrapf(ErrDegenerateGate, "node %d has fanins (%d, %d)", ntk.NodeToIndex(n), lit0, lit1)
	}
	switch {
	case ntk.IsAnd(n):
		if lit0 > lit1 {
			lit0, lit1 = lit1, lit0
		}
		return KindAnd, lit0, lit1, nil
	case ntk.IsXor(n):
		if lit0 < lit1 {
			lit0, lit1 = lit1, lit0
		}
		return KindXor, lit0, lit1, nil
	}
	return KindAnd, 0, 0, errors.Wrapf(ErrGateKind, "node %d is neither an AND nor a XOR", ntk.NodeToIndex(n))
}

func logencode(err error) error {
	if err != nil && _LOGLEVEL > 0 {
		logger.WithFields(logrus.Fields{"error": err}).Debug("encoding failed")
	}
	return err
}
