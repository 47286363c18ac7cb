// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import "github.com/pkg/errors"

// twoinputlist is the part of ABCList and XAGList used during insertion.
type twoinputlist interface {
	NumPIs() int
	NumGates() int
	ForeachEntry(fn func(lit0, lit1 Lit) error) error
	ForeachPO(fn func(lit Lit) error) error
}

// InsertABC replays the gates of l in ntk. The signals in inputs are used for
// the primary inputs of l, so that no new input is created, and fn is called
// on the signal of each output of l. We return an error if the number of
// signals in inputs is not l.NumPIs().
func InsertABC[S any](ntk XAGBuilder[S], inputs []S, l *ABCList, fn func(f S)) error {
	return inserttwo[S](ntk, inputs, l, abcKind, fn)
}

// InsertXAG replays the gates of l in ntk. See InsertABC for the meaning of
// the parameters.
func InsertXAG[S any](ntk XAGBuilder[S], inputs []S, l *XAGList, fn func(f S)) error {
	return inserttwo[S](ntk, inputs, l, xagKind, fn)
}

// InsertMIG replays the gates of l in ntk. See InsertABC for the meaning of
// the parameters.
func InsertMIG[S any](ntk MIGBuilder[S], inputs []S, l *MIGList, fn func(f S)) error {
	signals, err := seed[S](ntk, inputs, l.NumPIs(), l.NumGates())
	if err != nil {
		return err
	}
	err = l.ForeachEntry(func(lit0, lit1, lit2 Lit) error {
		var fanins [3]S
		for k, lit := range [3]Lit{lit0, lit1, lit2} {
			s, err := resolve[S](ntk, signals, lit)
			if err != nil {
				return err
			}
			fanins[k] = s
		}
		signals = append(signals, ntk.CreateMaj(fanins[0], fanins[1], fanins[2]))
		return nil
	})
	if err != nil {
		return err
	}
	return outputs[S](ntk, signals, l, fn)
}

// DecodeABC creates l.NumPIs() new primary inputs in ntk, inserts l, and
// creates a primary output for each output of l.
func DecodeABC[S any](ntk XAGDecoder[S], l *ABCList) error {
	return InsertABC[S](ntk, createpis[S](ntk, l.NumPIs()), l, ntk.CreatePO)
}

// DecodeXAG creates l.NumPIs() new primary inputs in ntk, inserts l, and
// creates a primary output for each output of l.
func DecodeXAG[S any](ntk XAGDecoder[S], l *XAGList) error {
	return InsertXAG[S](ntk, createpis[S](ntk, l.NumPIs()), l, ntk.CreatePO)
}

// DecodeMIG creates l.NumPIs() new primary inputs in ntk, inserts l, and
// creates a primary output for each output of l.
func DecodeMIG[S any](ntk MIGDecoder[S], l *MIGList) error {
	return InsertMIG[S](ntk, createpis[S](ntk, l.NumPIs()), l, ntk.CreatePO)
}

// ************************************************************

func inserttwo[S any](ntk XAGBuilder[S], inputs []S, l twoinputlist, kind func(lit0, lit1 Lit) GateKind, fn func(f S)) error {
	signals, err := seed[S](ntk, inputs, l.NumPIs(), l.NumGates())
	if err != nil {
		return err
	}
	err = l.ForeachEntry(func(lit0, lit1 Lit) error {
		if lit0 == lit1 {
			return errors.Wrapf(ErrDegenerateGate, "entry (%d, %d)", lit0, lit1)
		}
		s0, err := resolve[S](ntk, signals, lit0)
		if err != nil {
			return err
		}
		s1, err := resolve[S](ntk, signals, lit1)
		if err != nil {
			return err
		}
		if kind(lit0, lit1) == KindAnd {
			signals = append(signals, ntk.CreateAnd(s0, s1))
		} else {
			signals = append(signals, ntk.CreateXor(s0, s1))
		}
		return nil
	})
	if err != nil {
		return err
	}
	return outputs[S](ntk, signals, l, fn)
}

// seed returns the table of signals indexed by node: the constant false
// followed by the inputs.
func seed[S any](ntk SignalBuilder[S], inputs []S, numpis, numgates int) ([]S, error) {
	if len(inputs) != numpis {
		return nil, errors.Wrapf(ErrInputArity, "%d signals for %d inputs", len(inputs), numpis)
	}
	signals := make([]S, 0, 1+numpis+numgates)
	signals = append(signals, ntk.GetConstant(false))
	return append(signals, inputs...), nil
}

func resolve[S any](ntk SignalBuilder[S], signals []S, lit Lit) (S, error) {
	if int64(lit.Index()) >= int64(len(signals)) {
		var zero S
		return zero, errors.Wrapf(ErrLiteralRange, "literal %d with only %d nodes defined", lit, len(signals))
	}
	if lit.IsComplemented() {
		return ntk.CreateNot(signals[lit.Index()]), nil
	}
	return signals[lit.Index()], nil
}

// outputs resolves all the outputs of l before calling fn on any of them.
func outputs[S any](ntk SignalBuilder[S], signals []S, l polist, fn func(f S)) error {
	res := make([]S, 0, 4)
	err := l.ForeachPO(func(lit Lit) error {
		s, err := resolve[S](ntk, signals, lit)
		if err != nil {
			return err
		}
		res = append(res, s)
		return nil
	})
	if err != nil {
		return err
	}
	for _, s := range res {
		fn(s)
	}
	return nil
}

// polist is implemented by lists whose outputs can be enumerated.
type polist interface {
	ForeachPO(fn func(lit Lit) error) error
}

func createpis[S any](ntk PortBuilder[S], n int) []S {
	res := make([]S, n)
	for i := range res {
		res[i] = ntk.CreatePI()
	}
	return res
}
