// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package equiv checks the combinational equivalence of index lists using the
// gini SAT solver. Lists are inserted in an and-inverter circuit (a gini
// logic.C) where XOR and majority gates are expanded, and the equivalence of
// two lists is decided on their miter.
package equiv

import (
	"github.com/dalzilio/logicir"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

// ErrShapeMismatch is returned when comparing lists with a different number of
// inputs or outputs.
var ErrShapeMismatch = errors.New("index lists have different interfaces")

// ErrUnsupportedList is returned for index lists that are not one of the
// variants of package logicir.
var ErrUnsupportedList = errors.New("unsupported index list")

// result of gini.Solve for satisfiable problems
const satisfiable = 1

// Circuit is an and-inverter circuit in which index lists can be inserted or
// decoded. It implements logicir.XAGDecoder[z.Lit] and
// logicir.MIGDecoder[z.Lit].
type Circuit struct {
	c       *logic.C
	inputs  []z.Lit
	outputs []z.Lit
}

// NewCircuit returns an empty circuit.
func NewCircuit() *Circuit {
	return &Circuit{c: logic.NewC()}
}

// GetConstant returns the literal for the constant value.
func (ckt *Circuit) GetConstant(value bool) z.Lit {
	if value {
		return ckt.c.T
	}
	return ckt.c.F
}

// CreateNot returns the negation of f.
func (ckt *Circuit) CreateNot(f z.Lit) z.Lit {
	return f.Not()
}

// CreateAnd returns a literal for (a and b).
func (ckt *Circuit) CreateAnd(a, b z.Lit) z.Lit {
	return ckt.c.And(a, b)
}

// CreateXor returns a literal for (a xor b).
func (ckt *Circuit) CreateXor(a, b z.Lit) z.Lit {
	return ckt.c.Xor(a, b)
}

// CreateMaj returns a literal for the majority of a, b and c.
func (ckt *Circuit) CreateMaj(a, b, c z.Lit) z.Lit {
	return ckt.c.Ors(ckt.c.And(a, b), ckt.c.And(a, c), ckt.c.And(b, c))
}

// CreatePI adds a new input to the circuit.
func (ckt *Circuit) CreatePI() z.Lit {
	m := ckt.c.Lit()
	ckt.inputs = append(ckt.inputs, m)
	return m
}

// CreatePO records f as an output of the circuit.
func (ckt *Circuit) CreatePO(f z.Lit) {
	ckt.outputs = append(ckt.outputs, f)
}

// Inputs returns the inputs created with CreatePI.
func (ckt *Circuit) Inputs() []z.Lit {
	return ckt.inputs
}

// Outputs returns the outputs recorded with CreatePO.
func (ckt *Circuit) Outputs() []z.Lit {
	return ckt.outputs
}

// Insert inserts l in the circuit using inputs for its primary inputs and
// returns the literals of its outputs.
func (ckt *Circuit) Insert(inputs []z.Lit, l logicir.IndexList) ([]z.Lit, error) {
	res := make([]z.Lit, 0, l.NumPOs())
	collect := func(f z.Lit) {
		res = append(res, f)
	}
	var err error
	switch l := l.(type) {
	case *logicir.ABCList:
		err = logicir.InsertABC[z.Lit](ckt, inputs, l, collect)
	case *logicir.XAGList:
		err = logicir.InsertXAG[z.Lit](ckt, inputs, l, collect)
	case *logicir.MIGList:
		err = logicir.InsertMIG[z.Lit](ckt, inputs, l, collect)
	default:
		err = errors.Wrapf(ErrUnsupportedList, "%T", l)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Counterexample returns an assignment of the inputs, one value for each
// primary input, on which a and b compute a different value for some output.
// It returns nil if a and b are equivalent.
func Counterexample(a, b logicir.IndexList) ([]bool, error) {
	if a.NumPIs() != b.NumPIs() || a.NumPOs() != b.NumPOs() {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d/%d inputs and %d/%d outputs",
			a.NumPIs(), b.NumPIs(), a.NumPOs(), b.NumPOs())
	}
	ckt := NewCircuit()
	for i := 0; i < a.NumPIs(); i++ {
		ckt.CreatePI()
	}
	outa, err := ckt.Insert(ckt.inputs, a)
	if err != nil {
		return nil, err
	}
	outb, err := ckt.Insert(ckt.inputs, b)
	if err != nil {
		return nil, err
	}

	diffs := make([]z.Lit, len(outa))
	for i := range outa {
		diffs[i] = ckt.c.Xor(outa[i], outb[i])
	}
	miter := ckt.c.Ors(diffs...)

	g := gini.New()
	ckt.c.ToCnf(g)
	g.Assume(miter)
	if g.Solve() != satisfiable {
		return nil, nil
	}
	// inputs that do not appear in any clause are unknown to the solver
	res := make([]bool, len(ckt.inputs))
	for i, m := range ckt.inputs {
		if m.Var() <= g.MaxVar() {
			res[i] = g.Value(m)
		}
	}
	return res, nil
}

// Equivalent returns true if a and b compute the same functions, output by
// output.
func Equivalent(a, b logicir.IndexList) (bool, error) {
	cex, err := Counterexample(a, b)
	if err != nil {
		return false, err
	}
	return cex == nil, nil
}
