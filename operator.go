// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

// GateKind describes the function computed by an entry in an index list.
type GateKind int

const (
	KindAnd GateKind = iota // Two-input conjunction
	KindXor                 // Two-input exclusive or
	KindMaj                 // Majority of three
)

var kindnames = [3]string{
	KindAnd: "and",
	KindXor: "xor",
	KindMaj: "maj",
}

func (k GateKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "unknown"
	}
	return kindnames[k]
}

// abcKind infers the kind of a two-input entry in a list with scanned header.
func abcKind(lit0, lit1 Lit) GateKind {
	if lit0 < lit1 {
		return KindAnd
	}
	return KindXor
}

// xagKind infers the kind of a two-input entry in a list with packed header.
func xagKind(lit0, lit1 Lit) GateKind {
	if lit0 > lit1 {
		return KindXor
	}
	return KindAnd
}
