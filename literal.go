// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import "strconv"

// Lit is a reference to a node in an index list, possibly complemented. The
// literal 2*i + c denotes node i, complemented when c is 1. Node 0 is the
// constant false, so literal 1 is the constant true.
type Lit uint32

// MakeLit returns the literal of node index, complemented if c is true.
func MakeLit(index uint32, c bool) Lit {
	if c {
		return Lit(index<<1 | 1)
	}
	return Lit(index << 1)
}

// Index returns the index of the node referenced by l.
func (l Lit) Index() uint32 {
	return uint32(l) >> 1
}

// IsComplemented returns true if l is the negation of its node.
func (l Lit) IsComplemented() bool {
	return l&1 == 1
}

// Not returns the negation of l.
func (l Lit) Not() Lit {
	return l ^ 1
}

// Regular returns the uncomplemented literal of the node of l.
func (l Lit) Regular() Lit {
	return l &^ 1
}

func (l Lit) String() string {
	if l.IsComplemented() {
		return "!" + strconv.FormatUint(uint64(l.Index()), 10)
	}
	return strconv.FormatUint(uint64(l.Index()), 10)
}
