// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned when the caller breaks the contract of an operation. They
// are always wrapped with the offending values; use errors.Is to test for them.
var (
	ErrLiteralOrder   = errors.New("literal order does not match gate kind")
	ErrDegenerateGate = errors.New("gate entry with two equal literals")
	ErrLiteralRange   = errors.New("literal refers to an undefined node")
	ErrHeaderOverflow = errors.New("packed header field overflow")
	ErrInputArity     = errors.New("number of input signals does not match the index list")
	ErrLayout         = errors.New("entry added out of order")
	ErrMalformed      = errors.New("malformed index list")
	ErrNegativeCount  = errors.New("negative count")
	ErrGateKind       = errors.New("unsupported gate kind")
	ErrFaninCount     = errors.New("unexpected number of fanins")
	ErrNotCellRoot    = errors.New("pivot is not a cell root")
)

// NormalizationError is returned by the encoders when a network is not in
// normalized index order, meaning that the i'th primary input does not have
// index i, or that gates are not numbered consecutively after the inputs.
type NormalizationError struct {
	PI       bool   // true if the violation is on a primary input
	Position int    // position of the node in its iteration (PIs or gates)
	Index    uint32 // actual index of the node
}

func (e *NormalizationError) Error() string {
	if e.PI {
		return fmt.Sprintf("network is not in normalized index order (violated by PI %d, index %d)", e.Position+1, e.Index)
	}
	return fmt.Sprintf("network is not in normalized index order (violated by node %d)", e.Index)
}

// TopologyError is returned by the encoders when a gate has a fanin that was
// not created strictly before it.
type TopologyError struct {
	Node  uint32 // index of the gate
	Fanin uint32 // index of the offending fanin
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("node %d not in topological order (fanin %d)", e.Node, e.Fanin)
}

// CapacityError is returned by ComputeWindowFor when the gates covered by the
// pivot alone exceed the gate budget of the window.
type CapacityError struct {
	Pivot    uint32 // index of the pivot
	Gates    int    // number of gates in the pivot's cone
	MaxGates int    // configured gate budget
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("cone of pivot %d has %d gates, more than the window limit (%d)", e.Pivot, e.Gates, e.MaxGates)
}
