// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import (
	"testing"

	"github.com/dalzilio/logicir/internal/gatenet"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mappednetwork returns a network with inputs a, b, c, d (nodes 1 to 4) and
// the following gates and cells:
//
//	5 = a & b
//	6 = 5 & c   cell {a, b, c}
//	7 = c & d   cell {c, d}
//	8 = 6 ^ 7   cell {6, 7}, output
//	9 = 7 & d   cell {7, d}, output
func mappednetwork() *gatenet.Network {
	ntk := gatenet.New()
	a, b, c, d := ntk.CreatePI(), ntk.CreatePI(), ntk.CreatePI(), ntk.CreatePI()
	g5 := ntk.CreateAnd(a, b)
	g6 := ntk.CreateAnd(g5, c)
	g7 := ntk.CreateAnd(c, d)
	g8 := ntk.CreateXor(g6, g7)
	g9 := ntk.CreateAnd(g7, d)
	ntk.AddCell(g6.Node(), a.Node(), b.Node(), c.Node())
	ntk.AddCell(g7.Node(), c.Node(), d.Node())
	ntk.AddCell(g8.Node(), g6.Node(), g7.Node())
	ntk.AddCell(g9.Node(), g7.Node(), d.Node())
	ntk.CreatePO(g8)
	ntk.CreatePO(g9)
	return ntk
}

func newwindow(t *testing.T, ntk *gatenet.Network, options ...func(*configs)) *CellWindow[gatenet.Node, gatenet.Signal] {
	t.Helper()
	w, err := NewCellWindow[gatenet.Node, gatenet.Signal](ntk, options...)
	require.NoError(t, err)
	return w
}

// checkclosed verifies that every fanin of a window gate is a gate or a leaf
// of the window.
func checkclosed(t *testing.T, ntk *gatenet.Network, w *CellWindow[gatenet.Node, gatenet.Signal]) {
	t.Helper()
	inside := make(map[gatenet.Node]bool)
	for _, n := range w.Gates() {
		inside[n] = true
	}
	for _, n := range w.Leaves() {
		inside[n] = true
	}
	w.ForeachGate(func(n gatenet.Node, _ int) error {
		return ntk.ForeachFanin(n, func(f gatenet.Signal, _ int) error {
			if !inside[f.Node()] {
				t.Errorf("fanin %d of gate %d is outside of the window", f.Node(), n)
			}
			return nil
		})
	})
}

//********************************************************************************************

func TestCellWindow(t *testing.T) {
	ntk := mappednetwork()
	w := newwindow(t, ntk)
	require.NoError(t, w.ComputeWindowFor(8))

	assert.Equal(t, []gatenet.Node{8, 6, 7, 9}, w.Cells())
	assert.Equal(t, []gatenet.Node{8, 5, 6, 7, 9}, w.Gates())
	assert.Equal(t, []gatenet.Node{1, 2, 3, 4}, w.Leaves())
	assert.Equal(t, []gatenet.Node{8, 9}, w.Roots())
	assert.Equal(t, 4, w.NumPIs())
	assert.Equal(t, 2, w.NumPOs())
	assert.Equal(t, 5, w.NumGates())
	assert.Equal(t, 4, w.NumCells())
	assert.Equal(t, 10, w.Size())
	checkclosed(t, ntk, w)
}

func TestCellWindowPivotOrder(t *testing.T) {
	ntk := mappednetwork()
	w := newwindow(t, ntk)
	require.NoError(t, w.ComputeWindowFor(9))

	assert.Equal(t, []gatenet.Node{9, 7, 8, 6}, w.Cells())
	assert.Equal(t, []gatenet.Node{9, 7, 8, 5, 6}, w.Gates())
	assert.Equal(t, []gatenet.Node{4, 3, 1, 2}, w.Leaves())
	assert.Equal(t, []gatenet.Node{9, 8}, w.Roots())
	checkclosed(t, ntk, w)

	// same sets than from pivot 8
	gates, leaves, roots := w.Gates(), w.Leaves(), w.Roots()
	require.NoError(t, w.ComputeWindowFor(8))
	sorted := cmpopts.SortSlices(func(a, b gatenet.Node) bool { return a < b })
	if diff := cmp.Diff(gates, w.Gates(), sorted); diff != "" {
		t.Errorf("gates mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(leaves, w.Leaves(), sorted); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(roots, w.Roots(), sorted); diff != "" {
		t.Errorf("roots mismatch (-want +got):\n%s", diff)
	}
}

func TestCellWindowDeterminism(t *testing.T) {
	ntk := mappednetwork()
	w := newwindow(t, ntk)
	require.NoError(t, w.ComputeWindowFor(8))
	first := [][]gatenet.Node{w.Cells(), w.Gates(), w.Leaves(), w.Roots()}

	require.NoError(t, w.ComputeWindowFor(9))
	require.NoError(t, w.ComputeWindowFor(8))
	assert.Equal(t, first, [][]gatenet.Node{w.Cells(), w.Gates(), w.Leaves(), w.Roots()})

	// reference counts are restored after each computation
	other := newwindow(t, ntk)
	require.NoError(t, other.ComputeWindowFor(8))
	assert.Equal(t, w.cellrefs, other.cellrefs)
}

func TestCellWindowBudget(t *testing.T) {
	ntk := mappednetwork()
	w := newwindow(t, ntk, MaxGates(3))
	require.NoError(t, w.ComputeWindowFor(8))

	assert.Equal(t, []gatenet.Node{8, 6}, w.Cells())
	assert.Equal(t, []gatenet.Node{8, 5, 6}, w.Gates())
	assert.Equal(t, []gatenet.Node{7, 1, 2, 3}, w.Leaves())
	assert.Equal(t, []gatenet.Node{8}, w.Roots())
	assert.Equal(t, 8, w.Size())
	assert.LessOrEqual(t, w.NumGates(), 3)
	checkclosed(t, ntk, w)
}

func TestCellWindowCapacity(t *testing.T) {
	ntk := mappednetwork()
	w := newwindow(t, ntk, MaxGates(1))
	require.NoError(t, w.ComputeWindowFor(8))
	assert.Equal(t, []gatenet.Node{8}, w.Gates())
	assert.Equal(t, []gatenet.Node{6, 7}, w.Leaves())
	assert.Equal(t, []gatenet.Node{8}, w.Roots())

	err := w.ComputeWindowFor(6)
	var cerr *CapacityError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CapacityError{Pivot: 6, Gates: 2, MaxGates: 1}, *cerr)
	assert.Equal(t, 0, w.NumCells())
	assert.Equal(t, 0, w.NumGates())
	assert.Equal(t, 0, w.NumPIs())
	assert.Equal(t, 0, w.NumPOs())
	assert.Equal(t, 1, w.Size())
}

func TestCellWindowNotCellRoot(t *testing.T) {
	ntk := mappednetwork()
	w := newwindow(t, ntk)
	assert.ErrorIs(t, w.ComputeWindowFor(5), ErrNotCellRoot)
	assert.ErrorIs(t, w.ComputeWindowFor(1), ErrNotCellRoot)
}

func TestCellWindowStats(t *testing.T) {
	w := newwindow(t, mappednetwork(), MaxGates(64), Logger(logrus.New()), MaxGates(0))
	require.NoError(t, w.ComputeWindowFor(8))
	assert.Contains(t, w.Stats(), "Gates:      5  (max 64)")
}

// chainnetwork returns a network with inputs a, b, c (nodes 1 to 3) and the
// following gates and cells:
//
//	4 = a & b   cell {a, b}
//	5 = 4 & c   cell {4, c}, output
//	6 = 5 ^ 4   cell {5, 4}
//	7 = 6 & c   cell {6, c}, output
func chainnetwork() *gatenet.Network {
	ntk := gatenet.New()
	a, b, c := ntk.CreatePI(), ntk.CreatePI(), ntk.CreatePI()
	g4 := ntk.CreateAnd(a, b)
	g5 := ntk.CreateAnd(g4, c)
	g6 := ntk.CreateXor(g5, g4)
	g7 := ntk.CreateAnd(g6, c)
	ntk.AddCell(g4.Node(), a.Node(), b.Node())
	ntk.AddCell(g5.Node(), g4.Node(), c.Node())
	ntk.AddCell(g6.Node(), g5.Node(), g4.Node())
	ntk.AddCell(g7.Node(), g6.Node(), c.Node())
	ntk.CreatePO(g5)
	ntk.CreatePO(g7)
	return ntk
}

func TestCellWindowSingleParent(t *testing.T) {
	// cell 6 is only used by cell 7, which is selected before the cell
	// fanins 5 and 4 of the window
	ntk := chainnetwork()
	w := newwindow(t, ntk, MaxGates(2))
	require.NoError(t, w.ComputeWindowFor(6))
	assert.Equal(t, []gatenet.Node{6, 7}, w.Cells())
	assert.Equal(t, []gatenet.Node{6, 7}, w.Gates())
	assert.Equal(t, []gatenet.Node{5, 4, 3}, w.Leaves())
	assert.Equal(t, []gatenet.Node{7}, w.Roots())
	checkclosed(t, ntk, w)

	w = newwindow(t, ntk)
	require.NoError(t, w.ComputeWindowFor(6))
	assert.Equal(t, []gatenet.Node{6, 7, 5, 4}, w.Cells())
	assert.Equal(t, []gatenet.Node{3, 1, 2}, w.Leaves())
	assert.Equal(t, []gatenet.Node{7, 5}, w.Roots())
	checkclosed(t, ntk, w)

	// the window grows from an inner cell to its only parent
	ntk = gatenet.New()
	a, b, c := ntk.CreatePI(), ntk.CreatePI(), ntk.CreatePI()
	g4 := ntk.CreateAnd(a, b)
	g5 := ntk.CreateXor(g4, c)
	ntk.AddCell(g4.Node(), a.Node(), b.Node())
	ntk.AddCell(g5.Node(), g4.Node(), c.Node())
	ntk.CreatePO(g5)
	w = newwindow(t, ntk)
	require.NoError(t, w.ComputeWindowFor(g4.Node()))
	assert.Equal(t, []gatenet.Node{4, 5}, w.Cells())
	assert.Equal(t, []gatenet.Node{1, 2, 3}, w.Leaves())
	assert.Equal(t, []gatenet.Node{5}, w.Roots())
}

func TestCellWindowMostConnected(t *testing.T) {
	// from pivot 8, the candidates are 5 then 7, and only 7 has a cell fanin
	// (5) among the candidates
	ntk := gatenet.New()
	a, b, c, d := ntk.CreatePI(), ntk.CreatePI(), ntk.CreatePI(), ntk.CreatePI()
	g5 := ntk.CreateAnd(a, b)
	g6 := ntk.CreateAnd(c, d)
	g7 := ntk.CreateAnd(g5, g6)
	g8 := ntk.CreateXor(g5, g7)
	ntk.AddCell(g5.Node(), a.Node(), b.Node())
	ntk.AddCell(g6.Node(), c.Node(), d.Node())
	ntk.AddCell(g7.Node(), g5.Node(), g6.Node())
	ntk.AddCell(g8.Node(), g5.Node(), g7.Node())
	for _, f := range []gatenet.Signal{g5, g6, g7, g8} {
		ntk.CreatePO(f)
	}

	w := newwindow(t, ntk, MaxGates(2))
	require.NoError(t, w.ComputeWindowFor(8))
	assert.Equal(t, []gatenet.Node{8, 7}, w.Cells())
	assert.Equal(t, []gatenet.Node{8, 7}, w.Gates())
	assert.Equal(t, []gatenet.Node{5, 6}, w.Leaves())
	assert.Equal(t, []gatenet.Node{8, 7}, w.Roots())
	checkclosed(t, ntk, w)
}
