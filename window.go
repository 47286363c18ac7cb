// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// membership flags stored in CellWindow.marks
const (
	inNodes uint8 = 1 << iota
	inGates
	inLeaves
	inRoots
	inInputs
)

// CellWindow computes windows in a mapped network. A window is made of a set
// of cells, with the gates they cover, that is grown around a pivot cell until
// no good candidate is left or the number of gates would exceed a limit (see
// option MaxGates). The leaves of the window are the fanins of its gates that
// are outside the window; its roots are the cells still referenced from
// outside the window.
//
// A CellWindow keeps a reference to the network. The network must not be
// modified while the CellWindow is in use, and ComputeWindowFor must not be
// called concurrently.
type CellWindow[N comparable, S any] struct {
	ntk          MappedNetwork[N, S]
	cellrefs     []uint32 // number of cells (and outputs) using each node as a cell fanin
	cellparents  [][]N    // cells using each node as a cell fanin
	marks        []uint8  // membership flags, indexed by node
	nodes        []N      // cell roots in current window
	gates        []N      // gates in current window
	leaves       []N      // leaves of current window
	roots        []N      // roots of current window
	numconstants int
	stack        []mffcframe[N] // explicit stack used by collectmffc
	fanins       []N            // fanins of the nodes in stack
	candidates   []N
	inputs       []N
	*configs
}

type mffcframe[N comparable] struct {
	n     N
	start int // first fanin of n in CellWindow.fanins
	next  int // next fanin to visit
	end   int
}

// NewCellWindow returns a CellWindow for ntk. The reference counts of cells
// are computed once, so the network should not be modified afterwards. The
// options are configuration functions such as MaxGates.
func NewCellWindow[N comparable, S any](ntk MappedNetwork[N, S], options ...func(*configs)) (*CellWindow[N, S], error) {
	c := makeconfigs()
	for _, f := range options {
		f(c)
	}
	size := ntk.Size()
	w := &CellWindow[N, S]{
		ntk:          ntk,
		cellrefs:     make([]uint32, size),
		cellparents:  make([][]N, size),
		marks:        make([]uint8, size),
		nodes:        make([]N, 0, c.maxgates>>1),
		gates:        make([]N, 0, c.maxgates),
		numconstants: 1,
		configs:      c,
	}
	if ntk.GetNode(ntk.GetConstant(true)) != ntk.GetNode(ntk.GetConstant(false)) {
		w.numconstants++
	}
	if err := w.initcellrefs(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *CellWindow[N, S]) index(n N) uint32 {
	return w.ntk.NodeToIndex(n)
}

func (w *CellWindow[N, S]) initcellrefs() error {
	err := w.ntk.ForeachGate(func(n N, _ int) error {
		if !w.ntk.IsCellRoot(n) {
			return nil
		}
		return w.ntk.ForeachCellFanin(n, func(m N) error {
			i := w.index(m)
			w.cellrefs[i]++
			w.cellparents[i] = append(w.cellparents[i], n)
			return nil
		})
	})
	if err != nil {
		return err
	}
	return w.ntk.ForeachPO(func(f S, _ int) error {
		w.cellrefs[w.index(w.ntk.GetNode(f))]++
		return nil
	})
}

// ComputeWindowFor computes a new window around pivot, which must be a cell
// root. The previous window is discarded. We return a *CapacityError, and
// leave the window empty, if the gates covered by the pivot alone exceed the
// gate limit.
func (w *CellWindow[N, S]) ComputeWindowFor(pivot N) error {
	if !w.ntk.IsCellRoot(pivot) {
		return errors.Wrapf(ErrNotCellRoot, "node %d", w.index(pivot))
	}
	w.reset()

	gates := w.collectmffc(pivot, make([]N, 0, w.maxgates))
	if len(gates) > w.maxgates {
		err := &CapacityError{Pivot: w.index(pivot), Gates: len(gates), MaxGates: w.maxgates}
		if _LOGLEVEL > 0 {
			w.log.WithFields(logrus.Fields{"error": err}).Debug("window rejected")
		}
		return err
	}
	w.addnode(pivot, gates)

	for {
		next, ok := w.findnextpivot()
		if !ok {
			break
		}
		gates = w.collectmffc(next, gates[:0])
		if len(w.gates)+len(gates) > w.maxgates {
			if _LOGLEVEL > 1 {
				w.log.WithFields(logrus.Fields{
					"candidate": w.index(next),
					"gates":     len(gates),
				}).Debug("window growth stopped")
			}
			break
		}
		w.addnode(next, gates)
	}

	w.findleavesandroots()
	if _DEBUG {
		w.checkclosed()
	}
	if _LOGLEVEL > 0 {
		w.log.WithFields(logrus.Fields{
			"pivot":  w.index(pivot),
			"cells":  len(w.nodes),
			"gates":  len(w.gates),
			"leaves": len(w.leaves),
			"roots":  len(w.roots),
		}).Debug("window computed")
	}
	return nil
}

// reset clears the current window.
func (w *CellWindow[N, S]) reset() {
	for _, set := range [4][]N{w.nodes, w.gates, w.leaves, w.roots} {
		for _, n := range set {
			w.marks[w.index(n)] = 0
		}
	}
	w.nodes = w.nodes[:0]
	w.gates = w.gates[:0]
	w.leaves = w.leaves[:0]
	w.roots = w.roots[:0]
}

// collectmffc appends to gates the gates of the cone of pivot that are not
// already in the window. The walk stops at constants, primary inputs and cell
// fanins of the pivot. Gates are collected in topological order.
func (w *CellWindow[N, S]) collectmffc(pivot N, gates []N) []N {
	ntk := w.ntk
	ntk.IncrTravID()
	trav := ntk.TravID()
	ntk.SetVisited(ntk.GetNode(ntk.GetConstant(false)), trav)
	ntk.SetVisited(ntk.GetNode(ntk.GetConstant(true)), trav)
	ntk.ForeachCellFanin(pivot, func(m N) error {
		ntk.SetVisited(m, trav)
		return nil
	})

	eligible := func(n N) bool {
		return ntk.Visited(n) != trav && !ntk.IsConstant(n) && !ntk.IsPI(n)
	}
	push := func(n N) {
		ntk.SetVisited(n, trav)
		start := len(w.fanins)
		ntk.ForeachFanin(n, func(f S, _ int) error {
			w.fanins = append(w.fanins, ntk.GetNode(f))
			return nil
		})
		w.stack = append(w.stack, mffcframe[N]{n: n, start: start, next: start, end: len(w.fanins)})
	}

	first := len(gates)
	if eligible(pivot) {
		push(pivot)
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next < top.end {
			m := w.fanins[top.next]
			top.next++
			if eligible(m) {
				push(m)
			}
			continue
		}
		gates = append(gates, top.n)
		w.fanins = w.fanins[:top.start]
		w.stack = w.stack[:len(w.stack)-1]
	}

	// we remove gates already in the window
	k := first
	for _, g := range gates[first:] {
		if w.marks[w.index(g)]&inGates == 0 {
			gates[k] = g
			k++
		}
	}
	return gates[:k]
}

func (w *CellWindow[N, S]) addnode(pivot N, gates []N) {
	w.marks[w.index(pivot)] |= inNodes
	w.nodes = append(w.nodes, pivot)
	for _, g := range gates {
		i := w.index(g)
		if w.marks[i]&inGates == 0 {
			w.marks[i] |= inGates
			w.gates = append(w.gates, g)
		}
	}
}

// deref decrements (or increments back when inc is true) the reference count
// of the cell fanins of all the cells in the window.
func (w *CellWindow[N, S]) deref(inc bool) {
	for _, n := range w.nodes {
		w.ntk.ForeachCellFanin(n, func(m N) error {
			if inc {
				w.cellrefs[w.index(m)]++
			} else {
				w.cellrefs[w.index(m)]--
			}
			return nil
		})
	}
}

// findnextpivot selects the next cell to add to the window. We first look for
// cell fanins of the window that are only used by the window. Otherwise we
// consider all the cell fanins of the window together with the parents of
// window cells with few references. In both cases we select the candidate
// with the most cell fanins among the candidate inputs, keeping the first one
// found in case of ties.
func (w *CellWindow[N, S]) findnextpivot() (N, bool) {
	ntk := w.ntk
	w.deref(false)

	candidates := w.candidates[:0]
	inputs := w.inputs[:0]
	addinput := func(m N) {
		candidates = append(candidates, m)
		if i := w.index(m); w.marks[i]&inInputs == 0 {
			w.marks[i] |= inInputs
			inputs = append(inputs, m)
		}
	}
	outside := func(m N) bool {
		return w.marks[w.index(m)]&inNodes == 0 && !ntk.IsPI(m) && !ntk.IsConstant(m)
	}

	for _, n := range w.nodes {
		ntk.ForeachCellFanin(n, func(m N) error {
			if outside(m) && w.cellrefs[w.index(m)] == 0 {
				addinput(m)
			}
			return nil
		})
	}

	if len(candidates) == 0 {
		for _, n := range w.nodes {
			ntk.ForeachCellFanin(n, func(m N) error {
				if outside(m) {
					addinput(m)
				}
				return nil
			})
		}
		for _, n := range w.nodes {
			i := w.index(n)
			refs := w.cellrefs[i]
			if refs == 0 || refs >= _MAXCELLREFS {
				continue
			}
			parents := w.cellparents[i]
			if refs == 1 && len(parents) == 1 && w.marks[w.index(parents[0])]&inNodes == 0 {
				candidates = append(candidates[:0], parents[0])
				break
			}
			for _, p := range parents {
				if w.marks[w.index(p)]&inNodes == 0 {
					candidates = append(candidates, p)
				}
			}
		}
	}

	var best N
	found := len(candidates) > 0
	if found {
		best = w.mostconnected(candidates)
	}

	w.deref(true)
	for _, m := range inputs {
		w.marks[w.index(m)] &^= inInputs
	}
	w.candidates = candidates[:0]
	w.inputs = inputs[:0]
	return best, found
}

// mostconnected returns the first candidate with the largest number of cell
// fanins marked as inputs.
func (w *CellWindow[N, S]) mostconnected(candidates []N) N {
	best, score := candidates[0], -1
	for _, c := range candidates {
		cnt := 0
		w.ntk.ForeachCellFanin(c, func(m N) error {
			if w.marks[w.index(m)]&inInputs != 0 {
				cnt++
			}
			return nil
		})
		if cnt > score {
			best, score = c, cnt
		}
	}
	return best
}

func (w *CellWindow[N, S]) findleavesandroots() {
	for _, g := range w.gates {
		w.ntk.ForeachFanin(g, func(f S, _ int) error {
			child := w.ntk.GetNode(f)
			if i := w.index(child); w.marks[i]&(inGates|inLeaves) == 0 {
				w.marks[i] |= inLeaves
				w.leaves = append(w.leaves, child)
			}
			return nil
		})
	}

	w.deref(false)
	for _, n := range w.nodes {
		if i := w.index(n); w.cellrefs[i] > 0 {
			w.marks[i] |= inRoots
			w.roots = append(w.roots, n)
		}
	}
	w.deref(true)
}

// checkclosed panics if a gate of the window has a fanin that is neither a
// gate nor a leaf of the window.
func (w *CellWindow[N, S]) checkclosed() {
	for _, g := range w.gates {
		w.ntk.ForeachFanin(g, func(f S, _ int) error {
			if i := w.index(w.ntk.GetNode(f)); w.marks[i]&(inGates|inLeaves) == 0 {
				w.log.WithFields(logrus.Fields{"gate": w.index(g), "fanin": i}).Panic("window is not closed")
			}
			return nil
		})
	}
}

// ************************************************************

// NumPIs returns the number of leaves of the window.
func (w *CellWindow[N, S]) NumPIs() int {
	return len(w.leaves)
}

// NumPOs returns the number of roots of the window.
func (w *CellWindow[N, S]) NumPOs() int {
	return len(w.roots)
}

// NumGates returns the number of gates in the window.
func (w *CellWindow[N, S]) NumGates() int {
	return len(w.gates)
}

// NumCells returns the number of cells in the window.
func (w *CellWindow[N, S]) NumCells() int {
	return len(w.nodes)
}

// Size returns the number of nodes in the window seen as a network: constants,
// leaves and gates.
func (w *CellWindow[N, S]) Size() int {
	return w.numconstants + len(w.leaves) + len(w.gates)
}

// ForeachPI calls fn on each leaf of the window. Leaves are the primary inputs
// of the window seen as a network.
func (w *CellWindow[N, S]) ForeachPI(fn func(n N, i int) error) error {
	return foreach(w.leaves, fn)
}

// ForeachGate calls fn on each gate of the window.
func (w *CellWindow[N, S]) ForeachGate(fn func(n N, i int) error) error {
	return foreach(w.gates, fn)
}

// ForeachRoot calls fn on each root of the window, that is the cells of the
// window that are still used outside of it.
func (w *CellWindow[N, S]) ForeachRoot(fn func(n N, i int) error) error {
	return foreach(w.roots, fn)
}

// ForeachCell calls fn on the root of each cell in the window.
func (w *CellWindow[N, S]) ForeachCell(fn func(n N, i int) error) error {
	return foreach(w.nodes, fn)
}

// Leaves returns a copy of the leaves of the window.
func (w *CellWindow[N, S]) Leaves() []N {
	return append([]N(nil), w.leaves...)
}

// Gates returns a copy of the gates of the window.
func (w *CellWindow[N, S]) Gates() []N {
	return append([]N(nil), w.gates...)
}

// Roots returns a copy of the roots of the window.
func (w *CellWindow[N, S]) Roots() []N {
	return append([]N(nil), w.roots...)
}

// Cells returns a copy of the cell roots in the window.
func (w *CellWindow[N, S]) Cells() []N {
	return append([]N(nil), w.nodes...)
}

// Stats returns information about the current window.
func (w *CellWindow[N, S]) Stats() string {
	res := fmt.Sprintf("Cells:      %d\n", len(w.nodes))
	res += fmt.Sprintf("Gates:      %d  (max %d)\n", len(w.gates), w.maxgates)
	res += fmt.Sprintf("Leaves:     %d\n", len(w.leaves))
	res += fmt.Sprintf("Roots:      %d", len(w.roots))
	return res
}

func foreach[N any](set []N, fn func(n N, i int) error) error {
	for i, n := range set {
		if err := fn(n, i); err != nil {
			return err
		}
	}
	return nil
}
