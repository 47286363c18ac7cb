// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package gatenet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	ntk := New()
	a := ntk.CreatePI()
	b := ntk.CreatePI()
	assert.Equal(t, Signal(2), a)
	assert.Equal(t, Signal(4), b)

	tests := []struct {
		name string
		got  Signal
		want Signal
	}{
		{"and self", ntk.CreateAnd(a, a), a},
		{"and compl", ntk.CreateAnd(a, ntk.CreateNot(a)), ntk.GetConstant(false)},
		{"and false", ntk.CreateAnd(ntk.GetConstant(false), b), ntk.GetConstant(false)},
		{"and true", ntk.CreateAnd(b, ntk.GetConstant(true)), b},
		{"xor self", ntk.CreateXor(a, a), ntk.GetConstant(false)},
		{"xor compl", ntk.CreateXor(a, ntk.CreateNot(a)), ntk.GetConstant(true)},
		{"xor true", ntk.CreateXor(ntk.GetConstant(true), b), ntk.CreateNot(b)},
		{"maj equal", ntk.CreateMaj(a, b, a), a},
		{"maj compl", ntk.CreateMaj(a, ntk.CreateNot(a), b), b},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}
	assert.Equal(t, 0, ntk.NumGates())

	g := ntk.CreateAnd(a, ntk.CreateNot(b))
	assert.Equal(t, Node(3), g.Node())
	assert.True(t, ntk.IsAnd(g.Node()))
	assert.Equal(t, 1, ntk.NumGates())
	assert.Equal(t, 4, ntk.Size())
}

func TestSimulate(t *testing.T) {
	ntk := New()
	x1, x2, x3 := ntk.CreatePI(), ntk.CreatePI(), ntk.CreatePI()
	ntk.CreatePO(ntk.CreateAnd(x1, x2))
	ntk.CreatePO(ntk.CreateXor(x1, x2))
	ntk.CreatePO(ntk.CreateMaj(x1, x2, x3))
	ntk.CreatePO(ntk.CreateNot(x3))
	ntk.CreatePO(ntk.GetConstant(true))

	tts, err := ntk.Simulate()
	require.NoError(t, err)
	assert.Equal(t, []uint64{0x88, 0x66, 0xE8, 0x0F, 0xFF}, tts)
}

func TestSimulateTooManyInputs(t *testing.T) {
	ntk := New()
	for i := 0; i < 7; i++ {
		ntk.CreatePI()
	}
	_, err := ntk.Simulate()
	assert.ErrorIs(t, err, ErrTooManyInputs)
}

func TestTruthTables(t *testing.T) {
	ntk := New()
	var pis []Signal
	for i := 0; i < 8; i++ {
		pis = append(pis, ntk.CreatePI())
	}
	ntk.CreatePO(pis[6])
	ntk.CreatePO(ntk.CreateAnd(pis[0], pis[7]))
	ntk.CreatePO(ntk.CreateNot(ntk.CreateXor(pis[6], pis[7])))

	tts, err := ntk.TruthTables()
	require.NoError(t, err)
	assert.Equal(t, [][]uint64{
		{0, ^uint64(0), 0, ^uint64(0)},
		{0, 0, 0xAAAAAAAAAAAAAAAA, 0xAAAAAAAAAAAAAAAA},
		{^uint64(0), 0, 0, ^uint64(0)},
	}, tts)

	for i := 8; i < 11; i++ {
		ntk.CreatePI()
	}
	_, err = ntk.TruthTables()
	assert.ErrorIs(t, err, ErrTooManyInputs)
}

func TestTruthTablesSmall(t *testing.T) {
	ntk := New()
	x1, x2 := ntk.CreatePI(), ntk.CreatePI()
	ntk.CreatePO(ntk.CreateAnd(x1, ntk.CreateNot(x2)))
	tts, err := ntk.TruthTables()
	require.NoError(t, err)
	assert.Equal(t, [][]uint64{{0x2}}, tts)
}

func TestCells(t *testing.T) {
	ntk := New()
	a, b, c := ntk.CreatePI(), ntk.CreatePI(), ntk.CreatePI()
	g1 := ntk.CreateAnd(a, b)
	g2 := ntk.CreateAnd(g1, c)
	ntk.AddCell(g2.Node(), a.Node(), b.Node(), c.Node())

	assert.True(t, ntk.IsCellRoot(g2.Node()))
	assert.False(t, ntk.IsCellRoot(g1.Node()))
	var leaves []Node
	ntk.ForeachCellFanin(g2.Node(), func(m Node) error {
		leaves = append(leaves, m)
		return nil
	})
	assert.Equal(t, []Node{1, 2, 3}, leaves)

	ntk.IncrTravID()
	ntk.SetVisited(g1.Node(), ntk.TravID())
	assert.Equal(t, ntk.TravID(), ntk.Visited(g1.Node()))
	assert.NotEqual(t, ntk.TravID(), ntk.Visited(g2.Node()))
}

func TestStrash(t *testing.T) {
	ntk := New()
	a, b, c := ntk.CreatePI(), ntk.CreatePI(), ntk.CreatePI()
	g := ntk.CreateAnd(a, b)
	assert.Equal(t, g, ntk.CreateAnd(b, a))
	assert.NotEqual(t, g, ntk.CreateXor(a, b))
	m := ntk.CreateMaj(a, b, c)
	assert.Equal(t, m, ntk.CreateMaj(c, a, b))
	assert.Equal(t, 3, ntk.NumGates())

	access, hit := ntk.UniqueStats()
	assert.Equal(t, 5, access)
	assert.Equal(t, 2, hit)
}
