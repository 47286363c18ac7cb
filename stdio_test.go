// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//********************************************************************************************

func TestString(t *testing.T) {
	abc, err := ParseABCList(abcexample)
	require.NoError(t, err)
	assert.Equal(t, "{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 2, 4, 6, 8, 12, 10, 14, 14}", abc.String())

	xag, err := ParseXAGList(xagexample)
	require.NoError(t, err)
	assert.Equal(t, "{4 | 1 << 8 | 3 << 16, 2, 4, 6, 8, 12, 10, 14}", xag.String())

	mig, err := ParseMIGList(migexample)
	require.NoError(t, err)
	assert.Equal(t, "{3 | 1 << 8 | 1 << 16, 2, 4, 6, 8}", mig.String())
}

func TestFprint(t *testing.T) {
	abc, err := ParseABCList(abcexample)
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, abc.Fprint(&sb))
	expected := "5   = and (1, 2)\n" +
		"6   = and (3, 4)\n" +
		"7   = xor (6, 5)\n" +
		"po0 = 7\n"
	assert.Equal(t, expected, sb.String())

	l, err := NewXAGList(1)
	require.NoError(t, err)
	require.NoError(t, l.AddOutput(3))
	sb.Reset()
	require.NoError(t, l.Fprint(&sb))
	assert.Equal(t, "po0 = !1\n", sb.String())
}
