// SPDX-License-Identifier: MIT
package fractal_test

import (
	"math/big"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fractaltree/fractal"
)

func fractalOrderKey(n *fractal.Tree) int { return n.FractalOrder() }

func TestTraverse(t *testing.T) {
	tr := scenarioTree(t)
	require.NoError(t, tr.AddLayer())
	require.NoError(t, tr.AddLayer())

	nodes := slices.Collect(tr.Traverse())
	require.Len(t, nodes, 13)
	assert.Same(t, tr, nodes[0])
	assert.Same(t, tr.Children()[0], nodes[1])
	assert.Same(t, tr.Children()[0].Children()[2], nodes[4])
	assert.Same(t, tr.Children()[1], nodes[5])

	// restartable, and stops early on break
	assert.Len(t, slices.Collect(tr.Traverse()), 13)
	seen := 0
	for range tr.Traverse() {
		seen++
		if seen == 4 {
			break
		}
	}
	assert.Equal(t, 4, seen)
}

func TestLeaves(t *testing.T) {
	tr := scenarioTree(t)
	leaves := slices.Collect(tr.Leaves())
	require.Len(t, leaves, 1)
	assert.Same(t, tr, leaves[0])

	require.NoError(t, tr.AddLayer())
	require.NoError(t, tr.AddLayer())
	leaves = slices.Collect(tr.Leaves())
	require.Len(t, leaves, 9)

	sum := new(big.Rat)
	for _, l := range leaves {
		assert.True(t, l.IsLeaf())
		sum.Add(sum, l.Value())
	}
	assert.Equal(t, "10", sum.RatString())
}

func TestNumberOfLayers(t *testing.T) {
	tr := scenarioTree(t)
	assert.Equal(t, 0, tr.NumberOfLayers())
	require.NoError(t, tr.AddLayer())
	assert.Equal(t, 1, tr.NumberOfLayers())
	require.NoError(t, tr.Children()[1].AddLayer())
	assert.Equal(t, 2, tr.NumberOfLayers())
	assert.Equal(t, 1, tr.Children()[1].NumberOfLayers())
	assert.Equal(t, 0, tr.Children()[0].NumberOfLayers())
}

func TestLayer(t *testing.T) {
	tr := scenarioTree(t)
	require.NoError(t, tr.AddLayer())
	require.NoError(t, tr.AddLayer())

	l0, err := tr.Layer(0)
	require.NoError(t, err)
	require.Len(t, l0, 1)
	assert.Same(t, tr, l0[0].Value)

	l1, err := fractal.LayerOf(tr, 1, fractalOrderKey)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, fractal.Flatten(l1))
	assert.False(t, l1[0].IsNested())

	l2, err := fractal.LayerOf(tr, 2, fractalOrderKey)
	require.NoError(t, err)
	require.Len(t, l2, 3)
	for _, e := range l2 {
		assert.True(t, e.IsNested())
	}
	assert.Equal(t, []int{1, 2, 3, 3, 1, 2, 2, 3, 1}, fractal.Flatten(l2))

	_, err = tr.Layer(3)
	require.ErrorIs(t, err, fractal.ErrLayerOutOfRange)
	_, err = tr.Layer(-1)
	require.ErrorIs(t, err, fractal.ErrLayerOutOfRange)
}

func TestLayer_ShallowBranch(t *testing.T) {
	tr := scenarioTree(t)
	require.NoError(t, tr.AddLayer())
	above2 := func(n *fractal.Tree) bool { return n.Value().Cmp(big.NewRat(2, 1)) > 0 }
	require.NoError(t, tr.AddLayer(above2))
	require.NoError(t, tr.AddLayer())

	layer, err := fractal.LayerOf(tr, 3, func(n *fractal.Tree) string { return n.Value().RatString() })
	require.NoError(t, err)
	require.Len(t, layer, 3)
	assert.True(t, layer[0].IsNested())
	// the infertile child is kept as a plain value in place
	assert.False(t, layer[1].IsNested())
	assert.Equal(t, "5/3", layer[1].Value)
	assert.True(t, layer[2].IsNested())
	assert.Len(t, layer[0].Nested, 3)
	assert.Len(t, layer[0].Nested[0].Nested, 3)
	assert.Len(t, fractal.Flatten(layer), 19)
}

func TestCheck_Tree(t *testing.T) {
	tr := fiveTree(t)
	require.NoError(t, tr.Check())
	require.NoError(t, tr.AddLayer())
	require.NoError(t, tr.AddLayer())
	require.NoError(t, tr.Check())
}

func TestReduceMode_Parse(t *testing.T) {
	for _, m := range []fractal.ReduceMode{fractal.Backwards, fractal.Forwards, fractal.Sieve, fractal.Merge} {
		got, err := fractal.ParseReduceMode(" " + m.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := fractal.ParseReduceMode("SIEVE")
	require.NoError(t, err)
	assert.Equal(t, fractal.Sieve, got)

	_, err = fractal.ParseReduceMode("random")
	require.ErrorIs(t, err, fractal.ErrUnknownReduceMode)
	assert.Equal(t, "ReduceMode(9)", fractal.ReduceMode(9).String())
}

func TestCount(t *testing.T) {
	c := fractal.Tuple(fractal.Children(2), fractal.Tuple(fractal.Children(1), fractal.Children(0)), fractal.Children(1))
	assert.True(t, c.IsNested())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "(2, (1, 0), 1)", c.String())

	empty := fractal.Tuple()
	assert.True(t, empty.IsNested())
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, "()", empty.String())
	assert.Equal(t, "4", fractal.Children(4).String())
}
