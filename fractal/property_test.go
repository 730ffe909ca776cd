// SPDX-License-Identifier: MIT
package fractal_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fractaltree/fractal"
)

// permutations returns every ordering of 1..n.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, p := range permutations(n - 1) {
		for pos := 0; pos <= len(p); pos++ {
			q := slices.Insert(slices.Clone(p), pos, n)
			out = append(out, q)
		}
	}
	return out
}

// requireUniqueOrders checks that every unreduced internal node carries
// the fractal orders 1..N exactly once.
func requireUniqueOrders(t *testing.T, tr *fractal.Tree) {
	t.Helper()
	for n := range tr.Traverse() {
		if n.IsLeaf() {
			continue
		}
		got := n.ChildrenFractalOrders()
		slices.Sort(got)
		want := make([]int, n.Size())
		for i := range want {
			want[i] = i + 1
		}
		require.Equal(t, want, got, "node %v", n)
	}
}

func TestProperty_ConservationAcrossOrders(t *testing.T) {
	for _, order := range permutations(4) {
		tr := newTree(t, "7/3", []any{1, 2, 3, 4}, order...)
		require.NoError(t, tr.AddLayer())
		require.NoError(t, tr.AddLayer())
		require.NoError(t, tr.Check(), "order %v", order)
		requireUniqueOrders(t, tr)

		kids := tr.Children()
		require.NoError(t, kids[0].ReduceChildrenBySize(2, fractal.Sieve))
		require.NoError(t, kids[1].ReduceChildrenBySize(3, fractal.Backwards))
		require.NoError(t, kids[2].MergeChildren(1, 3))
		require.NoError(t, kids[3].ReduceChildrenBySize(2, fractal.Merge, 1))
		require.NoError(t, tr.Check(), "order %v", order)

		require.NoError(t, kids[1].Children()[0].ChangeValue(11))
		require.NoError(t, tr.AddLayer())
		require.NoError(t, tr.ChangeValue(1))
		require.NoError(t, tr.Check(), "order %v", order)
		require.Equal(t, "1", tr.Value().RatString())
	}
}

func TestProperty_ProportionsNormalized(t *testing.T) {
	inputs := [][]any{
		{1},
		{0.25, 0.75},
		{"1/3", "1/7", 5},
		{3, 3, 3, 3},
		{1e-3, 2, "9/4", 7, 0.5},
	}
	for _, props := range inputs {
		tr := newTree(t, 1, props)
		sum := 0
		if r := tr.Proportions(); len(r) > 0 {
			total := r[0]
			for _, p := range r[1:] {
				total.Add(total, p)
			}
			require.Equal(t, "1", total.RatString(), "%v", props)
			sum = len(r)
		}
		require.Equal(t, len(props), sum)
	}
}
