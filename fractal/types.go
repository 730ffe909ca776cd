// SPDX-License-Identifier: MIT

package fractal

import (
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/katalvlaran/fractaltree/permutation"
)

// Tree is one node of a fractal tree; the root node represents the whole tree.
//
// Value and proportions are exact rationals. Only the root owns a main
// permutation order and the permutation-order matrix derived from it; every
// other node reads its effective order from the root's matrix at its own
// permutation index.
type Tree struct {
	value        *big.Rat   // exact node value
	proportions  []*big.Rat // normalized, sums to 1; len == Size()
	parent       *Tree      // non-owning back-reference, nil for the root
	children     []*Tree    // owned, ordered
	fractalOrder int        // rank 1..N among siblings, 0 for the root
	index        permutation.Index
	fertile      bool // false once a layer condition rejected the node
	name         string
	logger       *slog.Logger

	// root-only
	mainOrder permutation.Order        // nil means identity
	matrix    *permutation.OrderMatrix // cached derivation of mainOrder
}

// Condition is a predicate evaluated on a leaf before AddLayer expands it.
type Condition func(node *Tree) bool

// ReduceMode selects the policy of ReduceChildrenBySize.
type ReduceMode int

const (
	// Backwards keeps the children with the highest fractal orders.
	Backwards ReduceMode = iota
	// Forwards keeps the children with the lowest fractal orders.
	Forwards
	// Sieve keeps children whose fractal orders are evenly spaced over 1..N.
	Sieve
	// Merge folds contiguous runs of children instead of dropping any.
	Merge
)

var reduceModeNames = [...]string{"backwards", "forwards", "sieve", "merge"}

func (m ReduceMode) String() string {
	if m < 0 || int(m) >= len(reduceModeNames) {
		return fmt.Sprintf("ReduceMode(%d)", int(m))
	}
	return reduceModeNames[m]
}

// ParseReduceMode maps "backwards", "forwards", "sieve" or "merge" to a ReduceMode.
func ParseReduceMode(s string) (ReduceMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range reduceModeNames {
		if s == name {
			return ReduceMode(i), nil
		}
	}
	return 0, fmt.Errorf("ParseReduceMode(%q): %w", s, ErrUnknownReduceMode)
}

// Count is the number of children GenerateChildren should leave on a node:
// either a plain count N, or a nested tuple whose length is the count and
// whose elements are the counts for each resulting child.
type Count struct {
	N      int
	Nested []Count
}

// Children returns a plain count.
func Children(n int) Count { return Count{N: n} }

// Tuple returns a nested count; Tuple() is an empty tuple, i.e. zero children.
func Tuple(counts ...Count) Count {
	if counts == nil {
		counts = []Count{}
	}
	return Count{Nested: counts}
}

// IsNested reports whether c is a tuple.
func (c Count) IsNested() bool { return c.Nested != nil }

// Len is the number of children c asks for.
func (c Count) Len() int {
	if c.IsNested() {
		return len(c.Nested)
	}
	return c.N
}

// String renders plain counts as "3" and tuples as "(2, (1, 0), 1)".
func (c Count) String() string {
	if !c.IsNested() {
		return fmt.Sprint(c.N)
	}
	parts := make([]string, len(c.Nested))
	for i, sub := range c.Nested {
		parts[i] = sub.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// LayerEntry is one element of a layer: either a single keyed node (Value)
// or, when the layer passes through a node with children, the nested layer
// of that node.
type LayerEntry[T any] struct {
	Value  T
	Nested []LayerEntry[T]
}

// IsNested reports whether e holds a nested layer instead of a value.
func (e LayerEntry[T]) IsNested() bool { return e.Nested != nil }

// Flatten returns the values of entries in depth-first order, dropping nesting.
func Flatten[T any](entries []LayerEntry[T]) []T {
	var out []T
	for _, e := range entries {
		if e.IsNested() {
			out = append(out, Flatten(e.Nested)...)
			continue
		}
		out = append(out, e.Value)
	}
	return out
}
