// SPDX-License-Identifier: MIT

package fractal

import (
	"fmt"
	"iter"
	"math/big"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Traverse yields t and all its descendants depth-first, parents before
// children, children in order. Every call starts a fresh walk.
// Mutating the tree while ranging over it is not supported.
func (t *Tree) Traverse() iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		stack := arraystack.New()
		stack.Push(t)
		for !stack.Empty() {
			v, _ := stack.Pop()
			n := v.(*Tree)
			if !yield(n) {
				return
			}
			for i := len(n.children) - 1; i >= 0; i-- {
				stack.Push(n.children[i])
			}
		}
	}
}

// Leaves yields the leaves under t (t itself when it is a leaf) in depth-first order.
func (t *Tree) Leaves() iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		for n := range t.Traverse() {
			if n.IsLeaf() && !yield(n) {
				return
			}
		}
	}
}

// NumberOfLayers returns the depth of the deepest leaf below t (0 for a leaf).
func (t *Tree) NumberOfLayers() int {
	base := t.Depth()
	deepest := 0
	for n := range t.Leaves() {
		deepest = max(deepest, n.Depth()-base)
	}
	return deepest
}

// Layer returns the nodes level steps below t, nested per child.
// See LayerOf.
func (t *Tree) Layer(level int) ([]LayerEntry[*Tree], error) {
	return LayerOf(t, level, func(n *Tree) *Tree { return n })
}

// LayerOf returns key of every node level steps below t.
//
// Level 0 is t itself. Level 1 lists the children. Deeper levels keep one
// nested entry per child: a child that has children contributes its own
// layer, a leaf child contributes key(child) directly, and a child whose
// subtree is shallower than the requested level contributes its deepest layer.
//
// Errors: ErrLayerOutOfRange for level < 0 or level > NumberOfLayers().
func LayerOf[T any](t *Tree, level int, key func(*Tree) T) ([]LayerEntry[T], error) {
	if level < 0 || level > t.NumberOfLayers() {
		return nil, fmt.Errorf("LayerOf(%d): %d layers: %w", level, t.NumberOfLayers(), ErrLayerOutOfRange)
	}
	if level == 0 {
		return []LayerEntry[T]{{Value: key(t)}}, nil
	}
	return layerOf(t, level, key), nil
}

// layerOf assumes 1 <= level and t has children.
func layerOf[T any](t *Tree, level int, key func(*Tree) T) []LayerEntry[T] {
	out := make([]LayerEntry[T], 0, len(t.children))
	for _, c := range t.children {
		if level == 1 || c.IsLeaf() {
			out = append(out, LayerEntry[T]{Value: key(c)})
			continue
		}
		out = append(out, LayerEntry[T]{Nested: layerOf(c, min(level-1, c.NumberOfLayers()), key)})
	}
	return out
}

// Check verifies value conservation at every internal node under t and
// returns the first violation wrapped in ErrValueConservation.
func (t *Tree) Check() error {
	for n := range t.Traverse() {
		if n.IsLeaf() {
			continue
		}
		sum := new(big.Rat)
		for _, c := range n.children {
			sum.Add(sum, c.value)
		}
		if sum.Cmp(n.value) != 0 {
			return fmt.Errorf("Tree.Check: %v: children sum %s: %w", n, sum.RatString(), ErrValueConservation)
		}
	}
	return nil
}
