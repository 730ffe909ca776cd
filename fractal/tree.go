// SPDX-License-Identifier: MIT

package fractal

import (
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/katalvlaran/fractaltree/permutation"
	"github.com/katalvlaran/fractaltree/rational"
)

// New creates a root node.
//
// value and every proportion accept anything rational.New converts (ints,
// floats, "p/q" strings, *big.Rat); they are converted to exact rationals at
// this boundary. Proportions must be positive and are normalized to sum to 1;
// their count N is the node's size.
//
// Defaults: identity main order, permutation index (1, 1), fertile.
//
// Errors: ErrInvalidValue, ErrInvalidProportions, ErrInvalidMainOrder, ErrInvalidIndex.
// Complexity: O(N³) for the matrix derivation.
func New(value any, proportions []any, opts ...Option) (*Tree, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	v, err := rational.New(value)
	if err != nil {
		return nil, fmt.Errorf("fractal.New: %w: %w", ErrInvalidValue, err)
	}
	raw, err := rational.Slice(proportions...)
	if err != nil {
		return nil, fmt.Errorf("fractal.New: %w: %w", ErrInvalidProportions, err)
	}
	props, err := rational.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("fractal.New: %w: %w", ErrInvalidProportions, err)
	}

	t := &Tree{
		value:       v,
		proportions: props,
		index:       permutation.Index{Row: 1, Col: 1},
		fertile:     cfg.fertile,
		name:        cfg.name,
		logger:      cfg.logger,
	}
	if cfg.index != nil {
		if err := t.SetPermutationIndex(*cfg.index); err != nil {
			return nil, err
		}
	}
	order := cfg.mainOrder
	if order == nil {
		order = permutation.Identity(t.Size())
	}
	if err := t.SetMainPermutationOrder(order...); err != nil {
		return nil, err
	}
	if cfg.mainOrder == nil {
		t.mainOrder = nil
	}
	return t, nil
}

// newChild creates an owned child that shares the parent's proportions
// (never mutated), logger and size.
func (t *Tree) newChild(value *big.Rat, fractalOrder int, index permutation.Index) *Tree {
	return &Tree{
		value:        value,
		proportions:  t.proportions,
		parent:       t,
		fractalOrder: fractalOrder,
		index:        index,
		fertile:      true,
		logger:       t.logger,
	}
}

// SetMainPermutationOrder replaces the root's main order and re-derives the
// permutation-order matrix.
//
// Errors: ErrNonRootMainOrder on a non-root node, ErrHasChildren once the
// root has been expanded, ErrInvalidMainOrder for anything that is not a
// bijection on 1..Size().
func (t *Tree) SetMainPermutationOrder(order ...int) error {
	if t.parent != nil {
		return fmt.Errorf("Tree.SetMainPermutationOrder%v: %w", order, ErrNonRootMainOrder)
	}
	if len(t.children) > 0 {
		return fmt.Errorf("Tree.SetMainPermutationOrder%v: %w", order, ErrHasChildren)
	}
	o := permutation.Order(order)
	if len(o) != t.Size() {
		return fmt.Errorf("Tree.SetMainPermutationOrder%v: size %d, want %d: %w: %w",
			order, len(o), t.Size(), ErrInvalidMainOrder, permutation.ErrLengthMismatch)
	}
	m, err := permutation.NewOrderMatrixFromMain(o)
	if err != nil {
		return fmt.Errorf("Tree.SetMainPermutationOrder%v: %w: %w", order, ErrInvalidMainOrder, err)
	}
	t.mainOrder = o.Clone()
	t.matrix = m
	return nil
}

// SetPermutationIndex sets the root's matrix index. Non-root indices are
// always derived from the parent.
//
// Errors: ErrNonRootIndex, ErrHasChildren, ErrInvalidIndex.
func (t *Tree) SetPermutationIndex(idx permutation.Index) error {
	if t.parent != nil {
		return fmt.Errorf("Tree.SetPermutationIndex%v: %w", idx, ErrNonRootIndex)
	}
	if len(t.children) > 0 {
		return fmt.Errorf("Tree.SetPermutationIndex%v: %w", idx, ErrHasChildren)
	}
	n := t.Size()
	if idx.Row < 1 || idx.Row > n || idx.Col < 1 || idx.Col > n {
		return fmt.Errorf("Tree.SetPermutationIndex%v: size %d: %w", idx, n, ErrInvalidIndex)
	}
	t.index = idx
	return nil
}

// Value returns a copy of the node's value.
func (t *Tree) Value() *big.Rat { return new(big.Rat).Set(t.value) }

// Size returns the number of proportions N, i.e. how many children one
// expansion produces.
func (t *Tree) Size() int { return len(t.proportions) }

// Proportions returns a copy of the normalized proportions.
func (t *Tree) Proportions() []*big.Rat { return rational.Clone(t.proportions) }

// FractalOrder returns the node's rank among its siblings (1..N), or 0 for the root.
func (t *Tree) FractalOrder() int { return t.fractalOrder }

// PermutationIndex returns the node's (row, col) matrix index.
func (t *Tree) PermutationIndex() permutation.Index { return t.index }

// Parent returns the parent node, or nil for the root.
func (t *Tree) Parent() *Tree { return t.parent }

// Root walks up to the root node.
func (t *Tree) Root() *Tree {
	r := t
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns the ordered children. The slice is a copy; the nodes are not.
func (t *Tree) Children() []*Tree {
	out := make([]*Tree, len(t.children))
	copy(out, t.children)
	return out
}

// IsLeaf reports whether the node has no children.
func (t *Tree) IsLeaf() bool { return len(t.children) == 0 }

// IsRoot reports whether the node has no parent.
func (t *Tree) IsRoot() bool { return t.parent == nil }

// IsFertile reports whether AddLayer may still expand the node.
func (t *Tree) IsFertile() bool { return t.fertile }

// Name returns the label given with WithName (empty for generated nodes).
func (t *Tree) Name() string { return t.name }

// Depth returns the distance from the root (0 for the root).
func (t *Tree) Depth() int {
	d := 0
	for p := t.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Position returns the 0-based ordinal among siblings, or -1 for the root.
func (t *Tree) Position() int {
	if t.parent == nil {
		return -1
	}
	for i, c := range t.parent.children {
		if c == t {
			return i
		}
	}
	return -1
}

// Path returns the 1-based ordinals from the root down to the node
// (empty for the root), e.g. [2 1] for the first child of the second child.
func (t *Tree) Path() []int {
	var rev []int
	for n := t; n.parent != nil; n = n.parent {
		rev = append(rev, n.Position()+1)
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// ChildrenFractalOrders returns the fractal orders of the children in order.
func (t *Tree) ChildrenFractalOrders() []int {
	out := make([]int, len(t.children))
	for i, c := range t.children {
		out[i] = c.fractalOrder
	}
	return out
}

// ChildrenValues returns copies of the children's values in order.
func (t *Tree) ChildrenValues() []*big.Rat {
	out := make([]*big.Rat, len(t.children))
	for i, c := range t.children {
		out[i] = c.Value()
	}
	return out
}

// String renders "name[1.3] value=5/3 fo=2 idx=(2, 3)".
func (t *Tree) String() string {
	var b strings.Builder
	if t.name != "" {
		b.WriteString(t.name)
	} else {
		b.WriteString("node")
	}
	b.WriteString("[")
	for i, p := range t.Path() {
		if i > 0 {
			b.WriteString(".")
		}
		fmt.Fprint(&b, p)
	}
	fmt.Fprintf(&b, "] value=%s fo=%d idx=%v", t.value.RatString(), t.fractalOrder, t.index)
	return b.String()
}

// logAttrs are the attributes every mutation record carries.
func (t *Tree) logAttrs(extra ...any) []any {
	attrs := []any{
		slog.String("node", t.String()),
		slog.Int("children", len(t.children)),
	}
	return append(attrs, extra...)
}
