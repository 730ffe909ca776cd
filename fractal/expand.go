// SPDX-License-Identifier: MIT

package fractal

import (
	"cmp"
	"fmt"
	"log/slog"
	"math/big"
	"slices"

	"github.com/katalvlaran/fractaltree/permutation"
	"github.com/katalvlaran/fractaltree/rational"
)

// PermutationOrderMatrix returns the root's permutation-order matrix,
// derived from the main order. The matrix is built when the main order is
// set and cached: repeated calls return the same pointer until the main
// order is replaced.
func (t *Tree) PermutationOrderMatrix() *permutation.OrderMatrix {
	return t.Root().matrix
}

// MainPermutationOrder returns a copy of the root's main order (identity when unset).
func (t *Tree) MainPermutationOrder() permutation.Order {
	r := t.Root()
	if r.mainOrder == nil {
		return permutation.Identity(r.Size())
	}
	return r.mainOrder.Clone()
}

// PermutationOrder returns the node's effective order: the cell of the
// root's matrix at the node's permutation index.
func (t *Tree) PermutationOrder() (permutation.Order, error) {
	o, err := t.PermutationOrderMatrix().AtIndex(t.index)
	if err != nil {
		return nil, fmt.Errorf("Tree.PermutationOrder: %w", err)
	}
	return o, nil
}

// AddLayer expands every fertile leaf under t by one level.
//
// Each leaf is first checked against conds; a leaf failing any condition is
// marked infertile for good and skipped. A surviving leaf with value v gets
// Size() children whose values are permute(v·proportions, order), whose
// fractal orders are permute(1..N, order) and whose indices follow
// permutation.NextIndex, where order is the leaf's effective permutation order.
//
// The leaf frontier is captured before any expansion, so one call never adds
// more than one level.
// Complexity: O(L·N) for L leaves.
func (t *Tree) AddLayer(conds ...Condition) error {
	leaves := slices.Collect(t.Leaves())
	for _, leaf := range leaves {
		if !leaf.fertile {
			continue
		}
		if !satisfies(leaf, conds) {
			leaf.fertile = false
			leaf.logger.Debug("fractal: leaf rejected", leaf.logAttrs()...)
			continue
		}
		if err := leaf.expand(); err != nil {
			return fmt.Errorf("Tree.AddLayer: %w", err)
		}
	}
	return nil
}

func satisfies(n *Tree, conds []Condition) bool {
	for _, c := range conds {
		if c != nil && !c(n) {
			return false
		}
	}
	return true
}

// expand gives a leaf its N permutation-derived children.
func (t *Tree) expand() error {
	order, err := t.PermutationOrder()
	if err != nil {
		return err
	}
	raw := make([]*big.Rat, len(t.proportions))
	for i, p := range t.proportions {
		raw[i] = new(big.Rat).Mul(t.value, p)
	}
	values, err := permutation.Permute(raw, order)
	if err != nil {
		return err
	}
	orders, err := permutation.Apply(order)
	if err != nil {
		return err
	}
	n := t.Size()
	children := make([]*Tree, n)
	for i := range n {
		idx, err := permutation.NextIndex(n, &t.index, i+1)
		if err != nil {
			return err
		}
		children[i] = t.newChild(values[i], orders[i], idx)
	}
	t.children = children
	t.logger.Debug("fractal: layer added", t.logAttrs(slog.String("order", order.String()))...)
	return nil
}

// GenerateChildren expands a leaf once and reduces it to count children
// using mode (and mergeIndex for Merge).
//
// A nested count recurses: the i-th sub-count goes to the child with the
// i-th lowest fractal order in Backwards mode and to the i-th child by
// position otherwise. The whole count, nested levels included, is checked
// before anything is expanded. A count of zero is a no-op; an infertile
// node is left untouched without error (logged at Debug).
//
// Errors: ErrHasChildren, ErrChildrenCount, ErrMergeIndex,
// ErrUnknownReduceMode, plus anything ReduceChildrenBySize reports.
func (t *Tree) GenerateChildren(count Count, mode ReduceMode, mergeIndex ...int) error {
	if len(t.children) > 0 {
		return fmt.Errorf("Tree.GenerateChildren(%v): %w", count, ErrHasChildren)
	}
	if err := checkCount(count, t.Size(), mode, mergeIndex); err != nil {
		return fmt.Errorf("Tree.GenerateChildren(%v): %w", count, err)
	}
	return t.generate(count, mode, mergeIndex)
}

// checkCount validates count and every nested sub-count against the node
// size n. All nodes of a tree share n.
func checkCount(count Count, n int, mode ReduceMode, mergeIndex []int) error {
	size := count.Len()
	if size < 0 || size > n {
		return fmt.Errorf("count %v, node size %d: %w", count, n, ErrChildrenCount)
	}
	if size == 0 {
		return nil
	}
	if err := checkReduceArgs(size, mode, mergeIndex); err != nil {
		return err
	}
	for _, sub := range count.Nested {
		if err := checkCount(sub, n, mode, mergeIndex); err != nil {
			return err
		}
	}
	return nil
}

// generate runs GenerateChildren on a leaf whose count was already checked.
func (t *Tree) generate(count Count, mode ReduceMode, mergeIndex []int) error {
	size := count.Len()
	if size == 0 {
		return nil
	}
	if !t.fertile {
		t.logger.Debug("fractal: infertile node not generated", t.logAttrs(slog.String("count", count.String()))...)
		return nil
	}
	if err := t.expand(); err != nil {
		return fmt.Errorf("Tree.GenerateChildren(%v): %w", count, err)
	}
	if err := t.ReduceChildrenBySize(size, mode, mergeIndex...); err != nil {
		return fmt.Errorf("Tree.GenerateChildren(%v): %w", count, err)
	}
	if !count.IsNested() {
		return nil
	}

	targets := t.Children()
	if mode == Backwards {
		slices.SortStableFunc(targets, func(a, b *Tree) int { return cmp.Compare(a.fractalOrder, b.fractalOrder) })
	}
	for i, sub := range count.Nested {
		if err := targets[i].generate(sub, mode, mergeIndex); err != nil {
			return fmt.Errorf("Tree.GenerateChildren(%v): child %d: %w", count, i+1, err)
		}
	}
	return nil
}

// Split gives a leaf len(proportions) children carrying value·p/sum(p).
// Unlike AddLayer no permutation is involved: every new child inherits t's
// fractal order and permutation index.
//
// Errors: ErrHasChildren, ErrInvalidProportions.
func (t *Tree) Split(proportions ...any) error {
	if len(t.children) > 0 {
		return fmt.Errorf("Tree.Split: %w", ErrHasChildren)
	}
	raw, err := rational.Slice(proportions...)
	if err != nil {
		return fmt.Errorf("Tree.Split: %w: %w", ErrInvalidProportions, err)
	}
	props, err := rational.Normalize(raw)
	if err != nil {
		return fmt.Errorf("Tree.Split: %w: %w", ErrInvalidProportions, err)
	}
	children := make([]*Tree, len(props))
	for i, p := range props {
		children[i] = t.newChild(new(big.Rat).Mul(t.value, p), t.fractalOrder, t.index)
	}
	t.children = children
	t.logger.Debug("fractal: split", t.logAttrs(slog.Int("parts", len(props)))...)
	return nil
}
