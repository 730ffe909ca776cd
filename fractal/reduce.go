// SPDX-License-Identifier: MIT

package fractal

import (
	"cmp"
	"fmt"
	"log/slog"
	"math/big"
	"slices"

	"github.com/katalvlaran/fractaltree/progression"
	"github.com/katalvlaran/fractaltree/rational"
)

// ReduceChildrenByCondition detaches every child for which drop reports true
// and rescales the survivors (with their subtrees) by value/sum(survivors),
// so the node's value is conserved exactly.
//
// Errors: ErrNoChildren, ErrReduceAll when nothing would survive,
// ErrZeroValue when the survivors sum to zero but the node does not.
// The node is unchanged on error.
func (t *Tree) ReduceChildrenByCondition(drop Condition) error {
	if len(t.children) == 0 {
		return fmt.Errorf("Tree.ReduceChildrenByCondition: %w", ErrNoChildren)
	}
	var kept, dropped []*Tree
	for _, c := range t.children {
		if drop(c) {
			dropped = append(dropped, c)
		} else {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return fmt.Errorf("Tree.ReduceChildrenByCondition: %d children: %w", len(t.children), ErrReduceAll)
	}
	if err := t.replaceChildren(kept); err != nil {
		return fmt.Errorf("Tree.ReduceChildrenByCondition: %w", err)
	}
	t.detach(dropped)
	t.logger.Debug("fractal: children reduced", t.logAttrs(slog.Int("removed", len(dropped)))...)
	return nil
}

// replaceChildren installs kept as the children, scaled to sum to t.value.
func (t *Tree) replaceChildren(kept []*Tree) error {
	sum := new(big.Rat)
	for _, c := range kept {
		sum.Add(sum, c.value)
	}
	if sum.Sign() == 0 {
		if t.value.Sign() != 0 {
			return fmt.Errorf("survivors sum to 0, value %s: %w", t.value.RatString(), ErrZeroValue)
		}
		t.children = kept
		return nil
	}
	factor := new(big.Rat).Quo(t.value, sum)
	for _, c := range kept {
		c.scale(factor)
	}
	t.children = kept
	return nil
}

// detach cuts nodes loose from t. Each becomes a root of its own subtree
// and keeps the tree's main order and matrix, so its permutation index
// still resolves.
func (t *Tree) detach(nodes []*Tree) {
	root := t.Root()
	for _, n := range nodes {
		n.parent = nil
		n.mainOrder = nil
		if root.mainOrder != nil {
			n.mainOrder = root.mainOrder.Clone()
		}
		n.matrix = root.matrix
	}
}

// ReduceChildrenBySize shrinks the children to size using mode:
//
//   - Backwards keeps the size children with the highest fractal orders.
//   - Forwards keeps the size children with the lowest fractal orders.
//   - Sieve keeps the children whose fractal-order ranks are the rounded
//     terms of the progression 1..n with size terms (rank 1 when size is 1).
//   - Merge folds the children into size contiguous runs, all of length 1
//     except the one at mergeIndex[0], which absorbs the surplus.
//
// Ranks are taken among the current children, so a node that was reduced
// before is treated as a node with fewer children. A size equal to the child
// count is a no-op; size 0 detaches all children (Merge rejects it).
//
// Errors: ErrNoChildren, ErrReduceSize, ErrMergeIndex, ErrUnknownReduceMode.
func (t *Tree) ReduceChildrenBySize(size int, mode ReduceMode, mergeIndex ...int) error {
	n := len(t.children)
	if n == 0 {
		return fmt.Errorf("Tree.ReduceChildrenBySize(%d, %v): %w", size, mode, ErrNoChildren)
	}
	if size < 0 || size > n {
		return fmt.Errorf("Tree.ReduceChildrenBySize(%d, %v): %d children: %w", size, mode, n, ErrReduceSize)
	}
	if err := checkReduceArgs(size, mode, mergeIndex); err != nil {
		return fmt.Errorf("Tree.ReduceChildrenBySize(%d, %v): %w", size, mode, err)
	}
	if size == n {
		return nil
	}
	if mode == Merge {
		return t.MergeChildren(mergeLengths(n, size, mergeIndex[0])...)
	}
	if size == 0 {
		t.detach(t.children)
		t.children = nil
		t.logger.Debug("fractal: children cleared", t.logAttrs(slog.String("mode", mode.String()))...)
		return nil
	}

	var keep func(rank int) bool
	switch mode {
	case Backwards:
		keep = func(rank int) bool { return rank >= n-size+1 }
	case Forwards:
		keep = func(rank int) bool { return rank <= size }
	case Sieve:
		ranks, err := sieveRanks(n, size)
		if err != nil {
			return fmt.Errorf("Tree.ReduceChildrenBySize(%d, %v): %w", size, mode, err)
		}
		keep = func(rank int) bool { return ranks[rank] }
	default:
		return fmt.Errorf("Tree.ReduceChildrenBySize(%d, %v): %w", size, mode, ErrUnknownReduceMode)
	}

	ranks := t.childRanks()
	if err := t.ReduceChildrenByCondition(func(c *Tree) bool { return !keep(ranks[c]) }); err != nil {
		return fmt.Errorf("Tree.ReduceChildrenBySize(%d, %v): %w", size, mode, err)
	}
	return nil
}

// checkReduceArgs rejects unknown modes and, for Merge, a merge index
// outside 0..size-1.
func checkReduceArgs(size int, mode ReduceMode, mergeIndex []int) error {
	switch mode {
	case Backwards, Forwards, Sieve:
		return nil
	case Merge:
		if len(mergeIndex) == 0 || mergeIndex[0] < 0 || mergeIndex[0] >= size {
			return fmt.Errorf("merge index %v: %w", mergeIndex, ErrMergeIndex)
		}
		return nil
	default:
		return ErrUnknownReduceMode
	}
}

// childRanks maps each child to its 1-based rank by fractal order; ties
// keep positional order.
func (t *Tree) childRanks() map[*Tree]int {
	sorted := slices.Clone(t.children)
	slices.SortStableFunc(sorted, func(a, b *Tree) int { return cmp.Compare(a.fractalOrder, b.fractalOrder) })
	ranks := make(map[*Tree]int, len(sorted))
	for i, c := range sorted {
		ranks[c] = i + 1
	}
	return ranks
}

// sieveRanks picks size evenly spaced ranks out of 1..n.
func sieveRanks(n, size int) (map[int]bool, error) {
	if size == 1 {
		return map[int]bool{1: true}, nil
	}
	p, err := progression.New(
		progression.WithA1(big.NewRat(1, 1)),
		progression.WithAn(big.NewRat(int64(n), 1)),
		progression.WithN(size),
	)
	if err != nil {
		return nil, err
	}
	ranks := make(map[int]bool, size)
	for term, ok := p.Next(); ok; term, ok = p.Next() {
		ranks[int(rational.RoundHalfEven(term).Int64())] = true
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return ranks, nil
}

// mergeLengths partitions n into size runs: every run has length 1 except
// the run at idx, which takes the remaining n-size+1.
func mergeLengths(n, size, idx int) []int {
	lengths := make([]int, size)
	for i := range lengths {
		lengths[i] = 1
	}
	lengths[idx] = n - size + 1
	return lengths
}

// MergeChildren partitions the children into contiguous runs of the given
// lengths. Each run collapses into its first child, whose value becomes the
// run's total (its subtree is rescaled to match); the rest of the run is
// detached. The node's value is unchanged.
//
// Errors: ErrNoChildren, ErrMergeLengths when a length is not positive or
// the lengths do not sum to the child count.
func (t *Tree) MergeChildren(lengths ...int) error {
	if len(t.children) == 0 {
		return fmt.Errorf("Tree.MergeChildren%v: %w", lengths, ErrNoChildren)
	}
	total := 0
	for _, l := range lengths {
		if l < 1 {
			return fmt.Errorf("Tree.MergeChildren%v: length %d: %w", lengths, l, ErrMergeLengths)
		}
		total += l
	}
	if total != len(t.children) {
		return fmt.Errorf("Tree.MergeChildren%v: sum %d, %d children: %w", lengths, total, len(t.children), ErrMergeLengths)
	}

	runs := make([][]*Tree, len(lengths))
	sums := make([]*big.Rat, len(lengths))
	pos := 0
	for i, l := range lengths {
		runs[i] = t.children[pos : pos+l]
		pos += l
		sums[i] = new(big.Rat)
		for _, c := range runs[i] {
			sums[i].Add(sums[i], c.value)
		}
		if !runs[i][0].canRescaleTo(sums[i]) {
			return fmt.Errorf("Tree.MergeChildren%v: run %d: %w", lengths, i+1, ErrZeroValue)
		}
	}

	merged := make([]*Tree, len(runs))
	for i, run := range runs {
		run[0].rescaleTo(sums[i])
		t.detach(run[1:])
		merged[i] = run[0]
	}
	t.children = merged
	t.logger.Debug("fractal: children merged", t.logAttrs(slog.Any("lengths", lengths))...)
	return nil
}
