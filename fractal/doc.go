// SPDX-License-Identifier: MIT

// Package fractal implements self-similar trees whose subdivision order is
// driven by a closed permutation group.
//
// 🚀 What is a fractal tree?
//
//	A node owns an exact rational value and a proportion vector of size N
//	(normalized to sum to 1). Expanding a leaf splits its value into N
//	children by those proportions; the order in which the parts are laid out
//	is a permutation read from an N×N permutation-order matrix that the root
//	derives once from its main permutation order. Every child gets a
//	"fractal order" (its rank 1..N in that permutation) and a matrix index
//	derived from its parent's, so each subtree reorders its parts differently
//	yet deterministically.
//
//	     root (10)               main order (3, 1, 2)
//	    /    |    \
//	  5    5/3   10/3            fractal orders 3, 1, 2
//
// ✨ Operations:
//   - AddLayer        expand every fertile leaf once (optional conditions)
//   - GenerateChildren expand one node and reduce to a requested (nested) count
//   - ReduceChildrenByCondition / ReduceChildrenBySize (Backwards, Forwards, Sieve, Merge)
//   - MergeChildren   fold contiguous runs of children into their first child
//   - ChangeValue     rescale a subtree and re-sum every ancestor
//   - Split           subdivide a leaf by ad-hoc proportions, outside the permutation scheme
//
// Invariant: after every mutating call, each non-leaf node's value equals the
// exact sum of its children's values. Check re-validates it for a subtree.
//
// Ownership: a node owns its children slice; the parent pointer is a
// non-owning back-reference used for Root, Depth, Position and for
// re-summing ancestors.
//
// Concurrency: a Tree is single-writer. Read-only queries (Traverse, Layer,
// Value, ...) may run concurrently with each other but never with a
// mutation; callers serialize access.
//
// Logging: mutations emit Debug records through the *slog.Logger given with
// WithLogger (children inherit it). Without it the tree is silent.
package fractal
