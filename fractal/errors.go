// SPDX-License-Identifier: MIT
// Package fractal: sentinel error set.
// Call sites wrap with "Tree.<Method>(...): %w"; match with errors.Is.

package fractal

import "errors"

var (
	// ErrHasChildren indicates an operation that requires a leaf was called on a node with children.
	ErrHasChildren = errors.New("fractal: node already has children")

	// ErrNonRootMainOrder indicates an attempt to set a main permutation order on a non-root node.
	ErrNonRootMainOrder = errors.New("fractal: only the root may own a main permutation order")

	// ErrNonRootIndex indicates an attempt to set the permutation index of a non-root node.
	ErrNonRootIndex = errors.New("fractal: only the root's permutation index may be set")

	// ErrNoChildren indicates a reduce or merge on a leaf.
	ErrNoChildren = errors.New("fractal: node has no children")

	// ErrReduceAll indicates that a condition would remove every child.
	ErrReduceAll = errors.New("fractal: reduction would remove all children")

	// ErrReduceSize indicates a target size outside 0..len(children).
	ErrReduceSize = errors.New("fractal: reduce size out of range")

	// ErrMergeIndex indicates a missing merge index or one outside 0..size-1.
	ErrMergeIndex = errors.New("fractal: merge index missing or out of range")

	// ErrMergeLengths indicates merge lengths that are non-positive or do not sum to the child count.
	ErrMergeLengths = errors.New("fractal: merge lengths do not partition the children")

	// ErrChildrenCount indicates a requested number of children that is negative or exceeds the node size.
	ErrChildrenCount = errors.New("fractal: number of children out of range")

	// ErrZeroValue indicates a rescale of a subtree whose current total is zero.
	ErrZeroValue = errors.New("fractal: cannot rescale a zero-valued subtree")

	// ErrInvalidProportions indicates an empty or non-positive proportion vector.
	ErrInvalidProportions = errors.New("fractal: invalid proportions")

	// ErrInvalidMainOrder indicates a main permutation order that is not a bijection on 1..N.
	ErrInvalidMainOrder = errors.New("fractal: invalid main permutation order")

	// ErrInvalidIndex indicates a permutation index outside 1..N.
	ErrInvalidIndex = errors.New("fractal: invalid permutation index")

	// ErrInvalidValue indicates a value that cannot be converted to an exact rational.
	ErrInvalidValue = errors.New("fractal: invalid value")

	// ErrLayerOutOfRange indicates a layer level below 0 or above NumberOfLayers.
	ErrLayerOutOfRange = errors.New("fractal: layer out of range")

	// ErrValueConservation indicates a node whose value differs from the sum of its children.
	ErrValueConservation = errors.New("fractal: value is not the sum of children")

	// ErrUnknownReduceMode indicates an unsupported ReduceMode.
	ErrUnknownReduceMode = errors.New("fractal: unknown reduce mode")
)
