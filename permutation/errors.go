// SPDX-License-Identifier: MIT
// Package permutation: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w and call
// context); callers match with errors.Is.

package permutation

import "errors"

var (
	// ErrLengthMismatch indicates that an order's length differs from the sequence it is applied to.
	ErrLengthMismatch = errors.New("permutation: length mismatch")

	// ErrInvalidPermutation indicates that an order is not a bijection on 1..N.
	ErrInvalidPermutation = errors.New("permutation: invalid permutation order")

	// ErrEmptyOrder indicates an order of size 0 where N >= 1 is required.
	ErrEmptyOrder = errors.New("permutation: empty order")

	// ErrNonSquare indicates that matrix input is not N rows of N cells.
	ErrNonSquare = errors.New("permutation: matrix is not square")

	// ErrInvalidCell indicates a matrix cell that is not a valid order of size N.
	ErrInvalidCell = errors.New("permutation: invalid matrix cell")

	// ErrOutOfRange indicates a 1-based row/column/ordinal outside 1..N.
	ErrOutOfRange = errors.New("permutation: index out of range")

	// ErrNoParentIndex indicates that a child index was requested without a parent index.
	ErrNoParentIndex = errors.New("permutation: no parent index")

	// ErrUnknownMode indicates an unsupported TransposeMode or ReadingDirection.
	ErrUnknownMode = errors.New("permutation: unknown mode")
)
