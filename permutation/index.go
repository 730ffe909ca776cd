// SPDX-License-Identifier: MIT

package permutation

import "fmt"

// NextIndex computes the matrix index of a child from its parent's index and
// its 1-based ordinal among the parent's children:
//
//	row = (parent.Row + parent.Col) mod size, with 0 mapped to size
//	col = ordinal
//
// Errors: ErrNoParentIndex for a nil parent (the node is a root),
// ErrOutOfRange for size < 1 or an ordinal outside 1..size.
// Complexity: O(1).
func NextIndex(size int, parent *Index, ordinal int) (Index, error) {
	if parent == nil {
		return Index{}, fmt.Errorf("NextIndex(size=%d, ordinal=%d): %w", size, ordinal, ErrNoParentIndex)
	}
	if size < 1 || ordinal < 1 || ordinal > size {
		return Index{}, fmt.Errorf("NextIndex(size=%d, ordinal=%d): %w", size, ordinal, ErrOutOfRange)
	}
	row := parent.Sum() % size
	if row == 0 {
		row = size
	}
	return Index{Row: row, Col: ordinal}, nil
}
