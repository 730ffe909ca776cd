// SPDX-License-Identifier: MIT
// Package: permutation
//
// Purpose:
//   - Single source of truth for order validation.
//   - Return plain sentinels; call sites add context.

package permutation

// Validate checks that o is a bijection on 1..len(o).
// Returns ErrEmptyOrder for len(o) == 0 and ErrInvalidPermutation for any
// out-of-range or repeated rank.
// Complexity: O(N) time, O(N) space.
func Validate(o Order) error {
	if len(o) == 0 {
		return ErrEmptyOrder
	}
	seen := make([]bool, len(o)+1)
	for _, v := range o {
		if v < 1 || v > len(o) || seen[v] {
			return ErrInvalidPermutation
		}
		seen[v] = true
	}
	return nil
}

// validateSized checks that o is a valid order of exactly size n.
func validateSized(o Order, n int) error {
	if len(o) != n {
		return ErrLengthMismatch
	}
	return Validate(o)
}
