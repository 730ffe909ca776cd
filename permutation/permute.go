// SPDX-License-Identifier: MIT

package permutation

import "fmt"

// Permute returns a new slice where result[i] = items[order[i]-1].
//
// The order must have the same length as items and be a bijection on
// 1..len(items); violations fail with ErrLengthMismatch or
// ErrInvalidPermutation and items is left untouched.
// Elements are copied by value, so permuting a slice of slices shares the inner slices.
// Complexity: O(N).
func Permute[T any](items []T, order Order) ([]T, error) {
	if len(order) != len(items) {
		return nil, fmt.Errorf("Permute: len(items)=%d len(order)=%d: %w", len(items), len(order), ErrLengthMismatch)
	}
	if err := Validate(order); err != nil {
		return nil, fmt.Errorf("Permute%v: %w", order, err)
	}
	out := make([]T, len(items))
	for i, rank := range order {
		out[i] = items[rank-1]
	}
	return out, nil
}

// Apply permutes 1..len(order) by order, i.e. returns a copy of order itself
// after validation. It is the fractal order sequence of a node's children.
func Apply(order Order) (Order, error) {
	return Permute(Identity(len(order)), order)
}
