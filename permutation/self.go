// SPDX-License-Identifier: MIT

package permutation

import "fmt"

// SelfPermute2D returns N orders: the first is order itself and each next one
// is the previous order permuted by order.
//
// The sequence walks the cyclic group generated by order, so it holds at most
// N distinct orders; fixed points and short cycles produce repeats.
// Complexity: O(N²).
func SelfPermute2D(order Order) ([]Order, error) {
	if err := Validate(order); err != nil {
		return nil, fmt.Errorf("SelfPermute2D%v: %w", order, err)
	}
	n := len(order)
	out := make([]Order, n)
	out[0] = order.Clone()
	for k := 1; k < n; k++ {
		next, err := Permute(out[k-1], order)
		if err != nil {
			return nil, fmt.Errorf("SelfPermute2D%v step %d: %w", order, k, err)
		}
		out[k] = next
	}
	return out, nil
}

// SelfPermute3D returns an N×N table of orders. Row 0 is SelfPermute2D(order);
// row k is row k-1 permuted by order, where the row is treated as a
// sequence of whole orders (the tuples move, their contents do not change).
// Complexity: O(N³) time for the 2D rows, O(N²) for the table itself.
func SelfPermute3D(order Order) ([][]Order, error) {
	first, err := SelfPermute2D(order)
	if err != nil {
		return nil, fmt.Errorf("SelfPermute3D: %w", err)
	}
	n := len(order)
	out := make([][]Order, n)
	out[0] = first
	for k := 1; k < n; k++ {
		row, err := Permute(out[k-1], order)
		if err != nil {
			return nil, fmt.Errorf("SelfPermute3D%v row %d: %w", order, k, err)
		}
		out[k] = row
	}
	return out, nil
}
