package permutation_test

import (
	"fmt"

	"github.com/katalvlaran/fractaltree/permutation"
)

// ExamplePermute reorders a sequence by a 1-based permutation order.
func ExamplePermute() {
	out, err := permutation.Permute([]string{"low", "mid", "high"}, permutation.Order{3, 1, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)

	// Output:
	// [high low mid]
}

// ExampleNewOrderMatrixFromMain derives the full matrix from one main order.
func ExampleNewOrderMatrixFromMain() {
	m, _ := permutation.NewOrderMatrixFromMain(permutation.Order{3, 1, 2})
	fmt.Print(m)

	idx, _ := permutation.NextIndex(m.Size(), &permutation.Index{Row: 1, Col: 1}, 3)
	o, _ := m.AtIndex(idx)
	fmt.Println(idx, "->", o)

	// Output:
	// [(3, 1, 2) (2, 3, 1) (1, 2, 3)]
	// [(1, 2, 3) (3, 1, 2) (2, 3, 1)]
	// [(2, 3, 1) (1, 2, 3) (3, 1, 2)]
	// (2, 3) -> (2, 3, 1)
}
