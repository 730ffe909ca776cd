// SPDX-License-Identifier: MIT
package fractal_test

import (
	"fmt"

	"github.com/katalvlaran/fractaltree/fractal"
	"github.com/katalvlaran/fractaltree/rational"
)

// ExampleTree_AddLayer expands a root once; the main order decides both the
// children's fractal orders and where each proportion lands.
func ExampleTree_AddLayer() {
	tr, err := fractal.New(10, []any{1, 2, 3}, fractal.WithMainPermutationOrder(3, 1, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := tr.AddLayer(); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tr.ChildrenFractalOrders())
	fmt.Println(rational.Strings(tr.ChildrenValues()))

	// Output:
	// [3 1 2]
	// [5 5/3 10/3]
}

// ExampleTree_GenerateChildren keeps two of three children per level.
func ExampleTree_GenerateChildren() {
	tr, _ := fractal.New(12, []any{1, 1, 1}, fractal.WithMainPermutationOrder(2, 3, 1))
	count := fractal.Tuple(fractal.Children(2), fractal.Children(2))
	if err := tr.GenerateChildren(count, fractal.Forwards); err != nil {
		fmt.Println("error:", err)
		return
	}
	for n := range tr.Traverse() {
		fmt.Println(n.Depth(), n.FractalOrder(), n.Value().RatString())
	}

	// Output:
	// 0 0 12
	// 1 2 6
	// 2 1 3
	// 2 2 3
	// 1 1 6
	// 2 2 3
	// 2 1 3
}

// ExampleTree_MergeChildren folds five children into three runs.
func ExampleTree_MergeChildren() {
	tr, _ := fractal.New(10, []any{1, 2, 3, 4, 5}, fractal.WithMainPermutationOrder(3, 5, 1, 2, 4))
	_ = tr.AddLayer()
	_ = tr.MergeChildren(1, 2, 2)
	fmt.Println(tr.ChildrenFractalOrders(), rational.Strings(tr.ChildrenValues()))

	// Output:
	// [3 5 2] [2 4 4]
}

// ExampleLayerOf reads the second layer as fractal orders.
func ExampleLayerOf() {
	tr, _ := fractal.New(1, []any{1, 1, 1}, fractal.WithMainPermutationOrder(3, 1, 2))
	_ = tr.AddLayer()
	_ = tr.AddLayer()
	layer, _ := fractal.LayerOf(tr, 2, (*fractal.Tree).FractalOrder)
	for _, e := range layer {
		fmt.Println(fractal.Flatten(e.Nested))
	}

	// Output:
	// [1 2 3]
	// [3 1 2]
	// [2 3 1]
}
