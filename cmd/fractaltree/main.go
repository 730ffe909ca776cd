// SPDX-License-Identifier: MIT

// Command fractaltree builds fractal trees from YAML descriptions and prints
// their layers, their node listing or a permutation-order matrix.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fractaltree:", err)
		os.Exit(1)
	}
}
