// SPDX-License-Identifier: MIT
// Package: fractaltree/fractal
//
// options.go: functional options for New.
//
// Contract:
//   • Options are applied left to right onto a config, then validated by New.
//   • Option constructors panic on nil arguments (programmer error);
//     value validation happens in New and is reported as errors.

package fractal

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/fractaltree/permutation"
)

// discardLogger is the default: library code is silent unless asked.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// config collects construction options.
type config struct {
	mainOrder permutation.Order
	index     *permutation.Index
	fertile   bool
	logger    *slog.Logger
	name      string
}

func defaultConfig() config {
	return config{fertile: true, logger: discardLogger}
}

// Option customizes a Tree in New.
type Option func(*config)

// WithMainPermutationOrder sets the root's main permutation order. The
// permutation-order matrix is derived eagerly from it. Without this option
// the identity order 1..N is used.
func WithMainPermutationOrder(order ...int) Option {
	o := permutation.Order(order).Clone()
	return func(c *config) { c.mainOrder = o }
}

// WithPermutationIndex sets the root's 1-based (row, col) matrix index.
// Default is (1, 1), the cell holding the main order itself.
func WithPermutationIndex(row, col int) Option {
	return func(c *config) { c.index = &permutation.Index{Row: row, Col: col} }
}

// WithFertile sets whether the node may be expanded by AddLayer. Default true.
func WithFertile(fertile bool) Option {
	return func(c *config) { c.fertile = fertile }
}

// WithLogger routes Debug records about mutations to l. Children inherit it.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("fractal: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithName labels the node in String and log output.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}
