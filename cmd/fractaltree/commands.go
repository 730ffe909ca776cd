// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fractaltree/fractal"
	"github.com/katalvlaran/fractaltree/permutation"
)

// treeFlags are shared by the commands that build a tree from a config file.
type treeFlags struct {
	config string
	layers int
	order  []int
}

func (f *treeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML tree description")
	cmd.Flags().IntVar(&f.layers, "layers", 0, "number of AddLayer passes (overrides the file)")
	cmd.Flags().IntSliceVar(&f.order, "order", nil, "main permutation order, e.g. 3,1,2 (overrides the file)")
	_ = cmd.MarkFlagRequired("config")
}

// load reads the config, applies flag overrides and builds the tree.
func (f *treeFlags) load(cmd *cobra.Command, logger *slog.Logger) (*fractal.Tree, error) {
	cfg, err := LoadConfig(f.config)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("layers") {
		cfg.Layers = f.layers
	}
	if cmd.Flags().Changed("order") {
		cfg.PermutationOrder = f.order
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg.Build(logger)
}

// app carries state shared by all subcommands.
type app struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:           "fractaltree",
		Short:         "Build and inspect permutation-driven fractal trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if a.verbose {
				a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log tree mutations to stderr")

	root.AddCommand(newLayersCmd(a), newTreeCmd(a), newMatrixCmd())
	return root
}

func newLayersCmd(a *app) *cobra.Command {
	var (
		flags treeFlags
		level int
	)
	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Print the values of every layer (or of one with --level)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, err := flags.load(cmd, a.logger)
			if err != nil {
				return err
			}
			from, to := 0, tr.NumberOfLayers()
			if cmd.Flags().Changed("level") {
				from, to = level, level
			}
			out := cmd.OutOrStdout()
			for l := from; l <= to; l++ {
				layer, err := fractal.LayerOf(tr, l, func(n *fractal.Tree) string { return n.Value().RatString() })
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d: %s\n", l, formatLayer(layer))
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&level, "level", "l", 0, "print only this layer")
	return cmd
}

// formatLayer renders nested entries as "[a [b c] d]".
func formatLayer(entries []fractal.LayerEntry[string]) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		if e.IsNested() {
			parts[i] = formatLayer(e.Nested)
		} else {
			parts[i] = e.Value
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func newTreeCmd(a *app) *cobra.Command {
	var flags treeFlags
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print every node depth-first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, err := flags.load(cmd, a.logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for n := range tr.Traverse() {
				fmt.Fprintf(out, "%s%v\n", strings.Repeat("  ", n.Depth()), n)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newMatrixCmd() *cobra.Command {
	var (
		order     []int
		transpose string
	)
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the permutation-order matrix derived from a main order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := permutation.NewOrderMatrixFromMain(permutation.Order(order))
			if err != nil {
				return err
			}
			if transpose != "" {
				mode, err := permutation.ParseTransposeMode(transpose)
				if err != nil {
					return err
				}
				if m, err = m.Transpose(mode); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), m)
			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&order, "order", "o", nil, "main permutation order, e.g. 3,1,2")
	cmd.Flags().StringVarP(&transpose, "transpose", "t", "", "transpose the matrix: regular or diagonal")
	_ = cmd.MarkFlagRequired("order")
	return cmd
}
