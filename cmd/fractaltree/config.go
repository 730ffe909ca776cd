// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fractaltree/fractal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// errCountShape reports a generate entry that is neither an integer nor a list.
var errCountShape = errors.New("generate: expected an integer or a list of counts")

// TreeConfig describes a tree to build from a YAML file.
//
//	value: "10"
//	proportions: [1, 2, 3]
//	permutation_order: [3, 1, 2]
//	permutation_index: [1, 1]
//	generate: [2, [1, 2], 0]
//	reduce_mode: backwards
//	layers: 1
type TreeConfig struct {
	Value            string    `yaml:"value" validate:"required"`
	Proportions      []string  `yaml:"proportions" validate:"required,min=1,dive,required"`
	PermutationOrder []int     `yaml:"permutation_order" validate:"omitempty,dive,min=1"`
	PermutationIndex []int     `yaml:"permutation_index" validate:"omitempty,len=2,dive,min=1"`
	Layers           int       `yaml:"layers" validate:"gte=0,lte=16"`
	Generate         yaml.Node `yaml:"generate" validate:"-"`
	ReduceMode       string    `yaml:"reduce_mode" validate:"omitempty,oneof=backwards forwards sieve merge"`
	MergeIndex       int       `yaml:"merge_index" validate:"gte=0"`
}

// LoadConfig reads and validates a tree description.
func LoadConfig(path string) (*TreeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates a YAML tree description.
func ParseConfig(data []byte) (*TreeConfig, error) {
	var cfg TreeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// parseCount turns a YAML scalar or (nested) sequence into a fractal.Count.
func parseCount(n *yaml.Node) (fractal.Count, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var v int
		if err := n.Decode(&v); err != nil {
			return fractal.Count{}, fmt.Errorf("line %d: %w: %w", n.Line, errCountShape, err)
		}
		return fractal.Children(v), nil
	case yaml.SequenceNode:
		subs := make([]fractal.Count, 0, len(n.Content))
		for _, item := range n.Content {
			c, err := parseCount(item)
			if err != nil {
				return fractal.Count{}, err
			}
			subs = append(subs, c)
		}
		return fractal.Tuple(subs...), nil
	default:
		return fractal.Count{}, fmt.Errorf("line %d: %w", n.Line, errCountShape)
	}
}

// Build creates the root, runs generate (if any) and then the extra layers.
func (c *TreeConfig) Build(logger *slog.Logger) (*fractal.Tree, error) {
	props := make([]any, len(c.Proportions))
	for i, p := range c.Proportions {
		props[i] = p
	}
	opts := []fractal.Option{fractal.WithName("root"), fractal.WithLogger(logger)}
	if len(c.PermutationOrder) > 0 {
		opts = append(opts, fractal.WithMainPermutationOrder(c.PermutationOrder...))
	}
	if len(c.PermutationIndex) == 2 {
		opts = append(opts, fractal.WithPermutationIndex(c.PermutationIndex[0], c.PermutationIndex[1]))
	}
	tr, err := fractal.New(c.Value, props, opts...)
	if err != nil {
		return nil, err
	}

	if c.Generate.Kind != 0 {
		count, err := parseCount(&c.Generate)
		if err != nil {
			return nil, err
		}
		mode := fractal.Backwards
		if c.ReduceMode != "" {
			if mode, err = fractal.ParseReduceMode(c.ReduceMode); err != nil {
				return nil, err
			}
		}
		var mergeIndex []int
		if mode == fractal.Merge {
			mergeIndex = []int{c.MergeIndex}
		}
		if err := tr.GenerateChildren(count, mode, mergeIndex...); err != nil {
			return nil, err
		}
	}
	for range c.Layers {
		if err := tr.AddLayer(); err != nil {
			return nil, err
		}
	}
	if err := tr.Check(); err != nil {
		return nil, err
	}
	return tr, nil
}
