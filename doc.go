// Package fractaltree is your toolbox for building self-similar trees whose
// subdivision order is driven by permutation groups, with exact rational
// arithmetic throughout.
//
// 🚀 What is fractaltree?
//
//	A small set of packages that layer on top of each other:
//		• Exact rationals: conversion of ints, floats and "p/q" strings to *big.Rat
//		• Arithmetic progressions: any 3 of a1, an, n, d, s derive the rest
//		• Permutations: permute, self-permutation in 2D and 3D
//		• Permutation-order matrices: immutable N×N tables, transposition, reading
//		• Fractal trees: layers, reductions, merges and value propagation
//
// ✨ Why choose fractaltree?
//
//   - Exact: values are *big.Rat, floats never leak into structure
//   - Deterministic: every ordering follows from one main permutation order
//   - Checked: value conservation holds after every mutation
//   - Small: a handful of well-known dependencies
//
// Under the hood, everything is organized under these subpackages:
//
//	rational/         conversion, normalization and rounding of *big.Rat values
//	progression/      RationalArithmeticProgression with lazy, resettable terms
//	permutation/      Order, Permute, SelfPermute2D/3D, OrderMatrix, NextIndex
//	fractal/          the Tree itself
//	cmd/fractaltree/  CLI: build trees from YAML, print layers and matrices
//
// Quick ASCII example, value 10, proportions (1, 2, 3), main order (3, 1, 2):
//
//	        10
//	     /   |   \
//	    5   5/3  10/3      fractal orders 3, 1, 2
//
//	go get github.com/katalvlaran/fractaltree
package fractaltree
