// SPDX-License-Identifier: MIT

// Package rational is the exact-number boundary of fractaltree.
//
// Every structural quantity in the module (tree values, proportions,
// arithmetic-progression terms) is a *big.Rat. This package converts the
// loosely typed inputs accepted at the public surface (ints, floats,
// "3/4"-style strings, big.Rat values) into fresh *big.Rat values and offers
// the handful of vector helpers the other packages share.
//
// Floats are converted through big.Rat.SetFloat64, i.e. to the exact binary
// value of the float; they are never retained as float64.
//
// Errors:
//
//	ErrUnsupportedType - value kind cannot be converted.
//	ErrNotFinite       - float is NaN or ±Inf.
//	ErrParse           - string is not a valid rational literal.
//	ErrNonPositive     - normalization met an element <= 0.
//	ErrEmpty           - normalization of an empty vector.
package rational
