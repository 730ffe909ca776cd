// SPDX-License-Identifier: MIT

// Package progression models a finite arithmetic progression over exact
// rationals.
//
// A progression is described by any three of
//
//	a1 - first term
//	an - last term
//	n  - number of terms (positive integer)
//	d  - common difference
//	s  - sum of all terms
//
// with d and s mutually exclusive. Missing parameters are derived with the
// usual closed forms; a derived n is truncated toward zero. With CorrectS
// every emitted term is scaled by s/actual_sum, so the emitted sum matches s
// exactly while the terms stop being equally spaced.
//
// Terms are consumed through a cursor:
//
//	p, _ := progression.New(progression.WithA1(1), progression.WithAn(5), progression.WithN(3))
//	for v, ok := p.Next(); ok; v, ok = p.Next() {
//		fmt.Println(v.RatString()) // 1, 3, 5
//	}
//
// Running past the last term is not an error: Next simply reports false.
// Reset rewinds the cursor.
//
// The fractal package uses a progression to pick an evenly spaced subset of
// fractal orders during sieve reduction.
package progression
