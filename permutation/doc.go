// SPDX-License-Identifier: MIT

// Package permutation implements the permutation algebra behind fractal trees:
// applying a permutation order to a sequence, self-permutation (feeding a
// permutation's output back through itself), the N×N permutation-order matrix
// derived from one main order, and the index arithmetic that tells each tree
// node which matrix cell to read.
//
// 🚀 Self-permutation in one picture (order = 3 1 2):
//
//	SelfPermute2D:  [3 1 2] -> [2 3 1] -> [1 2 3]
//
//	SelfPermute3D:  row 1: [3 1 2] [2 3 1] [1 2 3]
//	                row 2: [1 2 3] [3 1 2] [2 3 1]
//	                row 3: [2 3 1] [1 2 3] [3 1 2]
//
// Each row of the 3D table is the previous row permuted by the main order,
// treating the row as a sequence of whole permutation tuples.
//
// Conventions:
//   - Orders are 1-based: an Order of size N is a bijection on 1..N.
//   - Matrix coordinates are 1-based (Index{Row: 1, Col: 1} is the top-left cell).
//   - Every operation validates its input and returns sentinel errors; nothing
//     is truncated, wrapped around or partially applied.
//
// Complexity:
//   - Permute: O(N). SelfPermute2D: O(N²). SelfPermute3D / NewOrderMatrixFromMain: O(N³).
//   - OrderMatrix.At: O(1); Transpose: O(N²) (orders are shared, not copied).
//
// Errors:
//
//	ErrLengthMismatch     - order length differs from the sequence length.
//	ErrInvalidPermutation - order is not a bijection on 1..N.
//	ErrEmptyOrder         - order of size 0.
//	ErrNonSquare          - matrix rows/columns do not form an N×N square.
//	ErrInvalidCell        - a matrix cell holds an invalid order or one of the wrong size.
//	ErrOutOfRange         - 1-based index outside 1..N.
//	ErrNoParentIndex      - child index requested without a parent index.
//	ErrUnknownMode        - unknown transpose mode or reading direction.
package permutation
