// SPDX-License-Identifier: MIT

// Package permutation - OrderMatrix: immutable N×N table of permutation orders.
//
// Purpose:
//   - Row-major flat storage with the index formula (row-1)*N + (col-1).
//   - Bounds-checked 1-based accessors that return errors instead of panicking.
//   - Transposition (regular / diagonal) and reading in either direction.
//
// Complexity quicksheet:
//   - NewOrderMatrix: O(N³) validation; At: O(1); Row/Column: O(N²) copy;
//     Transpose: O(N²); Read: O(N³) copy.

package permutation

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxRow       = "Row"
	ctxColumn    = "Column"
	ctxNew       = "New"
	ctxTranspose = "Transpose"
	ctxRead      = "Read"
)

// matrixErrorf wraps a sentinel with OrderMatrix method context and 1-based coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("OrderMatrix.%s(%d,%d): %w", method, row, col, err)
}

// OrderMatrix is a square matrix of size N whose cells are permutation orders
// of size N. It is immutable once built; accessors hand out copies.
type OrderMatrix struct {
	n    int     // size: N rows, N columns, orders of length N
	data []Order // row-major, len == n*n
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*OrderMatrix)(nil)

// NewOrderMatrix validates rows as an N×N table of orders of size N and
// copies it into an OrderMatrix.
//
// Errors:
//   - ErrNonSquare when there are no rows or a row length differs from the row count.
//   - ErrInvalidCell (wrapping ErrLengthMismatch or ErrInvalidPermutation) naming the first bad cell.
//
// Complexity: O(N³) time, O(N³) space.
func NewOrderMatrix(rows [][]Order) (*OrderMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("OrderMatrix.%s: 0 rows: %w", ctxNew, ErrNonSquare)
	}
	data := make([]Order, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("OrderMatrix.%s: row %d has %d cells, want %d: %w", ctxNew, i+1, len(row), n, ErrNonSquare)
		}
		for j, cell := range row {
			if err := validateSized(cell, n); err != nil {
				return nil, matrixErrorf(ctxNew, i+1, j+1, fmt.Errorf("%w %v: %w", ErrInvalidCell, cell, err))
			}
			data = append(data, cell.Clone())
		}
	}
	return &OrderMatrix{n: n, data: data}, nil
}

// NewOrderMatrixFromMain derives the full matrix from a main order via SelfPermute3D.
// Complexity: O(N³).
func NewOrderMatrixFromMain(main Order) (*OrderMatrix, error) {
	rows, err := SelfPermute3D(main)
	if err != nil {
		return nil, fmt.Errorf("OrderMatrix.%s: %w", ctxNew, err)
	}
	return NewOrderMatrix(rows)
}

// Size returns N.
func (m *OrderMatrix) Size() int { return m.n }

// offset computes the flat index for 1-based (row, col) or returns ErrOutOfRange.
func (m *OrderMatrix) offset(method string, row, col int) (int, error) {
	if row < 1 || row > m.n || col < 1 || col > m.n {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}
	return (row-1)*m.n + (col - 1), nil
}

// At returns a copy of the order at 1-based (row, col).
// Complexity: O(N).
func (m *OrderMatrix) At(row, col int) (Order, error) {
	off, err := m.offset(ctxAt, row, col)
	if err != nil {
		return nil, err
	}
	return m.data[off].Clone(), nil
}

// AtIndex is At for an Index.
func (m *OrderMatrix) AtIndex(idx Index) (Order, error) {
	return m.At(idx.Row, idx.Col)
}

// Row returns copies of the N orders in 1-based row.
func (m *OrderMatrix) Row(row int) ([]Order, error) {
	if _, err := m.offset(ctxRow, row, 1); err != nil {
		return nil, err
	}
	out := make([]Order, m.n)
	for j := 0; j < m.n; j++ {
		out[j] = m.data[(row-1)*m.n+j].Clone()
	}
	return out, nil
}

// Column returns copies of the N orders in 1-based column.
func (m *OrderMatrix) Column(col int) ([]Order, error) {
	if _, err := m.offset(ctxColumn, 1, col); err != nil {
		return nil, err
	}
	out := make([]Order, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.data[i*m.n+col-1].Clone()
	}
	return out, nil
}

// Transpose returns a new matrix re-indexed by mode.
//
//	TransposeRegular:  out[i][j] = m[j][i]
//	TransposeDiagonal: out[k][j] = m[j][(j+k) mod N]   (0-based)
//
// Orders are immutable, so cells are shared with the receiver.
// Complexity: O(N²).
func (m *OrderMatrix) Transpose(mode TransposeMode) (*OrderMatrix, error) {
	data := make([]Order, m.n*m.n)
	switch mode {
	case TransposeRegular:
		for i := 0; i < m.n; i++ {
			for j := 0; j < m.n; j++ {
				data[i*m.n+j] = m.data[j*m.n+i]
			}
		}
	case TransposeDiagonal:
		for k := 0; k < m.n; k++ {
			for j := 0; j < m.n; j++ {
				data[k*m.n+j] = m.data[j*m.n+(j+k)%m.n]
			}
		}
	default:
		return nil, fmt.Errorf("OrderMatrix.%s(%v): %w", ctxTranspose, mode, ErrUnknownMode)
	}
	return &OrderMatrix{n: m.n, data: data}, nil
}

// Read returns copies of all N² orders in the given reading direction.
func (m *OrderMatrix) Read(dir ReadingDirection) ([]Order, error) {
	out := make([]Order, 0, m.n*m.n)
	switch dir {
	case ReadHorizontal:
		for _, o := range m.data {
			out = append(out, o.Clone())
		}
	case ReadVertical:
		for j := 0; j < m.n; j++ {
			for i := 0; i < m.n; i++ {
				out = append(out, m.data[i*m.n+j].Clone())
			}
		}
	default:
		return nil, fmt.Errorf("OrderMatrix.%s(%d): %w", ctxRead, int(dir), ErrUnknownMode)
	}
	return out, nil
}

// Equal reports whether both matrices have the same size and cells.
func (m *OrderMatrix) Equal(o *OrderMatrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}
	return true
}

// String renders one matrix row per line, e.g. "[(3, 1, 2) (2, 3, 1) (1, 2, 3)]".
func (m *OrderMatrix) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		b.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(m.data[i*m.n+j].String())
		}
		b.WriteString("]\n")
	}
	return b.String()
}
