// SPDX-License-Identifier: MIT

package permutation

import (
	"fmt"
	"strings"
)

// Order is a permutation order: a bijection from position to rank, with
// values drawn from 1..len(Order).
type Order []int

// Identity returns the order 1..n.
func Identity(n int) Order {
	o := make(Order, n)
	for i := range o {
		o[i] = i + 1
	}
	return o
}

// Clone returns an independent copy of o.
func (o Order) Clone() Order {
	c := make(Order, len(o))
	copy(c, o)
	return c
}

// Equal reports whether o and p hold the same ranks in the same positions.
func (o Order) Equal(p Order) bool {
	if len(o) != len(p) {
		return false
	}
	for i := range o {
		if o[i] != p[i] {
			return false
		}
	}
	return true
}

// String renders the order as "(3, 1, 2)".
func (o Order) String() string {
	parts := make([]string, len(o))
	for i, v := range o {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Index is a 1-based (row, column) coordinate into an OrderMatrix.
type Index struct {
	Row int
	Col int
}

// Sum returns Row + Col.
func (i Index) Sum() int { return i.Row + i.Col }

func (i Index) String() string { return fmt.Sprintf("(%d, %d)", i.Row, i.Col) }

// TransposeMode selects how OrderMatrix.Transpose re-indexes cells.
type TransposeMode int

const (
	// TransposeRegular is the standard transpose: out[i][j] = m[j][i].
	TransposeRegular TransposeMode = iota
	// TransposeDiagonal reads wrapped diagonals as rows: out[k][j] = m[j][(j+k) mod N].
	TransposeDiagonal
)

func (m TransposeMode) String() string {
	switch m {
	case TransposeRegular:
		return "regular"
	case TransposeDiagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("TransposeMode(%d)", int(m))
	}
}

// ParseTransposeMode maps "regular" / "diagonal" to a TransposeMode.
func ParseTransposeMode(s string) (TransposeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular", "":
		return TransposeRegular, nil
	case "diagonal":
		return TransposeDiagonal, nil
	default:
		return 0, fmt.Errorf("ParseTransposeMode(%q): %w", s, ErrUnknownMode)
	}
}

// ReadingDirection selects the traversal order of OrderMatrix.Read.
type ReadingDirection int

const (
	// ReadHorizontal reads row by row.
	ReadHorizontal ReadingDirection = iota
	// ReadVertical reads column by column.
	ReadVertical
)
