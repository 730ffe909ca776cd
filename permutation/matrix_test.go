// SPDX-License-Identifier: MIT
package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fractaltree/permutation"
)

// mustMatrix builds the matrix derived from main or fails the test.
func mustMatrix(t *testing.T, main permutation.Order) *permutation.OrderMatrix {
	t.Helper()
	m, err := permutation.NewOrderMatrixFromMain(main)
	require.NoError(t, err)
	return m
}

func TestOrderMatrix_At(t *testing.T) {
	m := mustMatrix(t, permutation.Order{3, 1, 2})
	require.Equal(t, 3, m.Size())

	o, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, permutation.Order{3, 1, 2}, o)

	o, err = m.AtIndex(permutation.Index{Row: 2, Col: 3})
	require.NoError(t, err)
	require.Equal(t, permutation.Order{2, 3, 1}, o)

	// copies: mutating the result must not leak into the matrix
	o[0] = 99
	again, err := m.At(2, 3)
	require.NoError(t, err)
	require.Equal(t, permutation.Order{2, 3, 1}, again)

	for _, rc := range [][2]int{{0, 1}, {1, 0}, {4, 1}, {1, 4}} {
		_, err = m.At(rc[0], rc[1])
		require.ErrorIs(t, err, permutation.ErrOutOfRange)
	}
}

func TestOrderMatrix_RowColumn(t *testing.T) {
	m := mustMatrix(t, permutation.Order{3, 1, 2})
	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []permutation.Order{{1, 2, 3}, {3, 1, 2}, {2, 3, 1}}, row)

	col, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, []permutation.Order{{3, 1, 2}, {1, 2, 3}, {2, 3, 1}}, col)

	_, err = m.Row(4)
	require.ErrorIs(t, err, permutation.ErrOutOfRange)
	_, err = m.Column(0)
	require.ErrorIs(t, err, permutation.ErrOutOfRange)
}

func TestNewOrderMatrix_Validation(t *testing.T) {
	_, err := permutation.NewOrderMatrix(nil)
	require.ErrorIs(t, err, permutation.ErrNonSquare)

	_, err = permutation.NewOrderMatrix([][]permutation.Order{
		{{1, 2}, {2, 1}},
		{{1, 2}},
	})
	require.ErrorIs(t, err, permutation.ErrNonSquare)

	_, err = permutation.NewOrderMatrix([][]permutation.Order{
		{{1, 2}, {2, 1}},
		{{1, 2}, {2, 2}},
	})
	require.ErrorIs(t, err, permutation.ErrInvalidCell)
	require.ErrorIs(t, err, permutation.ErrInvalidPermutation)
	require.Contains(t, err.Error(), "(2,2)")

	_, err = permutation.NewOrderMatrix([][]permutation.Order{
		{{1, 2}, {2, 1}},
		{{1, 2, 3}, {2, 1}},
	})
	require.ErrorIs(t, err, permutation.ErrInvalidCell)
	require.ErrorIs(t, err, permutation.ErrLengthMismatch)
}

func TestOrderMatrix_Transpose(t *testing.T) {
	m := mustMatrix(t, permutation.Order{3, 1, 2})

	tr, err := m.Transpose(permutation.TransposeRegular)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			a, _ := m.At(i, j)
			b, _ := tr.At(j, i)
			require.Equal(t, a, b)
		}
	}
	back, err := tr.Transpose(permutation.TransposeRegular)
	require.NoError(t, err)
	require.True(t, back.Equal(m))

	diag, err := m.Transpose(permutation.TransposeDiagonal)
	require.NoError(t, err)
	// row 1 of the diagonal transpose is the main diagonal
	row, err := diag.Row(1)
	require.NoError(t, err)
	require.Equal(t, []permutation.Order{{3, 1, 2}, {3, 1, 2}, {3, 1, 2}}, row)
	// row 2 is the first wrapped super-diagonal: m[1][2], m[2][3], m[3][1]
	row, err = diag.Row(2)
	require.NoError(t, err)
	require.Equal(t, []permutation.Order{{2, 3, 1}, {2, 3, 1}, {2, 3, 1}}, row)

	_, err = m.Transpose(permutation.TransposeMode(7))
	require.ErrorIs(t, err, permutation.ErrUnknownMode)
}

func TestOrderMatrix_Read(t *testing.T) {
	m, err := permutation.NewOrderMatrix([][]permutation.Order{
		{{1, 2}, {2, 1}},
		{{2, 1}, {1, 2}},
	})
	require.NoError(t, err)

	h, err := m.Read(permutation.ReadHorizontal)
	require.NoError(t, err)
	require.Equal(t, []permutation.Order{{1, 2}, {2, 1}, {2, 1}, {1, 2}}, h)

	v, err := m.Read(permutation.ReadVertical)
	require.NoError(t, err)
	require.Equal(t, []permutation.Order{{1, 2}, {2, 1}, {2, 1}, {1, 2}}, v)

	_, err = m.Read(permutation.ReadingDirection(5))
	require.ErrorIs(t, err, permutation.ErrUnknownMode)
}

func TestOrderMatrix_DerivationIsDeterministic(t *testing.T) {
	a := mustMatrix(t, permutation.Order{3, 5, 1, 2, 4})
	b := mustMatrix(t, permutation.Order{3, 5, 1, 2, 4})
	require.True(t, a.Equal(b))
	require.Equal(t, a.String(), b.String())
	require.False(t, a.Equal(mustMatrix(t, permutation.Order{1, 2})))
}
