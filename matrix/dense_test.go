// Package matrix_test contains unit tests for dense construction.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Get checks the canonical 2×3 example.
func TestNewDense_Get(t *testing.T) {
	m := mustDense(t, 2, 3, [][]float64{{1, 2, 3}, {4, 5, 6}})

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
	require.Equal(t, matrix.LayoutDense, m.Layout())
	require.True(t, m.IsDense())
	require.False(t, m.IsSparse())

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
}

// TestNewDense_ShapeErrors covers row-count, jagged and negative shapes.
func TestNewDense_ShapeErrors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		values     [][]float64
	}{
		{"too few rows", 3, 2, [][]float64{{1, 2}, {3, 4}}},
		{"too many rows", 1, 2, [][]float64{{1, 2}, {3, 4}}},
		{"jagged", 2, 2, [][]float64{{1, 2}, {3}}},
		{"wide row", 2, 2, [][]float64{{1, 2}, {3, 4, 5}}},
		{"negative rows", -1, 2, nil},
		{"negative cols", 0, -2, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols, tc.values)
			require.ErrorIs(t, err, matrix.ErrShape)
		})
	}
}

// TestNewDense_EmptyShapes ensures 0×N and N×0 are legal.
func TestNewDense_EmptyShapes(t *testing.T) {
	m := mustDense(t, 0, 4, nil)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Empty(t, m.Values())

	m = mustDense(t, 2, 0, [][]float64{{}, {}})
	require.Equal(t, [][]float64{{}, {}}, m.Values())
}

// TestNewDense_NaNPolicy verifies the finite-only default and its opt-out.
func TestNewDense_NaNPolicy(t *testing.T) {
	grid := [][]float64{{1, math.NaN()}}

	_, err := matrix.NewDense(1, 2, grid)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(0,1)")

	m, err := matrix.NewDense(1, 2, grid, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, _ := m.At(0, 1)
	require.True(t, math.IsNaN(v))

	_, err = matrix.NewDense(1, 1, [][]float64{{math.Inf(-1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewDense_InputNotRetained ensures later mutation of the input is invisible.
func TestNewDense_InputNotRetained(t *testing.T) {
	grid := [][]float64{{1, 2}, {3, 4}}
	m := mustDense(t, 2, 2, grid)
	grid[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestDenseOf_Coercion converts integer grids to float64.
func TestDenseOf_Coercion(t *testing.T) {
	m, err := matrix.DenseOf(2, 2, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Values())

	m, err = matrix.DenseOf(1, 2, [][]uint8{{7, 255}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7, 255}}, m.Values())

	_, err = matrix.DenseOf(2, 1, [][]int64{{1}})
	require.ErrorIs(t, err, matrix.ErrShape)
}

// TestNewDenseFlat reads row-major input and checks its length.
func TestNewDenseFlat(t *testing.T) {
	m, err := matrix.NewDenseFlat(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.Values())

	_, err = matrix.NewDenseFlat(2, 3, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrShape)

	_, err = matrix.NewDenseFlat(1, 2, []float64{1, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewDense_MaxCells rejects grids above the cap before allocating.
func TestNewDense_MaxCells(t *testing.T) {
	_, err := matrix.NewDense(2, 3, [][]float64{{1, 2, 3}, {4, 5, 6}}, matrix.WithMaxCells(5))
	require.ErrorIs(t, err, matrix.ErrTooLarge)

	_, err = matrix.NewDense(2, 3, [][]float64{{1, 2, 3}, {4, 5, 6}}, matrix.WithMaxCells(6))
	require.NoError(t, err)

	_, err = matrix.NewDenseFlat(math.MaxInt, 2, nil)
	require.ErrorIs(t, err, matrix.ErrTooLarge)
}
