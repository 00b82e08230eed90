// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for dense and CSC construction.
//   • Generate random valid CSC triples from a fixed seed for property tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// The 3×3 CSC fixture and its materialized grid:
//
//	[1 0 4]
//	[0 3 5]
//	[2 0 6]
var (
	fixColPtr = []int{0, 2, 3, 6}
	fixRowIdx = []int{0, 2, 1, 0, 1, 2}
	fixVals   = []float64{1, 2, 3, 4, 5, 6}
	fixGrid   = [][]float64{{1, 0, 4}, {0, 3, 5}, {2, 0, 6}}
)

// mustDense builds a dense matrix or fails the test.
func mustDense(tb testing.TB, rows, cols int, values [][]float64, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewDense(rows, cols, values, opts...)
	require.NoError(tb, err)

	return m
}

// mustSparse builds a sparse matrix or fails the test.
func mustSparse(tb testing.TB, rows, cols int, colPtr, rowIdx []int, vals []float64, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewSparse(rows, cols, colPtr, rowIdx, vals, opts...)
	require.NoError(tb, err)

	return m
}

// fixture returns the 3×3 CSC fixture as a sparse matrix.
func fixture(tb testing.TB, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()

	return mustSparse(tb, 3, 3, fixColPtr, fixRowIdx, fixVals, opts...)
}

// randomCSC GENERATES a valid CSC triple and its reference grid.
// Implementation:
//   - Stage 1: for each column, choose rows with probability density.
//   - Stage 2: emit rows in increasing order with non-zero values.
//
// Determinism:
//   - Same seed → same triple.
func randomCSC(seed int64, rows, cols int, density float64) (colPtr, rowIdx []int, vals []float64, grid [][]float64) {
	rng := rand.New(rand.NewSource(seed))
	grid = make([][]float64, rows)
	for i := range grid {
		grid[i] = make([]float64, cols)
	}
	colPtr = make([]int, cols+1)
	rowIdx = []int{}
	vals = []float64{}
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if rng.Float64() < density {
				v := float64(rng.Intn(19) + 1) // 1..19, never zero
				rowIdx = append(rowIdx, i)
				vals = append(vals, v)
				grid[i][j] = v
			}
		}
		colPtr[j+1] = len(vals)
	}

	return colPtr, rowIdx, vals, grid
}
