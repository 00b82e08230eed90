// SPDX-License-Identifier: MIT

// Package matrix - Dense construction (row-major).
//
// Purpose:
//   - Materialize any rectangular sequence-of-sequences into one flat row-major
//     buffer with the explicit index formula i*cols + j.
//   - Coerce every element to float64 exactly once, at construction.
//   - Enforce the numeric policy (optional rejection of NaN/Inf) from options.go.
//
// Complexity quicksheet:
//   - NewDense/DenseOf/NewDenseFlat: O(r*c) time and memory.

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNewDense     = "NewDense"
	ctxNewDenseFlat = "NewDenseFlat"
	ctxDenseOf      = "DenseOf"
)

// NewDense builds a rows×cols dense matrix from a row-major grid.
// MAIN DESCRIPTION:
//   - Public constructor for the dense layout with strict shape validation.
//
// Implementation:
//   - Stage 1: validate shape (non-negative, size guard).
//   - Stage 2: validate the grid is a rows×cols rectangle (no jagged rows).
//   - Stage 3: copy into a flat buffer, enforcing the numeric policy.
//
// Behavior highlights:
//   - The input is never retained; later mutation of values has no effect.
//   - 0×N and N×0 shapes are legal.
//
// Errors:
//   - ErrShape, ErrTooLarge, ErrNaNInf (wrapped with coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, values [][]float64, opts ...Option) (*Matrix, error) {
	return denseFromGrid(ctxNewDense, rows, cols, values, gatherOptions(opts...))
}

// DenseOf is NewDense for any numeric element type; every entry is
// converted to float64.
// Complexity: O(r*c).
func DenseOf[T Number](rows, cols int, values [][]T, opts ...Option) (*Matrix, error) {
	return denseFromGrid(ctxDenseOf, rows, cols, values, gatherOptions(opts...))
}

// NewDenseFlat builds a rows×cols dense matrix from a flat row-major slice.
// Errors: ErrShape when len(data) != rows*cols; ErrTooLarge; ErrNaNInf.
// Complexity: O(r*c).
func NewDenseFlat(rows, cols int, data []float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateShape(rows, cols, o.maxCells); err != nil {
		return nil, matrixErrorf(ctxNewDenseFlat, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(fmt.Sprintf("%s: len(data)=%d, want %d", ctxNewDenseFlat, len(data), rows*cols), ErrShape)
	}
	if o.validateNaNInf {
		if k, err := validateFinite(data); err != nil {
			return nil, cellErrorf(ctxNewDenseFlat, k/cols, k%cols, err)
		}
	}

	return &Matrix{
		layout: LayoutDense,
		r:      rows,
		c:      cols,
		data:   append(make([]float64, 0, len(data)), data...),
	}, nil
}

// denseFromGrid is the shared body of NewDense/DenseOf/ToMatrix.
// Implementation:
//   - Stage 1: ValidateShape → ValidateGrid.
//   - Stage 2: single row-major pass converting and checking each element.
func denseFromGrid[T Number](tag string, rows, cols int, values [][]T, o Options) (*Matrix, error) {
	if err := ValidateShape(rows, cols, o.maxCells); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateGrid(rows, cols, values); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	buf := make([]float64, rows*cols)
	var i, j, base int
	var v float64
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			v = float64(values[i][j])
			if o.validateNaNInf && isNonFinite(v) {
				return nil, cellErrorf(tag, i, j, ErrNaNInf)
			}
			buf[base+j] = v
		}
	}

	return &Matrix{layout: LayoutDense, r: rows, c: cols, data: buf}, nil
}
