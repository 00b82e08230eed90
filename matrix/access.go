// SPDX-License-Identifier: MIT

// Package matrix - uniform read access over both layouts.
//
// Purpose:
//   - One access function (At) dispatching on the layout tag.
//   - Row/column/grid views that always return fresh copies, so a *Matrix
//     stays immutable and safe for concurrent readers.
//   - Read-only inspection of the CSC pointers and row indices.
//
// Complexity quicksheet:
//   - Rows/Cols/Shape/Layout: O(1); At: O(1) grid, O(log k) lazy sparse.
//   - Row/Col: O(c)/O(r) grid; Values/RawRowMajor: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxAt  = "At"
	ctxRow = "Row"
	ctxCol = "Col"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// Layout returns the storage discriminator.
func (m *Matrix) Layout() Layout { return m.layout }

// IsDense reports whether m uses the dense layout.
func (m *Matrix) IsDense() bool { return m.layout == LayoutDense }

// IsSparse reports whether m uses the CSC layout.
func (m *Matrix) IsSparse() bool { return m.layout == LayoutSparse }

// NNZ returns the number of stored entries for a sparse matrix and the
// number of non-zero cells for a dense one.
// Complexity: O(1) sparse, O(r*c) dense.
func (m *Matrix) NNZ() int {
	if m.layout == LayoutSparse {
		return m.csc.nnz()
	}
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}

	return n
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read with a single dispatch on the layout tag.
//
// Implementation:
//   - Stage 1: nil and bounds check.
//   - Stage 2: grid read when a grid exists (dense, eager sparse).
//   - Stage 3: column-slice lookup for lazy sparse.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns a wrapped sentinel.
//
// Complexity:
//   - Time O(1) with a grid, O(log k) lazy; Space O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if m == nil {
		return 0, cellErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, cellErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.at(row, col), nil
}

// at is the unchecked read used by kernels after validation.
func (m *Matrix) at(row, col int) float64 {
	if m.data != nil {
		return m.data[row*m.c+col]
	}

	return m.csc.lookup(row, col)
}

// Row returns a copy of row i (length Cols()).
// Complexity: O(c) with a grid, O(c log k) lazy.
func (m *Matrix) Row(i int) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(ctxRow, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	if m.data != nil {
		copy(out, m.data[i*m.c:(i+1)*m.c])

		return out, nil
	}
	for j := 0; j < m.c; j++ {
		out[j] = m.csc.lookup(i, j)
	}

	return out, nil
}

// Col returns a copy of column j (length Rows()).
// Complexity: O(r).
func (m *Matrix) Col(j int) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(ctxCol, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxCol, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	if m.data != nil {
		for i := 0; i < m.r; i++ {
			out[i] = m.data[i*m.c+j]
		}

		return out, nil
	}
	// Lazy sparse: only the column's own entries are non-zero.
	s := m.csc
	for k := s.colPtr[j]; k < s.colPtr[j+1]; k++ {
		out[s.rowIdx[k]] = s.vals[k]
	}

	return out, nil
}

// Values returns the full rows×cols grid as a fresh nested slice.
// Both layouts produce identical output for the same logical matrix.
// Complexity: O(r*c).
func (m *Matrix) Values() [][]float64 {
	flat := m.RawRowMajor()
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = flat[i*m.c : (i+1)*m.c : (i+1)*m.c]
	}

	return out
}

// RawRowMajor returns a copy of the grid as one flat row-major slice.
// Complexity: O(r*c).
func (m *Matrix) RawRowMajor() []float64 {
	out := make([]float64, m.r*m.c)
	if m.data != nil {
		copy(out, m.data)

		return out
	}
	m.csc.scatter(out, m.c)

	return out
}

// ColPointers returns a copy of the CSC column pointers (nil for dense).
func (m *Matrix) ColPointers() []int {
	if m.csc == nil {
		return nil
	}

	return append([]int(nil), m.csc.colPtr...)
}

// RowIndices returns a copy of the CSC row indices (nil for dense).
func (m *Matrix) RowIndices() []int {
	if m.csc == nil {
		return nil
	}

	return append(make([]int, 0, len(m.csc.rowIdx)), m.csc.rowIdx...)
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Complexity: O(r*c).
func (m *Matrix) Do(f func(i, j int, v float64) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.at(i, j)) {
				return
			}
		}
	}
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.at(i, j))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
