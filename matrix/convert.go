// SPDX-License-Identifier: MIT

// Package matrix - conversions between layouts and layout-agnostic comparisons.
//
// Determinism & Policy:
//   - Conversions never mutate their input; they return a new *Matrix, or the
//     input itself when it already has the requested layout.
//   - ToSparse drops exact zeros only (NaN and -0.0 compare per IEEE-754:
//     NaN is kept, -0.0 is dropped).
//   - Comparisons read through At semantics, so a dense and a sparse matrix
//     holding the same grid compare equal.

package matrix

import "math"

const (
	ctxToDense   = "ToDense"
	ctxToSparse  = "ToSparse"
	ctxTranspose = "Transpose"
	ctxAllClose  = "AllClose"
)

// ToDense returns m in the dense layout (m itself when already dense).
// Complexity: O(r*c).
func ToDense(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxToDense, err)
	}
	if m.layout == LayoutDense {
		return m, nil
	}

	return &Matrix{layout: LayoutDense, r: m.r, c: m.c, data: m.RawRowMajor()}, nil
}

// ToSparse returns m compressed into CSC (m itself when already sparse).
// MAIN DESCRIPTION:
//   - Column-major scan of the grid keeping non-zero cells.
//
// Implementation:
//   - Stage 1: for j in 0..c-1, for i in 0..r-1, append (i, v) when v != 0.
//   - Stage 2: colPtr[j+1] = entries so far.
//
// Behavior highlights:
//   - Row indices come out strictly increasing per column by construction.
//   - The result is eager (keeps a private copy of the grid).
//
// Complexity:
//   - Time O(r*c), Space O(r*c + nnz).
func ToSparse(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxToSparse, err)
	}
	if m.layout == LayoutSparse {
		return m, nil
	}

	colPtr := make([]int, m.c+1)
	rowIdx := make([]int, 0)
	vals := make([]float64, 0)
	var i, j int
	var v float64
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			v = m.data[i*m.c+j]
			if v != 0 {
				rowIdx = append(rowIdx, i)
				vals = append(vals, v)
			}
		}
		colPtr[j+1] = len(vals)
	}

	return &Matrix{
		layout: LayoutSparse,
		r:      m.r,
		c:      m.c,
		data:   append([]float64(nil), m.data...),
		csc:    &cscStore{colPtr: colPtr, rowIdx: rowIdx, vals: vals, ordered: true},
	}, nil
}

// Transpose returns mᵀ in the same layout as m.
// Implementation:
//   - Dense : row-major copy with swapped indices.
//   - Sparse: counting transpose of the CSC arrays (the CSC of mᵀ is the CSR
//     of m); a lazy input stays lazy, an eager one gets a new grid.
//
// Behavior highlights:
//   - Row order is preserved: entries of each new column are emitted in
//     increasing original column order.
//
// Complexity:
//   - Dense O(r*c); Sparse O(r + c + nnz) plus O(r*c) when eager.
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxTranspose, err)
	}
	r, c := m.r, m.c

	if m.layout == LayoutDense {
		out := make([]float64, r*c)
		var i, j int
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				out[j*r+i] = m.data[i*c+j]
			}
		}

		return &Matrix{layout: LayoutDense, r: c, c: r, data: out}, nil
	}

	s := m.csc
	nnz := s.nnz()
	colPtr := make([]int, r+1)
	for _, row := range s.rowIdx { // count entries per original row
		colPtr[row+1]++
	}
	for i := 0; i < r; i++ { // prefix sums
		colPtr[i+1] += colPtr[i]
	}
	next := append([]int(nil), colPtr[:r]...)
	rowIdx := make([]int, nnz)
	vals := make([]float64, nnz)
	var j, k, dst int
	for j = 0; j < c; j++ {
		for k = s.colPtr[j]; k < s.colPtr[j+1]; k++ {
			dst = next[s.rowIdx[k]]
			rowIdx[dst] = j
			vals[dst] = s.vals[k]
			next[s.rowIdx[k]]++
		}
	}

	t := &cscStore{colPtr: colPtr, rowIdx: rowIdx, vals: vals, ordered: s.ordered}
	out := &Matrix{layout: LayoutSparse, r: c, c: r, csc: t}
	if m.data != nil {
		out.data = make([]float64, r*c)
		t.scatter(out.data, r)
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and identical cells,
// regardless of layout. Two nil matrices are equal.
// Complexity: O(r*c).
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	if a.data != nil && b.data != nil {
		for k := range a.data {
			if a.data[k] != b.data[k] {
				return false
			}
		}

		return true
	}
	equal := true
	a.Do(func(i, j int, v float64) bool {
		equal = v == b.at(i, j)

		return equal
	})

	return equal
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrNilMatrix, ErrShape).
//   - rtol, atol must be finite (ErrNaNInf); negative values are abs-ed.
//
// Complexity: O(r*c). Deterministic.
func AllClose(a, b *Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(ctxAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(ctxAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(ctxAllClose, err)
	}
	if a.r != b.r || a.c != b.c {
		return false, matrixErrorf(ctxAllClose, ErrShape)
	}

	within := true
	a.Do(func(i, j int, av float64) bool {
		bv := b.at(i, j)
		within = math.Abs(av-bv) <= atol+rtol*math.Abs(bv)

		return within
	})

	return within, nil
}

// Density returns NNZ / (rows*cols), or 0 for an empty shape.
// Complexity: O(1) sparse, O(r*c) dense.
func Density(m *Matrix) float64 {
	if m == nil || m.r == 0 || m.c == 0 {
		return 0
	}

	return float64(m.NNZ()) / float64(m.r*m.c)
}
