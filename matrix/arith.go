// SPDX-License-Identifier: MIT

// Package matrix - arithmetic kernels over both layouts.
//
// Purpose:
//   - Element-wise Add, Sub, Hadamard and scalar Scale.
//   - Matrix product Mul and matrix-vector product MatVec.
//
// Layout rules:
//   - Scale keeps the operand's layout (a scaled CSC triple stays CSC).
//   - Every other kernel returns a fresh dense matrix.
//   - Kernels read sparse operands straight from CSC when row order is
//     verified; trusted-order operands go through the uniform read path so
//     a duplicated row resolves exactly as At does.
//
// Numeric policy: results are not re-checked for NaN/±Inf; overflow in a
// kernel propagates as IEEE-754 values. Mul and MatVec skip zero factors and
// Hadamard visits only the stored cells of a lazily stored CSC operand, so under
// WithNoValidateNaNInf a 0*Inf or 0*NaN product yields 0 instead of NaN.

package matrix

import "fmt"

const (
	opAdd      = "Add"
	opSub      = "Sub"
	opScale    = "Scale"
	opHadamard = "Hadamard"
	opMul      = "Mul"
	opMatVec   = "MatVec"
)

// walkableCSC returns m's CSC store when it can be walked entry by entry.
func (m *Matrix) walkableCSC() (*cscStore, bool) {
	if m.layout != LayoutSparse || !m.csc.ordered {
		return nil, false
	}

	return m.csc, true
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: flat loop when both operands hold a grid, else i→j via at().
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.r, a.c
	out := make([]float64, rows*cols)

	if a.data != nil && b.data != nil {
		for idx := range out {
			out[idx] = a.data[idx] + sign*b.data[idx]
		}

		return &Matrix{layout: LayoutDense, r: rows, c: cols, data: out}, nil
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[i*cols+j] = a.at(i, j) + sign*b.at(i, j)
		}
	}

	return &Matrix{layout: LayoutDense, r: rows, c: cols, data: out}, nil
}

// Add computes the element-wise sum a + b as a new dense matrix.
// Errors: ErrNilMatrix, ErrShape. Complexity: O(r*c).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference a - b as a new dense matrix.
// Errors: ErrNilMatrix, ErrShape. Complexity: O(r*c).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale multiplies every element by alpha.
// MAIN DESCRIPTION:
//   - Dense input gives dense output; sparse input gives sparse output with
//     the same col_pointers and row_indices.
//
// Behavior highlights:
//   - alpha = 0 on a sparse matrix keeps the stored positions as explicit zeros.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Dense O(r*c); sparse O(nnz) plus O(r*c) when the grid is materialized.
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	var data []float64
	if m.data != nil {
		data = make([]float64, len(m.data))
		for idx, v := range m.data {
			data[idx] = v * alpha
		}
	}
	if m.layout == LayoutDense {
		return &Matrix{layout: LayoutDense, r: m.r, c: m.c, data: data}, nil
	}

	s := m.csc
	vals := make([]float64, len(s.vals))
	for k, v := range s.vals {
		vals[k] = v * alpha
	}
	t := &cscStore{
		colPtr:  append([]int(nil), s.colPtr...),
		rowIdx:  append(make([]int, 0, len(s.rowIdx)), s.rowIdx...),
		vals:    vals,
		ordered: s.ordered,
	}

	return &Matrix{layout: LayoutSparse, r: m.r, c: m.c, data: data, csc: t}, nil
}

// Hadamard computes the element-wise product a ⊙ b as a new dense matrix.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: flat loop on two grids; when one operand is walkable CSC only
//     its stored positions are visited, every other cell is zero.
//
// Errors: ErrNilMatrix, ErrShape.
// Complexity: O(r*c) with grids, O(nnz) walking CSC (plus zeroed output).
func Hadamard(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	rows, cols := a.r, a.c
	out := make([]float64, rows*cols)
	res := &Matrix{layout: LayoutDense, r: rows, c: cols, data: out}

	if a.data != nil && b.data != nil {
		for idx := range out {
			out[idx] = a.data[idx] * b.data[idx]
		}

		return res, nil
	}

	sparse, other := a, b
	s, ok := a.walkableCSC()
	if !ok {
		sparse, other = b, a
		s, ok = b.walkableCSC()
	}
	if ok {
		var j, k, i int
		for j = 0; j < sparse.c; j++ {
			for k = s.colPtr[j]; k < s.colPtr[j+1]; k++ {
				i = s.rowIdx[k]
				out[i*cols+j] = s.vals[k] * other.at(i, j)
			}
		}

		return res, nil
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[i*cols+j] = a.at(i, j) * b.at(i, j)
		}
	}

	return res, nil
}

// Mul performs the matrix product C = A × B as a new dense matrix.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: walkable CSC A: for every stored A[i,k] add A[i,k]*B[k,:] to C[i,:].
//   - Stage 3: otherwise i→k→j with zero-skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrShape.
//
// Complexity:
//   - Time O(r*n*c) generic, O(nnz(A)*c) for CSC A; Space O(r*c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, inner, bCols := a.r, a.c, b.c
	out := make([]float64, aRows*bCols)
	res := &Matrix{layout: LayoutDense, r: aRows, c: bCols, data: out}

	var i, j, k, rowOffsetR int
	var av float64
	if s, ok := a.walkableCSC(); ok {
		var idx int
		for k = 0; k < inner; k++ {
			for idx = s.colPtr[k]; idx < s.colPtr[k+1]; idx++ {
				av = s.vals[idx]
				if av == 0 {
					continue
				}
				rowOffsetR = s.rowIdx[idx] * bCols
				for j = 0; j < bCols; j++ {
					out[rowOffsetR+j] += av * b.at(k, j)
				}
			}
		}

		return res, nil
	}

	for i = 0; i < aRows; i++ {
		rowOffsetR = i * bCols
		for k = 0; k < inner; k++ {
			av = a.at(i, k)
			if av == 0 {
				continue
			}
			if b.data != nil {
				rowB := b.data[k*bCols : (k+1)*bCols]
				for j = 0; j < bCols; j++ {
					out[rowOffsetR+j] += av * rowB[j]
				}

				continue
			}
			for j = 0; j < bCols; j++ {
				out[rowOffsetR+j] += av * b.at(k, j)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x with len(x) == m.Cols().
// Walkable CSC runs in O(nnz); anything else in O(r*c) with zero-skip on x.
// Errors: ErrNilMatrix, ErrShape.
func MatVec(m *Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(fmt.Sprintf("%s: len(x)=%d, want %d", opMatVec, len(x), m.c), ErrShape)
	}
	y := make([]float64, m.r)

	var i, j, k int
	if s, ok := m.walkableCSC(); ok {
		for j = 0; j < m.c; j++ {
			if x[j] == 0 {
				continue
			}
			for k = s.colPtr[j]; k < s.colPtr[j+1]; k++ {
				y[s.rowIdx[k]] += s.vals[k] * x[j]
			}
		}

		return y, nil
	}

	var acc float64
	for i = 0; i < m.r; i++ {
		acc = 0
		for j = 0; j < m.c; j++ {
			if x[j] != 0 {
				acc += m.at(i, j) * x[j]
			}
		}
		y[i] = acc
	}

	return y, nil
}
