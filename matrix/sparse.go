// SPDX-License-Identifier: MIT

// Package matrix - Sparse construction (compressed sparse column).
//
// Purpose:
//   - Accept a CSC triple (col_pointers, row_indices, values), validate it and
//     own private copies of all three arrays.
//   - By default scatter the stored entries into a dense-equivalent row-major
//     grid so reads are O(1), exactly like the dense layout.
//   - Under WithLazySparse keep CSC as the only storage and binary-search the
//     column slice on read.
//
// Complexity quicksheet:
//   - NewSparse (eager): O(cols + nnz) validation + O(r*c) zeroed grid.
//   - NewSparse (lazy) : O(cols + nnz) time and memory.
//   - lookup           : O(log k) ordered, O(k) trusted-unordered (k = column entries).

package matrix

import "sort"

const ctxNewSparse = "NewSparse"

// NewSparse builds a rows×cols sparse matrix from CSC arrays.
// MAIN DESCRIPTION:
//   - col_pointers[j] is the start (inclusive) and col_pointers[j+1] the end
//     (exclusive) of column j's entries in rowIdx/values.
//   - rowIdx holds the row of each stored entry, strictly increasing within
//     each column; values holds the entries in column-major order.
//
// Implementation:
//   - Stage 1: ValidateShape (size guard applies to the eager grid only).
//   - Stage 2: ValidateCSC (pointers, counts, row range, row order).
//   - Stage 3: numeric policy over values.
//   - Stage 4: copy the triple; scatter into a zeroed grid unless lazy.
//
// Behavior highlights:
//   - Unvisited cells read as 0.0.
//   - With WithTrustRowOrder a duplicated row keeps the value stored last.
//
// Errors:
//   - ErrShape, ErrTooLarge, ErrOutOfRange, ErrRowOrder, ErrNaNInf.
//
// Complexity:
//   - Time O(cols + nnz) plus O(r*c) zeroing when eager.
//
// AI-Hints:
//   - Prefer WithLazySparse for very tall/wide matrices with few entries.
func NewSparse(rows, cols int, colPtr, rowIdx []int, values []float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	maxCells := o.maxCells
	if o.lazySparse {
		maxCells = 0 // no grid is allocated
	}
	if err := ValidateShape(rows, cols, maxCells); err != nil {
		return nil, matrixErrorf(ctxNewSparse, err)
	}
	if err := ValidateCSC(rows, cols, colPtr, rowIdx, len(values), o.trustRowOrder); err != nil {
		return nil, matrixErrorf(ctxNewSparse, err)
	}
	if o.validateNaNInf {
		if k, err := validateFinite(values); err != nil {
			return nil, cellErrorf(ctxNewSparse, rowIdx[k], columnOf(colPtr, k), err)
		}
	}

	s := &cscStore{
		colPtr:  append([]int(nil), colPtr...),
		rowIdx:  append(make([]int, 0, len(rowIdx)), rowIdx...),
		vals:    append(make([]float64, 0, len(values)), values...),
		ordered: !o.trustRowOrder,
	}

	m := &Matrix{layout: LayoutSparse, r: rows, c: cols, csc: s}
	if !o.lazySparse {
		m.data = make([]float64, rows*cols)
		s.scatter(m.data, cols)
	}

	return m, nil
}

// scatter writes every stored entry into dst at (rowIdx[idx], j), row-major.
// Iteration is column-major, so a later duplicate overwrites an earlier one.
// Complexity: O(nnz).
func (s *cscStore) scatter(dst []float64, cols int) {
	var j, idx, end int
	for j = 0; j < cols; j++ {
		idx, end = s.colPtr[j], s.colPtr[j+1]
		for ; idx < end; idx++ {
			dst[s.rowIdx[idx]*cols+j] = s.vals[idx]
		}
	}
}

// lookup returns the stored value at (i, j) or 0.0. Indices are pre-checked.
func (s *cscStore) lookup(i, j int) float64 {
	lo, hi := s.colPtr[j], s.colPtr[j+1]
	if s.ordered {
		k := lo + sort.SearchInts(s.rowIdx[lo:hi], i)
		if k < hi && s.rowIdx[k] == i {
			return s.vals[k]
		}

		return 0
	}
	// Unverified order: scan backwards so the last duplicate wins, matching scatter.
	for k := hi - 1; k >= lo; k-- {
		if s.rowIdx[k] == i {
			return s.vals[k]
		}
	}

	return 0
}

// columnOf returns the column owning stored offset k (colPtr already validated).
func columnOf(colPtr []int, k int) int {
	// First j with colPtr[j+1] > k.
	return sort.Search(len(colPtr)-1, func(j int) bool { return colPtr[j+1] > k })
}
