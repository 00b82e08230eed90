// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by both storage layouts.
// This file contains ONLY the layout tag, the Matrix envelope and the CSC
// payload. Construction lives in dense.go / sparse.go / factory.go, errors in
// errors.go and options in options.go.
package matrix

import "strings"

// Layout discriminates the storage representation of a Matrix.
type Layout uint8

const (
	// LayoutDense is a fully materialized row-major grid.
	LayoutDense Layout = iota
	// LayoutSparse is a compressed-by-column (CSC) triple.
	LayoutSparse
)

// Layout names used by String/ParseLayout and the wire format.
const (
	layoutNameDense  = "dense"
	layoutNameSparse = "sparse"
)

// String returns "dense" or "sparse".
func (l Layout) String() string {
	switch l {
	case LayoutDense:
		return layoutNameDense
	case LayoutSparse:
		return layoutNameSparse
	default:
		return "unknown"
	}
}

// ParseLayout maps a case-insensitive layout name to its tag.
// Returns ErrUnknownLayout for anything other than "dense" or "sparse".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case layoutNameDense:
		return LayoutDense, nil
	case layoutNameSparse:
		return LayoutSparse, nil
	default:
		return 0, matrixErrorf("ParseLayout("+s+")", ErrUnknownLayout)
	}
}

// Number is the set of element types ToMatrix and DenseOf coerce to float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is an immutable two-dimensional array of float64 values in one of
// two layouts. Shape and layout are stored once in the envelope; the payload
// depends on the layout:
//   - LayoutDense : data holds r*c values in row-major order (offset = i*c + j).
//   - LayoutSparse: csc holds the CSC triple. data holds the materialized
//     dense-equivalent grid unless the matrix was built WithLazySparse, in
//     which case data is nil and reads binary-search the column slice.
//
// A *Matrix is safe for concurrent readers: no method mutates it after
// construction, and every accessor that returns a slice returns a copy.
type Matrix struct {
	layout Layout    // storage discriminator
	r, c   int       // row and column counts (>= 0)
	data   []float64 // row-major grid (len == r*c), nil only for lazy sparse
	csc    *cscStore // non-nil iff layout == LayoutSparse
}

// cscStore is the compressed-sparse-column payload.
//   - colPtr[j]..colPtr[j+1] is the half-open range of column j's entries.
//   - rowIdx and vals are positionally aligned, in column-major order.
//   - ordered records whether strict row order was verified at construction;
//     lookups use binary search only when it holds.
type cscStore struct {
	colPtr  []int
	rowIdx  []int
	vals    []float64
	ordered bool
}

// nnz returns the number of stored entries.
func (s *cscStore) nnz() int { return len(s.vals) }
