// SPDX-License-Identifier: MIT

// Package matrix - JSON wire format.
//
// Format:
//
//	{"layout":"dense","rows":2,"cols":3,"values":[[1,2,3],[4,5,6]]}
//	{"layout":"sparse","rows":3,"cols":3,"col_pointers":[0,2,3,6],
//	 "row_indices":[0,2,1,0,1,2],"stored_values":[1,2,3,4,5,6]}
//
// Policy:
//   - Sparse matrices are written as their CSC triple exactly as stored
//     (offsets, row indices, column-major values); no grid is emitted.
//   - Decoding always goes through NewDense/NewSparse, so a decoded matrix
//     satisfies the same invariants as a constructed one.
//   - JSON cannot carry NaN/±Inf; encoding such a matrix fails.

package matrix

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

const (
	ctxMarshal   = "MarshalJSON"
	ctxUnmarshal = "UnmarshalJSON"
)

// wireMatrix is the on-the-wire shape of a Matrix.
type wireMatrix struct {
	Layout       string      `json:"layout"`
	Rows         int         `json:"rows"`
	Cols         int         `json:"cols"`
	Values       [][]float64 `json:"values,omitempty"`
	ColPointers  []int       `json:"col_pointers,omitempty"`
	RowIndices   []int       `json:"row_indices,omitempty"`
	StoredValues []float64   `json:"stored_values,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	w := wireMatrix{Layout: m.layout.String(), Rows: m.r, Cols: m.c}
	if m.layout == LayoutSparse {
		w.ColPointers = m.csc.colPtr
		w.RowIndices = m.csc.rowIdx
		w.StoredValues = m.csc.vals
	} else {
		w.Values = m.Values()
	}

	b, err := gojson.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMarshal, err)
	}

	return b, nil
}

// UnmarshalJSON implements json.Unmarshaler using the default construction
// policy. Use DecodeJSON to pass options.
func (m *Matrix) UnmarshalJSON(b []byte) error {
	dec, err := DecodeJSON(b)
	if err != nil {
		return err
	}
	*m = *dec

	return nil
}

// EncodeJSON is gojson.Marshal(m) with a nil check.
func EncodeJSON(m *Matrix) ([]byte, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxMarshal, err)
	}

	return m.MarshalJSON()
}

// DecodeJSON parses one wire document and constructs the matrix under opts.
// Errors: syntax errors, ErrUnknownLayout, and every constructor error.
// Complexity: O(size of input) plus construction cost.
func DecodeJSON(b []byte, opts ...Option) (*Matrix, error) {
	var w wireMatrix
	if err := gojson.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxUnmarshal, err)
	}

	return fromWire(w, opts)
}

// fromWire dispatches a decoded record to the matching constructor.
func fromWire(w wireMatrix, opts []Option) (*Matrix, error) {
	layout, err := ParseLayout(w.Layout)
	if err != nil {
		return nil, matrixErrorf(ctxUnmarshal, err)
	}

	var m *Matrix
	switch layout {
	case LayoutSparse:
		m, err = NewSparse(w.Rows, w.Cols, w.ColPointers, w.RowIndices, w.StoredValues, opts...)
	default:
		m, err = NewDense(w.Rows, w.Cols, w.Values, opts...)
	}
	if err != nil {
		return nil, matrixErrorf(ctxUnmarshal, err)
	}

	return m, nil
}
