// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered error
// conditions; panics are reserved for nonsensical Option parameters.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap the sentinel with method
// context, e.g. fmt.Errorf("NewSparse: col %d: %w", j, ErrRowOrder); callers
// still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> size guard -> index range -> row order -> NaN/Inf.

var (
	// ErrShape is returned when declared rows/cols disagree with the supplied
	// data: negative dimensions, jagged dense rows, a col_pointers slice whose
	// length is not cols+1, a non-monotone pointer sequence, or a final pointer
	// that differs from the stored-entry count.
	ErrShape = errors.New("matrix: shape mismatch")

	// ErrUnsupportedType is returned by ToMatrix when the input is neither an
	// existing *Matrix nor a nested sequence of numbers.
	ErrUnsupportedType = errors.New("matrix: unsupported input type")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds,
	// either on access (At/Row/Col) or in a CSC row index at construction.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRowOrder signals that row indices inside one column's slice are not
	// strictly increasing (unsorted or duplicated entries).
	ErrRowOrder = errors.New("matrix: row indices not strictly increasing")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrTooLarge is returned when rows*cols overflows int or exceeds the
	// configured materialization cap (WithMaxCells).
	ErrTooLarge = errors.New("matrix: shape exceeds materialization limit")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownLayout is returned when a layout tag cannot be parsed.
	ErrUnknownLayout = errors.New("matrix: unknown layout")
)

// matrixErrorf wraps an underlying error with the given call-site tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps an error with method context and coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
