// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for construction checks.
//  - Keep constructors minimal by delegating shape/range/order checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    add their own context uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - CSC validation is a single O(cols + nnz) pass.
//
// Note:
//  - Each composite validator follows a fixed sequence
//    (shape -> size guard -> pointers -> row range -> row order), matching the
//    error priority documented in errors.go.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape checks that rows and cols are non-negative and that the
// rows*cols grid fits in int and under maxCells (0 = unlimited).
//
// Errors: ErrShape for negatives, ErrTooLarge for overflow or cap violation.
// Complexity: O(1).
func ValidateShape(rows, cols, maxCells int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrShape)
	}
	// Overflow guard: rows*cols must be representable before we allocate.
	if rows > 0 && cols > math.MaxInt/rows {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrTooLarge)
	}
	if maxCells > 0 && rows*cols > maxCells {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d): cap %d", rows, cols, maxCells), ErrTooLarge)
	}

	return nil
}

// ValidateGrid checks that values is a rows×cols rectangle.
//
// Errors: ErrShape when len(values) != rows or any row has len != cols.
// Complexity: O(rows).
func ValidateGrid[T Number](rows, cols int, values [][]T) error {
	if len(values) != rows {
		return validatorErrorf(fmt.Sprintf("ValidateGrid: got %d rows, want %d", len(values), rows), ErrShape)
	}
	for i := range values {
		if len(values[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateGrid: row %d has %d entries, want %d", i, len(values[i]), cols), ErrShape)
		}
	}

	return nil
}

// ValidateCSC checks a compressed-sparse-column triple against a rows×cols shape.
//
// Implementation:
//   - Stage 1: len(colPtr) == cols+1, colPtr[0] == 0, non-decreasing pointers.
//   - Stage 2: colPtr[cols] == len(rowIdx) == nvals.
//   - Stage 3: every row index in [0, rows).
//   - Stage 4: strictly increasing rows within each column (skipped when
//     trustOrder is true).
//
// Errors:
//   - ErrShape (stages 1–2), ErrOutOfRange (stage 3), ErrRowOrder (stage 4).
//
// Complexity:
//   - Time O(cols + nnz), Space O(1).
//
// AI-Hints:
//   - Call with trustOrder=false to check data before persisting it.
func ValidateCSC(rows, cols int, colPtr, rowIdx []int, nvals int, trustOrder bool) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateCSC: negative shape", ErrShape)
	}
	if len(colPtr) != cols+1 {
		return validatorErrorf(fmt.Sprintf("ValidateCSC: len(col_pointers)=%d, want %d", len(colPtr), cols+1), ErrShape)
	}
	if colPtr[0] != 0 {
		return validatorErrorf(fmt.Sprintf("ValidateCSC: col_pointers[0]=%d, want 0", colPtr[0]), ErrShape)
	}

	var j int
	for j = 0; j < cols; j++ { // pointers must never move backwards
		if colPtr[j+1] < colPtr[j] {
			return validatorErrorf(fmt.Sprintf("ValidateCSC: col_pointers decreases at column %d", j), ErrShape)
		}
	}
	nnz := colPtr[cols]
	if nnz != len(rowIdx) || nnz != nvals {
		return validatorErrorf(
			fmt.Sprintf("ValidateCSC: col_pointers[%d]=%d, row_indices=%d, values=%d", cols, nnz, len(rowIdx), nvals),
			ErrShape)
	}

	var idx, end, prev int
	for j = 0; j < cols; j++ {
		end = colPtr[j+1]
		prev = -1
		for idx = colPtr[j]; idx < end; idx++ {
			r := rowIdx[idx]
			if r < 0 || r >= rows {
				return validatorErrorf(fmt.Sprintf("ValidateCSC: row %d in column %d", r, j), ErrOutOfRange)
			}
			if !trustOrder && r <= prev {
				return validatorErrorf(fmt.Sprintf("ValidateCSC: column %d at offset %d", j, idx), ErrRowOrder)
			}
			prev = r
		}
	}

	return nil
}

// validateFinite scans vals for NaN/±Inf and reports the first offset found.
// Complexity: O(len(vals)).
func validateFinite(vals []float64) (int, error) {
	for k, v := range vals {
		if isNonFinite(v) {
			return k, ErrNaNInf
		}
	}

	return -1, nil
}

// ValidateSameShape ensures a and b are non-nil and share rows and cols.
// Errors: ErrNilMatrix, ErrShape. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.r, a.c, b.r, b.c), ErrShape)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Errors: ErrNilMatrix, ErrShape. Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d × %dx%d", a.r, a.c, b.r, b.c), ErrShape)
	}

	return nil
}
