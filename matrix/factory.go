// SPDX-License-Identifier: MIT

// Package matrix - ToMatrix, the single normalization point for matrix-like input.
//
// Accepted inputs:
//   - *Matrix (either layout): returned unchanged, no copy.
//   - [][]T for every built-in numeric T (all int, uint and float widths):
//     wrapped dense.
//   - [][]any and []any whose rows are []any or []T, with every element a
//     built-in numeric type: wrapped dense. This covers data decoded from
//     generic JSON or YAML.
//
// Shape: rows = len(data), cols = len(data[0]) (0 when data is empty).
// Jagged input fails with ErrShape; anything else with ErrUnsupportedType.

package matrix

import "fmt"

const ctxToMatrix = "ToMatrix"

// ToMatrix coerces data into a *Matrix.
// MAIN DESCRIPTION:
//   - Idempotent: ToMatrix(ToMatrix(x)) returns the very same pointer as
//     ToMatrix(x) for every valid x.
//
// Implementation:
//   - Stage 1: type switch; existing matrices short-circuit (opts ignored).
//   - Stage 2: infer cols from the first row.
//   - Stage 3: delegate to the dense constructor (shape + numeric policy).
//
// Errors:
//   - ErrUnsupportedType (nil, nil *Matrix, non-numeric elements, other types),
//     ErrShape (jagged rows), ErrNaNInf, ErrTooLarge.
//
// Complexity:
//   - O(1) for *Matrix, O(r*c) otherwise.
func ToMatrix(data any, opts ...Option) (*Matrix, error) {
	switch v := data.(type) {
	case *Matrix:
		if v == nil {
			return nil, matrixErrorf(ctxToMatrix, ErrUnsupportedType)
		}

		return v, nil
	case [][]float64:
		return wrapGrid(v, opts)
	case [][]float32:
		return wrapGrid(v, opts)
	case [][]int:
		return wrapGrid(v, opts)
	case [][]int8:
		return wrapGrid(v, opts)
	case [][]int16:
		return wrapGrid(v, opts)
	case [][]int32:
		return wrapGrid(v, opts)
	case [][]int64:
		return wrapGrid(v, opts)
	case [][]uint:
		return wrapGrid(v, opts)
	case [][]uint8:
		return wrapGrid(v, opts)
	case [][]uint16:
		return wrapGrid(v, opts)
	case [][]uint32:
		return wrapGrid(v, opts)
	case [][]uint64:
		return wrapGrid(v, opts)
	case [][]any:
		rows := make([]any, len(v))
		for i := range v {
			rows[i] = v[i]
		}

		return fromAnyRows(rows, opts)
	case []any:
		return fromAnyRows(v, opts)
	default:
		return nil, matrixErrorf(fmt.Sprintf("%s(%T)", ctxToMatrix, data), ErrUnsupportedType)
	}
}

// wrapGrid wraps a typed rectangular grid as a dense matrix.
func wrapGrid[T Number](v [][]T, opts []Option) (*Matrix, error) {
	return denseFromGrid(ctxToMatrix, len(v), firstLen(v), v, gatherOptions(opts...))
}

// firstLen returns len(v[0]) or 0 for an empty outer slice.
func firstLen[T any](v [][]T) int {
	if len(v) == 0 {
		return 0
	}

	return len(v[0])
}

// fromAnyRows converts loosely typed rows into a float64 grid.
func fromAnyRows(rows []any, opts []Option) (*Matrix, error) {
	grid := make([][]float64, len(rows))
	for i, row := range rows {
		conv, err := anyRow(row)
		if err != nil {
			return nil, matrixErrorf(fmt.Sprintf("%s: row %d", ctxToMatrix, i), err)
		}
		grid[i] = conv
	}

	return denseFromGrid(ctxToMatrix, len(grid), firstLen(grid), grid, gatherOptions(opts...))
}

// anyRow converts one loosely typed row into []float64.
func anyRow(row any) ([]float64, error) {
	switch r := row.(type) {
	case []float64:
		return rowOf(r), nil
	case []float32:
		return rowOf(r), nil
	case []int:
		return rowOf(r), nil
	case []int8:
		return rowOf(r), nil
	case []int16:
		return rowOf(r), nil
	case []int32:
		return rowOf(r), nil
	case []int64:
		return rowOf(r), nil
	case []uint:
		return rowOf(r), nil
	case []uint8:
		return rowOf(r), nil
	case []uint16:
		return rowOf(r), nil
	case []uint32:
		return rowOf(r), nil
	case []uint64:
		return rowOf(r), nil
	case []any:
		out := make([]float64, len(r))
		for j, x := range r {
			f, ok := toFloat(x)
			if !ok {
				return nil, fmt.Errorf("col %d (%T): %w", j, x, ErrUnsupportedType)
			}
			out[j] = f
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%T: %w", row, ErrUnsupportedType)
	}
}

// rowOf converts a typed row into a fresh []float64.
func rowOf[T Number](r []T) []float64 {
	out := make([]float64, len(r))
	for j, x := range r {
		out[j] = float64(x)
	}

	return out
}

// toFloat converts a Go numeric scalar to float64.
func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
