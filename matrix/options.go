// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts construction and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options apply at construction only. A built Matrix is immutable, so there
//     is no per-instance policy to carry around afterwards.
//   - Shape checks (ErrShape) and index range checks (ErrOutOfRange) are NOT
//     configurable: they keep construction memory-safe in every mode.
//   - Row order inside a CSC column is the single relaxable structural check.
//     When trusted, duplicated rows resolve last-write-wins in column-major
//     order, both in the eager grid and in lazy lookups.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf rejects NaN/±Inf entries at construction.
	DefaultValidateNaNInf = true

	// DefaultTrustRowOrder skips the strict-increase check on CSC row indices
	// when true. Off by default: malformed CSC input fails fast with ErrRowOrder.
	DefaultTrustRowOrder = false

	// DefaultLazySparse keeps CSC as the only storage for sparse matrices when
	// true (O(log nnz_col) reads, no rows*cols grid). Off by default: sparse
	// matrices are scattered into a dense-equivalent grid for O(1) reads.
	DefaultLazySparse = false

	// DefaultMaxCells caps rows*cols for materialized grids; 0 means unlimited.
	DefaultMaxCells = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxCellsInvalid = "matrix: WithMaxCells: limit must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	trustRowOrder  bool // DefaultTrustRowOrder
	lazySparse     bool // DefaultLazySparse
	maxCells       int  // DefaultMaxCells (0 = unlimited)
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation (default).
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - Allows ±Inf/NaN to pass through into newly created matrices.
//   - Equal never treats NaN as equal to NaN; use AllClose or sanitize first.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTrustRowOrder skips the strict-increase check on CSC row indices.
// Implementation:
//   - Stage 1: set trustRowOrder=true.
//
// Behavior highlights:
//   - Bounds are still checked: a row index outside [0, rows) is ErrOutOfRange.
//   - Unsorted or duplicated rows are accepted; duplicates resolve to the
//     entry stored last in column-major order.
//   - Lookups on such matrices fall back to a linear scan of the column slice.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use only for CSC data produced by a trusted writer; the default fails fast.
func WithTrustRowOrder() Option {
	return func(o *Options) { o.trustRowOrder = true }
}

// WithStrictRowOrder restores the default strict-increase check.
// Complexity: O(1).
func WithStrictRowOrder() Option {
	return func(o *Options) { o.trustRowOrder = false }
}

// WithLazySparse keeps CSC as the canonical storage of sparse matrices.
// Implementation:
//   - Stage 1: set lazySparse=true.
//
// Behavior highlights:
//   - No rows*cols grid is allocated; memory is O(cols + nnz).
//   - At costs O(log k) where k is the number of entries in the column.
//   - Values/Row/Col still materialize on demand (they return copies anyway).
//   - WithMaxCells does not apply to lazy sparse construction.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithLazySparse() Option {
	return func(o *Options) { o.lazySparse = true }
}

// WithEagerSparse restores the default eager scatter into a dense grid.
// Complexity: O(1).
func WithEagerSparse() Option {
	return func(o *Options) { o.lazySparse = false }
}

// WithMaxCells caps rows*cols for any materialized grid.
// Implementation:
//   - Stage 1: validate n >= 0 (panic otherwise).
//   - Stage 2: return a setter that writes maxCells.
//
// Behavior highlights:
//   - 0 disables the cap. Construction above the cap fails with ErrTooLarge
//     before any allocation.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Set this when shapes come from untrusted input; a dense grid costs
//     8*rows*cols bytes.
func WithMaxCells(n int) Option {
	if n < 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *Options) { o.maxCells = n }
}

// ---------- Resolution ----------

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		trustRowOrder:  DefaultTrustRowOrder,
		lazySparse:     DefaultLazySparse,
		maxCells:       DefaultMaxCells,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order (last-writer-wins); nil setters are skipped.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
