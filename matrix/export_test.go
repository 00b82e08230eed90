// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot and private helpers.
//
// Purpose:
//   - Expose a read-only view of the resolved Options to matrix_test ONLY.
//   - Let tests observe whether a sparse matrix kept a grid (lazy vs eager).
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// OptionsSnapshot is a stable, exported copy of the internal Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	TrustRowOrder  bool
	LazySparse     bool
	MaxCells       int
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns the snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		ValidateNaNInf: o.validateNaNInf,
		TrustRowOrder:  o.trustRowOrder,
		LazySparse:     o.lazySparse,
		MaxCells:       o.maxCells,
	}
}

// HasGrid_TestOnly reports whether m keeps a materialized row-major grid.
func HasGrid_TestOnly(m *Matrix) bool { return m.data != nil }

// Panic message exports to avoid "magic strings" in tests.
const PanicMaxCellsInvalid_TestOnly = panicMaxCellsInvalid
