// Package matrix offers an immutable float64 matrix value in two layouts.
//
// The matrix package provides:
//
//   - Dense matrices built from a rows×cols grid (NewDense, DenseOf,
//     NewDenseFlat), stored row-major with O(1) reads.
//   - Sparse matrices built from compressed-sparse-column arrays (NewSparse).
//     By default the stored entries are scattered into a dense-equivalent grid
//     at construction, giving the same O(1) reads at O(rows*cols) memory.
//     WithLazySparse keeps CSC as the only storage instead.
//   - ToMatrix, the normalization point for "a matrix or a nested sequence of
//     numbers": existing matrices are returned as-is, grids are wrapped dense.
//   - Layout conversion (ToDense, ToSparse, Transpose), comparison (Equal,
//     AllClose) and a JSON wire format that carries the CSC triple verbatim.
//   - Arithmetic kernels (Add, Sub, Hadamard, Scale, Mul, MatVec) that walk
//     CSC storage directly when row order was verified.
//
// Both layouts share one envelope type, *Matrix, tagged with a Layout. Reads
// go through At/Row/Col/Values regardless of layout.
//
// Construction validates eagerly and returns sentinel errors (ErrShape,
// ErrOutOfRange, ErrRowOrder, ErrUnsupportedType, ...) matched with errors.Is.
// A constructed *Matrix is never mutated and can be shared across goroutines.
//
// Cost: dense construction and eager sparse construction allocate
// 8*rows*cols bytes. Use WithMaxCells when shapes come from untrusted input.
package matrix
