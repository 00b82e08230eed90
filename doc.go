// Package lvmat is your in-memory toolkit for two-dimensional numeric
// matrices stored either as a dense row-major grid or in Compressed Sparse
// Column (CSC) form, behind one read-only value type.
//
// What is inside?
//
//	• Construction: dense grids, CSC triples, and a factory that normalizes
//	  nested slices or passes an existing matrix through unchanged
//	• Validation: shape, pointer monotonicity, row bounds, strictly
//	  increasing row indices per column, optional NaN/±Inf rejection
//	• Access: At, Row, Col, Values, Do, plus the raw CSC arrays
//	• Conversion: ToDense, ToSparse, Transpose, Equal, AllClose, Density
//	• Wire format: JSON documents, streamed as ND-JSON with optional
//	  zstd or lz4 framing
//
// Under the hood:
//
//	matrix/        - Matrix value type, constructors, options, validators, JSON codec
//	matrixio/      - Encoder/Decoder streams with compression
//	internal/      - logger (zap) and config (YAML) for the command
//	cmd/lvmat/     - inspect, densify, sparsify, transpose, encode, decode
//
// Quick CSC example:
//
//	colPointers = [0, 2, 3, 6]
//	rowIndices  = [0, 2, 1, 0, 1, 2]
//	values      = [1, 2, 3, 4, 5, 6]
//
//	    [1, 0, 4]
//	    [0, 3, 5]
//	    [2, 0, 6]
//
//	go get github.com/katalvlaran/lvmat/matrix
package lvmat
