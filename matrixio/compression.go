// SPDX-License-Identifier: MIT

// Package matrixio streams matrices as newline-delimited JSON documents,
// optionally wrapped in a zstd or lz4 compressed frame.
//
// # Overview
//
// Every document is the matrix wire format defined by package matrix:
// dense matrices carry their grid, sparse matrices their CSC triple verbatim.
// Decoding re-runs full construction validation, so a decoded matrix obeys
// the same invariants as one built in memory.
//
// # Basic Usage
//
//	enc, err := matrixio.NewEncoder(w, matrixio.Zstd)
//	err = enc.Encode(m)
//	err = enc.Close() // flushes the compressed frame
//
//	dec, err := matrixio.NewDecoder(r, matrixio.Zstd)
//	m, err := dec.Decode() // io.EOF after the last matrix
//
// The package reads and writes io.Reader/io.Writer only; opening files is the
// caller's business.
package matrixio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm names the compression applied around the JSON stream.
type Algorithm string

const (
	// None writes plain newline-delimited JSON.
	None Algorithm = "none"
	// Zstd wraps the stream in a zstandard frame. Best ratio.
	Zstd Algorithm = "zstd"
	// LZ4 wraps the stream in an lz4 frame. Fastest.
	LZ4 Algorithm = "lz4"
)

// ErrUnknownAlgorithm is returned for an unrecognized compression name.
var ErrUnknownAlgorithm = errors.New("matrixio: unknown compression algorithm")

// ParseAlgorithm maps a case-insensitive name to an Algorithm. The empty
// string means None.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case "", None:
		return None, nil
	case Zstd, LZ4:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// nopWriteCloser adapts a plain writer for the None algorithm.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// newCompressWriter wraps dst according to alg. Closing the returned writer
// flushes the frame but never closes dst.
func newCompressWriter(dst io.Writer, alg Algorithm) (io.WriteCloser, error) {
	switch alg {
	case None:
		return nopWriteCloser{dst}, nil
	case Zstd:
		enc, err := zstd.NewWriter(dst)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}

		return enc, nil
	case LZ4:
		return lz4.NewWriter(dst), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// newDecompressReader wraps src according to alg. The returned release
// function frees decoder resources and must be called once.
func newDecompressReader(src io.Reader, alg Algorithm) (io.Reader, func(), error) {
	switch alg {
	case None:
		return src, func() {}, nil
	case Zstd:
		dec, err := zstd.NewReader(src)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd reader: %w", err)
		}

		return dec, dec.Close, nil
	case LZ4:
		return lz4.NewReader(src), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}
