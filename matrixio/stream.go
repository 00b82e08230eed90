// SPDX-License-Identifier: MIT

package matrixio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmat/matrix"
)

// Option configures an Encoder or Decoder.
type Option func(*config)

type config struct {
	logger     *zap.Logger
	matrixOpts []matrix.Option
}

// WithLogger attaches a logger for per-document debug records.
// Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMatrixOptions sets the construction policy used when decoding
// (row-order trust, lazy sparse storage, size cap, NaN policy).
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(c *config) { c.matrixOpts = append(c.matrixOpts, opts...) }
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop()}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// Encoder writes matrices as newline-delimited JSON into a compressed frame.
// An Encoder is not safe for concurrent use.
type Encoder struct {
	cw     io.WriteCloser
	enc    *gojson.Encoder
	alg    Algorithm
	log    *zap.Logger
	count  int
	closed bool
}

// NewEncoder starts a frame on w.
func NewEncoder(w io.Writer, alg Algorithm, opts ...Option) (*Encoder, error) {
	c := newConfig(opts)
	cw, err := newCompressWriter(w, alg)
	if err != nil {
		return nil, err
	}
	enc := gojson.NewEncoder(cw)
	enc.SetEscapeHTML(false)

	return &Encoder{cw: cw, enc: enc, alg: alg, log: c.logger}, nil
}

// Encode appends one matrix to the stream.
func (e *Encoder) Encode(m *matrix.Matrix) error {
	if e.closed {
		return errors.New("matrixio: encode on closed encoder")
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrixio: encode #%d: %w", e.count, err)
	}
	if err := e.enc.Encode(m); err != nil {
		return fmt.Errorf("matrixio: encode #%d: %w", e.count, err)
	}
	e.log.Debug("matrix encoded",
		zap.Int("index", e.count),
		zap.Stringer("layout", m.Layout()),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.String("compression", string(e.alg)),
	)
	e.count++

	return nil
}

// Count returns the number of matrices written so far.
func (e *Encoder) Count() int { return e.count }

// Close flushes the frame. It does not close the underlying writer.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.cw.Close(); err != nil {
		return fmt.Errorf("matrixio: close %s frame: %w", e.alg, err)
	}

	return nil
}

// Decoder reads matrices written by an Encoder with the same Algorithm.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	dec     *gojson.Decoder
	release func()
	alg     Algorithm
	log     *zap.Logger
	mopts   []matrix.Option
	count   int
}

// NewDecoder opens a frame on r.
func NewDecoder(r io.Reader, alg Algorithm, opts ...Option) (*Decoder, error) {
	c := newConfig(opts)
	dr, release, err := newDecompressReader(r, alg)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		dec:     gojson.NewDecoder(dr),
		release: release,
		alg:     alg,
		log:     c.logger,
		mopts:   c.matrixOpts,
	}, nil
}

// Decode reads the next matrix. It returns io.EOF when the stream is exhausted.
func (d *Decoder) Decode() (*matrix.Matrix, error) {
	var raw gojson.RawMessage
	if err := d.dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("matrixio: decode #%d: %w", d.count, err)
	}
	m, err := matrix.DecodeJSON(raw, d.mopts...)
	if err != nil {
		return nil, fmt.Errorf("matrixio: decode #%d: %w", d.count, err)
	}
	d.log.Debug("matrix decoded",
		zap.Int("index", d.count),
		zap.Stringer("layout", m.Layout()),
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Int("nnz", m.NNZ()),
	)
	d.count++

	return m, nil
}

// DecodeAll reads matrices until io.EOF.
func (d *Decoder) DecodeAll() ([]*matrix.Matrix, error) {
	var out []*matrix.Matrix
	for {
		m, err := d.Decode()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
}

// Close releases decoder resources. It does not close the underlying reader.
func (d *Decoder) Close() {
	if d.release != nil {
		d.release()
		d.release = nil
	}
}

// Marshal encodes a single matrix into a complete frame.
func Marshal(m *matrix.Matrix, alg Algorithm, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, alg, opts...)
	if err != nil {
		return nil, err
	}
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ErrTrailingData is returned by Unmarshal when a frame holds more than one document.
var ErrTrailingData = errors.New("matrixio: trailing data after matrix")

// Unmarshal decodes exactly one matrix from a complete frame.
func Unmarshal(b []byte, alg Algorithm, opts ...Option) (*matrix.Matrix, error) {
	dec, err := NewDecoder(bytes.NewReader(b), alg, opts...)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	m, err := dec.Decode()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("matrixio: empty frame: %w", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return nil, err
	}
	if _, err := dec.Decode(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTrailingData, err)
		}

		return nil, ErrTrailingData
	}

	return m, nil
}
