// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the lvmat command.
//
// Example file:
//
//	log:
//	  level: debug
//	  encoding: json
//	matrix:
//	  trust_row_order: false
//	  allow_nan_inf: false
//	  lazy_sparse: false
//	  max_cells: ${LVMAT_MAX_CELLS}
//	io:
//	  compression: zstd
//
// ${VAR} references are replaced with environment values before parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmat/internal/logger"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrixio"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration document.
type Config struct {
	Log    logger.Config `yaml:"log"`
	Matrix MatrixConfig  `yaml:"matrix"`
	IO     IOConfig      `yaml:"io"`
}

// MatrixConfig maps onto matrix construction options.
type MatrixConfig struct {
	TrustRowOrder bool `yaml:"trust_row_order"`
	AllowNaNInf   bool `yaml:"allow_nan_inf"`
	LazySparse    bool `yaml:"lazy_sparse"`
	MaxCells      int  `yaml:"max_cells"`
}

// IOConfig selects the stream framing.
type IOConfig struct {
	Compression string `yaml:"compression"`
}

// DefaultMaxCells caps grid materialization for decoded input: 1<<27 cells
// is 1 GiB of float64. Set matrix.max_cells to 0 to lift the cap.
const DefaultMaxCells = 1 << 27

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: logger.Default(),
		Matrix: MatrixConfig{
			TrustRowOrder: matrix.DefaultTrustRowOrder,
			AllowNaNInf:   !matrix.DefaultValidateNaNInf,
			LazySparse:    matrix.DefaultLazySparse,
			MaxCells:      DefaultMaxCells,
		},
		IO: IOConfig{Compression: string(matrixio.None)},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the --config flag
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal([]byte(substituteEnvVars(string(data))), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if c.Matrix.MaxCells < 0 {
		return fmt.Errorf("%w: matrix.max_cells must be >= 0, got %d", ErrInvalidConfig, c.Matrix.MaxCells)
	}
	if _, err := matrixio.ParseAlgorithm(c.IO.Compression); err != nil {
		return fmt.Errorf("%w: io.compression: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Algorithm returns the parsed compression; Validate guarantees it parses.
func (c Config) Algorithm() matrixio.Algorithm {
	alg, err := matrixio.ParseAlgorithm(c.IO.Compression)
	if err != nil {
		return matrixio.None
	}

	return alg
}

// MatrixOptions translates the matrix section into constructor options.
func (c Config) MatrixOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithMaxCells(c.Matrix.MaxCells)}
	if c.Matrix.TrustRowOrder {
		opts = append(opts, matrix.WithTrustRowOrder())
	}
	if c.Matrix.AllowNaNInf {
		opts = append(opts, matrix.WithNoValidateNaNInf())
	}
	if c.Matrix.LazySparse {
		opts = append(opts, matrix.WithLazySparse())
	}

	return opts
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Inserted values are not rescanned.
func substituteEnvVars(content string) string {
	var sb strings.Builder
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		sb.WriteString(content[:start])
		sb.WriteString(os.Getenv(content[start+2 : end]))
		content = content[end+1:]
	}
	sb.WriteString(content)

	return sb.String()
}
