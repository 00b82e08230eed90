// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmat/internal/config"
	"github.com/katalvlaran/lvmat/internal/logger"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrixio"
)

var version = "0.1.0"

// app carries state resolved in PersistentPreRunE.
type app struct {
	configPath    string
	logLevel      string
	trustRowOrder bool
	maxCells      int
	lazySparse    bool

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "lvmat",
		Short:         "lvmat - dense and CSC sparse matrix toolkit",
		Long:          `lvmat reads matrices as newline-delimited JSON, validates them, and converts between dense and compressed sparse column layouts.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&a.trustRowOrder, "trust-row-order", false, "skip the strictly-increasing row index check for sparse input")
	pf.IntVar(&a.maxCells, "max-cells", config.DefaultMaxCells,
		"reject matrices whose dense grid exceeds this many cells (0 = unlimited; untrusted input can then exhaust memory)")
	pf.BoolVar(&a.lazySparse, "lazy-sparse", false, "keep sparse input in CSC form without a dense grid")

	root.AddCommand(
		a.newInspectCmd(),
		a.newConvertCmd("densify", "Convert every input matrix to the dense layout", a.densify),
		a.newConvertCmd("sparsify", "Convert every input matrix to the CSC sparse layout", matrix.ToSparse),
		a.newTransposeCmd(),
		a.newEncodeCmd(),
		a.newDecodeCmd(),
		newVersionCmd(),
	)

	return root
}

// setup loads .env, the config file, flag overrides and the logger, in that order.
func (a *app) setup(cmd *cobra.Command) error {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if flags.Changed("trust-row-order") {
		a.cfg.Matrix.TrustRowOrder = a.trustRowOrder
	}
	if flags.Changed("max-cells") {
		a.cfg.Matrix.MaxCells = a.maxCells
	}
	if flags.Changed("lazy-sparse") {
		a.cfg.Matrix.LazySparse = a.lazySparse
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(a.cfg.Log)
	if err != nil {
		return err
	}
	a.log = log.Named("lvmat")
	a.log.Debug("configuration resolved",
		zap.String("command", cmd.Name()),
		zap.Bool("trust_row_order", a.cfg.Matrix.TrustRowOrder),
		zap.Int("max_cells", a.cfg.Matrix.MaxCells),
		zap.Bool("lazy_sparse", a.cfg.Matrix.LazySparse),
	)

	return nil
}

// densify applies the cell cap before materializing a lazily stored matrix.
func (a *app) densify(m *matrix.Matrix) (*matrix.Matrix, error) {
	if err := matrix.ValidateShape(m.Rows(), m.Cols(), a.cfg.Matrix.MaxCells); err != nil {
		return nil, fmt.Errorf("densify: %w", err)
	}

	return matrix.ToDense(m)
}

// openInput returns the named file, or stdin for no argument or "-".
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

// decoder opens a matrix stream on the command input.
func (a *app) decoder(cmd *cobra.Command, args []string, alg matrixio.Algorithm) (*matrixio.Decoder, func(), error) {
	r, closeIn, err := openInput(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	dec, err := matrixio.NewDecoder(r, alg,
		matrixio.WithLogger(a.log),
		matrixio.WithMatrixOptions(a.cfg.MatrixOptions()...),
	)
	if err != nil {
		closeIn()

		return nil, nil, err
	}

	return dec, func() { dec.Close(); closeIn() }, nil
}

// pipe decodes every input matrix, applies fn, and encodes the result.
func (a *app) pipe(cmd *cobra.Command, args []string, in, out matrixio.Algorithm, fn func(*matrix.Matrix) (*matrix.Matrix, error)) error {
	dec, release, err := a.decoder(cmd, args, in)
	if err != nil {
		return err
	}
	defer release()

	enc, err := matrixio.NewEncoder(cmd.OutOrStdout(), out, matrixio.WithLogger(a.log))
	if err != nil {
		return err
	}
	for {
		m, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if fn != nil {
			if m, err = fn(m); err != nil {
				return err
			}
		}
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	if err := enc.Close(); err != nil {
		return err
	}
	a.log.Info("stream written", zap.Int("matrices", enc.Count()), zap.String("compression", string(out)))

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "lvmat v%s\n", version)
			fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
