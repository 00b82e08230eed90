// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrixio"
)

func (a *app) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print layout, shape, stored entries and density of every input matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, release, err := a.decoder(cmd, args, matrixio.None)
			if err != nil {
				return err
			}
			defer release()

			w := cmd.OutOrStdout()
			for i := 0; ; i++ {
				m, err := dec.Decode()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "#%d layout=%s shape=%dx%d nnz=%d density=%.4f\n",
					i, m.Layout(), m.Rows(), m.Cols(), m.NNZ(), matrix.Density(m))
				if m.IsSparse() {
					fmt.Fprintf(w, "   col_pointers=%v\n", m.ColPointers())
				}
			}
		},
	}
}

func (a *app) newConvertCmd(use, short string, fn func(*matrix.Matrix) (*matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.pipe(cmd, args, matrixio.None, matrixio.None, fn)
		},
	}
}

func (a *app) newTransposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose [file]",
		Short: "Transpose every input matrix, keeping its layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.pipe(cmd, args, matrixio.None, matrixio.None, matrix.Transpose)
		},
	}
}

// compressionFlag resolves --compression, falling back to io.compression.
func (a *app) compressionFlag(cmd *cobra.Command) (matrixio.Algorithm, error) {
	if cmd.Flags().Changed("compression") {
		name, _ := cmd.Flags().GetString("compression")

		return matrixio.ParseAlgorithm(name)
	}

	return a.cfg.Algorithm(), nil
}

func (a *app) newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Validate plain JSON matrices and write them as a compressed frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.compressionFlag(cmd)
			if err != nil {
				return err
			}

			return a.pipe(cmd, args, matrixio.None, alg, nil)
		},
	}
	cmd.Flags().String("compression", "", "compression algorithm (none, zstd, lz4); defaults to io.compression")

	return cmd
}

func (a *app) newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Read a compressed frame and write plain JSON matrices",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.compressionFlag(cmd)
			if err != nil {
				return err
			}

			return a.pipe(cmd, args, alg, matrixio.None, nil)
		},
	}
	cmd.Flags().String("compression", "", "compression algorithm (none, zstd, lz4); defaults to io.compression")

	return cmd
}
