// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/matrixio"
)

const (
	denseDoc  = `{"layout":"dense","rows":2,"cols":2,"values":[[0,7],[8,0]]}` + "\n"
	sparseDoc = `{"layout":"sparse","rows":3,"cols":3,"col_pointers":[0,2,3,6],"row_indices":[0,2,1,0,1,2],"stored_values":[1,2,3,4,5,6]}` + "\n"
	// column 0 lists row 1 before row 0
	unsortedDoc = `{"layout":"sparse","rows":2,"cols":1,"col_pointers":[0,2],"row_indices":[1,0],"stored_values":[5,6]}` + "\n"
)

// run executes the root command with stdin and returns stdout.
func run(t *testing.T, stdin []byte, args ...string) ([]byte, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.Bytes(), err
}

func TestInspect(t *testing.T) {
	out, err := run(t, []byte(denseDoc+sparseDoc), "inspect")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "#0 layout=dense shape=2x2 nnz=2 density=0.5000", lines[0])
	require.Equal(t, "#1 layout=sparse shape=3x3 nnz=6 density=0.6667", lines[1])
	require.Equal(t, "col_pointers=[0 2 3 6]", strings.TrimSpace(lines[2]))
}

func TestInspect_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.json")
	require.NoError(t, os.WriteFile(path, []byte(sparseDoc), 0o600))

	out, err := run(t, nil, "inspect", path)
	require.NoError(t, err)
	require.Contains(t, string(out), "layout=sparse")

	_, err = run(t, nil, "inspect", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "open input")
}

func TestSparsifyDensify(t *testing.T) {
	out, err := run(t, []byte(denseDoc), "sparsify")
	require.NoError(t, err)
	sp, err := matrix.DecodeJSON(bytes.TrimSpace(out))
	require.NoError(t, err)
	require.True(t, sp.IsSparse())
	require.Equal(t, []int{0, 1, 2}, sp.ColPointers())
	require.Equal(t, []int{1, 0}, sp.RowIndices())

	back, err := run(t, out, "densify")
	require.NoError(t, err)
	dn, err := matrix.DecodeJSON(bytes.TrimSpace(back))
	require.NoError(t, err)
	require.True(t, dn.IsDense())
	require.Equal(t, [][]float64{{0, 7}, {8, 0}}, dn.Values())
}

func TestTranspose(t *testing.T) {
	out, err := run(t, []byte(sparseDoc), "transpose")
	require.NoError(t, err)
	m, err := matrix.DecodeJSON(bytes.TrimSpace(out))
	require.NoError(t, err)
	require.True(t, m.IsSparse())
	require.Equal(t, [][]float64{{1, 0, 2}, {0, 3, 0}, {4, 5, 6}}, m.Values())
}

func TestEncodeDecode(t *testing.T) {
	for _, alg := range []string{"none", "zstd", "lz4"} {
		t.Run(alg, func(t *testing.T) {
			frame, err := run(t, []byte(denseDoc+sparseDoc), "encode", "--compression", alg)
			require.NoError(t, err)

			ms, err := matrixio.NewDecoder(bytes.NewReader(frame), matrixio.Algorithm(alg))
			require.NoError(t, err)
			all, err := ms.DecodeAll()
			require.NoError(t, err)
			require.Len(t, all, 2)

			plain, err := run(t, frame, "decode", "--compression", alg)
			require.NoError(t, err)
			require.Equal(t, 2, strings.Count(string(plain), "\n"))
		})
	}

	_, err := run(t, []byte(denseDoc), "encode", "--compression", "gzip")
	require.ErrorIs(t, err, matrixio.ErrUnknownAlgorithm)
}

func TestGlobalFlags(t *testing.T) {
	_, err := run(t, []byte(unsortedDoc), "inspect")
	require.ErrorIs(t, err, matrix.ErrRowOrder)

	out, err := run(t, []byte(unsortedDoc), "--trust-row-order", "inspect")
	require.NoError(t, err)
	require.Contains(t, string(out), "nnz=2")

	_, err = run(t, []byte(sparseDoc), "--max-cells", "4", "inspect")
	require.ErrorIs(t, err, matrix.ErrTooLarge)

	_, err = run(t, []byte(denseDoc), "--log-level", "loud", "inspect")
	require.ErrorContains(t, err, "invalid log level")
}

// TestMaxCells_DefaultCap rejects a tiny document declaring a huge grid.
func TestMaxCells_DefaultCap(t *testing.T) {
	huge := `{"layout":"sparse","rows":1099511627776,"cols":1,"col_pointers":[0,0]}` + "\n"

	_, err := run(t, []byte(huge), "inspect")
	require.ErrorIs(t, err, matrix.ErrTooLarge)

	// Lazy storage never allocates the grid, but densify still refuses.
	out, err := run(t, []byte(huge), "--lazy-sparse", "inspect")
	require.NoError(t, err)
	require.Contains(t, string(out), "shape=1099511627776x1 nnz=0")

	_, err = run(t, []byte(huge), "--lazy-sparse", "densify")
	require.ErrorIs(t, err, matrix.ErrTooLarge)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvmat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("matrix:\n  trust_row_order: true\nio:\n  compression: lz4\n"), 0o600))

	_, err := run(t, []byte(unsortedDoc), "--config", path, "inspect")
	require.NoError(t, err)

	// Flag overrides the file.
	_, err = run(t, []byte(unsortedDoc), "--config", path, "--trust-row-order=false", "inspect")
	require.ErrorIs(t, err, matrix.ErrRowOrder)

	// encode without --compression uses io.compression from the file.
	frame, err := run(t, []byte(denseDoc), "--config", path, "encode")
	require.NoError(t, err)
	m, err := matrixio.Unmarshal(frame, matrixio.LZ4)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
}

func TestVersion(t *testing.T) {
	out, err := run(t, nil, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "lvmat v"+version))
}
