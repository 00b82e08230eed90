package matrix_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestAt_OutOfRange ensures At returns ErrOutOfRange on both layouts.
func TestAt_OutOfRange(t *testing.T) {
	for _, m := range []*matrix.Matrix{
		mustDense(t, 2, 2, [][]float64{{1, 2}, {3, 4}}),
		fixture(t),
		fixture(t, matrix.WithLazySparse()),
	} {
		for _, ij := range [][2]int{{-1, 0}, {0, -1}, {m.Rows(), 0}, {0, m.Cols()}} {
			_, err := m.At(ij[0], ij[1])
			require.ErrorIs(t, err, matrix.ErrOutOfRange, "%v on %s", ij, m.Layout())
		}
	}

	var nilMatrix *matrix.Matrix
	_, err := nilMatrix.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRowCol returns copies of the requested slices.
func TestRowCol(t *testing.T) {
	for _, m := range []*matrix.Matrix{
		mustDense(t, 3, 3, fixGrid),
		fixture(t),
		fixture(t, matrix.WithLazySparse()),
	} {
		row, err := m.Row(1)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 3, 5}, row)
		require.Len(t, row, m.Cols())

		col, err := m.Col(2)
		require.NoError(t, err)
		require.Equal(t, []float64{4, 5, 6}, col)

		row[0] = 100
		again, _ := m.Row(1)
		require.Equal(t, 0.0, again[0])

		_, err = m.Row(3)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		_, err = m.Col(-1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
}

// TestShapeInvariant checks len(Row(i)) == Cols() for every row.
func TestShapeInvariant(t *testing.T) {
	colPtr, rowIdx, vals, grid := randomCSC(7, 6, 4, 0.5)
	for _, m := range []*matrix.Matrix{
		mustDense(t, 6, 4, grid),
		mustSparse(t, 6, 4, colPtr, rowIdx, vals),
	} {
		for i := 0; i < m.Rows(); i++ {
			row, err := m.Row(i)
			require.NoError(t, err)
			require.Len(t, row, m.Cols())
		}
	}
}

// TestValues_IsCopy ensures the grid view cannot mutate the matrix.
func TestValues_IsCopy(t *testing.T) {
	m := fixture(t)
	v := m.Values()
	v[0][0] = -1

	x, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x)

	flat := m.RawRowMajor()
	require.Equal(t, []float64{1, 0, 4, 0, 3, 5, 2, 0, 6}, flat)
}

// TestDenseHasNoCSC ensures CSC accessors are nil for dense matrices.
func TestDenseHasNoCSC(t *testing.T) {
	m := mustDense(t, 1, 2, [][]float64{{0, 3}})
	require.Nil(t, m.ColPointers())
	require.Nil(t, m.RowIndices())
	require.Equal(t, 1, m.NNZ())
}

// TestDo_VisitsRowMajorAndStops checks order and early exit.
func TestDo_VisitsRowMajorAndStops(t *testing.T) {
	m := fixture(t, matrix.WithLazySparse())
	var seen []float64
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)

		return len(seen) < 4
	})
	require.Equal(t, []float64{1, 0, 4, 0}, seen)
}

// TestStringOutput checks the row-per-line format.
func TestStringOutput(t *testing.T) {
	m := mustDense(t, 2, 2, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
	require.Equal(t, "[1, 0, 4]\n[0, 3, 5]\n[2, 0, 6]\n", fixture(t).String())
}

// TestConcurrentReaders exercises shared read-only access.
func TestConcurrentReaders(t *testing.T) {
	ms := []*matrix.Matrix{fixture(t), fixture(t, matrix.WithLazySparse())}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, m := range ms {
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						v, err := m.At(i, j)
						if err != nil || v != fixGrid[i][j] {
							t.Errorf("At(%d,%d) = %v, %v", i, j, v, err)
						}
					}
				}
				_ = m.Values()
			}
		}()
	}
	wg.Wait()
}
