// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lalg/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseIsZeroed verifies shape and zero initialization.
func TestNewDenseIsZeroed(t *testing.T) {
	m := mustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.Len(t, m.RawData(), 12)
	for _, v := range m.RawData() {
		require.Zero(t, v)
	}
}

// TestDenseRowMajorLayout checks the i*cols+j index formula through RawData.
func TestDenseRowMajorLayout(t *testing.T) {
	m := mustDense(t, 2, 3)
	m.Set(1, 2, 7.5)
	m.Set(0, 1, -1)
	require.Equal(t, []float64{0, -1, 0, 0, 0, 7.5}, m.RawData())
	require.Equal(t, 7.5, m.At(1, 2))

	m.RawData()[3] = 4
	require.Equal(t, 4.0, m.At(1, 0))
}

// TestDenseAtSetOutOfRange ensures bad coordinates panic, including a column
// that would alias the next row in the flat buffer.
func TestDenseAtSetOutOfRange(t *testing.T) {
	m := mustDense(t, 2, 2)
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { m.At(-1, 0) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { m.At(0, 2) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { m.Set(2, 0, 1) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { m.Set(0, -1, 1) })
}

// TestNewDenseFrom covers copying, raggedness and empty input.
func TestNewDenseFrom(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := mustFrom(t, src)
	src[0][0] = 99 // the constructor copied
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rowsOf(m))

	_, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFromRows builds a matrix from vectors, views included.
func TestNewDenseFromRows(t *testing.T) {
	g := grid6(t)
	m, err := matrix.NewDenseFromRows(matrix.NewVector(1, 2, 3), matrix.SubRow(g, 2, 0, 3))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {20, 21, 22}}, rowsOf(m))

	_, err = matrix.NewDenseFromRows()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows(matrix.NewVector(1), matrix.NewVector(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows(matrix.NewVector(1), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	clone.Set(0, 0, 3)

	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 3.0, clone.At(0, 0))
}

// TestCopyOfView materializes a window with an independent lifetime.
func TestCopyOfView(t *testing.T) {
	g := grid6(t)
	c := matrix.Copy(matrix.Sub(g, 1, 2, 3, 2))
	require.Equal(t, [][]float64{{13, 14}, {23, 24}}, rowsOf(c))

	c.Set(0, 0, -1)
	require.Equal(t, 13.0, g.At(1, 3))

	empty := matrix.Copy(matrix.Sub(g, 2, 3, 6, 0))
	require.Equal(t, 3, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

// TestStringOutput checks the |%6.2f, ...| row rendering.
func TestStringOutput(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "|  1.00,   2.00|\n|  3.00,   4.00|\n", m.String())

	wide := mustFrom(t, [][]float64{{1234.5, -0.004}})
	require.Equal(t, "|1234.50,  -0.00|\n", wide.String())
}

// TestIsSquare reports square shapes for storage and views.
func TestIsSquare(t *testing.T) {
	g := grid6(t)
	require.True(t, matrix.IsSquare(g))
	require.False(t, matrix.IsSquare(matrix.Sub(g, 0, 2, 0, 3)))
	require.True(t, matrix.IsSquare(matrix.Sub(g, 1, 0, 1, 0)))
}
