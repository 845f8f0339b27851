// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (the 10r+c grid, literal matrices).
//   - A panic assertion that checks the sentinel wrapped in the panic value.
//   - hide, a wrapper that masks Viewer so the generic view path is exercised.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lalg/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Only the four Matrix methods are promoted, so hide never satisfies Viewer
// and the package falls back to its generic RowView/ColView/SubMatrix.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// mustFrom builds a *Dense from row literals or fails the test.
func mustFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// grid6 returns the 6×6 matrix whose (r,c) element is 10r+c.
func grid6(t testing.TB) *matrix.Dense {
	t.Helper()
	m := mustDense(t, 6, 6)
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			m.Set(r, c, float64(10*r+c))
		}
	}

	return m
}

// rowsOf reads m back into row slices.
func rowsOf(m matrix.Matrix) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}

	return out
}

// valuesOf reads v back into a slice.
func valuesOf(v matrix.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.At(i)
	}

	return out
}

// requireRowsInDelta compares m against want element by element.
func requireRowsInDelta(t *testing.T, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.InDeltaSlice(t, row, rowsOf(m)[i], delta, "row %d", i)
	}
}

// requirePanicsWith asserts that fn panics with an error wrapping want.
func requirePanicsWith(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", want)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, want), "got %v, want %v", err, want)
	}()
	fn()
}
