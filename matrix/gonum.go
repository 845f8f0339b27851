// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.
//
// Purpose:
//   - AsGonum exposes any Matrix (storage or view) to gonum routines without
//     copying.
//   - FromGonum materializes a gonum matrix as Dense.
//   - EqualApprox / EqualApproxMatrix give tolerance comparisons for callers
//     (tests, the rref CLI). The reduction itself never uses a tolerance.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// gonumView adapts a Matrix to gonum's mat.Matrix. It shares storage.
type gonumView struct {
	m Matrix
}

var _ mat.Matrix = gonumView{}

// AsGonum returns a zero-copy mat.Matrix over m. Gonum reads go through m.At;
// later writes to m are visible to it. Returns nil for a nil m.
func AsGonum(m Matrix) mat.Matrix {
	if m == nil {
		return nil
	}

	return gonumView{m: m}
}

// Dims implements mat.Matrix.
func (g gonumView) Dims() (r, c int) { return g.m.Rows(), g.m.Cols() }

// At implements mat.Matrix.
func (g gonumView) At(i, j int) float64 { return g.m.At(i, j) }

// T implements mat.Matrix using gonum's lazy transpose.
func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// FromGonum copies g into a new Dense.
// Zero-extent gonum matrices copy to zero-extent storage.
func FromGonum(g mat.Matrix) *Dense {
	rows, cols := g.Dims()
	out := newDenseZeroOK(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j] = g.At(i, j)
		}
	}

	return out
}

// EqualApprox reports whether a and b have the same dimension and every pair
// of elements is within tol of each other.
func EqualApprox(a, b Vector, tol float64) bool {
	if a.Len() != b.Len() {
		return false
	}
	n := a.Len()
	for i := 0; i < n; i++ {
		if !scalar.EqualWithinAbs(a.At(i), b.At(i), math.Abs(tol)) {
			return false
		}
	}

	return true
}

// EqualApproxMatrix reports whether a and b have the same shape and every pair
// of elements is within tol of each other, absolutely or relatively
// (mat.EqualApprox semantics).
func EqualApproxMatrix(a, b Matrix, tol float64) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	return mat.EqualApprox(AsGonum(a), AsGonum(b), math.Abs(tol))
}

// GonumDense returns a *mat.Dense sharing m's buffer: writes on either side
// are visible on the other. Use it to hand storage to gonum solvers without a
// copy. Panics when m has a zero dimension, which gonum does not allow.
// Complexity: O(1).
func (m *Dense) GonumDense() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}
