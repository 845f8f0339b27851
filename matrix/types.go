// SPDX-License-Identifier: MIT

// Package matrix: the capability interfaces.
// This file holds ONLY the Vector / Matrix / Viewer contracts; storage lives
// in dense.go and vector.go, views in views.go.
package matrix

// Vector is a fixed-length sequence of float64 values.
//
// Contract:
//   - Len is constant for the lifetime of the value.
//   - At/Set panic with ErrOutOfRange unless 0 ≤ i < Len().
//   - At/Set never allocate; a Set is immediately visible through every alias
//     of the same storage.
//
// Complexity: all methods O(1).
type Vector interface {
	// Len returns the dimension of the vector.
	Len() int

	// At returns the element at index i.
	At(i int) float64

	// Set stores v at index i.
	Set(i int, v float64)
}

// Matrix is a two-dimensional mutable array of float64 values.
//
// Contract:
//   - Rows/Cols are constant for the lifetime of the value.
//   - At/Set panic with ErrOutOfRange unless 0 ≤ i < Rows() and 0 ≤ j < Cols().
//   - A Set is immediately visible through every view sharing the storage.
//
// Everything else (row operations, views, reduction) is provided by package
// functions written against this interface.
//
// Complexity: all methods O(1).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j).
	At(i, j int) float64

	// Set stores v at (i, j).
	Set(i, j int, v float64)
}

// Viewer is implemented by matrices that build their own views.
//
// The package functions SubRow, SubCol and Sub use it when present and fall
// back to generic views bound to the matrix otherwise. A view type implements
// Viewer by translating the request into its backing matrix's coordinates and
// delegating, so views never stack.
type Viewer interface {
	// SubRow returns a view of n elements of row starting at firstCol.
	SubRow(row, firstCol, n int) Vector

	// SubCol returns a view of n elements of col starting at firstRow.
	SubCol(col, firstRow, n int) Vector

	// SubMatrix returns a numRows×numCols view whose (0,0) is (firstRow, firstCol).
	SubMatrix(firstRow, numRows, firstCol, numCols int) Matrix
}
