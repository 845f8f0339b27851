// SPDX-License-Identifier: MIT

// Package matrix is a small dense linear-algebra kernel: vectors and matrices
// behind capability interfaces, zero-copy views, and row reduction to echelon
// and reduced echelon form.
//
// What & Why:
//
//	Vector and Matrix are minimal interfaces (dimension, At, Set). Dense and
//	DenseVector own row-major storage; RowView, ColView and SubMatrix own
//	nothing and translate indices onto the matrix they were carved from, so a
//	write through a view is a write to its backing storage. Every derived
//	operation (row operations, leading entries, normalization, reduction) is a
//	package function over the interfaces and works identically on storage and
//	on any view.
//
// Views:
//
//	A view of a view is resolved once against the original storage: SubMatrix
//	translates the request and asks its backing matrix to build the view. Access
//	cost stays O(1) however deep the narrowing goes.
//
// Errors:
//
//	Constructors return sentinel errors (ErrInvalidDimensions,
//	ErrDimensionMismatch). Index and shape violations on live objects are
//	programming errors: they panic with an error wrapping ErrOutOfRange,
//	ErrDimensionMismatch or ErrBadShape. FindPivotRow panics with ErrNoPivot
//	when asked to pivot on an all-zero column.
//
// Numeric policy:
//
//	Zero tests are exact (x == 0). Row reduction uses partial pivoting on the
//	largest absolute value, first occurrence wins.
//
// Complexity:
//
//	At/Set O(1) on storage and views. Row operations O(cols).
//	ToEchelonForm O(rows²·cols).
package matrix
