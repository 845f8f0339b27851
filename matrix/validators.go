// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the shape and length guards used by views,
//    row setters and vector utilities.
//  - Guards on live objects panic (programming errors); constructors use the
//    error-returning forms instead.
//
// All checks are O(1) and allocate nothing on the success path.

package matrix

// checkRowSpan guards a row view request: row must exist and
// [firstCol, firstCol+n) must lie inside [0, Cols()].
func checkRowSpan(tag string, m Matrix, row, firstCol, n int) {
	if row < 0 || row >= m.Rows() || firstCol < 0 || n < 0 || firstCol+n > m.Cols() {
		fault(ErrBadShape, "%s(%d,%d,%d)", tag, row, firstCol, n)
	}
}

// checkColSpan guards a column view request.
func checkColSpan(tag string, m Matrix, col, firstRow, n int) {
	if col < 0 || col >= m.Cols() || firstRow < 0 || n < 0 || firstRow+n > m.Rows() {
		fault(ErrBadShape, "%s(%d,%d,%d)", tag, col, firstRow, n)
	}
}

// checkRegion guards a sub-matrix request. Zero-extent regions are legal,
// including one that starts exactly at the bottom or right edge.
func checkRegion(tag string, m Matrix, firstRow, numRows, firstCol, numCols int) {
	if firstRow < 0 || numRows < 0 || firstRow+numRows > m.Rows() ||
		firstCol < 0 || numCols < 0 || firstCol+numCols > m.Cols() {
		fault(ErrBadShape, "%s(%d,%d,%d,%d)", tag, firstRow, numRows, firstCol, numCols)
	}
}

// checkSameLen guards binary vector operations.
func checkSameLen(tag string, a, b Vector) {
	if a.Len() != b.Len() {
		fault(ErrDimensionMismatch, "%s: len %d != %d", tag, a.Len(), b.Len())
	}
}

// checkIndex guards a single vector index against n.
func checkIndex(tag string, i, n int) {
	if i < 0 || i >= n {
		fault(ErrOutOfRange, "%s(%d)", tag, i)
	}
}

// checkCell guards a matrix coordinate against r×c.
func checkCell(tag string, i, j, r, c int) {
	if i < 0 || i >= r || j < 0 || j >= c {
		fault(ErrOutOfRange, "%s(%d,%d)", tag, i, j)
	}
}
