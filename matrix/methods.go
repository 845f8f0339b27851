// SPDX-License-Identifier: MIT

// Package matrix - derived operations over the Matrix interface.
//
// Purpose:
//   - Views (Row, Col, SubRow, SubCol, Sub) with Viewer dispatch.
//   - Row/column setters.
//   - The three elementary row operations: SwapRows, ScaleRow, AddRowsWithMult.
//   - Leading entries and row normalization.
//
// Everything here is written purely in terms of Rows/Cols/At/Set, so any
// Matrix implementation, storage or view, gets it for free.
//
// Determinism:
//   - Fixed left-to-right column order in every row loop; the arithmetic order
//     (target + source*k, scale*value) is part of the contract.
package matrix

// ---------- Views ----------

// Row returns a full-length view of row r.
func Row(m Matrix, r int) Vector { return SubRow(m, r, 0, m.Cols()) }

// Col returns a full-length view of column c.
func Col(m Matrix, c int) Vector { return SubCol(m, c, 0, m.Rows()) }

// SubRow returns a view of n elements of row starting at firstCol.
// Panics with ErrBadShape when the span is not inside m.
func SubRow(m Matrix, row, firstCol, n int) Vector {
	if v, ok := m.(Viewer); ok {
		return v.SubRow(row, firstCol, n)
	}

	return newRowView(m, row, firstCol, n)
}

// SubCol returns a view of n elements of col starting at firstRow.
func SubCol(m Matrix, col, firstRow, n int) Vector {
	if v, ok := m.(Viewer); ok {
		return v.SubCol(col, firstRow, n)
	}

	return newColView(m, col, firstRow, n)
}

// Sub returns a numRows×numCols view of m whose (0,0) is (firstRow, firstCol).
// When m is itself a view the result is bound to m's backing storage, not to m.
// Panics with ErrBadShape when the region is not inside m.
func Sub(m Matrix, firstRow, numRows, firstCol, numCols int) Matrix {
	if v, ok := m.(Viewer); ok {
		return v.SubMatrix(firstRow, numRows, firstCol, numCols)
	}

	return newSubMatrix(m, firstRow, numRows, firstCol, numCols)
}

// ---------- Setters ----------

// SetRow copies v into row r. v.Len() must equal m.Cols().
func SetRow(m Matrix, r int, v Vector) {
	if v.Len() != m.Cols() {
		fault(ErrDimensionMismatch, "SetRow(%d): len %d != cols %d", r, v.Len(), m.Cols())
	}
	SetSubRow(m, r, 0, v)
}

// SetCol copies v into the top of column c. v.Len() must not exceed m.Rows().
func SetCol(m Matrix, c int, v Vector) {
	if v.Len() > m.Rows() {
		fault(ErrDimensionMismatch, "SetCol(%d): len %d > rows %d", c, v.Len(), m.Rows())
	}
	SetSubCol(m, c, 0, v)
}

// SetSubRow copies v into row r starting at firstCol.
// Panics with ErrOutOfRange if the span runs past the last column.
func SetSubRow(m Matrix, r, firstCol int, v Vector) {
	n := v.Len()
	for i := 0; i < n; i++ {
		m.Set(r, firstCol+i, v.At(i))
	}
}

// SetSubCol copies v into column c starting at firstRow.
func SetSubCol(m Matrix, c, firstRow int, v Vector) {
	n := v.Len()
	for i := 0; i < n; i++ {
		m.Set(firstRow+i, c, v.At(i))
	}
}

// ---------- Elementary row operations ----------

// SwapRows exchanges rows r1 and r2. It is a no-op when r1 == r2.
// Complexity: O(cols).
func SwapRows(m Matrix, r1, r2 int) {
	if r1 == r2 {
		return // same row, nothing to exchange
	}
	cols := m.Cols()
	var tmp float64
	for j := 0; j < cols; j++ {
		tmp = m.At(r1, j)
		m.Set(r1, j, m.At(r2, j))
		m.Set(r2, j, tmp)
	}
}

// ScaleRow multiplies every element of row r by k.
func ScaleRow(m Matrix, r int, k float64) {
	cols := m.Cols()
	for j := 0; j < cols; j++ {
		m.Set(r, j, k*m.At(r, j))
	}
}

// AddRowsWithMult adds k times row src to row dst: dst[j] += k*src[j].
// src == dst is allowed (the row is scaled by 1+k, element by element).
// Only dst changes; columns where src is zero keep their value.
// Complexity: O(cols).
func AddRowsWithMult(m Matrix, src int, k float64, dst int) {
	cols := m.Cols()
	var target, delta float64
	for j := 0; j < cols; j++ {
		target = m.At(dst, j)
		delta = float64(m.At(src, j) * k) // rounded product; no fused multiply-add
		m.Set(dst, j, target+delta)
	}
}

// ---------- Leading entries & normalization ----------

// LeadingEntryCol returns the column of the first exactly non-zero value in
// row r, or -1 when the row is all zeros.
func LeadingEntryCol(m Matrix, r int) int {
	cols := m.Cols()
	for j := 0; j < cols; j++ {
		if m.At(r, j) != 0 {
			return j
		}
	}

	return -1 // no leading entry
}

// LeadingEntry returns the leading entry of row r, or 0 for an all-zero row.
func LeadingEntry(m Matrix, r int) float64 {
	le := LeadingEntryCol(m, r)
	if le == -1 {
		return 0
	}

	return m.At(r, le)
}

// NormalizeRow scales row r so that its leading entry is exactly 1. The pivot
// cell is assigned 1.0 directly; cells right of it are multiplied by 1/pivot.
// An all-zero row is left alone.
func NormalizeRow(m Matrix, r int) {
	le := LeadingEntryCol(m, r)
	if le == -1 {
		return // all zeros
	}
	scale := 1.0 / m.At(r, le)
	m.Set(r, le, 1.0)
	cols := m.Cols()
	for j := le + 1; j < cols; j++ {
		m.Set(r, j, scale*m.At(r, j))
	}
}

// Normalize applies NormalizeRow to every row of m.
func Normalize(m Matrix) {
	rows := m.Rows()
	for i := 0; i < rows; i++ {
		NormalizeRow(m, i)
	}
}

// IsSquare reports whether m has as many rows as columns.
func IsSquare(m Matrix) bool { return m.Rows() == m.Cols() }
