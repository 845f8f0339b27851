// SPDX-License-Identifier: MIT

// Package matrix - non-owning views.
//
// Purpose:
//   - RowView / ColView present part of a row or column as a Vector.
//   - SubMatrix presents a rectangular window as a Matrix.
//
// Invariants:
//   - A view holds its immediate backing Matrix plus offsets, nothing else.
//   - A view of a SubMatrix is built by the SubMatrix's backing matrix in its
//     own coordinates; the delegation chain is at most one layer deep.
//   - Set on a view IS a Set on the backing matrix; there is no view storage.
//   - A view must not outlive the storage it was carved from.
package matrix

import "fmt"

// RowView is a Vector over n consecutive elements of one row of base.
type RowView struct {
	base  Matrix // backing matrix (not owned)
	row   int    // row index in base
	first int    // first column in base
	n     int    // dimension
}

var (
	_ Vector       = (*RowView)(nil)
	_ fmt.Stringer = (*RowView)(nil)
)

// newRowView validates the span and binds a RowView to m.
func newRowView(m Matrix, row, firstCol, n int) *RowView {
	checkRowSpan("RowView", m, row, firstCol, n)

	return &RowView{base: m, row: row, first: firstCol, n: n}
}

// Len returns the dimension of the view.
func (v *RowView) Len() int { return v.n }

// At reads element i of the view.
func (v *RowView) At(i int) float64 {
	checkIndex("RowView.At", i, v.n)

	return v.base.At(v.row, v.first+i)
}

// Set writes element i of the view through to the backing matrix.
func (v *RowView) Set(i int, x float64) {
	checkIndex("RowView.Set", i, v.n)
	v.base.Set(v.row, v.first+i, x)
}

func (v *RowView) String() string { return FormatVector(v) }

// ColView is a Vector over n consecutive elements of one column of base.
type ColView struct {
	base  Matrix // backing matrix (not owned)
	col   int    // column index in base
	first int    // first row in base
	n     int    // dimension
}

var (
	_ Vector       = (*ColView)(nil)
	_ fmt.Stringer = (*ColView)(nil)
)

func newColView(m Matrix, col, firstRow, n int) *ColView {
	checkColSpan("ColView", m, col, firstRow, n)

	return &ColView{base: m, col: col, first: firstRow, n: n}
}

// Len returns the dimension of the view.
func (v *ColView) Len() int { return v.n }

// At reads element i of the view.
func (v *ColView) At(i int) float64 {
	checkIndex("ColView.At", i, v.n)

	return v.base.At(v.first+i, v.col)
}

// Set writes element i of the view through to the backing matrix.
func (v *ColView) Set(i int, x float64) {
	checkIndex("ColView.Set", i, v.n)
	v.base.Set(v.first+i, v.col, x)
}

func (v *ColView) String() string { return FormatVector(v) }

// SubMatrix is a non-owning r×c window into base whose (0,0) is base's (r0,c0).
//
// Behavior highlights:
//   - Every access translates (i,j) → (i+r0, j+c0) on base.
//   - SubRow/SubCol/SubMatrix compose offsets and ask base for the view, so a
//     SubMatrix of a SubMatrix is another single-layer view of the same base.
type SubMatrix struct {
	base Matrix // backing matrix (not owned)
	r0   int    // top row in base
	c0   int    // left column in base
	r    int    // view height
	c    int    // view width
}

var (
	_ Matrix       = (*SubMatrix)(nil)
	_ Viewer       = (*SubMatrix)(nil)
	_ fmt.Stringer = (*SubMatrix)(nil)
)

// newSubMatrix validates the region and binds a SubMatrix to m.
func newSubMatrix(m Matrix, firstRow, numRows, firstCol, numCols int) *SubMatrix {
	checkRegion("SubMatrix", m, firstRow, numRows, firstCol, numCols)

	return &SubMatrix{base: m, r0: firstRow, c0: firstCol, r: numRows, c: numCols}
}

// Rows returns the number of rows in the view.
func (s *SubMatrix) Rows() int { return s.r }

// Cols returns the number of columns in the view.
func (s *SubMatrix) Cols() int { return s.c }

// Offset returns the position of the view's (0,0) in its backing matrix.
func (s *SubMatrix) Offset() (row, col int) { return s.r0, s.c0 }

// Base returns the backing matrix.
func (s *SubMatrix) Base() Matrix { return s.base }

// At reads (i,j) in view coordinates.
func (s *SubMatrix) At(i, j int) float64 {
	checkCell("SubMatrix.At", i, j, s.r, s.c)

	return s.base.At(s.r0+i, s.c0+j)
}

// Set writes (i,j) in view coordinates through to the backing matrix.
func (s *SubMatrix) Set(i, j int, v float64) {
	checkCell("SubMatrix.Set", i, j, s.r, s.c)
	s.base.Set(s.r0+i, s.c0+j, v)
}

// SubRow returns a row view expressed against the backing matrix.
func (s *SubMatrix) SubRow(row, firstCol, n int) Vector {
	checkRowSpan("SubMatrix."+ctxSubRow, s, row, firstCol, n)

	return SubRow(s.base, s.r0+row, s.c0+firstCol, n)
}

// SubCol returns a column view expressed against the backing matrix.
func (s *SubMatrix) SubCol(col, firstRow, n int) Vector {
	checkColSpan("SubMatrix."+ctxSubCol, s, col, firstRow, n)

	return SubCol(s.base, s.c0+col, s.r0+firstRow, n)
}

// SubMatrix returns a window of this window, built by the backing matrix with
// composed offsets.
func (s *SubMatrix) SubMatrix(firstRow, numRows, firstCol, numCols int) Matrix {
	checkRegion("SubMatrix."+ctxSubMatrix, s, firstRow, numRows, firstCol, numCols)

	return Sub(s.base, s.r0+firstRow, numRows, s.c0+firstCol, numCols)
}

func (s *SubMatrix) String() string { return Format(s) }
