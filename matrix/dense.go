// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & view factories.
//
// Purpose:
//   - Provide the one owning matrix variant: a flat buffer with the explicit
//     index formula i*cols + j.
//   - Hand out no-copy views (RowView, ColView, SubMatrix) bound to itself.
//
// AI-Hints:
//   - Use Sub/Row/Col (or the Viewer methods) for windows; writes reach the base.
//   - Use Copy or Clone when the result must have an independent lifetime.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); views: O(1).
package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxSubRow    = "SubRow"
	ctxSubCol    = "SubCol"
	ctxSubMatrix = "SubMatrix"
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ Viewer       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// newDenseZeroOK is the internal constructor that allows rows==0 or cols==0.
// Copying a zero-extent view (which reduction produces legally) goes through it.
func newDenseZeroOK(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewDenseFrom builds a matrix from row slices (copied).
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFrom: %w", ErrInvalidDimensions)
	}
	m := newDenseZeroOK(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d values, want %d: %w",
				i, len(row), m.c, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// NewDenseFromRows builds a matrix whose rows are copies of the given vectors.
// Every vector must have the dimension of the first.
func NewDenseFromRows(rows ...Vector) (*Dense, error) {
	if len(rows) == 0 || rows[0] == nil || rows[0].Len() == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrInvalidDimensions)
	}
	m := newDenseZeroOK(len(rows), rows[0].Len())
	for i, v := range rows {
		if v == nil {
			return nil, fmt.Errorf("NewDenseFromRows: row %d: %w", i, ErrNilMatrix)
		}
		if v.Len() != m.c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w",
				i, v.Len(), m.c, ErrDimensionMismatch)
		}
		SetRow(m, i, v)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row, col) and returns the row-major offset.
// Both coordinates are checked: a bad column must not alias the next row.
func (m *Dense) indexOf(method string, row, col int) int {
	checkCell("Dense."+method, row, col, m.r, m.c)

	return row*m.c + col
}

// At returns the value at (row, col). Panics with ErrOutOfRange.
func (m *Dense) At(row, col int) float64 {
	return m.data[m.indexOf(ctxAt, row, col)]
}

// Set stores v at (row, col). Panics with ErrOutOfRange.
func (m *Dense) Set(row, col int, v float64) {
	m.data[m.indexOf(ctxSet, row, col)] = v
}

// SubRow returns a RowView over n elements of row starting at firstCol.
// Panics with ErrBadShape when the span leaves the matrix.
func (m *Dense) SubRow(row, firstCol, n int) Vector {
	checkRowSpan("Dense."+ctxSubRow, m, row, firstCol, n)

	return &RowView{base: m, row: row, first: firstCol, n: n}
}

// SubCol returns a ColView over n elements of col starting at firstRow.
func (m *Dense) SubCol(col, firstRow, n int) Vector {
	checkColSpan("Dense."+ctxSubCol, m, col, firstRow, n)

	return &ColView{base: m, col: col, first: firstRow, n: n}
}

// SubMatrix returns a no-copy window onto m.
//
// Behavior highlights:
//   - Writes via the view reflect in m.
//   - Zero-extent windows are legal.
//
// Complexity: O(1).
func (m *Dense) SubMatrix(firstRow, numRows, firstCol, numCols int) Matrix {
	checkRegion("Dense."+ctxSubMatrix, m, firstRow, numRows, firstCol, numCols)

	return &SubMatrix{base: m, r0: firstRow, c0: firstCol, r: numRows, c: numCols}
}

// Clone returns a deep copy (new buffer). Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RawData returns the row-major backing slice. Writes to it are writes to m.
func (m *Dense) RawData() []float64 { return m.data }

// String renders m one |a, b, ...| line per row (see Format).
func (m *Dense) String() string { return Format(m) }
