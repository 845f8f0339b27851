// SPDX-License-Identifier: MIT

// Package matrix - row reduction to echelon and reduced echelon form.
//
// Purpose:
//   - ToEchelonForm: partial-pivoting elimination over shrinking sub-matrix
//     views of the input.
//   - ReduceEchelonForm: bottom-up normalization and back substitution.
//
// Only the elementary row operations (SwapRows, AddRowsWithMult, and the
// scaling inside NormalizeRow) touch the matrix. The input is mutated in
// place, through however many view layers it was handed in with.
//
// Echelon form:
//  1. All non-zero rows are above any rows of all zeros.
//  2. Each leading entry is in a column right of the leading entry above it.
//  3. All entries in a column below a leading entry are zero.
//
// Reduced echelon form adds:
//  4. Every leading entry is 1.
//  5. Each leading 1 is the only non-zero entry in its column.
//
// Numeric policy: exact zero tests; multipliers are -(a/pivot); eliminated
// cells are computed by subtraction and are not forced to 0.
package matrix

import "math"

// Copy returns a Dense holding the current values of m, independent of it.
// Zero-extent views copy to zero-extent storage. Complexity: O(r*c).
func Copy(m Matrix) *Dense {
	rows, cols := m.Rows(), m.Cols()
	out := newDenseZeroOK(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j] = m.At(i, j)
		}
	}

	return out
}

// FindPivotColumn returns the leftmost column holding any non-zero value, or
// -1 when m is entirely zero. Columns are scanned left to right, each top to
// bottom. Complexity: O(r*c) worst case.
func FindPivotColumn(m Matrix) int {
	rows, cols := m.Rows(), m.Cols()
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if m.At(i, j) != 0.0 {
				return j
			}
		}
	}

	return -1 // no non-zero element
}

// FindPivotRow returns the row with the largest absolute value in column 0.
// Ties go to the lowest row index.
//
// Panics with ErrNoPivot when column 0 is entirely zero, and with
// ErrOutOfRange when m has no cells.
func FindPivotRow(m Matrix) int {
	rows := m.Rows()
	maxVal := math.Abs(m.At(0, 0))
	maxRow := 0
	for i := 1; i < rows; i++ {
		if v := math.Abs(m.At(i, 0)); v > maxVal {
			maxVal, maxRow = v, i
		}
	}
	if maxVal == 0.0 {
		fault(ErrNoPivot, "FindPivotRow(%dx%d)", rows, m.Cols())
	}

	return maxRow
}

// ToEchelonForm puts m into row echelon form in place.
//
// Implementation (one pass per pivot):
//   - Stage 1: stop when ≤ 1 row remains or the region is all zero.
//   - Stage 2: drop leading all-zero columns by narrowing to a view.
//   - Stage 3: swap the largest-magnitude row of column 0 to the top.
//   - Stage 4: zero column 0 below the pivot with AddRowsWithMult.
//   - Stage 5: continue on the view without row 0 and column 0.
//
// Zero rows end up at the bottom as a consequence of the elimination; they are
// never sorted explicitly.
//
// Complexity: O(r²·c).
func ToEchelonForm(m Matrix, opts ...Option) {
	o := gatherOptions(opts...)
	toEchelonForm(m, o)
}

func toEchelonForm(m Matrix, o Options) {
	for {
		o.tracer.Tracef(true, "matrix at entry\n%s\n", formatted{m})
		rows, cols := m.Rows(), m.Cols()
		if rows <= 1 {
			return // a single row is already in echelon form
		}
		pivotCol := FindPivotColumn(m)
		if pivotCol == -1 {
			return // nothing non-zero left
		}
		if pivotCol > 0 {
			// The leftmost columns are all zero; ignore them from here on.
			m = Sub(m, 0, rows, pivotCol, cols-pivotCol)
			cols = m.Cols()
		}

		SwapRows(m, 0, FindPivotRow(m))

		pivot := m.At(0, 0)
		for i := 1; i < rows; i++ {
			lead := m.At(i, 0)
			if lead == 0 {
				continue
			}
			AddRowsWithMult(m, 0, -1*(lead/pivot), i)
		}
		o.tracer.Tracef(true, "matrix after zero reduction\n%s\n", formatted{m})

		m = Sub(m, 1, rows-1, 1, cols-1)
	}
}

// ReduceEchelonForm turns a matrix already in echelon form into reduced
// echelon form in place. Rows are processed bottom-up: each non-zero row is
// normalized, then its pivot column is cleared in every row above it.
//
// Behavior highlights:
//   - All-zero rows are skipped.
//   - Input not in echelon form is processed anyway; the result is then not
//     guaranteed to be reduced.
//
// Complexity: O(r²·c).
func ReduceEchelonForm(m Matrix, opts ...Option) {
	o := gatherOptions(opts...)
	reduceEchelonForm(m, o)
}

func reduceEchelonForm(m Matrix, o Options) {
	for r := m.Rows() - 1; r >= 0; r-- {
		le := LeadingEntryCol(m, r)
		if le == -1 {
			continue // all zeros
		}
		NormalizeRow(m, r)
		for above := 0; above < r; above++ {
			v := m.At(above, le)
			if v == 0.0 {
				continue
			}
			// The pivot is exactly 1, so the multiplier is just -v.
			AddRowsWithMult(m, r, -v, above)
		}
		o.tracer.Tracef(true, "matrix after reducing row %d\n%s\n", r, formatted{m})
	}
}

// ToReducedEchelonForm is ToEchelonForm followed by ReduceEchelonForm.
// The same options apply to both stages.
func ToReducedEchelonForm(m Matrix, opts ...Option) {
	o := gatherOptions(opts...)
	toEchelonForm(m, o)
	reduceEchelonForm(m, o)
}
