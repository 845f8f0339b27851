// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lalg/internal/textfmt"
)

// ---------- Formatting literals ----------
const (
	_fmtVecOpen  = "<"
	_fmtVecClose = ">"
	_fmtRowOpen  = "|"
	_fmtRowClose = "|\n"
	_fmtSep      = ", "

	vecPrecision  = 6 // digits after the point in FormatVector
	cellPrecision = 2 // digits after the point in Format
	cellWidth     = 6 // minimum cell width in Format, right-justified
)

// FormatVector renders v as "<v0, v1, ...>" with six decimals per element.
// Complexity: O(n).
func FormatVector(v Vector) string {
	var b strings.Builder
	n := v.Len()
	b.WriteString(_fmtVecOpen)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(formatFloat(v.At(i), vecPrecision))
	}
	b.WriteString(_fmtVecClose)

	return b.String()
}

// Format renders m one line per row as "|a, b, ...|", each value with two
// decimals right-justified in a six-character cell.
// Complexity: O(r*c).
func Format(m Matrix) string {
	var b strings.Builder
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(textfmt.Right(formatFloat(m.At(i, j), cellPrecision), cellWidth))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// formatFloat matches fmt's %.Nf, including "+Inf", "-Inf" and "NaN".
func formatFloat(x float64, prec int) string {
	return strconv.FormatFloat(x, 'f', prec, 64)
}

// formatted defers Format until the value is printed, so a disabled tracer
// never renders anything.
type formatted struct{ m Matrix }

func (f formatted) String() string { return Format(f.m) }
