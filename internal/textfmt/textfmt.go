// SPDX-License-Identifier: MIT

// Package textfmt holds the small text helpers shared by the trace logger
// and the matrix renderers: fixed-width padding and break-character wrapping.
//
// Widths are measured in runes, not bytes.
package textfmt

import (
	"strings"
	"unicode/utf8"
)

// DefaultBreakChars are the characters after which Wrap may insert a separator.
const DefaultBreakChars = " :,.!\t"

// Right returns s right-justified in a field of the given width, padded on the
// left with spaces. Strings already at least width long are returned unchanged.
func Right(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}

	return strings.Repeat(" ", pad) + s
}

// Left returns s left-justified in a field of the given width.
func Left(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}

	return s + strings.Repeat(" ", pad)
}

// Center returns s centered in a field of the given width. When the padding
// is odd the extra space goes to the right.
func Center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Wrap inserts sep into s so that no run between separators grows past width,
// breaking only right after one of breakChars. A fragment longer than width is
// emitted whole on its own line; Wrap never splits inside a fragment.
//
// Complexity: O(len(s)).
func Wrap(s string, width int, breakChars, sep string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	section := 0 // runes written since the last separator
	for _, frag := range fragments(s, breakChars) {
		n := utf8.RuneCountInString(frag)
		if n+section > width && section > 0 {
			b.WriteString(sep)
			section = 0
		}
		b.WriteString(frag)
		section += n
	}

	return b.String()
}

// WrapIndent wraps s at limit using DefaultBreakChars, indenting every
// continuation line by indent spaces.
func WrapIndent(s string, limit, indent int) string {
	if indent < 0 {
		indent = 0
	}

	return Wrap(s, limit, DefaultBreakChars, "\n"+strings.Repeat(" ", indent))
}

// fragments splits s into pieces that each end with a break character (except
// possibly the last one). Concatenating the result yields s.
func fragments(s, breakChars string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if strings.ContainsRune(breakChars, r) {
			end := i + utf8.RuneLen(r)
			out = append(out, s[start:end])
			start = end
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}

	return out
}
