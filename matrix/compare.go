// SPDX-License-Identifier: MIT

package matrix

import "math"

// canonicalNaN is the single bit pattern every NaN compares as.
const canonicalNaN = 0x7ff8000000000000

// Compare orders vectors lexicographically by element. If one vector is a
// prefix of the other, the shorter one is less. The result is -1, 0 or +1.
//
// Elements are compared under a total order: -0 < +0, and NaN equals NaN and
// is greater than +Inf. Compare only looks at values, never at the concrete
// type, so a RowView can equal a DenseVector.
//
// Complexity: O(min(a.Len(), b.Len())).
func Compare(a, b Vector) int {
	la, lb := a.Len(), b.Len()
	n := min(la, lb)
	for i := 0; i < n; i++ {
		if c := compareFloat(a.At(i), b.At(i)); c != 0 {
			return c
		}
	}
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	}

	return 0
}

// Equal reports whether Compare(a, b) == 0.
func Equal(a, b Vector) bool { return Compare(a, b) == 0 }

// compareFloat is the total order used by Compare.
func compareFloat(x, y float64) int {
	if x < y {
		return -1
	}
	if x > y {
		return 1
	}
	// Equal by ==, or at least one NaN: fall back to ordered bit patterns.
	bx, by := orderedBits(x), orderedBits(y)
	switch {
	case bx == by:
		return 0
	case bx < by:
		return -1
	}

	return 1
}

// orderedBits maps x to a signed integer whose order matches compareFloat for
// the ±0 and NaN cases.
func orderedBits(x float64) int64 {
	if math.IsNaN(x) {
		return canonicalNaN
	}

	return int64(math.Float64bits(x))
}
