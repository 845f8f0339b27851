// SPDX-License-Identifier: MIT

// Package matrix - DenseVector: owning, contiguous vector storage.
//
// AI-Hints:
//   - NewVector(1, 2, 3) is the literal form; NewDenseVector(n) is zeroed.
//   - RawData aliases the storage; use CopyVector for an independent copy.
package matrix

import "fmt"

// DenseVector is a Vector backed by a slice it owns.
type DenseVector struct {
	data []float64 // len == dimension
}

var (
	_ Vector       = (*DenseVector)(nil)
	_ fmt.Stringer = (*DenseVector)(nil)
)

// NewDenseVector returns a zero vector of dimension n.
// A zero-length vector is legal. Panics with ErrOutOfRange when n < 0.
// Complexity: O(n).
func NewDenseVector(n int) *DenseVector {
	if n < 0 {
		fault(ErrOutOfRange, "NewDenseVector(%d)", n)
	}

	return &DenseVector{data: make([]float64, n)}
}

// NewVector returns a vector holding a copy of vals.
func NewVector(vals ...float64) *DenseVector {
	data := make([]float64, len(vals))
	copy(data, vals)

	return &DenseVector{data: data}
}

// Len returns the dimension. Complexity: O(1).
func (v *DenseVector) Len() int { return len(v.data) }

// At returns element i or panics with ErrOutOfRange.
func (v *DenseVector) At(i int) float64 {
	checkIndex("DenseVector.At", i, len(v.data))

	return v.data[i]
}

// Set stores x at index i or panics with ErrOutOfRange.
func (v *DenseVector) Set(i int, x float64) {
	checkIndex("DenseVector.Set", i, len(v.data))
	v.data[i] = x
}

// RawData returns the backing slice. Writes to it are writes to v.
func (v *DenseVector) RawData() []float64 { return v.data }

// String renders v as <v0, v1, ...>.
func (v *DenseVector) String() string { return FormatVector(v) }
