// SPDX-License-Identifier: MIT

// Package matrix - vector utilities.
//
// All functions work through the Vector interface, so operands may be dense
// vectors or views. Output vectors may alias inputs: each element is read
// before it is written.
package matrix

// CopyVector returns a DenseVector holding the current values of v.
// The copy is independent of v. Complexity: O(n).
func CopyVector(v Vector) *DenseVector {
	n := v.Len()
	out := NewDenseVector(n)
	for i := 0; i < n; i++ {
		out.data[i] = v.At(i)
	}

	return out
}

// AddVec stores a[i]+b[i] into out[i] and returns out.
// All three must have the same dimension (ErrDimensionMismatch panic).
func AddVec(a, b, out Vector) Vector {
	checkSameLen("AddVec", a, b)
	checkSameLen("AddVec", a, out)
	n := a.Len()
	for i := 0; i < n; i++ {
		out.Set(i, a.At(i)+b.At(i))
	}

	return out
}

// ScaleVec stores k*v[i] into out[i] and returns out.
func ScaleVec(k float64, v, out Vector) Vector {
	checkSameLen("ScaleVec", v, out)
	n := v.Len()
	for i := 0; i < n; i++ {
		out.Set(i, k*v.At(i))
	}

	return out
}

// Dot returns the sum of a[i]*b[i], accumulated in index order.
func Dot(a, b Vector) float64 {
	checkSameLen("Dot", a, b)
	n := a.Len()
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a.At(i) * b.At(i))
	}

	return sum
}
