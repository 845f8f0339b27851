// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap these with fmt.Errorf("ctx: %w", ErrX) so callers can match them with
// errors.Is, including after recovering a panic.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a constructor is asked for a
	// non-positive number of rows or columns.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row, column or vector index is outside
	// the object's bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. adding vectors of different length or SetRow with a short vector.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape indicates a view request whose region does not lie inside
	// the matrix it is taken from.
	ErrBadShape = errors.New("matrix: invalid view shape")

	// ErrNoPivot signals that a pivot search found no non-zero candidate in a
	// column that was required to hold one.
	ErrNoPivot = errors.New("matrix: no non-zero pivot value")

	// ErrNilMatrix indicates that a nil Matrix or Vector was passed in.
	ErrNilMatrix = errors.New("matrix: nil argument")
)

// fault panics with err wrapped under a formatted call-site tag.
// Used for precondition and invariant violations only.
func fault(err error, format string, args ...any) {
	panic(fmt.Errorf(format+": %w", append(args, err)...))
}
