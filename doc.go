// Package lalg is a small dense linear-algebra toolkit built around one idea:
// a matrix and every window into it share the same storage.
//
// What is inside?
//
//	matrix/          Vector & Matrix interfaces, Dense storage, zero-copy
//	                 row/column/sub-matrix views, elementary row operations,
//	                 echelon and reduced echelon form, gonum interop
//	trace/           injectable step-by-step trace output for the reductions
//	internal/textfmt/ padding and line wrapping used by rendering and tracing
//	cmd/rref/        command-line reducer for matrices read from text
//	examples/        runnable programs
//
// Quick example:
//
//	m, _ := matrix.NewDenseFrom([][]float64{{2, 1, -1, 8}, {-3, -1, 2, -11}, {-2, 1, 2, -3}})
//	matrix.ToReducedEchelonForm(m)
//	fmt.Print(m) // last column holds the solution 2, 3, -1
//
// Writes through any view land in the backing matrix, so reducing a window
// reduces that block of the original in place.
//
//	go get github.com/katalvlaran/lalg/matrix
package lalg
