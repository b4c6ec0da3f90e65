// Package matrix provides the dense linear-algebra primitives the least-squares
// solvers are built on.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional float64 storage, and
//     Dense, its row-major implementation with bounds-checked At/Set.
//   - Products and shape operations: Mul, Transpose, Add, Sub, Slice, Column, Norm2.
//   - Factorizations: Householder QR (A = Q·R for any m×n) and pivoted LU.
//   - Direct solvers: Solve (square systems through LU), Inverse and
//     SolveUpperTriangular (back-substitution).
//
// Every kernel validates its inputs, never mutates them, and returns wrapped
// sentinel errors (ErrNilMatrix, ErrDimensionMismatch, ErrSingular, ...)
// that callers match with errors.Is.
//
// Singular systems are detected with a relative pivot threshold, configurable
// through WithSingularTol.
//
// See the examples in this package and in lstsq for usage patterns.
package matrix
