// SPDX-License-Identifier: MIT

// Package lstsq solves overdetermined linear systems A·x ≈ b in the
// least-squares sense: it returns the x minimizing ‖A·x − b‖₂.
//
// Two methods are offered and the caller always chooses:
//
//	SolveQR      Householder QR of A, then back-substitution on the top n×n
//	             block of R. Numerically preferred.
//	SolveNormal  Solves AᵀA·x = Aᵀb. Cheaper for tall, skinny A but squares
//	             the condition number.
//
// Both expect A to be m×n with m >= n and full column rank, and b to be m×1.
// Shape violations return ErrDimensionMismatch before any decomposition runs;
// rank deficiency returns ErrSingular. Inputs are never mutated and calls
// share no state, so concurrent use is safe.
//
// All matrix arithmetic goes through a Provider. DenseProvider, backed by
// package matrix, is the default; WithProvider plugs in another backend.
//
// Helpers for curve fitting (Vandermonde, PolyFit, PolyEval) and for checking
// a solution (Residual, ResidualNorm) are built on the same solvers.
package lstsq
