// Package linfit is a small, dependency-light toolkit for linear
// least-squares problems in pure Go.
//
// 🚀 What is linfit?
//
//	Given a tall matrix A (m×n, m ≥ n) and a vector b, linfit finds the x
//	minimizing ‖A·x − b‖₂:
//		• QR method: Householder factorization, then back-substitution
//		• Normal equations: AᵀA·x = Aᵀb through pivoted LU
//		• Typed failures: dimension mismatch vs. rank deficiency
//		• Curve fitting: Vandermonde design matrices and polynomial fits
//
// ✨ Why choose linfit?
//
//   - Explicit – the caller picks the method; nothing falls back silently
//   - Pluggable – all algebra goes through a Provider interface
//   - Pure Go – no cgo, no BLAS/LAPACK
//
// Under the hood, everything is organized under these packages:
//
//	matrix/           — Dense type, products, QR, LU, square and triangular solves
//	lstsq/            — SolveQR, SolveNormal, Provider, residuals, PolyFit
//	internal/problem/ — YAML/TOML problem files for the CLI
//	cmd/linfit/       — command-line driver (solve, fit, demo)
//
// Quick start:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 0}, {1, 1}, {1, 2}})
//	b, _ := matrix.NewColumn([]float64{1, 2, 2})
//	x, err := lstsq.SolveQR(a, b)
//
// See the examples/ directory for a complete calibration scenario.
package linfit
