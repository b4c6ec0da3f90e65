// SPDX-License-Identifier: MIT

package lstsq

import "github.com/katalvlaran/linfit/matrix"

// Provider is the linear-algebra capability both solvers are written against.
// Dimension queries come from matrix.Matrix (Rows, Cols).
//
// Contract for implementations:
//   - Inputs are never mutated; every result is a fresh matrix.
//   - Mul reports inner-dimension disagreement with matrix.ErrDimensionMismatch.
//   - QR returns Q (m×m, QᵀQ = I) and R (m×n, upper-triangular) with A = Q·R.
//   - Slice returns rows [r0,r1) and columns [c0,c1); empty windows are legal.
//   - Solve and Inverse report a non-invertible input with matrix.ErrSingular.
type Provider interface {
	Mul(a, b matrix.Matrix) (matrix.Matrix, error)
	Transpose(m matrix.Matrix) (matrix.Matrix, error)
	QR(m matrix.Matrix) (q, r matrix.Matrix, err error)
	Slice(m matrix.Matrix, r0, r1, c0, c1 int) (matrix.Matrix, error)
	Solve(a, b matrix.Matrix) (matrix.Matrix, error)
	Inverse(m matrix.Matrix) (matrix.Matrix, error)
}

// DenseProvider implements Provider with the pure-Go kernels of package matrix.
// The zero value uses the matrix package defaults.
type DenseProvider struct {
	opts []matrix.Option // numeric policy forwarded to Solve and Inverse
}

var _ Provider = DenseProvider{}

// NewDenseProvider returns a DenseProvider whose Solve and Inverse apply opts
// (e.g. matrix.WithSingularTol).
func NewDenseProvider(opts ...matrix.Option) DenseProvider {
	return DenseProvider{opts: opts}
}

// Mul returns a·b.
func (DenseProvider) Mul(a, b matrix.Matrix) (matrix.Matrix, error) { return matrix.Mul(a, b) }

// Transpose returns mᵀ.
func (DenseProvider) Transpose(m matrix.Matrix) (matrix.Matrix, error) { return matrix.Transpose(m) }

// QR returns the Householder factors of m.
func (DenseProvider) QR(m matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) { return matrix.QR(m) }

// Slice copies a contiguous window of m.
func (DenseProvider) Slice(m matrix.Matrix, r0, r1, c0, c1 int) (matrix.Matrix, error) {
	return matrix.Slice(m, r0, r1, c0, c1)
}

// Solve solves a·x = b for square a through pivoted LU.
func (p DenseProvider) Solve(a, b matrix.Matrix) (matrix.Matrix, error) {
	return matrix.Solve(a, b, p.opts...)
}

// Inverse returns m⁻¹.
func (p DenseProvider) Inverse(m matrix.Matrix) (matrix.Matrix, error) {
	return matrix.Inverse(m, p.opts...)
}
