// SPDX-License-Identifier: MIT

package lstsq

import (
	"fmt"

	"github.com/katalvlaran/linfit/matrix"
)

// SolveQR returns the x minimizing ‖A·x − b‖₂ using a QR factorization.
//
// Algorithm:
//  1. A = Q·R with Q (m×m) orthogonal and R (m×n) upper-triangular.
//  2. Orthogonal Q preserves norms and Q⁻¹ = Qᵀ, so
//     ‖A·x − b‖ = ‖R·x − Qᵀ·b‖ for every x.
//  3. y = Qᵀ·b. Rows n..m-1 of R are zero, so split R into its top block
//     R′ (n×n) and y into c (first n rows) and d (last m−n rows):
//     ‖R·x − y‖² = ‖R′·x − c‖² + ‖d‖².
//  4. ‖d‖ does not depend on x; the minimum is reached at R′·x = c, solved by
//     back-substitution (or R′⁻¹·c with WithExplicitInverse).
//
// Preconditions: b is a column with rows(b) == rows(A) and rows(A) >= cols(A);
// violations return ErrDimensionMismatch before any factorization.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrSingular when some |r_kk| <= tol·max|r_ij| over the upper triangle of
//     R′, i.e. the columns of A are (numerically) linearly dependent.
//
// Complexity: O(m²·n) for the factorization, O(n²) for the substitution.
func SolveQR(a, b matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	x, _, err := solveQR(a, b, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	return x, nil
}

// SolveQRWithResidual is SolveQR that also returns ‖d‖₂, the norm of the
// trailing m−n rows of Qᵀ·b. It equals the minimal achievable ‖A·x − b‖₂
// (0 for square systems).
func SolveQRWithResidual(a, b matrix.Matrix, opts ...Option) (matrix.Matrix, float64, error) {
	return solveQR(a, b, gatherOptions(opts...))
}

func solveQR(a, b matrix.Matrix, o Options) (matrix.Matrix, float64, error) {
	if err := validateProblem(a, b); err != nil {
		return nil, 0, solverErrorf(opSolveQR, err)
	}
	p := o.provider
	m, n := a.Rows(), a.Cols()

	q, r, err := p.QR(a)
	if err != nil {
		return nil, 0, solverErrorf(opSolveQR, err)
	}
	qt, err := p.Transpose(q)
	if err != nil {
		return nil, 0, solverErrorf(opSolveQR, err)
	}
	y, err := p.Mul(qt, b) // Qᵀ·b == Q⁻¹·b
	if err != nil {
		return nil, 0, solverErrorf(opSolveQR, err)
	}

	rTop, err := p.Slice(r, 0, n, 0, n)
	if err != nil {
		return nil, 0, solverErrorf(opSolveQR, fmt.Errorf("R′: %w", err))
	}
	c, err := p.Slice(y, 0, n, 0, 1)
	if err != nil {
		return nil, 0, solverErrorf(opSolveQR, fmt.Errorf("c: %w", err))
	}
	d, err := p.Slice(y, n, m, 0, 1)
	if err != nil {
		return nil, 0, solverErrorf(opSolveQR, fmt.Errorf("d: %w", err))
	}

	var x matrix.Matrix
	if o.explicitInverse {
		inv, err := p.Inverse(rTop)
		if err != nil {
			return nil, 0, solverErrorf(opSolveQR, err)
		}
		if x, err = p.Mul(inv, c); err != nil {
			return nil, 0, solverErrorf(opSolveQR, err)
		}
	} else {
		x, err = matrix.SolveUpperTriangular(rTop, c, matrix.WithSingularTol(o.singularTol))
		if err != nil {
			return nil, 0, solverErrorf(opSolveQR, err)
		}
	}

	residual, err := matrix.Norm2(d)
	if err != nil {
		return nil, 0, solverErrorf(opSolveQR, err)
	}

	return x, residual, nil
}
