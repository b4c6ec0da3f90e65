// SPDX-License-Identifier: MIT

package lstsq

import "github.com/katalvlaran/linfit/matrix"

// SolveNormal returns the least-squares x from the normal equations.
//
// Setting the gradient of (A·x − b)ᵀ(A·x − b) to zero gives
//
//	AᵀA·x = Aᵀb
//
// which is solved as a square system (pivoted LU with the default provider),
// never by forming (AᵀA)⁻¹.
//
// AᵀA squares the condition number of A. On ill-conditioned inputs this loses
// roughly twice the digits SolveQR does. The singularity threshold is relative
// to max|AᵀA|, so full-rank A whose column norms differ by many orders of
// magnitude can fail with ErrSingular where SolveQR succeeds; rescale the
// columns of A to comparable norms first.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation, before any product).
//   - ErrSingular when AᵀA is singular, i.e. A lacks full column rank.
//
// Complexity: O(m·n²) to form AᵀA, O(n³) to solve.
func SolveNormal(a, b matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	if err := validateProblem(a, b); err != nil {
		return nil, solverErrorf(opSolveNormal, err)
	}
	p := gatherOptions(opts...).provider

	at, err := p.Transpose(a)
	if err != nil {
		return nil, solverErrorf(opSolveNormal, err)
	}
	gram, err := p.Mul(at, a) // n×n, symmetric
	if err != nil {
		return nil, solverErrorf(opSolveNormal, err)
	}
	proj, err := p.Mul(at, b) // n×1
	if err != nil {
		return nil, solverErrorf(opSolveNormal, err)
	}
	x, err := p.Solve(gram, proj)
	if err != nil {
		return nil, solverErrorf(opSolveNormal, err)
	}

	return x, nil
}
