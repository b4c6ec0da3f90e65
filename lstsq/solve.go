// SPDX-License-Identifier: MIT

package lstsq

import (
	"fmt"

	"github.com/katalvlaran/linfit/matrix"
)

// Solve runs the explicitly chosen method on (a, b).
//
// Errors:
//   - ErrUnknownMethod for a Method other than MethodQR / MethodNormal.
//   - Everything SolveQR / SolveNormal return.
func Solve(a, b matrix.Matrix, method Method, opts ...Option) (matrix.Matrix, error) {
	switch method {
	case MethodQR:
		return SolveQR(a, b, opts...)
	case MethodNormal:
		return SolveNormal(a, b, opts...)
	default:
		return nil, solverErrorf(opSolve, fmt.Errorf("%v: %w", method, ErrUnknownMethod))
	}
}

// validateProblem enforces the shape contract shared by both methods:
// non-nil A and b, b a single column with rows(b) == rows(A), rows(A) >= cols(A).
// It runs before any provider call.
func validateProblem(a, b matrix.Matrix) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return fmt.Errorf("A: %w", err)
	}
	if err := matrix.ValidateColumnVector(b); err != nil {
		return fmt.Errorf("b: %w", err)
	}
	if b.Rows() != a.Rows() {
		return fmt.Errorf("height(b)=%d, rows(A)=%d: %w", b.Rows(), a.Rows(), ErrDimensionMismatch)
	}
	if a.Rows() < a.Cols() {
		return fmt.Errorf("underdetermined: rows(A)=%d < cols(A)=%d: %w", a.Rows(), a.Cols(), ErrDimensionMismatch)
	}
	if a.Cols() == 0 {
		return fmt.Errorf("cols(A)=0: %w", ErrDimensionMismatch)
	}

	return nil
}
