// SPDX-License-Identifier: MIT

package lstsq

import (
	"fmt"

	"github.com/katalvlaran/linfit/matrix"
)

// Residual returns A·x − b as a column.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when x is not a cols(A)-column or
// b is not a rows(A)-column.
func Residual(a, x, b matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, solverErrorf(opResidual, fmt.Errorf("A: %w", err))
	}
	if err := matrix.ValidateColumnVector(x); err != nil {
		return nil, solverErrorf(opResidual, fmt.Errorf("x: %w", err))
	}
	if err := matrix.ValidateColumnVector(b); err != nil {
		return nil, solverErrorf(opResidual, fmt.Errorf("b: %w", err))
	}
	if x.Rows() != a.Cols() || b.Rows() != a.Rows() {
		return nil, solverErrorf(opResidual, ErrDimensionMismatch)
	}

	ax, err := matrix.Mul(a, x)
	if err != nil {
		return nil, solverErrorf(opResidual, err)
	}
	r, err := matrix.Sub(ax, b)
	if err != nil {
		return nil, solverErrorf(opResidual, err)
	}

	return r, nil
}

// ResidualNorm returns ‖A·x − b‖₂.
func ResidualNorm(a, x, b matrix.Matrix) (float64, error) {
	r, err := Residual(a, x, b)
	if err != nil {
		return 0, err
	}

	return matrix.Norm2(r)
}
