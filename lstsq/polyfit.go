// SPDX-License-Identifier: MIT

package lstsq

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linfit/matrix"
)

// Vandermonde builds the len(xs)×(degree+1) design matrix V[i][j] = xs[i]^j.
//
// Errors:
//   - ErrBadDegree for degree < 0.
//   - matrix.ErrInvalidDimensions for empty xs.
//   - matrix.ErrNaNInf for a non-finite sample.
func Vandermonde(xs []float64, degree int) (*matrix.Dense, error) {
	if degree < 0 {
		return nil, solverErrorf(opVandermonde, fmt.Errorf("degree %d: %w", degree, ErrBadDegree))
	}
	// Checked up front: at degree 0 no entry depends on x.
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, solverErrorf(opVandermonde, fmt.Errorf("xs[%d]: %w", i, matrix.ErrNaNInf))
		}
	}

	cols := degree + 1
	v, err := matrix.NewZeros(len(xs), cols)
	if err != nil {
		return nil, solverErrorf(opVandermonde, err)
	}
	var p float64
	for i, x := range xs {
		p = 1.0
		for j := 0; j < cols; j++ {
			if err = v.Set(i, j, p); err != nil {
				return nil, solverErrorf(opVandermonde, err)
			}
			p *= x
		}
	}

	return v, nil
}

// PolyFit fits a polynomial of the given degree to (xs, ys) in the
// least-squares sense and returns its coefficients, constant term first.
//
// Errors:
//   - ErrNilMatrix for nil ys, ErrDimensionMismatch when len(xs) != len(ys).
//   - matrix.ErrNaNInf for a non-finite x, at every degree.
//   - ErrBadDegree when degree < 0 or len(xs) <= degree.
//   - ErrSingular when the samples hold fewer than degree+1 distinct xs.
//   - Anything Solve returns for method.
func PolyFit(xs, ys []float64, degree int, method Method, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateVecLen(ys, len(xs)); err != nil {
		return nil, solverErrorf(opPolyFit, fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), err))
	}
	if degree < 0 || len(xs) <= degree {
		return nil, solverErrorf(opPolyFit, fmt.Errorf("degree %d with %d samples: %w", degree, len(xs), ErrBadDegree))
	}

	v, err := Vandermonde(xs, degree)
	if err != nil {
		return nil, solverErrorf(opPolyFit, err)
	}
	b, err := matrix.NewColumn(ys)
	if err != nil {
		return nil, solverErrorf(opPolyFit, err)
	}
	x, err := Solve(v, b, method, opts...)
	if err != nil {
		return nil, solverErrorf(opPolyFit, err)
	}

	coeffs, err := matrix.Column(x, 0)
	if err != nil {
		return nil, solverErrorf(opPolyFit, err)
	}

	return coeffs, nil
}

// PolyEval evaluates coeffs (constant term first) at x by Horner's rule.
// Empty coeffs evaluate to 0.
func PolyEval(coeffs []float64, x float64) float64 {
	y := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}

	return y
}
