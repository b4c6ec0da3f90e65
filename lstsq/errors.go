// SPDX-License-Identifier: MIT
// Package lstsq: sentinel error set.
//
// Dimension, singularity and nil-argument sentinels are shared with the matrix
// package, so errors.Is matches whether the failure was caught by the solver's
// own validation or surfaced by the provider.

package lstsq

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linfit/matrix"
)

var (
	// ErrDimensionMismatch is returned when b is not a single column, when
	// rows(b) != rows(A), or when A has fewer rows than columns.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrSingular is returned when the square system of either method
	// (R′ for QR, AᵀA for the normal equations) is not invertible, i.e. A
	// lacks full column rank.
	ErrSingular = matrix.ErrSingular

	// ErrNilMatrix is returned when A or b is nil.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrUnknownMethod is returned by Solve and ParseMethod for an unsupported Method.
	ErrUnknownMethod = errors.New("lstsq: unknown method")

	// ErrBadDegree is returned by Vandermonde and PolyFit for a negative degree
	// or one that leaves fewer samples than coefficients.
	ErrBadDegree = errors.New("lstsq: invalid polynomial degree")
)

// Operation tags for error wrapping.
const (
	opSolveQR     = "SolveQR"
	opSolveNormal = "SolveNormal"
	opSolve       = "Solve"
	opResidual    = "Residual"
	opVandermonde = "Vandermonde"
	opPolyFit     = "PolyFit"
)

// solverErrorf wraps err with the operation tag; errors.Is still sees the sentinel.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("lstsq.%s: %w", tag, err)
}
