// SPDX-License-Identifier: MIT

// Package matrix - factorizations and direct solvers.
//
// Purpose:
//   - QR: Householder factorization A = Q·R for any m×n input (Q m×m orthogonal, R m×n upper-triangular).
//   - LU: Doolittle factorization with partial (row) pivoting, P·A = L·U.
//   - Solve: square system A·X = B through LU (one factorization, k right-hand sides).
//   - Inverse: A⁻¹ = Solve(A, I).
//   - SolveUpperTriangular: back-substitution U·X = B.
//
// Determinism:
//   - Fixed loop orders everywhere; pivot ties resolve to the smallest row index.
//
// Singularity policy:
//   - A pivot p is rejected with ErrSingular when |p| <= tol·scale, where tol is
//     Options.SingularTol (DefaultSingularTol) and scale is the largest absolute
//     entry of the factored input (the upper triangle for SolveUpperTriangular).

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm accumulation in reflectors.
const NormZero = 0.0

// QR computes a Householder factorization A = Q·R.
// Implementation:
//   - Stage 1: Validate m (not nil); materialize a working copy R (r×c) and H = I (r×r).
//   - Stage 2: For k=0..min(r-1,c)-1 build the reflector that zeroes R[k+1:,k]
//     and apply it to R (columns k..c-1) and to H (all columns).
//   - Stage 3: Q = Hᵀ, since H = H_p⋯H_1 = Qᵀ.
//
// Behavior highlights:
//   - Entries strictly below the diagonal of R are written as exact zeros.
//   - Zero sub-columns are skipped (no reflection), so rank-deficient inputs
//     factor without error; the deficiency shows up as a zero diagonal in R.
//   - No sign canonicalization: diag(R) may be negative.
//
// Inputs:
//   - m: non-nil Matrix (r×c), any shape.
//
// Returns:
//   - Matrix: Q (r×r), QᵀQ = I to working precision.
//   - Matrix: R (r×c), upper-triangular.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r²·c), Space O(r² + r·c).
//
// AI-Hints:
//   - For tall-skinny least squares only the top c×c block of R and the first
//     c rows of Qᵀ·b matter; the remaining rows of Qᵀ·b carry the residual.
func QR(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	R := src.Clone().(*Dense) // working copy; input stays immutable
	rows, cols := R.r, R.c

	H, err := NewIdentity(rows)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	var (
		i, j, k    int
		norm, beta float64 // column norm and β = vᵀv
		alpha, tau float64 // reflected diagonal value and 2/β
		sum, akk   float64
		v          = make([]float64, rows) // Householder vector (entries < k unused)
		steps      = rows - 1
		rd, hd     = R.data, H.data
		baseI      int
	)
	if cols < steps {
		steps = cols
	}
	for k = 0; k < steps; k++ {
		// Norm of R[k:,k].
		norm = NormZero
		for i = k; i < rows; i++ {
			akk = rd[i*cols+k]
			norm += akk * akk
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue // zero sub-column: nothing to annihilate
		}

		// alpha = -sign(R[k,k])·norm avoids cancellation in v[k].
		akk = rd[k*cols+k]
		alpha = -math.Copysign(norm, akk)

		for i = k; i < rows; i++ {
			v[i] = rd[i*cols+k]
		}
		v[k] -= alpha

		beta = NormZero
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		// Column k is known analytically: alpha on the diagonal, zeros below.
		rd[k*cols+k] = alpha
		for i = k + 1; i < rows; i++ {
			rd[i*cols+k] = 0
		}
		// Apply (I - τ v vᵀ) to the remaining columns of R.
		for j = k + 1; j < cols; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * rd[i*cols+j]
			}
			if sum == 0 {
				continue
			}
			sum *= tau
			for i = k; i < rows; i++ {
				rd[i*cols+j] -= sum * v[i]
			}
		}
		// Accumulate the reflector into H.
		for j = 0; j < rows; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * hd[i*rows+j]
			}
			if sum == 0 {
				continue
			}
			sum *= tau
			for i = k; i < rows; i++ {
				baseI = i * rows
				hd[baseI+j] -= sum * v[i]
			}
		}
	}

	Q, err := Transpose(H)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return Q, R, nil
}

// luFactors is the packed result of a pivoted Doolittle factorization.
// lu holds L strictly below the diagonal (unit diagonal implied) and U on and
// above it; perm[i] is the source row of A placed at row i.
type luFactors struct {
	n    int
	lu   []float64
	perm []int
}

// luFactor factors a working copy of a (n×n) in place with partial pivoting.
// Returns ErrSingular when a pivot falls below tol·max|a|.
// Complexity: O(n³).
func luFactor(a *Dense, tol float64) (*luFactors, error) {
	n := a.r
	lu := make([]float64, len(a.data))
	copy(lu, a.data)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	threshold := tol * maxAbs(lu)

	var (
		i, j, k, p    int
		best, cur     float64
		pivot, factor float64
		rowK, rowI    int
	)
	for k = 0; k < n; k++ {
		// Select the largest |pivot| in column k (ties → smallest row).
		p, best = k, math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if cur = math.Abs(lu[i*n+k]); cur > best {
				p, best = i, cur
			}
		}
		if best <= threshold {
			return nil, fmt.Errorf("pivot %d: |%.3g| <= %.3g: %w", k, best, threshold, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		rowK = k * n
		pivot = lu[rowK+k]
		for i = k + 1; i < n; i++ {
			rowI = i * n
			factor = lu[rowI+k] / pivot
			lu[rowI+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu[rowI+j] -= factor * lu[rowK+j]
			}
		}
	}

	return &luFactors{n: n, lu: lu, perm: perm}, nil
}

// solve applies the packed factors to every column of b (n×k) and returns X.
// Forward substitution with unit L on the permuted right-hand side, then
// backward substitution with U. Complexity: O(n²·k).
func (f *luFactors) solve(b *Dense) *Dense {
	n, nrhs := f.n, b.c
	x := &Dense{r: n, c: nrhs, data: make([]float64, n*nrhs), validateNaNInf: b.validateNaNInf}

	var i, j, col int
	var sum float64
	y := make([]float64, n)
	for col = 0; col < nrhs; col++ {
		// L·y = P·b
		for i = 0; i < n; i++ {
			sum = b.data[f.perm[i]*nrhs+col]
			for j = 0; j < i; j++ {
				sum -= f.lu[i*n+j] * y[j]
			}
			y[i] = sum
		}
		// U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for j = i + 1; j < n; j++ {
				sum -= f.lu[i*n+j] * x.data[j*nrhs+col]
			}
			x.data[i*nrhs+col] = sum / f.lu[i*n+i]
		}
	}

	return x
}

// LU computes P·A = L·U with unit-diagonal L and partial pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square); materialize as Dense.
//   - Stage 2: Pivoted Doolittle elimination on a packed working buffer.
//   - Stage 3: Unpack L and U into fresh Dense matrices.
//
// Returns:
//   - perm: row permutation; row i of P·A is row perm[i] of A.
//   - L (unit lower triangular), U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) ([]int, Matrix, Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	src, err := toDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	f, err := luFactor(src, o.singularTol)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	n := f.n
	L, err := NewIdentity(n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = f.lu[i*n+j]
			} else {
				U.data[i*n+j] = f.lu[i*n+j]
			}
		}
	}

	return f.perm, L, U, nil
}

// Solve returns X with A·X = B for square A, via pivoted LU (no explicit inverse).
// Implementation:
//   - Stage 1: ValidateSystem(a, b) (non-nil, square a, matching rows).
//   - Stage 2: factor a; Stage 3: substitute for every column of b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³ + n²·k), Space O(n² + n·k).
//
// AI-Hints:
//   - Pass all right-hand sides at once; the factorization is reused.
func Solve(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	ad, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := luFactor(ad, o.singularTol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.solve(bd), nil
}

// Inverse computes A⁻¹ as Solve(A, I).
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³).
//
// Notes:
//   - Forming A⁻¹ is rarely needed; prefer Solve for A⁻¹·b.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	I, err := NewIdentity(m.Rows())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Solve(m, I, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// SolveUpperTriangular solves U·X = B by back-substitution.
// Entries strictly below the diagonal of u are ignored.
//
// Implementation:
//   - Stage 1: ValidateSystem(u, b); materialize both as Dense.
//   - Stage 2: scale = max |u[i,j]| over j >= i; reject |u[k,k]| <= tol·scale.
//   - Stage 3: bottom-up substitution per column of b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n²·k), Space O(n·k).
func SolveUpperTriangular(u, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSystem(u, b); err != nil {
		return nil, matrixErrorf(opBackSubst, err)
	}
	o := gatherOptions(opts...)

	ud, err := toDense(u)
	if err != nil {
		return nil, matrixErrorf(opBackSubst, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opBackSubst, err)
	}

	n, nrhs := ud.r, bd.c
	var i, j, col int
	scale := 0.0
	for i = 0; i < n; i++ {
		if s := maxAbs(ud.data[i*n+i : (i+1)*n]); s > scale {
			scale = s
		}
	}
	threshold := o.singularTol * scale
	for i = 0; i < n; i++ {
		if p := math.Abs(ud.data[i*n+i]); p <= threshold {
			return nil, matrixErrorf(opBackSubst, fmt.Errorf("diagonal %d: |%.3g| <= %.3g: %w", i, p, threshold, ErrSingular))
		}
	}

	x, err := NewDense(n, nrhs)
	if err != nil {
		return nil, matrixErrorf(opBackSubst, err)
	}
	var sum float64
	for col = 0; col < nrhs; col++ {
		for i = n - 1; i >= 0; i-- {
			sum = bd.data[i*nrhs+col]
			for j = i + 1; j < n; j++ {
				sum -= ud.data[i*n+j] * x.data[j*nrhs+col]
			}
			x.data[i*nrhs+col] = sum / ud.data[i*n+i]
		}
	}

	return x, nil
}
