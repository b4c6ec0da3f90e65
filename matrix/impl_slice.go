// SPDX-License-Identifier: MIT

// Package matrix - windows, columns and norms.
//
// Purpose:
//   - Slice materializes a contiguous [r0,r1)×[c0,c1) window as a fresh Dense (copy).
//   - Column / ToRows export values for callers that work with plain slices.
//   - Norm2 computes the Frobenius norm (Euclidean norm for vectors) without
//     intermediate overflow, using the scaled sum-of-squares recurrence.
//
// Complexity quicksheet:
//   - Slice: O(h*w); Column: O(r); ToRows: O(r*c); Norm2: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// Slice returns a copy of rows [r0,r1) and columns [c0,c1) of m.
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateWindow(bounds).
//   - Stage 2: allocate (r1-r0)×(c1-c0) Dense (empty windows are legal).
//   - Stage 3: copy row segments (fast-path) or element-wise via At.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape.
//
// Determinism:
//   - Fixed i→j copy order.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
//
// Notes:
//   - The result is independent of m; mutations do not write through.
func Slice(m Matrix, r0, r1, c0, c1 int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if err := ValidateWindow(m.Rows(), m.Cols(), r0, r1, c0, c1); err != nil {
		return nil, matrixErrorf(opSlice, fmt.Errorf("[%d:%d,%d:%d] of %dx%d: %w", r0, r1, c0, c1, m.Rows(), m.Cols(), err))
	}

	h, w := r1-r0, c1-c0
	res, err := newDenseZeroOK(h, w)
	if err != nil {
		return nil, matrixErrorf(opSlice, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		for i = 0; i < h; i++ {
			copy(res.data[i*w:(i+1)*w], dm.data[(r0+i)*dm.c+c0:(r0+i)*dm.c+c1])
		}

		return res, nil
	}

	var v float64
	for i = 0; i < h; i++ {
		for j = 0; j < w; j++ {
			if v, err = m.At(r0+i, c0+j); err != nil {
				return nil, matrixErrorf(opSlice, fmt.Errorf("At(%d,%d): %w", r0+i, c0+j, err))
			}
			res.data[i*w+j] = v
		}
	}

	return res, nil
}

// Column returns a copy of column j of m as a slice of length Rows().
// Errors: ErrNilMatrix, ErrOutOfRange. Complexity: O(r).
func Column(m Matrix, j int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opColumn, fmt.Errorf("col %d: %w", j, ErrOutOfRange))
	}

	rows := m.Rows()
	out := make([]float64, rows)
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			out[i] = dm.data[i*dm.c+j]
		}

		return out, nil
	}

	var err error
	for i := 0; i < rows; i++ {
		if out[i], err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opColumn, fmt.Errorf("At(%d,%d): %w", i, j, err))
		}
	}

	return out, nil
}

// ToRows exports m as freshly allocated row slices.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatToValues, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	var err error
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			if out[i], err = d.RawRow(i); err != nil {
				return nil, matrixErrorf(opMatToValues, err)
			}
		}

		return out, nil
	}
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatToValues, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
		}
	}

	return out, nil
}

// Norm2 returns the Frobenius norm √(Σ m[i,j]²). For a column vector this is
// the Euclidean norm. Empty matrices have norm 0.
//
// Implementation:
//   - Keep (scale, ssq) with Σ = scale²·ssq; rescale when a larger |v| appears.
//
// Errors: ErrNilMatrix. Complexity: O(r*c), Space O(1).
func Norm2(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm2, err)
	}

	scale, ssq := 0.0, 1.0
	accumulate := func(v float64) {
		if v == 0 {
			return
		}
		a := math.Abs(v)
		if scale < a {
			ssq = 1 + ssq*(scale/a)*(scale/a)
			scale = a
		} else {
			ssq += (a / scale) * (a / scale)
		}
	}

	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data {
			accumulate(v)
		}
	} else {
		rows, cols := m.Rows(), m.Cols()
		var v float64
		var err error
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if v, err = m.At(i, j); err != nil {
					return 0, matrixErrorf(opNorm2, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				accumulate(v)
			}
		}
	}

	return scale * math.Sqrt(ssq), nil
}

// maxAbs returns max |d[k]| over a flat buffer. Used as the scale for
// relative singularity thresholds.
func maxAbs(data []float64) float64 {
	best := 0.0
	for _, v := range data {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best
}

// toDense returns m itself when it is a *Dense, otherwise a materialized copy.
// Kernels that mutate a working buffer clone the result before writing.
func toDense(m Matrix) (*Dense, error) {
	if dm, ok := m.(*Dense); ok {
		return dm, nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}
