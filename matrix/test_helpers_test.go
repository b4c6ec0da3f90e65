// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linfit/matrix"
)

// Tolerances shared by the numeric property checks.
const (
	deltaTight = 1e-12
	deltaLoose = 1e-9
)

// hide wraps any Matrix to hide its concrete type from type assertions.
//
// Use hide{X} to force the non-*Dense (fallback) path in code under test;
// wrap ONLY the operand you want to de-opt.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustDenseFrom builds a *Dense from row slices or fails the test.
func MustDenseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// RandFilledDense returns an r×c *Dense with entries uniform in [-1, 1).
// The seed fixes the sequence.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}

	return m
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts m equals want element by element.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts a and b share a shape and |a[i,j]-b[i,j]| <= delta.
func CompareClose(t *testing.T, a, b matrix.Matrix, delta float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("CompareClose: shape %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv = MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > delta {
				t.Fatalf("CompareClose [%d,%d]: %.17g vs %.17g (delta=%g)", i, j, av, bv, delta)
			}
		}
	}
}

// AssertErrorIs wraps errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want errors.Is(err, %v), got: %v", target, err)
	}
}

// propOrthonormal checks QᵀQ ≈ I.
func propOrthonormal(t *testing.T, q matrix.Matrix, delta float64) {
	t.Helper()
	qt, err := matrix.Transpose(q)
	if err != nil {
		t.Fatalf("Transpose(Q): %v", err)
	}
	qtq, err := matrix.Mul(qt, q)
	if err != nil {
		t.Fatalf("Mul(Qᵀ,Q): %v", err)
	}
	id, err := matrix.IdentityLike(qtq)
	if err != nil {
		t.Fatalf("IdentityLike: %v", err)
	}
	CompareClose(t, qtq, id, delta)
}

// propUpperTriangular checks every entry below the diagonal is ≈ 0.
func propUpperTriangular(t *testing.T, u matrix.Matrix, delta float64) {
	t.Helper()
	var i, j int
	for i = 1; i < u.Rows(); i++ {
		for j = 0; j < i && j < u.Cols(); j++ {
			if v := MustAt(t, u, i, j); math.Abs(v) > delta {
				t.Fatalf("below-diagonal [%d,%d] = %g", i, j, v)
			}
		}
	}
}

// propUnitLowerTriangular checks L has ones on the diagonal and zeros above it.
func propUnitLowerTriangular(t *testing.T, l matrix.Matrix, delta float64) {
	t.Helper()
	var i, j int
	for i = 0; i < l.Rows(); i++ {
		if v := MustAt(t, l, i, i); math.Abs(v-1) > delta {
			t.Fatalf("L[%d,%d] = %g; want 1", i, i, v)
		}
		for j = i + 1; j < l.Cols(); j++ {
			if v := MustAt(t, l, i, j); math.Abs(v) > delta {
				t.Fatalf("above-diagonal L[%d,%d] = %g", i, j, v)
			}
		}
	}
}

// propReconstructionQR checks Q·R ≈ A.
func propReconstructionQR(t *testing.T, a, q, r matrix.Matrix, delta float64) {
	t.Helper()
	qr, err := matrix.Mul(q, r)
	if err != nil {
		t.Fatalf("Mul(Q,R): %v", err)
	}
	CompareClose(t, qr, a, delta)
}
