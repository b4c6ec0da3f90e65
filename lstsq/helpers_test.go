// SPDX-License-Identifier: MIT
// Package lstsq_test contains shared fixtures for the solver tests.

package lstsq_test

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/linfit/lstsq"
	"github.com/katalvlaran/linfit/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const (
	deltaTight = 1e-12
	deltaLoose = 1e-9
)

// seedA / seedB is the reference 5×3 full-rank problem.
var (
	seedA = [][]float64{
		{3, 4, 5},
		{6, 1, 2},
		{2, 3, 0},
		{1, 1, 1},
		{2, 4, 6},
	}
	seedB = []float64{1, 2, 3, 4, 5}
)

// hide masks the concrete type so the generic At/Set paths run.
type hide struct{ matrix.Matrix }

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func mustColumn(t testing.TB, values []float64) *matrix.Dense {
	t.Helper()
	c, err := matrix.NewColumn(values)
	require.NoError(t, err)

	return c
}

// randDense returns an r×c matrix with entries uniform in [-1, 1).
func randDense(t testing.TB, r, c int, rng *rand.Rand) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = 2*rng.Float64() - 1
		}
	}

	return mustDense(t, rows)
}

func values(t testing.TB, x matrix.Matrix) []float64 {
	t.Helper()
	v, err := matrix.Column(x, 0)
	require.NoError(t, err)

	return v
}

// gonumLstsq solves the same problem with gonum's QR as an independent reference.
func gonumLstsq(t testing.TB, a [][]float64, b []float64) []float64 {
	t.Helper()
	m, n := len(a), len(a[0])
	ga := mat.NewDense(m, n, nil)
	for i, row := range a {
		ga.SetRow(i, row)
	}
	gb := mat.NewDense(m, 1, append([]float64(nil), b...))

	var qr mat.QR
	qr.Factorize(ga)
	var x mat.Dense
	require.NoError(t, qr.SolveTo(&x, false, gb))

	out := make([]float64, n)
	for i := range out {
		out[i] = x.At(i, 0)
	}

	return out
}

// countingProvider records every backend call before delegating.
type countingProvider struct {
	inner lstsq.Provider
	calls atomic.Int64
}

func newCountingProvider() *countingProvider {
	return &countingProvider{inner: lstsq.NewDenseProvider()}
}

func (p *countingProvider) Mul(a, b matrix.Matrix) (matrix.Matrix, error) {
	p.calls.Add(1)
	return p.inner.Mul(a, b)
}

func (p *countingProvider) Transpose(m matrix.Matrix) (matrix.Matrix, error) {
	p.calls.Add(1)
	return p.inner.Transpose(m)
}

func (p *countingProvider) QR(m matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	p.calls.Add(1)
	return p.inner.QR(m)
}

func (p *countingProvider) Slice(m matrix.Matrix, r0, r1, c0, c1 int) (matrix.Matrix, error) {
	p.calls.Add(1)
	return p.inner.Slice(m, r0, r1, c0, c1)
}

func (p *countingProvider) Solve(a, b matrix.Matrix) (matrix.Matrix, error) {
	p.calls.Add(1)
	return p.inner.Solve(a, b)
}

func (p *countingProvider) Inverse(m matrix.Matrix) (matrix.Matrix, error) {
	p.calls.Add(1)
	return p.inner.Inverse(m)
}
