// SPDX-License-Identifier: MIT

package lstsq_test

import (
	"testing"

	"github.com/katalvlaran/linfit/lstsq"
	"github.com/katalvlaran/linfit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    lstsq.Method
		wantErr bool
	}{
		{"qr", lstsq.MethodQR, false},
		{" QR ", lstsq.MethodQR, false},
		{"normal", lstsq.MethodNormal, false},
		{"Normal-Equations", lstsq.MethodNormal, false},
		{"svd", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := lstsq.ParseMethod(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, lstsq.ErrUnknownMethod, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestMethod_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "qr", lstsq.MethodQR.String())
	assert.Equal(t, "normal", lstsq.MethodNormal.String())
	assert.Equal(t, "Method(9)", lstsq.Method(9).String())
}

func TestSolve_Dispatch(t *testing.T) {
	t.Parallel()

	A, b := mustDense(t, seedA), mustColumn(t, seedB)
	for _, m := range []lstsq.Method{lstsq.MethodQR, lstsq.MethodNormal} {
		x, err := lstsq.Solve(A, b, m)
		require.NoError(t, err, m.String())
		assert.InDeltaSlice(t, gonumLstsq(t, seedA, seedB), values(t, x), deltaLoose, m.String())
	}

	_, err := lstsq.Solve(A, b, lstsq.Method(42))
	require.ErrorIs(t, err, lstsq.ErrUnknownMethod)
}

// Shape errors must surface before the backend is touched.
func TestSolve_ValidatesBeforeDecomposition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"short b", mustDense(t, seedA), mustColumn(t, []float64{1, 2, 3}), lstsq.ErrDimensionMismatch},
		{"tall b", mustDense(t, seedA), mustColumn(t, []float64{1, 2, 3, 4, 5, 6}), lstsq.ErrDimensionMismatch},
		{"b with two columns", mustDense(t, seedA), mustDense(t, [][]float64{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}), lstsq.ErrDimensionMismatch},
		{"underdetermined", mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), mustColumn(t, []float64{1, 2}), lstsq.ErrDimensionMismatch},
		{"nil A", nil, mustColumn(t, seedB), lstsq.ErrNilMatrix},
		{"nil b", mustDense(t, seedA), nil, lstsq.ErrNilMatrix},
		{"typed nil b", mustDense(t, seedA), (*matrix.Dense)(nil), lstsq.ErrNilMatrix},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, m := range []lstsq.Method{lstsq.MethodQR, lstsq.MethodNormal} {
				p := newCountingProvider()
				_, err := lstsq.Solve(tc.a, tc.b, m, lstsq.WithProvider(p))
				require.ErrorIs(t, err, tc.wantErr, m.String())
				assert.Zero(t, p.calls.Load(), "%s: provider called before validation failed", m)
			}
		})
	}
}

func TestSolve_DimensionMismatchIsAlsoMatrixSentinel(t *testing.T) {
	t.Parallel()

	_, err := lstsq.SolveQR(mustDense(t, seedA), mustColumn(t, []float64{1}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolve_ConcurrentCallsShareNoState(t *testing.T) {
	t.Parallel()

	A, b := mustDense(t, seedA), mustColumn(t, seedB)
	want := gonumLstsq(t, seedA, seedB)
	for i := 0; i < 8; i++ {
		m := lstsq.Method(i % 2)
		t.Run(m.String(), func(t *testing.T) {
			t.Parallel()
			x, err := lstsq.Solve(A, b, m)
			require.NoError(t, err)
			assert.InDeltaSlice(t, want, values(t, x), deltaLoose)
		})
	}
}
