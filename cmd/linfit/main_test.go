// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linfit/lstsq"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeProblem(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDemo_JSON_MethodsAgree(t *testing.T) {
	out, _, err := run(t, "demo", "--json")
	require.NoError(t, err)

	var sols []solution
	require.NoError(t, json.Unmarshal([]byte(out), &sols))
	require.Len(t, sols, 2)
	assert.Equal(t, "qr", sols[0].Method)
	assert.Equal(t, "normal", sols[1].Method)
	assert.InDeltaSlice(t, sols[0].X, sols[1].X, 1e-9)
	assert.InDelta(t, sols[0].Residual, sols[1].Residual, 1e-9)
}

func TestDemo_Text(t *testing.T) {
	out, _, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "demo [qr, 5x3]")
	assert.Contains(t, out, "demo [normal, 5x3]")
	assert.Contains(t, out, "residual = 4.32714153")
}

func TestSolve_FlagOverridesFile(t *testing.T) {
	path := writeProblem(t, "sys.yaml", `
method: qr
a: [[1, 0], [0, 1], [1, 1]]
b: [1, 2, 2.5]
`)
	out, _, err := run(t, "solve", path, "--method", "normal", "--json")
	require.NoError(t, err)

	var sol solution
	require.NoError(t, json.Unmarshal([]byte(out), &sol))
	assert.Equal(t, "normal", sol.Method)
	assert.Equal(t, 3, sol.Rows)
	assert.Equal(t, 2, sol.Cols)
	require.Len(t, sol.X, 2)
}

func TestSolve_SingularReportsError(t *testing.T) {
	path := writeProblem(t, "dup.toml", `
a = [[1.0, 2.0], [2.0, 4.0], [3.0, 6.0]]
b = [1.0, 2.0, 3.0]
`)
	_, stderr, err := run(t, "solve", path, "--log-level", "error")
	require.ErrorIs(t, err, lstsq.ErrSingular)
	assert.Contains(t, stderr, "solve failed")
}

func TestSolve_RejectsFitFileAndBadFlags(t *testing.T) {
	fit := writeProblem(t, "fit.yaml", "x: [0, 1, 2]\ny: [1, 2, 3]\n")
	_, _, err := run(t, "solve", fit)
	require.Error(t, err)

	sys := writeProblem(t, "sys.yaml", "a: [[1], [2]]\nb: [1, 2]\n")
	_, _, err = run(t, "solve", sys, "--method", "svd")
	require.ErrorIs(t, err, lstsq.ErrUnknownMethod)

	_, _, err = run(t, "solve", sys, "--tol", "1.5")
	require.Error(t, err)

	_, _, err = run(t, "solve", sys, "--log-level", "loud")
	require.Error(t, err)
}

func TestFit_DegreeFlag(t *testing.T) {
	path := writeProblem(t, "fit.yaml", `
degree: 1
x: [-2, -1, 0, 1, 2]
y: [9, 4, 1, 0, 1]
`)
	// y = (x-1)² fits exactly at degree 2.
	out, _, err := run(t, "fit", path, "--degree", "2", "--json")
	require.NoError(t, err)

	var sol solution
	require.NoError(t, json.Unmarshal([]byte(out), &sol))
	assert.InDeltaSlice(t, []float64{1, -2, 1}, sol.Coefficients, 1e-9)
	assert.InDelta(t, 0, sol.Residual, 1e-9)

	out, _, err = run(t, "fit", path, "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &sol))
	assert.Len(t, sol.Coefficients, 2)
	assert.Greater(t, sol.Residual, 0.0)
}
