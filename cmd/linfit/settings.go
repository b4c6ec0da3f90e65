// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/linfit/internal/problem"
	"github.com/katalvlaran/linfit/lstsq"
)

// resolveSolver merges problem-file settings with explicitly set flags.
// Flags win; a nil problem means flags and defaults only (QR, default tolerance).
func resolveSolver(fs *pflag.FlagSet, o *cliOptions, p *problem.Problem) (lstsq.Method, []lstsq.Option, error) {
	method := lstsq.MethodQR
	var opts []lstsq.Option
	if p != nil {
		m, err := p.SolverMethod()
		if err != nil {
			return 0, nil, err
		}
		method = m
		opts = p.SolverOptions()
	}

	if fs.Changed("method") {
		m, err := lstsq.ParseMethod(o.method)
		if err != nil {
			return 0, nil, err
		}
		method = m
	}
	if fs.Changed("tol") {
		if math.IsNaN(o.tol) || math.IsInf(o.tol, 0) || o.tol < 0 || o.tol >= 1 {
			return 0, nil, fmt.Errorf("--tol %g outside [0, 1)", o.tol)
		}
		opts = append(opts, lstsq.WithSingularTol(o.tol))
	}
	if fs.Changed("explicit-inverse") {
		if o.explicitInverse {
			opts = append(opts, lstsq.WithExplicitInverse())
		} else {
			opts = append(opts, lstsq.WithBackSubstitution())
		}
	}

	return method, opts, nil
}
