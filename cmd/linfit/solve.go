// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linfit/internal/problem"
	"github.com/katalvlaran/linfit/lstsq"
	"github.com/katalvlaran/linfit/matrix"
)

func newSolveCmd(o *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <problem.yaml|problem.toml>",
		Short: "Solve the linear system stored in a problem file",
		Long: `Solve reads A and b from a YAML or TOML file and prints the least-squares x
together with the residual norm ‖A·x − b‖.

File keys: a (rows of A), b, and optionally method, tolerance, explicit_inverse.
Flags given on the command line override the file.

Examples:
  linfit solve system.yaml
  linfit solve system.toml --method normal --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := problem.Load(args[0])
			if err != nil {
				return err
			}
			if p.Kind() != problem.KindSystem {
				return fmt.Errorf("%s describes a curve fit; use 'linfit fit'", args[0])
			}
			method, opts, err := resolveSolver(cmd.Flags(), o, p)
			if err != nil {
				return err
			}
			a, b, err := p.System()
			if err != nil {
				return err
			}

			sol, err := solveSystem(o, a, b, method, opts...)
			if err != nil {
				return err
			}

			return writeSolutions(cmd.OutOrStdout(), o.json, sol)
		},
	}
	addSolverFlags(cmd.Flags(), o)

	return cmd
}

// solveSystem runs one method and reports x with its residual norm.
func solveSystem(o *cliOptions, a *matrix.Dense, b matrix.Matrix, method lstsq.Method, opts ...lstsq.Option) (solution, error) {
	rows, cols := a.Shape()
	o.log.Debug().
		Str("method", method.String()).
		Int("rows", rows).
		Int("cols", cols).
		Msg("solving")

	var (
		x        matrix.Matrix
		residual float64
		err      error
	)
	if method == lstsq.MethodQR {
		x, residual, err = lstsq.SolveQRWithResidual(a, b, opts...)
	} else {
		x, err = lstsq.Solve(a, b, method, opts...)
		if err == nil {
			residual, err = lstsq.ResidualNorm(a, x, b)
		}
	}
	if err != nil {
		o.log.Error().Err(err).Str("method", method.String()).Msg("solve failed")
		return solution{}, err
	}

	xs, err := matrix.Column(x, 0)
	if err != nil {
		return solution{}, err
	}
	o.log.Info().
		Str("method", method.String()).
		Float64("residual", residual).
		Msg("solved")

	return solution{
		Method:   method.String(),
		Rows:     rows,
		Cols:     cols,
		X:        xs,
		Residual: residual,
	}, nil
}
