// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linfit/internal/problem"
	"github.com/katalvlaran/linfit/lstsq"
	"github.com/katalvlaran/linfit/matrix"
)

func newFitCmd(o *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit <samples.yaml|samples.toml>",
		Short: "Fit a polynomial to x/y samples",
		Long: `Fit reads x, y and degree from a YAML or TOML file and prints the polynomial
coefficients (constant term first) minimizing the squared error.

Examples:
  linfit fit samples.yaml
  linfit fit samples.toml --degree 3 --method normal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := problem.Load(args[0])
			if err != nil {
				return err
			}
			if p.Kind() != problem.KindFit {
				return fmt.Errorf("%s describes a linear system; use 'linfit solve'", args[0])
			}
			method, opts, err := resolveSolver(cmd.Flags(), o, p)
			if err != nil {
				return err
			}
			degree := p.Degree
			if cmd.Flags().Changed("degree") {
				degree = o.degree
			}

			o.log.Debug().
				Str("method", method.String()).
				Int("samples", len(p.X)).
				Int("degree", degree).
				Msg("fitting")

			coeffs, err := lstsq.PolyFit(p.X, p.Y, degree, method, opts...)
			if err != nil {
				o.log.Error().Err(err).Msg("fit failed")
				return err
			}
			v, err := lstsq.Vandermonde(p.X, degree)
			if err != nil {
				return err
			}
			c, err := matrix.NewColumn(coeffs)
			if err != nil {
				return err
			}
			b, err := matrix.NewColumn(p.Y)
			if err != nil {
				return err
			}
			residual, err := lstsq.ResidualNorm(v, c, b)
			if err != nil {
				return err
			}

			return writeSolutions(cmd.OutOrStdout(), o.json, solution{
				Method:       method.String(),
				Rows:         v.Rows(),
				Cols:         v.Cols(),
				Coefficients: coeffs,
				Residual:     residual,
			})
		},
	}
	addSolverFlags(cmd.Flags(), o)
	cmd.Flags().IntVar(&o.degree, "degree", 1, "Polynomial degree (overrides the file)")

	return cmd
}
