// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linfit/lstsq"
	"github.com/katalvlaran/linfit/matrix"
)

// Built-in 5×3 full-rank problem; both methods agree on it to ~1e-12.
var (
	demoA = [][]float64{
		{3, 4, 5},
		{6, 1, 2},
		{2, 3, 0},
		{1, 1, 1},
		{2, 4, 6},
	}
	demoB = []float64{1, 2, 3, 4, 5}
)

func newDemoCmd(o *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve a built-in 5×3 system with both methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, opts, err := resolveSolver(cmd.Flags(), o, nil)
			if err != nil {
				return err
			}
			a, err := matrix.NewDenseFrom(demoA)
			if err != nil {
				return err
			}
			b, err := matrix.NewColumn(demoB)
			if err != nil {
				return err
			}

			sols := make([]solution, 0, 2)
			for _, m := range []lstsq.Method{lstsq.MethodQR, lstsq.MethodNormal} {
				sol, err := solveSystem(o, a, b, m, opts...)
				if err != nil {
					return err
				}
				sol.Label = "demo"
				sols = append(sols, sol)
			}

			return writeSolutions(cmd.OutOrStdout(), o.json, sols...)
		},
	}
	fs := cmd.Flags()
	fs.Float64Var(&o.tol, "tol", 1e-12, "Relative singularity tolerance in [0, 1)")
	fs.BoolVar(&o.explicitInverse, "explicit-inverse", false, "QR method: multiply by R′⁻¹ instead of back-substituting")

	return cmd
}
