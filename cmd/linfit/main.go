// SPDX-License-Identifier: MIT

// Command linfit solves overdetermined linear systems and polynomial fits in
// the least-squares sense.
//
//	linfit demo
//	linfit solve system.yaml --method normal
//	linfit fit samples.toml --degree 2 --json
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cliOptions holds flag values shared by the subcommands.
type cliOptions struct {
	method          string
	tol             float64
	explicitInverse bool
	logLevel        string
	json            bool
	degree          int

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	o := &cliOptions{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "linfit",
		Short: "Least-squares solver for overdetermined linear systems",
		Long: `linfit finds the x minimizing ‖A·x − b‖ for a tall matrix A, using either a
QR factorization (default) or the normal equations AᵀA·x = Aᵀb.

Problems are read from YAML or TOML files; see "linfit solve --help".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zerolog.ParseLevel(o.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
			}
			o.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}).
				Level(lvl).
				With().Timestamp().Logger()

			return nil
		},
	}
	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "warn", "Log level (trace|debug|info|warn|error)")
	root.PersistentFlags().BoolVar(&o.json, "json", false, "Print results as JSON")

	root.AddCommand(newSolveCmd(o), newFitCmd(o), newDemoCmd(o))

	return root
}

// addSolverFlags registers the flags that override problem-file settings.
func addSolverFlags(fs *pflag.FlagSet, o *cliOptions) {
	fs.StringVar(&o.method, "method", "qr", "Solver method (qr|normal)")
	fs.Float64Var(&o.tol, "tol", 1e-12, "Relative singularity tolerance in [0, 1)")
	fs.BoolVar(&o.explicitInverse, "explicit-inverse", false, "QR method: multiply by R′⁻¹ instead of back-substituting")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
