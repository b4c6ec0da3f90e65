// SPDX-License-Identifier: MIT

// Package lstsq: functional configuration for the solvers.
//
// Defaults:
//   - Provider: DenseProvider (pure-Go kernels from package matrix).
//   - SingularTol: matrix.DefaultSingularTol, relative to the largest entry of
//     the square system being solved.
//   - Triangular step of the QR method: back-substitution.
//
// Option constructors panic on nonsensical values (programmer error); the
// solvers themselves never panic on user input.

package lstsq

import (
	"math"

	"github.com/katalvlaran/linfit/matrix"
)

// DefaultSingularTol mirrors the matrix package default.
const DefaultSingularTol = matrix.DefaultSingularTol

const (
	panicNilProvider    = "lstsq: WithProvider requires a non-nil Provider"
	panicSingularTolBad = "lstsq: WithSingularTol requires a finite tolerance in [0, 1)"
)

// Option mutates Options during a solver call.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	provider        Provider
	singularTol     float64
	explicitInverse bool
}

// Provider returns the effective provider.
func (o Options) Provider() Provider { return o.provider }

// SingularTol returns the effective relative pivot threshold.
func (o Options) SingularTol() float64 { return o.singularTol }

// ExplicitInverse reports whether the QR method inverts R′ instead of back-substituting.
func (o Options) ExplicitInverse() bool { return o.explicitInverse }

// WithProvider swaps the linear-algebra backend.
func WithProvider(p Provider) Option {
	if p == nil {
		panic(panicNilProvider)
	}

	return func(o *Options) { o.provider = p }
}

// WithSingularTol sets the relative pivot threshold used for R′ (QR method)
// and, with the default provider, for AᵀA (normal equations).
// A custom provider applies its own policy to Solve and Inverse.
func WithSingularTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic(panicSingularTolBad)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithExplicitInverse makes the QR method compute R′⁻¹·c instead of
// back-substituting. Results match in exact arithmetic; forming the inverse
// loses accuracy on ill-conditioned R′.
func WithExplicitInverse() Option {
	return func(o *Options) { o.explicitInverse = true }
}

// WithBackSubstitution restores the default triangular solve for the QR method.
func WithBackSubstitution() Option {
	return func(o *Options) { o.explicitInverse = false }
}

// NewOptions resolves setters over defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{singularTol: DefaultSingularTol}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.provider == nil {
		o.provider = NewDenseProvider(matrix.WithSingularTol(o.singularTol))
	}

	return o
}
