// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Singularity policy: a pivot p is treated as zero when
//     |p| <= singularTol * scale, where scale is the largest absolute entry of
//     the factored matrix. A relative threshold keeps the verdict invariant
//     under uniform rescaling of the input.
//   - validateNaNInf controls whether Set()/literal ingestion rejects NaN/Inf.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularTol is the relative pivot threshold used by LU, Solve,
	// Inverse and SolveUpperTriangular.
	DefaultSingularTol = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// panic messages (stable for tests).
const (
	panicSingularTolInvalid = "matrix: WithSingularTol requires a finite tolerance in [0, 1)"
)

// Option mutates Options during construction.
type Option func(*Options)

// Options holds the effective numeric policy. Fields are unexported; public
// APIs consume ...Option.
type Options struct {
	singularTol    float64 // relative pivot threshold
	validateNaNInf bool    // reject NaN/Inf on ingestion
}

// SingularTol reports the effective relative pivot threshold.
func (o Options) SingularTol() float64 { return o.singularTol }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithSingularTol sets the relative pivot threshold.
// Implementation:
//   - Stage 1: validate tol ∈ [0, 1) and finite; panic otherwise.
//   - Stage 2: return a setter.
//
// Behavior highlights:
//   - tol == 0 reproduces an exact zero-pivot test.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Keep tol well above machine epsilon (≈2.2e-16) so that exactly
//     rank-deficient inputs are reported as ErrSingular despite rounding.
func WithSingularTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation for newly built matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves the given setters over defaults.
// Useful for tests and for callers that forward a resolved policy.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last writer wins. Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		singularTol:    DefaultSingularTol,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
