// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and the
// symmetric eigensolver. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by structural checks
	// (symmetry, orthogonality).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = true

	// DefaultEigenTolerance is the Jacobi convergence threshold on max |A[p,q]|.
	DefaultEigenTolerance = 1e-12

	// DefaultEigenMaxIter is the floor of the Jacobi rotation cap. Unless
	// WithEigenMaxIter is given, EigenSym allows
	// max(DefaultEigenMaxIter, EigenRotationsPerEntry·n²) rotations.
	DefaultEigenMaxIter = 1000

	// EigenRotationsPerEntry scales the default rotation cap with n².
	EigenRotationsPerEntry = 10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicEigenTolInvalid = "matrix: WithEigenTolerance: tol must be finite, positive"
	panicEigenMaxIter    = "matrix: WithEigenMaxIter: maxIter must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	eigenTol       float64 // > 0; DefaultEigenTolerance
	eigenMaxIter   int     // >= 0; DefaultEigenMaxIter
	maxIterFixed   bool    // set by WithEigenMaxIter; disables size scaling
}

// WithEpsilon sets the tolerance used by structural checks.
// Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithEigenTolerance sets the Jacobi convergence threshold.
//
// AI-Hints:
//   - 1e-12 suits well-scaled float64 input; loosen for noisy data.
func WithEigenTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicEigenTolInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithEigenMaxIter caps the number of Jacobi rotations. Zero is legal and
// makes any non-diagonal input fail with ErrMatrixEigenFailed.
func WithEigenMaxIter(maxIter int) Option {
	if maxIter < 0 {
		panic(panicEigenMaxIter)
	}

	return func(o *Options) {
		o.eigenMaxIter = maxIter
		o.maxIterFixed = true
	}
}

// NewMatrixOptions resolves the given setters over the documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-value validation is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// EigenTolerance returns the Jacobi convergence threshold.
func (o Options) EigenTolerance() float64 { return o.eigenTol }

// EigenMaxIter returns the Jacobi rotation cap as configured (the floor
// when WithEigenMaxIter was not given).
func (o Options) EigenMaxIter() int { return o.eigenMaxIter }

// EigenMaxIterFor returns the rotation cap EigenSym uses for an n×n input.
func (o Options) EigenMaxIterFor(n int) int {
	if o.maxIterFixed {
		return o.eigenMaxIter
	}

	return max(o.eigenMaxIter, EigenRotationsPerEntry*n*n)
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		eigenTol:       DefaultEigenTolerance,
		eigenMaxIter:   DefaultEigenMaxIter,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
