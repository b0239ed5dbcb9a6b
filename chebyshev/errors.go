// SPDX-License-Identifier: MIT

package chebyshev

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidDomain is returned when lo ≥ hi, a bound is not finite, or an
	// [a, 1] tail domain has a outside (0, 1).
	ErrInvalidDomain = errors.New("chebyshev: invalid domain")

	// ErrInvalidDegree is returned for a negative polynomial degree.
	ErrInvalidDegree = errors.New("chebyshev: degree must be >= 0")

	// ErrTooFewSamples is returned when the sample count does not exceed the degree
	// or sample slices have mismatched lengths.
	ErrTooFewSamples = errors.New("chebyshev: not enough samples for degree")

	// ErrNonFinite is returned when the target function yields NaN or ±Inf on the grid.
	ErrNonFinite = errors.New("chebyshev: target function returned a non-finite value")

	// ErrOutOfDomain is returned by EvalStrict for x outside [lo, hi].
	ErrOutOfDomain = errors.New("chebyshev: point outside approximation domain")

	// ErrIllConditioned is returned when the least-squares system cannot be solved reliably.
	ErrIllConditioned = errors.New("chebyshev: least-squares system is ill-conditioned")

	// ErrEmptyCoeffs is returned by NewSeries for an empty coefficient vector.
	ErrEmptyCoeffs = errors.New("chebyshev: empty coefficient vector")
)
