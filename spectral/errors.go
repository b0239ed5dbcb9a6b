// SPDX-License-Identifier: MIT

package spectral

import "github.com/cockroachdb/errors"

var (
	// ErrNotOrthonormal is returned by FromBasis when UᵀU deviates from I.
	ErrNotOrthonormal = errors.New("spectral: basis is not orthonormal")

	// ErrNonFinite is returned when an eigenvalue or a transformed eigenvalue
	// is NaN or ±Inf (e.g. √ of a negative eigenvalue).
	ErrNonFinite = errors.New("spectral: non-finite eigenvalue")

	// ErrEmptySpectrum is returned for an empty eigenvalue list.
	ErrEmptySpectrum = errors.New("spectral: empty spectrum")

	// ErrUnknownFunc is returned by ParseFunc for an unrecognised name.
	ErrUnknownFunc = errors.New("spectral: unknown function")

	// ErrBadFuncParam is returned by ParseFunc for a malformed parameter.
	ErrBadFuncParam = errors.New("spectral: bad function parameter")

	// ErrUnknownBackend is returned by ParseBackend.
	ErrUnknownBackend = errors.New("spectral: unknown eigen backend")
)
