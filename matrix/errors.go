// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "github.com/cockroachdb/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap sentinels with their operation tag (see matrixErrorf); callers
// match with errors.Is regardless of the wrapping depth.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> NaN/Inf -> structural (symmetry) -> convergence.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a flat data slice does not match rows*cols.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a non-square
	// input to a square-only kernel (Pow, Eigen).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrMatrixEigenFailed indicates that the Jacobi routine did not converge
	// under the given tolerance/iterations.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNegativeExponent is returned by Pow for k < 0 (inversion is not implied).
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrSingular is returned by LU/Inverse when no usable pivot remains.
	ErrSingular = errors.New("matrix: matrix is singular")
)
