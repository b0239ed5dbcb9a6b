// SPDX-License-Identifier: MIT

// Package spectral realises matrix functions through eigenvalue
// transformations: a real symmetric A = U·diag(λ)·Uᵀ is mapped to
// f(A) = U·diag(f(λ))·Uᵀ for any scalar f, exact or polynomial.
//
// This is the classical counterpart of the Quantum Singular Value
// Transformation: a block-encoded A acted on by a degree-d polynomial
// becomes P(A), and any f that a polynomial approximates well on the
// spectrum becomes reachable as a matrix function.
//
// Building blocks:
//
//   - Rotation, New, Build: a 2×2 symmetric matrix from an angle and two
//     eigenvalues.
//   - FromBasis: a general n×n Spectral from an orthonormal basis.
//   - Decompose: eigendecomposition (Jacobi by default, gonum on request).
//   - Power: integer matrix powers A^k.
//   - Apply, ApplySeries: f(A) for an exact f or a fitted Chebyshev series.
//   - ApproximateSqrt, FractionalPower(s), PowerCurve, SeparationRatio:
//     the scalar side of the walkthrough.
//   - Identity, Sqrt, Inverse, Pow, Step, Resolvent, ParseFunc: a small
//     catalog of target functions.
//
// Eigenvalues returned by Decompose are sorted ascending with matching
// eigenvector columns. Nothing in this package logs; errors are wrapped
// sentinels matched with errors.Is.
package spectral
