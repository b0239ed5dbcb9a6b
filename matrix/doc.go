// Package matrix offers a small dense linear-algebra core for spectral
// matrix functions.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-value policy (NaN/Inf rejected by default).
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec and Pow (integer powers
//     by square-and-multiply).
//   - Symmetric eigendecomposition: Eigen/EigenSym (Jacobi rotations) and
//     EigenSymGonum (gonum reference backend).
//   - LU with partial pivoting and Inverse built on it (ErrSingular when no
//     usable pivot remains).
//   - Comparisons: AllClose, MaxAbsDiff, IsOrthogonal.
//
// All kernels validate their inputs and return sentinel errors wrapped with
// an operation tag; match them with errors.Is.
//
// Matrices here are small (the walkthrough uses 2×2); every kernel is
// deterministic with fixed loop orders.
package matrix
