// SPDX-License-Identifier: MIT

// Package qsvt is a small workbench for matrix functions of the kind
// Quantum Singular Value Transformation targets: f(A) = U·diag(f(λ))·Uᵀ for a
// real symmetric A, and its polynomial stand-in p(A) where p is a bounded
// Chebyshev fit of f on a restricted domain [a, 1].
//
// Everything lives in subpackages:
//
//	matrix/       dense row-major matrices, Jacobi eigensolver, Pow, LU inverse, gonum bridge
//	chebyshev/    Chebyshev series: least-squares Fit, node Interpolate, Clenshaw evaluation
//	spectral/     eigendecomposition (Spectral), Apply/Map, function catalog, power curves
//	walkthrough/  the five notebook sections as typed reports, rendered as table/json/yaml
//	config/       viper-backed configuration (flags > QSVT_* env > qsvt.toml > defaults)
//	logger/       zap logger shared by the CLI and the runner
//	cmd/qsvt/     cobra CLI: matrix, powers, sqrt, fractional, apply, run, config, version
//
// Quick example (√A of the 2×2 notebook matrix):
//
//	a, _ := spectral.Build(0.6, 0.2, 0.8)
//	p, _ := spectral.ApproximateSqrt(0.2, 6) // Chebyshev fit of √x on [0.2, 1]
//	approx, _ := spectral.ApplySeries(a, p)
//	exact, _ := spectral.Apply(a, spectral.Sqrt)
//	d, _ := matrix.MaxAbsDiff(approx, exact) // < 1e-2
//
//	go install github.com/katalvlaran/qsvt/cmd/qsvt@latest
package qsvt
