// Package chebyshev approximates scalar functions by Chebyshev series on a
// bounded interval [lo, hi].
//
// A Series stores coefficients c₀..c_d of Σ c_k·T_k(t), where
// t = (2x − lo − hi)/(hi − lo) maps the domain onto [-1, 1]. Working in the
// mapped variable keeps the basis well conditioned for any interval.
//
// Two constructions are offered:
//
//   - Fit: least-squares fit on a uniform sample grid (default 500 samples),
//     solved by Householder QR from gonum. FitUnitTail is the [a, 1] form
//     used for √x-like targets whose derivative blows up at 0.
//   - Interpolate: interpolation at the degree+1 Chebyshev nodes.
//
// Neither construction bounds the approximation error analytically; use
// MaxError on a validation grid to measure it. Evaluation outside the
// domain extrapolates silently (Eval) or fails (EvalStrict).
package chebyshev
