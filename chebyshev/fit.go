// SPDX-License-Identifier: MIT

package chebyshev

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// Fit samples f on a uniform grid over [lo, hi] and returns the degree-d
// Chebyshev series minimizing the squared residual on that grid.
//
// Errors:
//   - ErrInvalidDomain, ErrInvalidDegree, ErrTooFewSamples (samples ≤ degree),
//     ErrNonFinite (f returned NaN/Inf), ErrIllConditioned.
//
// The fit carries no error bound; accuracy near a singular endpoint degrades
// quietly when the degree is small. Check it with MaxError.
func Fit(f func(float64) float64, lo, hi float64, degree int, opts ...Option) (*Series, error) {
	if err := validateDomain(lo, hi); err != nil {
		return nil, err
	}
	if degree < 0 {
		return nil, errors.Wrapf(ErrInvalidDegree, "degree=%d", degree)
	}
	o := gatherOptions(opts...)
	if o.samples <= degree {
		return nil, errors.Wrapf(ErrTooFewSamples, "samples=%d degree=%d", o.samples, degree)
	}

	xs := Linspace(lo, hi, o.samples)
	ys, err := sample(f, xs)
	if err != nil {
		return nil, err
	}

	return FitSamples(xs, ys, lo, hi, degree)
}

// FitUnitTail fits f on [a, 1] with 0 < a < 1, the restricted domain that
// keeps functions like √x or x^α (α < 1) away from their singular derivative at 0.
func FitUnitTail(f func(float64) float64, a float64, degree int, opts ...Option) (*Series, error) {
	if !(a > 0 && a < 1) {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidDomain, "a=%g must lie in (0, 1)", a),
			"the lower bound keeps the target away from the singularity at 0",
		)
	}

	return Fit(f, a, 1, degree, opts...)
}

// FitSamples solves the least-squares problem V·c ≈ y, where
// V[i,k] = T_k(t_i) is the Chebyshev–Vandermonde matrix of the samples
// mapped onto [-1, 1].
//
// Implementation:
//   - Stage 1: validate lengths and domain.
//   - Stage 2: build V row by row with the three-term recurrence.
//   - Stage 3: Householder QR (gonum mat.QR) and a triangular solve.
//
// Complexity: O(n·d²) for n samples.
func FitSamples(xs, ys []float64, lo, hi float64, degree int) (*Series, error) {
	if err := validateDomain(lo, hi); err != nil {
		return nil, err
	}
	if degree < 0 {
		return nil, errors.Wrapf(ErrInvalidDegree, "degree=%d", degree)
	}
	n := len(xs)
	if n != len(ys) {
		return nil, errors.Wrapf(ErrTooFewSamples, "len(xs)=%d != len(ys)=%d", n, len(ys))
	}
	if n <= degree {
		return nil, errors.Wrapf(ErrTooFewSamples, "samples=%d degree=%d", n, degree)
	}

	v := vandermonde(xs, lo, hi, degree)
	b := mat.NewVecDense(n, ys)
	c := mat.NewVecDense(degree+1, nil)

	var qr mat.QR
	qr.Factorize(v)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, errors.Wrapf(ErrIllConditioned, "solve least squares: %v", err)
	}

	coeffs := make([]float64, degree+1)
	for k := range coeffs {
		coeffs[k] = c.AtVec(k)
	}

	return NewSeries(coeffs, lo, hi)
}

// vandermonde returns the n×(d+1) matrix V[i,k] = T_k(t_i).
func vandermonde(xs []float64, lo, hi float64, degree int) *mat.Dense {
	v := mat.NewDense(len(xs), degree+1, nil)
	var t, tPrev, tCur float64
	for i, x := range xs {
		t = toUnit(x, lo, hi)
		tPrev, tCur = 1, t
		v.Set(i, 0, 1)
		if degree >= 1 {
			v.Set(i, 1, t)
		}
		for k := 2; k <= degree; k++ {
			tPrev, tCur = tCur, 2*t*tCur-tPrev
			v.Set(i, k, tCur)
		}
	}

	return v
}

// sample evaluates f on xs and rejects non-finite values.
func sample(f func(float64) float64, xs []float64) ([]float64, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, errors.Wrapf(ErrNonFinite, "f(%g)=%g", x, y)
		}
		ys[i] = y
	}

	return ys, nil
}
