// SPDX-License-Identifier: MIT

package spectral

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cwbudde/algo-vecmath"
	"github.com/katalvlaran/qsvt/chebyshev"
	"github.com/katalvlaran/qsvt/matrix"
)

// ApproximateSqrt fits √x on [a, 1] with a degree-d Chebyshev series.
func ApproximateSqrt(a float64, degree int, opts ...chebyshev.Option) (*chebyshev.Series, error) {
	s, err := chebyshev.FitUnitTail(math.Sqrt, a, degree, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "ApproximateSqrt(a=%g, degree=%d)", a, degree)
	}

	return s, nil
}

// ApplySeries is Apply with a fitted series, except that every eigenvalue
// must lie in the series domain: extrapolation fails with
// chebyshev.ErrOutOfDomain instead of returning a silently wrong matrix.
func ApplySeries(a matrix.Matrix, s *chebyshev.Series, opts ...Option) (*matrix.Dense, error) {
	sp, err := Decompose(a, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "ApplySeries")
	}
	for _, v := range sp.values {
		if !s.Contains(v) {
			lo, hi := s.Domain()
			return nil, errors.Wrapf(chebyshev.ErrOutOfDomain, "ApplySeries: eigenvalue %g outside [%g, %g]", v, lo, hi)
		}
	}
	m, err := sp.Map(s.Eval)
	if err != nil {
		return nil, errors.Wrap(err, "ApplySeries")
	}

	return m.Matrix()
}

// FractionalPower returns x^α. Negative x with non-integer α yields NaN.
func FractionalPower(x, alpha float64) float64 {
	if alpha == 1 {
		return x
	}

	return math.Pow(x, alpha)
}

// FractionalPowers maps FractionalPower over values.
func FractionalPowers(values []float64, alpha float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = FractionalPower(v, alpha)
	}

	return out
}

// PowerCurve returns λ_i^k for every value, by square-and-multiply over
// whole blocks. k < 0 fails with matrix.ErrNegativeExponent.
func PowerCurve(values []float64, k int) ([]float64, error) {
	if k < 0 {
		return nil, errors.Wrapf(matrix.ErrNegativeExponent, "PowerCurve(k=%d)", k)
	}
	acc := make([]float64, len(values))
	for i := range acc {
		acc[i] = 1
	}
	base := append([]float64(nil), values...)
	sq := make([]float64, len(values))
	for e := k; e > 0; e >>= 1 {
		if e&1 == 1 {
			vecmath.MulBlockInPlace(acc, base)
		}
		if e > 1 {
			copy(sq, base)
			vecmath.MulBlockInPlace(base, sq)
		}
	}

	return acc, nil
}

// SeparationRatio returns min|λ|^k / max|λ|^k: how strongly A^k suppresses
// its smallest eigenvalue relative to its largest.
func SeparationRatio(values []float64, k int) (float64, error) {
	if len(values) == 0 {
		return 0, errors.Wrap(ErrEmptySpectrum, "SeparationRatio")
	}
	abs := make([]float64, len(values))
	for i, v := range values {
		abs[i] = math.Abs(v)
	}
	pw, err := PowerCurve(abs, k)
	if err != nil {
		return 0, errors.Wrap(err, "SeparationRatio")
	}
	hi := vecmath.MaxAbs(pw)
	if hi == 0 {
		return 0, errors.Wrap(ErrNonFinite, "SeparationRatio: all eigenvalues are zero")
	}
	lo := pw[0]
	for _, v := range pw[1:] {
		if v < lo {
			lo = v
		}
	}

	return lo / hi, nil
}
