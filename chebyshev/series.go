// SPDX-License-Identifier: MIT

package chebyshev

import (
	"math"

	"github.com/cockroachdb/errors"
)

// domainSlack is the relative tolerance Contains grants at each endpoint, so
// eigenvalues recovered with round-off (0.19999999999999998 for 0.2) still
// count as in-domain.
const domainSlack = 1e-12

// Series is a Chebyshev expansion Σ c_k·T_k(t) over the domain [lo, hi].
// A Series is immutable after construction.
type Series struct {
	coeffs []float64
	lo, hi float64
}

// NewSeries builds a Series from explicit coefficients (copied).
func NewSeries(coeffs []float64, lo, hi float64) (*Series, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyCoeffs
	}
	if err := validateDomain(lo, hi); err != nil {
		return nil, err
	}
	for k, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, errors.Wrapf(ErrNonFinite, "coeffs[%d]", k)
		}
	}
	cp := make([]float64, len(coeffs))
	copy(cp, coeffs)

	return &Series{coeffs: cp, lo: lo, hi: hi}, nil
}

// Degree returns the polynomial degree d (len(coeffs) − 1).
func (s *Series) Degree() int { return len(s.coeffs) - 1 }

// Domain returns the approximation interval.
func (s *Series) Domain() (lo, hi float64) { return s.lo, s.hi }

// Coeffs returns a copy of c₀..c_d.
func (s *Series) Coeffs() []float64 {
	out := make([]float64, len(s.coeffs))
	copy(out, s.coeffs)

	return out
}

// Contains reports whether x lies in [lo, hi] up to round-off.
func (s *Series) Contains(x float64) bool {
	slack := domainSlack * (s.hi - s.lo)

	return x >= s.lo-slack && x <= s.hi+slack
}

// Eval evaluates the series at x with Clenshaw's recurrence.
// Points outside the domain are extrapolated without warning.
//
// Complexity: O(d).
func (s *Series) Eval(x float64) float64 {
	return clenshaw(s.coeffs, toUnit(x, s.lo, s.hi))
}

// EvalAll evaluates the series on every point of xs.
func (s *Series) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = s.Eval(x)
	}

	return out
}

// EvalStrict evaluates at x and fails with ErrOutOfDomain outside [lo, hi].
func (s *Series) EvalStrict(x float64) (float64, error) {
	if !s.Contains(x) {
		return 0, errors.Wrapf(ErrOutOfDomain, "x=%g not in [%g, %g]", x, s.lo, s.hi)
	}

	return s.Eval(x), nil
}

// T evaluates the Chebyshev polynomial of the first kind T_n at t
// (T_0=1, T_1=t, T_n = 2t·T_{n-1} − T_{n-2}).
func T(n int, t float64) float64 {
	if n == 0 {
		return 1
	}
	t0, t1 := 1.0, t
	for k := 2; k <= n; k++ {
		t0, t1 = t1, 2*t*t1-t0
	}

	return t1
}

// clenshaw sums Σ c_k·T_k(t) backwards: b_k = c_k + 2t·b_{k+1} − b_{k+2}.
func clenshaw(c []float64, t float64) float64 {
	var b1, b2 float64
	for k := len(c) - 1; k >= 1; k-- {
		b1, b2 = c[k]+2*t*b1-b2, b1
	}

	return c[0] + t*b1 - b2
}

// toUnit maps x ∈ [lo, hi] onto t ∈ [-1, 1].
func toUnit(x, lo, hi float64) float64 {
	return (2*x - lo - hi) / (hi - lo)
}

func validateDomain(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return errors.Wrapf(ErrInvalidDomain, "[%g, %g] has a non-finite bound", lo, hi)
	}
	if lo >= hi {
		return errors.Wrapf(ErrInvalidDomain, "lo=%g must be < hi=%g", lo, hi)
	}

	return nil
}
