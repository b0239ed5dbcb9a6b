// SPDX-License-Identifier: MIT

package chebyshev

import (
	"github.com/cockroachdb/errors"
)

// Interpolate returns the degree-d series that matches f exactly at the
// d+1 Chebyshev nodes of [lo, hi]. Coefficients follow the discrete
// orthogonality of T_j at those nodes:
//
//	c_j = (2/n)·Σ_k f(x_k)·T_j(t_k),  c_0 halved,  n = d+1.
//
// Complexity: O(d²).
func Interpolate(f func(float64) float64, lo, hi float64, degree int) (*Series, error) {
	if err := validateDomain(lo, hi); err != nil {
		return nil, err
	}
	if degree < 0 {
		return nil, errors.Wrapf(ErrInvalidDegree, "degree=%d", degree)
	}

	n := degree + 1
	xs := Nodes(lo, hi, n)
	ys, err := sample(f, xs)
	if err != nil {
		return nil, err
	}

	coeffs := make([]float64, n)
	for j := 0; j < n; j++ {
		var sum float64
		for k, x := range xs {
			sum += ys[k] * T(j, toUnit(x, lo, hi))
		}
		coeffs[j] = 2 * sum / float64(n)
	}
	coeffs[0] /= 2

	return NewSeries(coeffs, lo, hi)
}
