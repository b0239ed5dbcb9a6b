// SPDX-License-Identifier: MIT

package chebyshev

import "math"

// Linspace returns n evenly spaced points on [lo, hi] with both endpoints
// reproduced exactly. n ≤ 0 yields nil; n == 1 yields [lo].
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out
}

// Nodes returns the n Chebyshev points of the first kind,
// x_k = cos(π(k+½)/n), mapped onto [lo, hi] and sorted ascending.
func Nodes(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	mid, half := 0.5*(lo+hi), 0.5*(hi-lo)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		// cos is decreasing on [0, π]; fill from the back for ascending order.
		t := math.Cos(math.Pi * (float64(k) + 0.5) / float64(n))
		out[n-1-k] = mid + half*t
	}

	return out
}

// MaxError returns max |f(x) − g(x)| over grid, or 0 for an empty grid.
// A NaN difference propagates as NaN.
func MaxError(f, g func(float64) float64, grid []float64) float64 {
	var worst float64
	for _, x := range grid {
		d := math.Abs(f(x) - g(x))
		if math.IsNaN(d) {
			return math.NaN()
		}
		if d > worst {
			worst = d
		}
	}

	return worst
}
