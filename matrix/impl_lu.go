// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	opLU      = "LU"
	opInverse = "Inverse"
)

// LU factors P·A = L·U with partial pivoting (Doolittle form: L has a unit
// diagonal). perm[i] is the row of A that ended up in row i.
//
// Implementation:
//   - Stage 1: validate square, copy A into a working buffer.
//   - Stage 2: for each column pick the largest |pivot| at or below the
//     diagonal, swap rows, eliminate below.
//   - Stage 3: split the buffer into L and U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (pivot magnitude ≤ eps·max|A|).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (l, u *Dense, perm []int, err error) {
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	n := src.r
	a := append([]float64(nil), src.data...)

	var scale float64
	for _, v := range a {
		scale = math.Max(scale, math.Abs(v))
	}
	threshold := o.eps * scale

	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= threshold {
			return nil, nil, nil, matrixErrorf(opLU, errors.Wrapf(ErrSingular, "pivot %.3g at column %d", best, k))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / a[k*n+k]
			a[i*n+k] = f // multiplier lives in the L part
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	l, _ = newDenseWithPolicy(n, n, false)
	u, _ = newDenseWithPolicy(n, n, false)
	for i = 0; i < n; i++ {
		l.data[i*n+i] = 1
		for j = 0; j < n; j++ {
			if j < i {
				l.data[i*n+j] = a[i*n+j]
			} else {
				u.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return l, u, perm, nil
}

// Inverse returns A⁻¹ by solving L·U·x = P·e_j for every column j.
// The spectral route (1/λ on the eigenvalues) is the alternative for
// symmetric input; both must agree.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	l, u, perm, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := l.r
	inv, _ := newDenseWithPolicy(n, n, false)
	y := make([]float64, n)

	var (
		i, j, k int
		sum     float64
	)
	for j = 0; j < n; j++ {
		// forward: L·y = P·e_j
		for i = 0; i < n; i++ {
			sum = 0
			if perm[i] == j {
				sum = 1
			}
			for k = 0; k < i; k++ {
				sum -= l.data[i*n+k] * y[k]
			}
			y[i] = sum
		}
		// backward: U·x = y, written straight into column j
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for k = i + 1; k < n; k++ {
				sum -= u.data[i*n+k] * inv.data[k*n+j]
			}
			inv.data[i*n+j] = sum / u.data[i*n+i]
		}
	}

	return inv, nil
}
