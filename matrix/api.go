// SPDX-License-Identifier: MIT
// Package matrix: constructors and comparison facades.
//
// Purpose:
//   - Provide intention-revealing constructors (identity, diagonal).
//   - Provide numeric comparisons used by spectral checks and tests
//     (AllClose, MaxAbsDiff, IsOrthogonal).
//
// AI-Hints:
//   - Prefer passing *Dense to avoid the At-based materialization in kernels.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	opAllClose     = "AllClose"
	opMaxAbsDiff   = "MaxAbsDiff"
	opIsOrthogonal = "IsOrthogonal"
	opDiagonal     = "NewDiagonal"
)

// NewIdentity returns I_n (n×n identity).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// NewDiagonal returns diag(values) as an n×n Dense, n = len(values).
//
// Errors:
//   - ErrInvalidDimensions for an empty slice; ErrNaNInf for non-finite entries.
func NewDiagonal(values []float64) (*Dense, error) {
	n := len(values)
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	for i, v := range values {
		if isNonFinite(v) {
			return nil, matrixErrorf(opDiagonal, errors.Wrapf(ErrNaNInf, "values[%d]", i))
		}
		d.data[i*n+i] = v
	}

	return d, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN never compares close; equal infinities do.
// rtol, atol are treated as |rtol|, |atol|.
//
// Complexity: O(r*c) time, O(1) space on *Dense inputs.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	var x, y float64
	for k := range da.data {
		x, y = da.data[k], db.data[k]
		if math.IsNaN(x) || math.IsNaN(y) {
			return false, nil
		}
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			if x != y {
				return false, nil
			}
			continue
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}

// MaxAbsDiff returns max_{i,j} |a[i,j] − b[i,j]| (the entrywise ∞-distance).
// Used to compare an exact matrix function with its polynomial approximation.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	da, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	db, err := asDense(b)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	var worst float64
	for k := range da.data {
		if d := math.Abs(da.data[k] - db.data[k]); d > worst || math.IsNaN(d) {
			worst = d
		}
	}

	return worst, nil
}

// IsOrthogonal reports whether mᵀ·m = I within eps (entrywise).
// Non-square input returns (false, nil).
func IsOrthogonal(m Matrix, eps float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsOrthogonal, err)
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	mt, err := Transpose(m)
	if err != nil {
		return false, matrixErrorf(opIsOrthogonal, err)
	}
	gram, err := Mul(mt, m)
	if err != nil {
		return false, matrixErrorf(opIsOrthogonal, err)
	}
	id, err := NewIdentity(m.Rows())
	if err != nil {
		return false, matrixErrorf(opIsOrthogonal, err)
	}
	diff, err := MaxAbsDiff(gram, id)
	if err != nil {
		return false, matrixErrorf(opIsOrthogonal, err)
	}

	return diff <= math.Abs(eps), nil
}
