// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qsvt/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSymmetric(t *testing.T) {
	cases := []struct {
		name string
		m    matrix.Matrix
		tol  float64
		want error
	}{
		{"nil", nil, 0, matrix.ErrNilMatrix},
		{"non-square", MustDense(t, 2, 3), 0, matrix.ErrDimensionMismatch},
		{"nan tolerance", MustDense(t, 2, 2), math.NaN(), matrix.ErrNaNInf},
		{"asymmetric", NewFilledDense(t, 2, 2, []float64{1, 2, 3, 1}), 1e-9, matrix.ErrAsymmetry},
		{"symmetric within tol", NewFilledDense(t, 2, 2, []float64{1, 2, 2 + 1e-12, 1}), 1e-9, nil},
		{"negative tol normalized", NewFilledDense(t, 2, 2, []float64{1, 2, 2, 1}), -1e-9, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSymmetric(tc.m, tc.tol)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateVecLen(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}
