// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qsvt/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type, forcing the At-based
// materialization path inside kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c *Dense from row-major values or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose asserts AllClose(a, b, rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

// rotation2 returns the 2×2 rotation [[cos,-sin],[sin,cos]].
func rotation2(t *testing.T, theta float64) *matrix.Dense {
	t.Helper()
	c, s := math.Cos(theta), math.Sin(theta)

	return NewFilledDense(t, 2, 2, []float64{c, -s, s, c})
}

// symmetricFromSpectrum builds R(θ)·diag(l)·R(θ)ᵀ.
func symmetricFromSpectrum(t *testing.T, theta float64, l1, l2 float64) matrix.Matrix {
	t.Helper()
	r := rotation2(t, theta)
	d, err := matrix.NewDiagonal([]float64{l1, l2})
	require.NoError(t, err)
	rd, err := matrix.Mul(r, d)
	require.NoError(t, err)
	rt, err := matrix.Transpose(r)
	require.NoError(t, err)
	a, err := matrix.Mul(rd, rt)
	require.NoError(t, err)

	return a
}
