// SPDX-License-Identifier: MIT
package spectral_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qsvt/chebyshev"
	"github.com/katalvlaran/qsvt/matrix"
	"github.com/katalvlaran/qsvt/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	theta = 0.6
	l1    = 0.2
	l2    = 0.8
)

func notebookMatrix(t *testing.T) *matrix.Dense {
	t.Helper()
	a, err := spectral.Build(theta, l1, l2)
	require.NoError(t, err)

	return a
}

func requireClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	d, err := matrix.MaxAbsDiff(want, got)
	require.NoError(t, err)
	require.LessOrEqual(t, d, tol, "max |Δ| = %g", d)
}

func TestRotation_IsOrthogonal(t *testing.T) {
	for _, th := range []float64{0, 0.6, math.Pi / 3, -2} {
		ok, err := matrix.IsOrthogonal(spectral.Rotation(th), 1e-14)
		require.NoError(t, err)
		assert.True(t, ok, "theta=%g", th)
	}
}

func TestBuild_SymmetricWithSpectrum(t *testing.T) {
	a := notebookMatrix(t)
	require.NoError(t, matrix.ValidateSymmetric(a, 1e-15))

	// trace and determinant pin the spectrum of a 2×2
	a00, _ := a.At(0, 0)
	a01, _ := a.At(0, 1)
	a10, _ := a.At(1, 0)
	a11, _ := a.At(1, 1)
	assert.InDelta(t, l1+l2, a00+a11, 1e-15)
	assert.InDelta(t, l1*l2, a00*a11-a01*a10, 1e-15)

	s, err := spectral.Decompose(a)
	require.NoError(t, err)
	vals := s.Values()
	assert.InDelta(t, l1, vals[0], 1e-12)
	assert.InDelta(t, l2, vals[1], 1e-12)
}

func TestNew_RejectsNonFinite(t *testing.T) {
	_, err := spectral.New(theta, math.NaN(), 1)
	require.ErrorIs(t, err, spectral.ErrNonFinite)
	_, err = spectral.New(math.Inf(1), 1, 1)
	require.ErrorIs(t, err, spectral.ErrNonFinite)
	_, err = spectral.Build(theta, 1, math.Inf(-1))
	require.ErrorIs(t, err, spectral.ErrNonFinite)
}

func TestSpectral_AccessorsDetached(t *testing.T) {
	s, err := spectral.New(theta, l1, l2)
	require.NoError(t, err)
	require.Equal(t, 2, s.Dim())

	v := s.Values()
	v[0] = 42
	require.Equal(t, []float64{l1, l2}, s.Values())

	u := s.Vectors()
	require.NoError(t, u.Set(0, 0, 42))
	u2 := s.Vectors()
	got, _ := u2.At(0, 0)
	require.InDelta(t, math.Cos(theta), got, 0)
}

func TestFromBasis(t *testing.T) {
	s, err := spectral.FromBasis(spectral.Rotation(theta), []float64{l1, l2})
	require.NoError(t, err)
	m, err := s.Matrix()
	require.NoError(t, err)
	requireClose(t, notebookMatrix(t), m, 1e-15)

	id3, _ := matrix.NewIdentity(3)
	s3, err := spectral.FromBasis(id3, []float64{1, 2, 3})
	require.NoError(t, err)
	m3, err := s3.Matrix()
	require.NoError(t, err)
	diag, _ := matrix.NewDiagonal([]float64{1, 2, 3})
	requireClose(t, diag, m3, 0)

	shear, _ := matrix.NewDenseFrom(2, 2, []float64{1, 1, 0, 1})
	_, err = spectral.FromBasis(shear, []float64{1, 2})
	require.ErrorIs(t, err, spectral.ErrNotOrthonormal)

	_, err = spectral.FromBasis(id3, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = spectral.FromBasis(id3, nil)
	require.ErrorIs(t, err, spectral.ErrEmptySpectrum)

	_, err = spectral.FromBasis(id3, []float64{1, math.NaN(), 3})
	require.ErrorIs(t, err, spectral.ErrNonFinite)

	_, err = spectral.FromBasis(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// a loose tolerance accepts a slightly perturbed basis
	near, _ := matrix.NewDenseFrom(2, 2, []float64{1, 1e-6, 0, 1})
	_, err = spectral.FromBasis(near, []float64{1, 2}, spectral.WithOrthoTolerance(1e-5))
	require.NoError(t, err)
}

func TestMap(t *testing.T) {
	s, err := spectral.New(theta, l1, l2)
	require.NoError(t, err)

	sq, err := s.Map(math.Sqrt)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{math.Sqrt(l1), math.Sqrt(l2)}, sq.Values(), 1e-15)
	// the receiver is untouched
	assert.Equal(t, []float64{l1, l2}, s.Values())

	_, err = s.Map(func(x float64) float64 { return math.Log(x - 0.5) })
	require.ErrorIs(t, err, spectral.ErrNonFinite)
}

func TestApply_IdentityReconstructs(t *testing.T) {
	a := notebookMatrix(t)
	got, err := spectral.Apply(a, spectral.Identity)
	require.NoError(t, err)
	requireClose(t, a, got, 1e-12)
}

func TestApply_SqrtSquaresBack(t *testing.T) {
	a := notebookMatrix(t)
	r, err := spectral.Apply(a, spectral.Sqrt)
	require.NoError(t, err)
	rr, err := matrix.Mul(r, r)
	require.NoError(t, err)
	requireClose(t, a, rr, 1e-12)
}

func TestApply_InverseIsInverse(t *testing.T) {
	a := notebookMatrix(t)
	inv, err := spectral.Apply(a, spectral.Inverse)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(2)
	requireClose(t, id, prod, 1e-12)
}

// e^{-iAt} is unitary, so its parts satisfy cos(At)² + sin(At)² = I.
func TestApply_EvolutionPartsAreUnitary(t *testing.T) {
	a := notebookMatrix(t)
	for _, tt := range []float64{0.5, 1, 3} {
		c, err := spectral.Apply(a, spectral.EvolutionCos(tt))
		require.NoError(t, err)
		s, err := spectral.Apply(a, spectral.EvolutionSin(tt))
		require.NoError(t, err)

		cc, err := matrix.Mul(c, c)
		require.NoError(t, err)
		ss, err := matrix.Mul(s, s)
		require.NoError(t, err)
		sum, err := matrix.Add(cc, ss)
		require.NoError(t, err)
		id, _ := matrix.NewIdentity(2)
		requireClose(t, id, sum, 1e-12)
	}
}

func TestApply_InverseMatchesLU(t *testing.T) {
	a := notebookMatrix(t)
	viaSpectrum, err := spectral.Apply(a, spectral.Inverse)
	require.NoError(t, err)
	viaLU, err := matrix.Inverse(a)
	require.NoError(t, err)
	requireClose(t, viaLU, viaSpectrum, 1e-10)
}

func TestApply_Errors(t *testing.T) {
	neg, err := spectral.Build(theta, -0.2, 0.8)
	require.NoError(t, err)
	_, err = spectral.Apply(neg, spectral.Sqrt)
	require.ErrorIs(t, err, spectral.ErrNonFinite)

	asym, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	_, err = spectral.Apply(asym, spectral.Identity)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	rect, _ := matrix.NewDense(2, 3)
	_, err = spectral.Apply(rect, spectral.Identity)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDecompose_BackendsAgree(t *testing.T) {
	u := spectral.Rotation(1.1)
	s, err := spectral.FromBasis(u, []float64{-1, 3})
	require.NoError(t, err)
	a, err := s.Matrix()
	require.NoError(t, err)

	j, err := spectral.Decompose(a)
	require.NoError(t, err)
	g, err := spectral.Decompose(a, spectral.WithBackend(spectral.BackendGonum))
	require.NoError(t, err)
	assert.InDeltaSlice(t, j.Values(), g.Values(), 1e-12)
	assert.InDeltaSlice(t, []float64{-1, 3}, j.Values(), 1e-12)

	// both reconstruct A
	ja, _ := j.Matrix()
	ga, _ := g.Matrix()
	requireClose(t, a, ja, 1e-12)
	requireClose(t, a, ga, 1e-12)

	// options reach the matrix layer
	dense3, _ := matrix.NewDenseFrom(3, 3, []float64{2, 1, 1, 1, 2, 1, 1, 1, 2})
	_, err = spectral.Decompose(dense3, spectral.WithMatrixOptions(matrix.WithEigenMaxIter(1)))
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

func TestPower(t *testing.T) {
	a := notebookMatrix(t)

	p1, err := spectral.Power(a, 1)
	require.NoError(t, err)
	requireClose(t, a, p1, 0)

	p0, err := spectral.Power(a, 0)
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(2)
	requireClose(t, id, p0, 0)

	// A^k shares U and carries λ^k
	for _, k := range []int{2, 3, 4} {
		pk, err := spectral.Power(a, k)
		require.NoError(t, err)
		viaSpectrum, err := spectral.Apply(a, spectral.Pow(float64(k)))
		require.NoError(t, err)
		requireClose(t, viaSpectrum, pk, 1e-14)
	}

	_, err = spectral.Power(a, -1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)
}

// TestSqrtApproximation_EndToEnd reproduces the walkthrough's headline:
// a degree-6 fit of √x on [0.2, 1] applied spectrally stays within 1e-2 of √A.
func TestSqrtApproximation_EndToEnd(t *testing.T) {
	a := notebookMatrix(t)
	exact, err := spectral.Apply(a, spectral.Sqrt)
	require.NoError(t, err)

	series, err := spectral.ApproximateSqrt(0.2, 6)
	require.NoError(t, err)
	poly, err := spectral.ApplySeries(a, series)
	require.NoError(t, err)

	d, err := matrix.MaxAbsDiff(exact, poly)
	require.NoError(t, err)
	assert.Less(t, d, 1e-2)

	viaApply, err := spectral.Apply(a, series.Eval)
	require.NoError(t, err)
	requireClose(t, poly, viaApply, 0)
}

func TestApplySeries_OutOfDomain(t *testing.T) {
	series, err := spectral.ApproximateSqrt(0.5, 4)
	require.NoError(t, err)
	_, err = spectral.ApplySeries(notebookMatrix(t), series)
	require.ErrorIs(t, err, chebyshev.ErrOutOfDomain)

	_, err = spectral.ApproximateSqrt(1.5, 4)
	require.ErrorIs(t, err, chebyshev.ErrInvalidDomain)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { spectral.WithBackend(spectral.Backend(9)) })
	require.Panics(t, func() { spectral.WithOrthoTolerance(0) })
	require.Panics(t, func() { spectral.WithOrthoTolerance(math.NaN()) })
}

func TestParseBackend(t *testing.T) {
	b, err := spectral.ParseBackend("Gonum")
	require.NoError(t, err)
	require.Equal(t, spectral.BackendGonum, b)
	require.Equal(t, "gonum", b.String())

	b, err = spectral.ParseBackend("")
	require.NoError(t, err)
	require.Equal(t, spectral.BackendJacobi, b)

	_, err = spectral.ParseBackend("lapack")
	require.ErrorIs(t, err, spectral.ErrUnknownBackend)
}
