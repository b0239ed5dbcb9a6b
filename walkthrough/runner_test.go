// SPDX-License-Identifier: MIT
package walkthrough_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qsvt/chebyshev"
	"github.com/katalvlaran/qsvt/spectral"
	"github.com/katalvlaran/qsvt/walkthrough"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func newRunner(t *testing.T) *walkthrough.Runner {
	t.Helper()
	return walkthrough.NewRunner(zaptest.NewLogger(t))
}

func TestRun_DefaultConfig(t *testing.T) {
	rep, err := newRunner(t).Run(walkthrough.DefaultConfig())
	require.NoError(t, err)

	require.NotNil(t, rep.Matrix)
	require.NotNil(t, rep.Powers)
	require.NotNil(t, rep.Sqrt)
	require.NotNil(t, rep.SqrtMatrix)
	require.NotNil(t, rep.Fractional)
	require.Nil(t, rep.Apply)

	// the headline claim: degree 6 on [0.2, 1] is close enough
	assert.True(t, rep.SqrtMatrix.WithinTolerance)
	assert.Less(t, rep.SqrtMatrix.MaxAbsError, 1e-2)
}

func TestMatrixSection(t *testing.T) {
	m, err := newRunner(t).MatrixSection(walkthrough.DefaultConfig())
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.2, 0.8}, m.Recovered, 1e-12)
	assert.Less(t, m.MaxEigenDiff, 1e-12)
	require.Len(t, m.A, 2)
	assert.InDelta(t, m.A[0][1], m.A[1][0], 1e-15)
	assert.InDelta(t, 1.0, m.A[0][0]+m.A[1][1], 1e-15)
	assert.InDelta(t, math.Cos(0.6), m.Basis[0][0], 0)
}

func TestPowersSection(t *testing.T) {
	p, err := newRunner(t).PowersSection(walkthrough.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, p.Entries, 4)

	prevRatio := math.Inf(1)
	for _, e := range p.Entries {
		assert.InDelta(t, math.Pow(0.2, float64(e.K)), e.Transformed[0], 1e-12)
		assert.InDelta(t, math.Pow(0.8, float64(e.K)), e.Transformed[1], 1e-12)
		// higher powers suppress the small eigenvalue harder
		assert.Less(t, e.SeparationRatio, prevRatio)
		prevRatio = e.SeparationRatio
	}

	// trace(A^k) = Σ λ^k
	for _, e := range p.Entries {
		assert.InDelta(t, e.Transformed[0]+e.Transformed[1], e.Matrix[0][0]+e.Matrix[1][1], 1e-12)
	}
}

func TestSqrtSection(t *testing.T) {
	s, err := newRunner(t).SqrtSection(walkthrough.DefaultConfig())
	require.NoError(t, err)

	require.Len(t, s.Coefficients, 7)
	require.Len(t, s.Curve, 400)
	assert.Equal(t, 0.2, s.Curve[0].X)
	assert.Equal(t, 1.0, s.Curve[399].X)
	assert.Less(t, s.MaxError, 1e-2)

	// node interpolation of the same degree is of the same quality
	require.Len(t, s.InterpCoefficients, 7)
	assert.Less(t, s.InterpMaxError, 1e-4)

	require.Len(t, s.DegreeSweep, 9)
	for i := 1; i < len(s.DegreeSweep); i++ {
		assert.LessOrEqual(t, s.DegreeSweep[i].MaxError, s.DegreeSweep[i-1].MaxError)
		assert.LessOrEqual(t, s.DegreeSweep[i].InterpMaxError, s.DegreeSweep[i-1].InterpMaxError)
	}
	require.Len(t, s.DomainSweep, 5)
	for i := 1; i < len(s.DomainSweep); i++ {
		assert.GreaterOrEqual(t, s.DomainSweep[i].MaxError, s.DomainSweep[i-1].MaxError)
		assert.GreaterOrEqual(t, s.DomainSweep[i].InterpMaxError, s.DomainSweep[i-1].InterpMaxError)
	}
}

func TestSqrtMatrixSection_BackendsAgree(t *testing.T) {
	cfg := walkthrough.DefaultConfig()
	j, err := newRunner(t).SqrtMatrixSection(cfg)
	require.NoError(t, err)

	cfg.Backend = "gonum"
	g, err := newRunner(t).SqrtMatrixSection(cfg)
	require.NoError(t, err)

	for i := range j.Exact {
		assert.InDeltaSlice(t, j.Exact[i], g.Exact[i], 1e-12)
		assert.InDeltaSlice(t, j.Approx[i], g.Approx[i], 1e-12)
	}
	assert.Less(t, j.SquareResidual, 1e-12)
}

func TestSqrtMatrixSection_WarnsOutsideTolerance(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := walkthrough.NewRunner(zap.New(core))

	cfg := walkthrough.DefaultConfig()
	cfg.Degree = 1
	cfg.Tolerance = 1e-9
	rep, err := r.SqrtMatrixSection(cfg)
	require.NoError(t, err)
	require.False(t, rep.WithinTolerance)
	require.Equal(t, 1, logs.FilterMessage("polynomial √A outside tolerance").Len())
}

func TestFractionalSection(t *testing.T) {
	f, err := newRunner(t).FractionalSection(walkthrough.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, f.Entries, 3)

	for _, e := range f.Entries {
		assert.InDelta(t, spectral.FractionalPower(0.2, e.Alpha), e.Transformed[0], 1e-12)
		assert.InDelta(t, spectral.FractionalPower(0.8, e.Alpha), e.Transformed[1], 1e-12)
		assert.Less(t, e.FitMaxError, 1e-2)
	}
	// smaller α flattens the spectrum: λmin^α/λmax^α grows as α shrinks
	r := func(e walkthrough.FractionalEntry) float64 { return e.Transformed[0] / e.Transformed[1] }
	assert.Greater(t, r(f.Entries[0]), r(f.Entries[1]))
	assert.Greater(t, r(f.Entries[1]), r(f.Entries[2]))
}

func TestFractionalSection_LogsEachAlpha(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := walkthrough.NewRunner(zap.New(core)).FractionalSection(walkthrough.DefaultConfig())
	require.NoError(t, err)

	entries := logs.FilterMessage("fractional power").All()
	require.Len(t, entries, 3)
	for i, alpha := range walkthrough.DefaultConfig().Alphas {
		assert.Equal(t, alpha, entries[i].ContextMap()["alpha"])
	}
}

func TestApplySection(t *testing.T) {
	cfg := walkthrough.DefaultConfig()
	r := newRunner(t)

	exact, err := r.ApplySection(cfg, "inv", false)
	require.NoError(t, err)
	assert.Nil(t, exact.MaxAbsError)
	require.NotNil(t, exact.LUDiff)
	assert.Less(t, *exact.LUDiff, 1e-10)
	assert.InDeltaSlice(t, []float64{5, 1.25}, exact.Transformed, 1e-12)

	approx, err := r.ApplySection(cfg, "sqrt", true)
	require.NoError(t, err)
	require.NotNil(t, approx.MaxAbsError)
	assert.Less(t, *approx.MaxAbsError, 1e-2)

	evo, err := r.ApplySection(cfg, "cos:1", true)
	require.NoError(t, err)
	require.NotNil(t, evo.MaxAbsError)
	assert.Less(t, *evo.MaxAbsError, 1e-6)
	assert.Nil(t, evo.LUDiff)

	_, err = r.ApplySection(cfg, "nope", false)
	require.ErrorIs(t, err, spectral.ErrUnknownFunc)

	// a pole on the fitting grid cannot be fitted
	_, err = r.ApplySection(cfg, "resolvent:1", true)
	require.ErrorIs(t, err, chebyshev.ErrNonFinite)
}

func TestSections_RejectInvalidConfig(t *testing.T) {
	cfg := walkthrough.DefaultConfig()
	cfg.DomainLow = 0
	r := walkthrough.NewRunner(nil)

	_, err := r.Run(cfg)
	require.ErrorIs(t, err, walkthrough.ErrInvalidConfig)
	_, err = r.MatrixSection(cfg)
	require.ErrorIs(t, err, walkthrough.ErrInvalidConfig)
	_, err = r.SqrtSection(cfg)
	require.ErrorIs(t, err, walkthrough.ErrInvalidConfig)
	_, err = r.ApplySection(cfg, "sqrt", false)
	require.ErrorIs(t, err, walkthrough.ErrInvalidConfig)
}
