// SPDX-License-Identifier: MIT

package walkthrough

import (
	"math"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/qsvt/chebyshev"
	"github.com/katalvlaran/qsvt/logger"
	"github.com/katalvlaran/qsvt/matrix"
	"github.com/katalvlaran/qsvt/spectral"
)

// Section names, as used by the CLI and in log fields.
const (
	SectionMatrix     = "matrix"
	SectionPowers     = "powers"
	SectionSqrt       = "sqrt"
	SectionSqrtMatrix = "sqrt_matrix"
	SectionFractional = "fractional"
	SectionApply      = "apply"
)

// Runner executes walkthrough sections and logs their progress.
type Runner struct {
	log *zap.Logger
}

// NewRunner returns a Runner logging to log; nil means no logging.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{log: log.Named("walkthrough")}
}

// Run executes every section in notebook order.
func (r *Runner) Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	rep := &Report{Config: cfg}

	var err error
	if rep.Matrix, err = r.MatrixSection(cfg); err != nil {
		return nil, err
	}
	if rep.Powers, err = r.PowersSection(cfg); err != nil {
		return nil, err
	}
	if rep.Sqrt, err = r.SqrtSection(cfg); err != nil {
		return nil, err
	}
	if rep.SqrtMatrix, err = r.SqrtMatrixSection(cfg); err != nil {
		return nil, err
	}
	if rep.Fractional, err = r.FractionalSection(cfg); err != nil {
		return nil, err
	}

	r.log.Info("walkthrough complete",
		zap.Int64(logger.FieldDurationMS, time.Since(start).Milliseconds()),
		zap.Bool("within_tolerance", rep.SqrtMatrix.WithinTolerance),
	)

	return rep, nil
}

// MatrixSection builds A and checks that decomposition recovers λ.
func (r *Runner) MatrixSection(cfg Config) (*MatrixReport, error) {
	a, opts, err := r.prepare(cfg, SectionMatrix)
	if err != nil {
		return nil, err
	}
	dec, err := spectral.Decompose(a, opts...)
	if err != nil {
		return nil, errors.Wrap(err, SectionMatrix)
	}

	want := append([]float64(nil), cfg.Eigenvalues...)
	sort.Float64s(want)
	got := dec.Values()
	var diff float64
	for i := range want {
		diff = math.Max(diff, math.Abs(want[i]-got[i]))
	}

	return &MatrixReport{
		Theta:        cfg.Theta,
		Eigenvalues:  append([]float64(nil), cfg.Eigenvalues...),
		Basis:        rows(spectral.Rotation(cfg.Theta)),
		A:            rows(a),
		Recovered:    got,
		Backend:      cfg.Backend,
		MaxEigenDiff: diff,
	}, nil
}

// PowersSection computes A^k and λ^k for every configured k.
func (r *Runner) PowersSection(cfg Config) (*PowersReport, error) {
	a, opts, err := r.prepare(cfg, SectionPowers)
	if err != nil {
		return nil, err
	}
	dec, err := spectral.Decompose(a, opts...)
	if err != nil {
		return nil, errors.Wrap(err, SectionPowers)
	}
	vals := dec.Values()

	rep := &PowersReport{Eigenvalues: vals}
	for _, k := range cfg.Powers {
		pk, err := spectral.Power(a, k)
		if err != nil {
			return nil, errors.Wrap(err, SectionPowers)
		}
		curve, err := spectral.PowerCurve(vals, k)
		if err != nil {
			return nil, errors.Wrap(err, SectionPowers)
		}
		ratio, err := spectral.SeparationRatio(vals, k)
		if err != nil {
			return nil, errors.Wrap(err, SectionPowers)
		}
		rep.Entries = append(rep.Entries, PowerEntry{K: k, Matrix: rows(pk), Transformed: curve, SeparationRatio: ratio})
		r.log.Debug("power", zap.Int(logger.FieldPower, k), zap.Float64("separation_ratio", ratio))
	}

	return rep, nil
}

// SqrtSection fits √x on [a, 1] and sweeps degree and domain.
func (r *Runner) SqrtSection(cfg Config) (*SqrtReport, error) {
	if _, _, err := r.prepare(cfg, SectionSqrt); err != nil {
		return nil, err
	}
	series, err := spectral.ApproximateSqrt(cfg.DomainLow, cfg.Degree, chebyshev.WithSamples(cfg.FitSamples))
	if err != nil {
		return nil, errors.Wrap(err, SectionSqrt)
	}

	grid := chebyshev.Linspace(cfg.DomainLow, 1, cfg.PlotPoints)
	curve := make([]CurvePoint, len(grid))
	for i, x := range grid {
		curve[i] = CurvePoint{X: x, Exact: math.Sqrt(x), Approx: series.Eval(x)}
	}

	interp, err := chebyshev.Interpolate(math.Sqrt, cfg.DomainLow, 1, cfg.Degree)
	if err != nil {
		return nil, errors.Wrap(err, SectionSqrt)
	}

	rep := &SqrtReport{
		DomainLow:          cfg.DomainLow,
		Degree:             cfg.Degree,
		Samples:            cfg.FitSamples,
		Coefficients:       series.Coeffs(),
		MaxError:           chebyshev.MaxError(math.Sqrt, series.Eval, grid),
		InterpCoefficients: interp.Coeffs(),
		InterpMaxError:     chebyshev.MaxError(math.Sqrt, interp.Eval, grid),
		Curve:              curve,
	}
	r.log.Debug("sqrt fit",
		zap.Float64(logger.FieldDomainLow, cfg.DomainLow),
		zap.Int(logger.FieldDegree, cfg.Degree),
		zap.Float64s("coefficients", rep.Coefficients),
		zap.Float64(logger.FieldMaxError, rep.MaxError),
		zap.Float64("interp_max_error", rep.InterpMaxError),
	)

	for _, d := range cfg.SweepDegrees {
		e, err := sqrtSweepEntry(cfg.DomainLow, d, cfg.FitSamples, cfg.PlotPoints)
		if err != nil {
			return nil, errors.Wrap(err, SectionSqrt)
		}
		rep.DegreeSweep = append(rep.DegreeSweep, e)
	}
	for _, lo := range cfg.SweepDomains {
		e, err := sqrtSweepEntry(lo, cfg.Degree, cfg.FitSamples, cfg.PlotPoints)
		if err != nil {
			return nil, errors.Wrap(err, SectionSqrt)
		}
		rep.DomainSweep = append(rep.DomainSweep, e)
	}

	return rep, nil
}

// SqrtMatrixSection compares exact √A with P(A) for the fitted series.
func (r *Runner) SqrtMatrixSection(cfg Config) (*SqrtMatrixReport, error) {
	a, opts, err := r.prepare(cfg, SectionSqrtMatrix)
	if err != nil {
		return nil, err
	}
	exact, err := spectral.Apply(a, spectral.Sqrt, opts...)
	if err != nil {
		return nil, errors.Wrap(err, SectionSqrtMatrix)
	}
	series, err := spectral.ApproximateSqrt(cfg.DomainLow, cfg.Degree, chebyshev.WithSamples(cfg.FitSamples))
	if err != nil {
		return nil, errors.Wrap(err, SectionSqrtMatrix)
	}
	approx, err := spectral.ApplySeries(a, series, opts...)
	if err != nil {
		return nil, errors.Wrap(err, SectionSqrtMatrix)
	}

	maxErr, err := matrix.MaxAbsDiff(exact, approx)
	if err != nil {
		return nil, errors.Wrap(err, SectionSqrtMatrix)
	}
	sq, err := matrix.Mul(exact, exact)
	if err != nil {
		return nil, errors.Wrap(err, SectionSqrtMatrix)
	}
	residual, err := matrix.MaxAbsDiff(sq, a)
	if err != nil {
		return nil, errors.Wrap(err, SectionSqrtMatrix)
	}

	rep := &SqrtMatrixReport{
		Exact:           rows(exact),
		Approx:          rows(approx),
		MaxAbsError:     maxErr,
		SquareResidual:  residual,
		Tolerance:       cfg.Tolerance,
		WithinTolerance: maxErr < cfg.Tolerance,
	}
	if !rep.WithinTolerance {
		r.log.Warn("polynomial √A outside tolerance",
			zap.Float64(logger.FieldMaxError, maxErr),
			zap.Float64(logger.FieldTolerance, cfg.Tolerance),
			zap.Int(logger.FieldDegree, cfg.Degree),
		)
	}

	return rep, nil
}

// FractionalSection maps the spectrum through x^α for each α.
func (r *Runner) FractionalSection(cfg Config) (*FractionalReport, error) {
	a, opts, err := r.prepare(cfg, SectionFractional)
	if err != nil {
		return nil, err
	}
	dec, err := spectral.Decompose(a, opts...)
	if err != nil {
		return nil, errors.Wrap(err, SectionFractional)
	}
	vals := dec.Values()
	grid := chebyshev.Linspace(cfg.DomainLow, 1, cfg.PlotPoints)

	rep := &FractionalReport{Eigenvalues: vals}
	for _, alpha := range cfg.Alphas {
		f := spectral.Pow(alpha)
		m, err := dec.Map(f)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: alpha=%g", SectionFractional, alpha)
		}
		am, err := m.Matrix()
		if err != nil {
			return nil, errors.Wrap(err, SectionFractional)
		}
		fit, err := chebyshev.FitUnitTail(f, cfg.DomainLow, cfg.Degree, chebyshev.WithSamples(cfg.FitSamples))
		if err != nil {
			return nil, errors.Wrapf(err, "%s: alpha=%g", SectionFractional, alpha)
		}
		entry := FractionalEntry{
			Alpha:       alpha,
			Transformed: m.Values(),
			Matrix:      rows(am),
			FitMaxError: chebyshev.MaxError(f, fit.Eval, grid),
		}
		rep.Entries = append(rep.Entries, entry)
		r.log.Debug("fractional power",
			zap.Float64(logger.FieldAlpha, alpha),
			zap.Float64s("transformed", entry.Transformed),
			zap.Float64(logger.FieldMaxError, entry.FitMaxError),
		)
	}

	return rep, nil
}

// ApplySection applies a catalog function (see spectral.ParseFunc) to A,
// either exactly or through its degree-d fit on [a, 1].
func (r *Runner) ApplySection(cfg Config, funcSpec string, approx bool) (*ApplyReport, error) {
	a, opts, err := r.prepare(cfg, SectionApply)
	if err != nil {
		return nil, err
	}
	f, err := spectral.ParseFunc(funcSpec)
	if err != nil {
		return nil, err
	}
	dec, err := spectral.Decompose(a, opts...)
	if err != nil {
		return nil, errors.Wrap(err, SectionApply)
	}
	exact, err := dec.Map(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", SectionApply, funcSpec)
	}
	exactM, err := exact.Matrix()
	if err != nil {
		return nil, errors.Wrap(err, SectionApply)
	}

	rep := &ApplyReport{Func: funcSpec, Approx: approx, Eigenvalues: dec.Values()}
	if spectral.IsInverse(funcSpec) {
		direct, err := matrix.Inverse(a)
		if err != nil {
			return nil, errors.Wrap(err, SectionApply)
		}
		d, err := matrix.MaxAbsDiff(exactM, direct)
		if err != nil {
			return nil, errors.Wrap(err, SectionApply)
		}
		rep.LUDiff = &d
		r.log.Debug("spectral inverse vs LU", zap.Float64(logger.FieldMaxError, d))
	}
	if !approx {
		rep.Transformed = exact.Values()
		rep.Matrix = rows(exactM)
		return rep, nil
	}

	series, err := chebyshev.Fit(f, cfg.DomainLow, 1, cfg.Degree, chebyshev.WithSamples(cfg.FitSamples))
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", SectionApply, funcSpec)
	}
	pm, err := spectral.ApplySeries(a, series, opts...)
	if err != nil {
		return nil, errors.Wrap(err, SectionApply)
	}
	diff, err := matrix.MaxAbsDiff(exactM, pm)
	if err != nil {
		return nil, errors.Wrap(err, SectionApply)
	}
	rep.Transformed = series.EvalAll(rep.Eigenvalues)
	rep.Matrix = rows(pm)
	rep.MaxAbsError = &diff
	r.log.Info("applied polynomial approximation",
		zap.String(logger.FieldFunc, funcSpec),
		zap.Int(logger.FieldDegree, cfg.Degree),
		zap.Float64(logger.FieldMaxError, diff),
	)

	return rep, nil
}

// prepare validates cfg and builds A with the configured backend.
func (r *Runner) prepare(cfg Config, section string) (*matrix.Dense, []spectral.Option, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	backend, err := spectral.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, nil, err
	}
	a, err := spectral.Build(cfg.Theta, cfg.Eigenvalues[0], cfg.Eigenvalues[1])
	if err != nil {
		return nil, nil, errors.Wrap(err, section)
	}
	r.log.Info("section", zap.String(logger.FieldSection, section), zap.String(logger.FieldBackend, backend.String()))

	return a, []spectral.Option{spectral.WithBackend(backend)}, nil
}

// sqrtSweepEntry measures the least-squares fit and the node interpolant of
// √x on [lo, 1] at one degree.
func sqrtSweepEntry(lo float64, degree, samples, points int) (SweepEntry, error) {
	grid := chebyshev.Linspace(lo, 1, points)
	s, err := chebyshev.FitUnitTail(math.Sqrt, lo, degree, chebyshev.WithSamples(samples))
	if err != nil {
		return SweepEntry{}, err
	}
	p, err := chebyshev.Interpolate(math.Sqrt, lo, 1, degree)
	if err != nil {
		return SweepEntry{}, err
	}

	return SweepEntry{
		DomainLow:      lo,
		Degree:         degree,
		MaxError:       chebyshev.MaxError(math.Sqrt, s.Eval, grid),
		InterpMaxError: chebyshev.MaxError(math.Sqrt, p.Eval, grid),
	}, nil
}

// rows copies m into a row-major slice of slices.
func rows(m matrix.Matrix) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j], _ = m.At(i, j)
		}
	}

	return out
}
