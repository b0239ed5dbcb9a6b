// SPDX-License-Identifier: MIT

package walkthrough

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/qsvt/spectral"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("walkthrough: invalid config")

// Config parametrises every section of the walkthrough.
type Config struct {
	Theta        float64   `mapstructure:"theta" json:"theta" yaml:"theta" toml:"theta"`                                 // rotation angle of the eigenbasis
	Eigenvalues  []float64 `mapstructure:"eigenvalues" json:"eigenvalues" yaml:"eigenvalues" toml:"eigenvalues"`         // λ₁, λ₂
	Powers       []int     `mapstructure:"powers" json:"powers" yaml:"powers" toml:"powers"`                             // integer exponents k
	DomainLow    float64   `mapstructure:"domain_low" json:"domain_low" yaml:"domain_low" toml:"domain_low"`             // a in [a, 1]
	Degree       int       `mapstructure:"degree" json:"degree" yaml:"degree" toml:"degree"`                             // polynomial degree
	FitSamples   int       `mapstructure:"fit_samples" json:"fit_samples" yaml:"fit_samples" toml:"fit_samples"`         // uniform fitting grid size
	PlotPoints   int       `mapstructure:"plot_points" json:"plot_points" yaml:"plot_points" toml:"plot_points"`         // evaluation grid size
	Alphas       []float64 `mapstructure:"alphas" json:"alphas" yaml:"alphas" toml:"alphas"`                             // fractional exponents
	SweepDegrees []int     `mapstructure:"sweep_degrees" json:"sweep_degrees" yaml:"sweep_degrees" toml:"sweep_degrees"` // degree sweep at fixed a
	SweepDomains []float64 `mapstructure:"sweep_domains" json:"sweep_domains" yaml:"sweep_domains" toml:"sweep_domains"` // a sweep at fixed degree
	Tolerance    float64   `mapstructure:"tolerance" json:"tolerance" yaml:"tolerance" toml:"tolerance"`                 // accepted max |√A_poly − √A|
	Backend      string    `mapstructure:"backend" json:"backend" yaml:"backend" toml:"backend"`                         // jacobi | gonum
}

// DefaultConfig returns the parameters of the original walkthrough.
func DefaultConfig() Config {
	return Config{
		Theta:        0.6,
		Eigenvalues:  []float64{0.2, 0.8},
		Powers:       []int{1, 2, 3, 4},
		DomainLow:    0.2,
		Degree:       6,
		FitSamples:   500,
		PlotPoints:   400,
		Alphas:       []float64{0.25, 0.5, 0.75},
		SweepDegrees: []int{2, 3, 4, 5, 6, 7, 8, 9, 10},
		SweepDomains: []float64{0.5, 0.2, 0.1, 0.05, 0.01},
		Tolerance:    1e-2,
		Backend:      spectral.BackendJacobi.String(),
	}
}

// Validate checks the config for values no section can run with.
// The eigenvalues must lie inside [DomainLow, 1] so the √ approximation
// is never evaluated outside its domain.
func (c Config) Validate() error {
	if !finite(c.Theta) {
		return invalid("theta must be finite")
	}
	if len(c.Eigenvalues) != 2 {
		return invalid("need exactly two eigenvalues, got %d", len(c.Eigenvalues))
	}
	if !(c.DomainLow > 0 && c.DomainLow < 1) {
		return invalid("domain_low=%g must lie in (0, 1)", c.DomainLow)
	}
	for i, l := range c.Eigenvalues {
		if !finite(l) || l < c.DomainLow || l > 1 {
			return errors.WithHint(
				invalid("eigenvalues[%d]=%g outside [%g, 1]", i, l, c.DomainLow),
				"lower domain_low or choose eigenvalues in (0, 1]",
			)
		}
	}
	for _, k := range c.Powers {
		if k < 0 {
			return invalid("powers must be >= 0, got %d", k)
		}
	}
	if c.Degree < 0 {
		return invalid("degree=%d must be >= 0", c.Degree)
	}
	if c.FitSamples <= c.Degree || c.FitSamples < 2 {
		return invalid("fit_samples=%d must exceed degree=%d", c.FitSamples, c.Degree)
	}
	if c.PlotPoints < 2 {
		return invalid("plot_points=%d must be >= 2", c.PlotPoints)
	}
	for _, a := range c.Alphas {
		if !finite(a) {
			return invalid("alphas must be finite")
		}
	}
	for _, d := range c.SweepDegrees {
		if d < 0 || d >= c.FitSamples {
			return invalid("sweep degree %d out of range [0, %d)", d, c.FitSamples)
		}
	}
	for _, a := range c.SweepDomains {
		if !(a > 0 && a < 1) {
			return invalid("sweep domain %g must lie in (0, 1)", a)
		}
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return invalid("tolerance=%g must be finite and > 0", c.Tolerance)
	}
	if _, err := spectral.ParseBackend(c.Backend); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "backend: %v", err)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidConfig, format, args...)
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
