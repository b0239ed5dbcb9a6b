// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/qsvt/config"
	"github.com/katalvlaran/qsvt/logger"
	"github.com/katalvlaran/qsvt/walkthrough"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	v        *viper.Viper
	cfgPath  string
	cfgUsed  string
	format   string
	verbose  int
	logJSON  bool
	initDone bool
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"theta":       "theta",
	"eigenvalues": "eigenvalues",
	"powers":      "powers",
	"domain-low":  "domain_low",
	"degree":      "degree",
	"samples":     "fit_samples",
	"plot-points": "plot_points",
	"alphas":      "alphas",
	"tolerance":   "tolerance",
	"backend":     "backend",
}

// NewRootCmd assembles the qsvt command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	d := walkthrough.DefaultConfig()

	root := &cobra.Command{
		Use:   "qsvt",
		Short: "Matrix functions as polynomial eigenvalue transformations",
		Long: `qsvt - matrix functions f(A) = U·f(Λ)·Uᵀ realised by polynomial approximation.

A block-encoded matrix acted on by a degree-d polynomial P becomes P(A); any f
that P approximates well on the spectrum becomes reachable. This tool walks
through that idea on a 2×2 symmetric matrix.

Configuration sources (later overrides earlier):
  1. Built-in defaults
  2. qsvt.toml (./ or ~/.qsvt/, or --config)
  3. QSVT_* environment variables (QSVT_DEGREE, QSVT_DOMAIN_LOW, ...)
  4. Command-line flags

Examples:
  qsvt run                         # full walkthrough
  qsvt sqrt --degree 4             # √A with a degree-4 polynomial
  qsvt apply --func pow:0.25 --approx
  qsvt run --format json > report.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default: ./qsvt.toml or ~/.qsvt/qsvt.toml)")
	pf.StringVar(&a.format, "format", string(walkthrough.FormatTable), "output format: table, json, yaml")
	pf.CountVarP(&a.verbose, "verbose", "v", "increase log verbosity (-v, -vv)")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON on stderr")

	pf.Float64("theta", d.Theta, "rotation angle of the eigenbasis")
	pf.Float64Slice("eigenvalues", d.Eigenvalues, "the two eigenvalues λ₁,λ₂")
	pf.IntSlice("powers", d.Powers, "integer exponents k")
	pf.Float64("domain-low", d.DomainLow, "lower bound a of the approximation domain [a, 1]")
	pf.Int("degree", d.Degree, "polynomial degree")
	pf.Int("samples", d.FitSamples, "uniform samples used by the least-squares fit")
	pf.Int("plot-points", d.PlotPoints, "evaluation grid size")
	pf.Float64Slice("alphas", d.Alphas, "fractional exponents α")
	pf.Float64("tolerance", d.Tolerance, "accepted max |√A_poly − √A|")
	pf.String("backend", d.Backend, "eigensolver: jacobi or gonum")

	root.AddCommand(
		newMatrixCmd(a),
		newPowersCmd(a),
		newSqrtCmd(a),
		newFractionalCmd(a),
		newRunCmd(a),
		newApplyCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)

	return root
}

// init sets up logging, reads the config file and binds flags. It runs
// once per invocation, before any subcommand.
func (a *app) init(cmd *cobra.Command) error {
	if a.initDone {
		return nil
	}
	if err := logger.Initialize(a.logJSON, a.verbose); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	a.v = config.New()
	used, err := config.ReadFile(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	a.cfgUsed = used

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = a.v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return errors.Wrap(bindErr, "failed to bind flags")
	}

	logger.Logger.Debugw("configuration loaded",
		logger.FieldComponent, "cli",
		logger.FieldFile, a.cfgUsed,
		logger.FieldFormat, a.format,
	)
	a.initDone = true

	return nil
}

// config returns the effective, validated walkthrough config.
func (a *app) config() (walkthrough.Config, error) {
	return config.Unmarshal(a.v)
}

func (a *app) outputFormat() (walkthrough.Format, error) {
	return walkthrough.ParseFormat(a.format)
}

func (a *app) runner() *walkthrough.Runner {
	return walkthrough.NewRunner(logger.Logger.Desugar().With(zap.String(logger.FieldComponent, "cli")))
}

// render loads the config, builds a report with fill and writes it.
func (a *app) render(cmd *cobra.Command, fill func(r *walkthrough.Runner, cfg walkthrough.Config, rep *walkthrough.Report) error) error {
	format, err := a.outputFormat()
	if err != nil {
		return err
	}
	cfg, err := a.config()
	if err != nil {
		return err
	}
	rep := &walkthrough.Report{Config: cfg}
	if err := fill(a.runner(), cfg, rep); err != nil {
		return err
	}

	return walkthrough.Render(cmd.OutOrStdout(), rep, format)
}
