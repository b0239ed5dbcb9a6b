// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qsvt/walkthrough"
)

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Build A = U·diag(λ)·Uᵀ and verify its spectrum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, func(r *walkthrough.Runner, cfg walkthrough.Config, rep *walkthrough.Report) (err error) {
				rep.Matrix, err = r.MatrixSection(cfg)
				return err
			})
		},
	}
}

func newPowersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "powers",
		Short: "Integer powers A^k and their effect on the spectrum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, func(r *walkthrough.Runner, cfg walkthrough.Config, rep *walkthrough.Report) (err error) {
				rep.Powers, err = r.PowersSection(cfg)
				return err
			})
		},
	}
}

func newSqrtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt",
		Short: "Approximate √x on [a, 1] and compare √A with P(A)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, func(r *walkthrough.Runner, cfg walkthrough.Config, rep *walkthrough.Report) (err error) {
				if rep.Sqrt, err = r.SqrtSection(cfg); err != nil {
					return err
				}
				rep.SqrtMatrix, err = r.SqrtMatrixSection(cfg)
				return err
			})
		},
	}
}

func newFractionalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fractional",
		Short: "Fractional powers A^α for each configured α",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, func(r *walkthrough.Runner, cfg walkthrough.Config, rep *walkthrough.Report) (err error) {
				rep.Fractional, err = r.FractionalSection(cfg)
				return err
			})
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run every section of the walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, func(r *walkthrough.Runner, cfg walkthrough.Config, rep *walkthrough.Report) error {
				full, err := r.Run(cfg)
				if err != nil {
					return err
				}
				*rep = *full
				return nil
			})
		},
	}
}
