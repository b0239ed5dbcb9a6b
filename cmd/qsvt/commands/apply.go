// SPDX-License-Identifier: MIT

package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qsvt/spectral"
	"github.com/katalvlaran/qsvt/walkthrough"
)

func newApplyCmd(a *app) *cobra.Command {
	var (
		funcSpec string
		approx   bool
	)
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a catalog function f to A, exactly or via its polynomial fit",
		Long: `Apply f(A) = U·diag(f(λ))·Uᵀ for a function from the catalog:

  ` + strings.Join(spectral.FuncNames, ", ") + `

With --approx, f is first fitted by a Chebyshev series of the configured
degree on [domain-low, 1], and the report includes the max entrywise
deviation from the exact f(A).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, func(r *walkthrough.Runner, cfg walkthrough.Config, rep *walkthrough.Report) (err error) {
				rep.Apply, err = r.ApplySection(cfg, funcSpec, approx)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&funcSpec, "func", "sqrt", "function to apply (e.g. sqrt, inv, pow:0.25, step:0.5, resolvent:2, cos:1)")
	cmd.Flags().BoolVar(&approx, "approx", false, "apply the fitted polynomial instead of the exact function")

	return cmd
}
