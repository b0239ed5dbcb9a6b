// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qsvt/internal/version"
	"github.com/katalvlaran/qsvt/walkthrough"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			switch walkthrough.Format(a.format) {
			case walkthrough.FormatJSON:
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return errors.Wrap(err, "failed to marshal version to JSON")
				}
				fmt.Fprintln(out, string(data))
			case walkthrough.FormatYAML:
				data, err := yaml.Marshal(info)
				if err != nil {
					return errors.Wrap(err, "failed to marshal version to YAML")
				}
				fmt.Fprint(out, string(data))
			default:
				fmt.Fprintln(out, info.String())
				fmt.Fprintf(out, "Platform: %s\n", info.Platform)
				fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			}

			return nil
		},
	}
}
