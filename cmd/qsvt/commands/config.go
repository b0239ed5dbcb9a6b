// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qsvt/config"
	"github.com/katalvlaran/qsvt/logger"
	"github.com/katalvlaran/qsvt/walkthrough"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create walkthrough configuration",
	}
	cmd.AddCommand(newConfigShowCmd(a), newConfigInitCmd(a))

	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration (TOML unless --format json|yaml)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch format {
			case walkthrough.FormatJSON:
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to JSON")
				}
				fmt.Fprintln(out, string(data))
			case walkthrough.FormatYAML:
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to YAML")
				}
				fmt.Fprint(out, string(data))
			default:
				data, err := config.Marshal(cfg)
				if err != nil {
					return err
				}
				if a.cfgUsed != "" {
					fmt.Fprintf(out, "# loaded from %s\n", a.cfgUsed)
				}
				fmt.Fprint(out, string(data))
			}

			return nil
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write the effective configuration to a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			if err := config.Write(args[0], cfg, force); err != nil {
				return err
			}
			logger.Logger.Infow("config written", logger.FieldFile, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])

			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
