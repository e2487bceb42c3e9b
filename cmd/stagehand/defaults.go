package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stagehand/internal/config"
	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/options"
	stagehanderrors "github.com/alexisbeaulieu97/stagehand/pkg/errors"
)

type defaultsOptions struct {
	theme  string
	format string
}

func newDefaultsCmd() *cobra.Command {
	opts := &defaultsOptions{}

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default configuration for a theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := options.ParseTheme(opts.theme)
			if err != nil {
				return flagError("theme", err)
			}

			format := config.Format(opts.format)
			switch format {
			case config.FormatYAML, config.FormatTOML, config.FormatJSON:
			default:
				return flagError("format", stagehanderrors.NewUnrecognizedOptionError("format", opts.format, []string{"yaml", "toml", "json"}))
			}

			return config.Encode(cmd.OutOrStdout(), format, defaults.ForTheme(theme))
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", string(options.ThemeLight), "Theme whose defaults to print")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(config.FormatYAML), "Output format (yaml, toml, json)")

	return cmd
}
