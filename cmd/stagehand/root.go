package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stagehand/internal/logger"
)

type rootFlags struct {
	verbose  bool
	jsonLogs bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stagehand",
		Short:         "Stagehand turns onstage modal settings into copyable code and prompts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.jsonLogs, "log-json", false, "Write logs as JSON")

	cmd.AddCommand(newSnippetCmd(flags))
	cmd.AddCommand(newPromptCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newDefaultsCmd())
	cmd.AddCommand(newConfigureCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger writes to the command's error stream so stdout stays copyable.
func newLogger(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:     level,
		ForceJSON: flags.jsonLogs,
		Writer:    cmd.ErrOrStderr(),
	})
}
