package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stagehand/internal/artifacts"
	"github.com/alexisbeaulieu97/stagehand/internal/tui"
)

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newConfigureCmd(root *rootFlags) *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Launch the interactive configurator",
		Long:  `Launch the terminal configurator. When stdout is not a terminal the artifacts for the starting configuration are printed instead.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, root)
			if err != nil {
				return err
			}

			cfg, baseline, err := resolveConfig(cmd, flags)
			if err != nil {
				log.Error(err, "configuration rejected")
				return err
			}

			if !stdoutIsTerminal() {
				log.Warn("stdout is not a terminal; printing artifacts instead of starting the configurator")
				out, err := artifacts.Render(cfg, baseline)
				if err != nil {
					return newCommandError("configure", "rendering configuration", err, "Check the configured values and try again.")
				}
				return writeArtifacts(cmd.OutOrStdout(), out)
			}

			return runConfigurator(cmd.OutOrStdout(), tui.NewModel(cfg, log))
		},
	}

	bindConfigFlags(cmd, flags)
	return cmd
}

func runConfigurator(w io.Writer, model tui.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run configurator: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok || m.Err() != nil {
		return nil
	}
	// The alt screen is cleared on exit; print the selected artifact.
	_, err = io.WriteString(w, m.Output().Select(m.Kind()))
	return err
}
