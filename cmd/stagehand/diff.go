package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stagehand/internal/artifacts"
	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/pkg/diff"
)

type diffOptions struct {
	kind string
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	flags := &configFlags{}
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how the configured artifact differs from the default one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, root)
			if err != nil {
				return err
			}

			kind, err := artifacts.ParseKind(opts.kind)
			if err != nil {
				return flagError("kind", err)
			}

			cfg, baseline, err := resolveConfig(cmd, flags)
			if err != nil {
				log.Error(err, "configuration rejected")
				return err
			}

			expected, err := artifacts.RenderKind(defaults.Baseline(), defaults.Baseline().Theme, kind)
			if err != nil {
				return newCommandError("diff", "rendering defaults", err, "This is a bug; please report it.")
			}
			actual, err := artifacts.RenderKind(cfg, baseline, kind)
			if err != nil {
				return newCommandError("diff", "rendering configuration", err, "Check the configured values and try again.")
			}

			out := diff.Unified(expected, actual, diff.Options{
				ExpectedLabel: "defaults/" + string(kind),
				ActualLabel:   "configured/" + string(kind),
			})
			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No customisations: the configuration matches the defaults.")
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	bindConfigFlags(cmd, flags)
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", string(artifacts.KindSnippet), "Artifact to compare (snippet, prompt)")

	return cmd
}
