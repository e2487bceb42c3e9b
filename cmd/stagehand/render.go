package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stagehand/internal/artifacts"
)

func newSnippetCmd(root *rootFlags) *cobra.Command {
	return newArtifactCmd(root, artifacts.KindSnippet, "snippet", "Print the React snippet for the configured modal")
}

func newPromptCmd(root *rootFlags) *cobra.Command {
	return newArtifactCmd(root, artifacts.KindPrompt, "prompt", "Print the assistant prompt for the configured modal")
}

func newArtifactCmd(root *rootFlags, kind artifacts.Kind, use, short string) *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
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

			text, err := artifacts.RenderKind(cfg, baseline, kind)
			if err != nil {
				return newCommandError("render "+use, "projecting configuration", err, "Check the configured values and try again.")
			}

			log.WithFields(map[string]any{"artifact": string(kind), "baseline": string(baseline)}).Debug("artifact rendered")
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}

	bindConfigFlags(cmd, flags)
	return cmd
}

type renderOptions struct {
	jsonOutput bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &configFlags{}
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print both artifacts for the configured modal",
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

			out, err := artifacts.Render(cfg, baseline)
			if err != nil {
				return newCommandError("render artifacts", "projecting configuration", err, "Check the configured values and try again.")
			}
			log.WithField("fields", out.Diff.Len()).Debug("artifacts rendered")

			if opts.jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return writeArtifacts(cmd.OutOrStdout(), out)
		},
	}

	bindConfigFlags(cmd, flags)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the diff and both artifacts as JSON")

	return cmd
}

var sectionTitles = map[artifacts.Kind]string{
	artifacts.KindPrompt:  "AI PROMPT",
	artifacts.KindSnippet: "REACT CODE",
}

func writeArtifacts(w io.Writer, out artifacts.Artifacts) error {
	for i, kind := range artifacts.Kinds() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "==> %s\n%s", sectionTitles[kind], out.Select(kind)); err != nil {
			return err
		}
	}
	return nil
}
