// Package artifacts is the single entry point outer shells use to turn a
// configuration into its copyable outputs.
package artifacts

import (
	"github.com/alexisbeaulieu97/stagehand/internal/options"
	"github.com/alexisbeaulieu97/stagehand/internal/projector"
	"github.com/alexisbeaulieu97/stagehand/internal/render"
	stagehanderrors "github.com/alexisbeaulieu97/stagehand/pkg/errors"
)

// Kind selects one of the rendered artifacts.
type Kind string

const (
	KindPrompt  Kind = "prompt"
	KindSnippet Kind = "snippet"
)

// Kinds lists artifacts in the order configurators present them.
func Kinds() []Kind {
	return []Kind{KindPrompt, KindSnippet}
}

// ParseKind validates an artifact name.
func ParseKind(value string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == value {
			return k, nil
		}
	}
	return "", stagehanderrors.NewUnrecognizedOptionError("artifact", value, []string{string(KindPrompt), string(KindSnippet)})
}

// Artifacts holds one projection and both renderings of it.
type Artifacts struct {
	Diff    projector.Diff `json:"diff"`
	Snippet string         `json:"snippet"`
	Prompt  string         `json:"prompt"`
}

// Select returns the text for kind.
func (a Artifacts) Select(kind Kind) string {
	if kind == KindSnippet {
		return a.Snippet
	}
	return a.Prompt
}

// Render projects cfg against the defaults of currentTheme and renders both
// artifacts from the same diff.
func Render(cfg options.Config, currentTheme options.Theme) (Artifacts, error) {
	diff, err := projector.Project(cfg, currentTheme)
	if err != nil {
		return Artifacts{}, err
	}
	return Artifacts{
		Diff:    diff,
		Snippet: render.Snippet(diff),
		Prompt:  render.Prompt(diff),
	}, nil
}

// RenderKind renders a single artifact.
func RenderKind(cfg options.Config, currentTheme options.Theme, kind Kind) (string, error) {
	diff, err := projector.Project(cfg, currentTheme)
	if err != nil {
		return "", err
	}
	if kind == KindSnippet {
		return render.Snippet(diff), nil
	}
	return render.Prompt(diff), nil
}
