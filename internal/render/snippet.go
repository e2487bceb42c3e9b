// Package render turns a projected diff into the two copyable artifacts: a React
// snippet and a setup prompt for an assistant. Neither renderer decides what is
// customised; they only print what the diff contains.
package render

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/projector"
)

const (
	componentName = "OnboardingModal"

	// CSS variables understood by the onstage stylesheet.
	VarPrimary           = "--primary"
	VarPrimaryForeground = "--primary-foreground"
	VarRadius            = "--radius"
)

var snippetHeader = []string{
	`import { OnboardingProvider, OnboardingModal } from "onstage";`,
	`import "onstage/styles.css";`,
	``,
}

// Snippet renders the import header, the sample steps and an OnboardingModal tag
// carrying only the customised props.
func Snippet(diff projector.Diff) string {
	var b strings.Builder

	for _, line := range snippetHeader {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	writeSampleSteps(&b, "")
	b.WriteByte('\n')

	attrs := attributeLines(diff)
	style := styleLines(diff)

	if len(attrs) == 0 && len(style) == 0 {
		fmt.Fprintf(&b, "<%s />\n", componentName)
		return b.String()
	}

	fmt.Fprintf(&b, "<%s\n", componentName)
	for _, line := range attrs {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(style) > 0 {
		b.WriteString("  style={{\n")
		for _, line := range style {
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteString(",\n")
		}
		b.WriteString("  } as React.CSSProperties}\n")
	}
	b.WriteString("/>\n")

	return b.String()
}

func attributeLines(diff projector.Diff) []string {
	var lines []string
	for _, e := range diff.Entries() {
		switch e.Field {
		case defaults.FieldTheme, defaults.FieldBackdrop, defaults.FieldGradient:
			lines = append(lines, fmt.Sprintf("%s=%q", e.Field, e.Value))
		case defaults.FieldAllowClickOutside:
			lines = append(lines, fmt.Sprintf("%s={%s}", e.Field, e.Value))
		}
	}
	return lines
}

func styleLines(diff projector.Diff) []string {
	var lines []string
	if e, ok := diff.Get(defaults.FieldPrimaryColor); ok {
		lines = append(lines,
			cssVar(VarPrimary, e.HSL),
			cssVar(VarPrimaryForeground, e.Foreground),
		)
	}
	if e, ok := diff.Get(defaults.FieldRadius); ok {
		lines = append(lines, cssVar(VarRadius, e.Value+e.Unit))
	}
	return lines
}

func cssVar(name, value string) string {
	return fmt.Sprintf("'%s': '%s'", name, value)
}
