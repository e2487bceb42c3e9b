package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stagehand/internal/artifacts"
	"github.com/alexisbeaulieu97/stagehand/internal/color"
	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/options"
)

var fieldLabels = map[defaults.Field]string{
	defaults.FieldTheme:             "Theme",
	defaults.FieldBackdrop:          "Backdrop",
	defaults.FieldGradient:          "Gradient",
	defaults.FieldAllowClickOutside: "Allow Click Outside",
	defaults.FieldPrimaryColor:      "Primary Color",
	defaults.FieldRadius:            "Border Radius",
}

var tabLabels = map[artifacts.Kind]string{
	artifacts.KindPrompt:  "AI PROMPT",
	artifacts.KindSnippet: "REACT CODE",
}

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	form := formStyle.Render(m.renderForm())
	output := outputStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), m.viewport.View()))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Stagehand • Configurator"),
		lipgloss.JoinHorizontal(lipgloss.Top, form, output),
		mutedStyle.Render("↑/↓ select • ←/→ change • enter edit • tab switch output • r reset • q quit"),
	)
}

func (m Model) renderForm() string {
	var lines []string
	for i, field := range defaults.Fields() {
		label := fieldLabels[field]
		value := m.fieldValue(field)
		if !defaults.IsDefault(field, m.cfg, m.cfg.Theme) {
			value = customStyle.Render(value)
		} else {
			value = valueStyle.Render(value)
		}

		pointer := "  "
		if i == m.cursor {
			pointer = selectedStyle.Render("› ")
			label = selectedStyle.Render(label)
		}
		lines = append(lines, pointer+labelStyle.Render(label)+value)
	}

	lines = append(lines, sectionStyle.Render("Preview"), m.renderSwatch())

	if m.editing {
		lines = append(lines, "", m.input.View())
	}
	if m.err != nil {
		lines = append(lines, "", errorStyle.Render(m.err.Error()))
	}

	return strings.Join(lines, "\n")
}

func (m Model) fieldValue(field defaults.Field) string {
	switch field {
	case defaults.FieldTheme:
		return m.cfg.Theme.Label()
	case defaults.FieldBackdrop:
		return m.cfg.Backdrop.Label()
	case defaults.FieldGradient:
		return m.cfg.Gradient.Label()
	case defaults.FieldAllowClickOutside:
		if m.cfg.AllowClickOutside {
			return "[x]"
		}
		return "[ ]"
	case defaults.FieldPrimaryColor:
		return m.cfg.PrimaryColor
	case defaults.FieldRadius:
		return options.FormatRadius(m.cfg.Radius) + options.RadiusUnit
	default:
		return ""
	}
}

// renderSwatch paints the brand color with the text color the snippet would pick.
func (m Model) renderSwatch() string {
	hex, err := color.Normalize(m.cfg.PrimaryColor)
	if err != nil {
		return errorStyle.Render("invalid color")
	}
	fg := "#ffffff"
	if contrast, err := color.ContrastForeground(hex); err == nil && contrast == color.BlackForeground {
		fg = "#000000"
	}
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 2).
		Render("Next →")

	hsl, _ := color.HexToHSL(hex)
	return fmt.Sprintf("%s %s", swatch, mutedStyle.Render(hsl))
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, k := range artifacts.Kinds() {
		label := tabLabels[k]
		if k == m.kind {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return strings.Join(tabs, "  ") + "\n"
}
