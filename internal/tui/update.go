package tui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stagehand/internal/artifacts"
	"github.com/alexisbeaulieu97/stagehand/internal/color"
	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/options"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(20, msg.Width-formWidth-2)
		m.viewport.Height = max(5, msg.Height-4)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.editing {
			return m.updateColorInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := defaults.Fields()

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(fields)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l", " ":
		m.adjust(1)
	case "enter":
		if m.focusedField() == defaults.FieldPrimaryColor {
			m.editing = true
			m.input.SetValue(m.cfg.PrimaryColor)
			m.input.CursorEnd()
			return m, m.input.Focus()
		}
		m.adjust(1)
	case "tab":
		m.toggleKind()
	case "r":
		m.cfg = defaults.Baseline()
		m.log.Info("configuration reset to defaults")
		m.refresh()
	case "pgdown":
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	case "pgup":
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	}

	return m, nil
}

func (m Model) updateColorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		m.err = nil
		return m, nil
	case tea.KeyEnter:
		value := m.input.Value()
		normalized, err := color.Normalize(value)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		m.cfg.PrimaryColor = normalized
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// adjust moves the focused field one step in direction delta.
func (m *Model) adjust(delta int) {
	switch m.focusedField() {
	case defaults.FieldTheme:
		previous := m.cfg.Theme
		m.cfg.Theme = cycle(options.Themes(), m.cfg.Theme, delta)
		// Keep the brand color tracking the theme unless the user picked one.
		if defaults.IsDefault(defaults.FieldPrimaryColor, m.cfg, previous) {
			m.cfg.PrimaryColor = defaults.PrimaryColorFor(m.cfg.Theme)
		}
	case defaults.FieldBackdrop:
		m.cfg.Backdrop = cycle(options.Backdrops(), m.cfg.Backdrop, delta)
	case defaults.FieldGradient:
		m.cfg.Gradient = cycle(options.Gradients(), m.cfg.Gradient, delta)
	case defaults.FieldAllowClickOutside:
		m.cfg.AllowClickOutside = !m.cfg.AllowClickOutside
	case defaults.FieldPrimaryColor:
		return
	case defaults.FieldRadius:
		r := m.cfg.Radius + float64(delta)*options.RadiusStep
		m.cfg.Radius = options.SnapRadius(math.Max(options.MinRadius, math.Min(options.MaxRadius, r)))
	}
	m.refresh()
}

func (m *Model) toggleKind() {
	kinds := artifacts.Kinds()
	m.kind = cycle(kinds, m.kind, 1)
	m.viewport.SetContent(m.output.Select(m.kind))
	m.viewport.GotoTop()
}

func cycle[T comparable](values []T, current T, delta int) T {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}
