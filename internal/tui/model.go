package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stagehand/internal/artifacts"
	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/logger"
	"github.com/alexisbeaulieu97/stagehand/internal/options"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	formWidth     = 38
)

// Model is the Bubbletea state for the interactive configurator. It owns the
// configuration being edited and asks the artifacts package for fresh output
// whenever that configuration changes.
type Model struct {
	cfg    options.Config
	cursor int
	kind   artifacts.Kind

	editing bool
	input   textinput.Model

	viewport viewport.Model
	output   artifacts.Artifacts
	err      error

	log      *logger.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a configurator starting from cfg.
func NewModel(cfg options.Config, log *logger.Logger) Model {
	if log == nil {
		log = logger.Nop()
	}

	input := textinput.New()
	input.Placeholder = "#6366f1"
	input.CharLimit = 7
	input.Prompt = "hex › "

	m := Model{
		cfg:      cfg,
		kind:     artifacts.KindPrompt,
		input:    input,
		viewport: viewport.New(defaultWidth-formWidth, defaultHeight-4),
		log:      log,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.refresh()
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Config returns the configuration as currently edited.
func (m Model) Config() options.Config { return m.cfg }

// Kind returns the artifact currently displayed.
func (m Model) Kind() artifacts.Kind { return m.kind }

// Cursor returns the index of the focused field.
func (m Model) Cursor() int { return m.cursor }

// Editing reports whether the color input is open.
func (m Model) Editing() bool { return m.editing }

// Err returns the last render or input error, if any.
func (m Model) Err() error { return m.err }

// Output returns the artifacts for the current configuration.
func (m Model) Output() artifacts.Artifacts { return m.output }

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) focusedField() defaults.Field {
	return defaults.Fields()[m.cursor]
}

// refresh re-renders both artifacts from the current configuration.
func (m *Model) refresh() {
	out, err := artifacts.Render(m.cfg, m.cfg.Theme)
	if err != nil {
		m.err = err
		m.log.Error(err, "render failed")
		return
	}
	m.err = nil
	m.output = out
	m.viewport.SetContent(out.Select(m.kind))
	m.log.WithFields(map[string]any{"fields": out.Diff.Len(), "artifact": string(m.kind)}).Debug("artifacts rendered")
}
