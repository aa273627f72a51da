// Package state implements the interactive report view.
package state

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/lobster-view/internal/errors"
	"github.com/cristianoliveira/lobster-view/internal/report"
	"github.com/cristianoliveira/lobster-view/internal/search"
	"github.com/cristianoliveira/lobster-view/internal/viewstate"
	"github.com/cristianoliveira/lobster-view/internal/watcher"
)

const statusClearDuration = 5 * time.Second

// Config holds what the model needs besides the report itself.
type Config struct {
	// Path is the report file, used for reloads.
	Path string
	// LoadOptions are passed to report.LoadFile on reload.
	LoadOptions []report.Option
	// Provider matches item names; nil means the last-token provider.
	Provider search.Provider
	// DefaultFilter is applied once the report is bound. Empty applies nothing.
	DefaultFilter string
	// PanelHeight is the row count of the expanded issues panel.
	PanelHeight int
	// ExpandIssues opens the issues panel on start.
	ExpandIssues bool
	// Watcher, when set, triggers reloads. The caller runs it.
	Watcher *watcher.Watcher
	// Logger receives reconciler debug records.
	Logger viewstate.Logger
}

// Model is the bubbletea model of the report view.
type Model struct {
	cfg   Config
	doc   *report.Document
	recon *viewstate.Reconciler

	ui    *UIState
	input textinput.Model
	// lines maps each visible item to its line in the list content.
	lines []int

	errorHandler *errors.TUIHandler
	status       string
	statusSeq    int
}

// NewModel binds doc to a new model.
func NewModel(cfg Config, doc *report.Document) *Model {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "search"
	input.CharLimit = 256

	m := &Model{
		cfg:   cfg,
		ui:    NewUIState(cfg.PanelHeight),
		input: input,
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.status = statusPrefix(msg.Type) + msg.Text
		m.statusSeq++
	})

	m.bind(doc)
	if cfg.DefaultFilter != "" {
		m.recon.ApplyCategoryFilter(cfg.DefaultFilter)
	}
	if cfg.ExpandIssues && !m.recon.PanelExpanded() {
		m.recon.ToggleIssuesPanel()
	}
	m.input.SetValue(m.recon.Registry().Search.Value)
	m.refresh()
	return m
}

// Reconciler returns the reconciler over the current report.
func (m *Model) Reconciler() *viewstate.Reconciler {
	return m.recon
}

// Init starts listening to the watcher, if any.
func (m *Model) Init() tea.Cmd {
	if m.cfg.Watcher == nil {
		return nil
	}
	return waitForChange(m.cfg.Watcher)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		m.refresh()
		return m, nil
	case reportLoadedMsg:
		m.rebind(msg.doc)
		m.errorHandler.Info("Reloaded " + m.cfg.Path)
		return m, clearStatusAfter(statusClearDuration, m.statusSeq)
	case reportFailedMsg:
		m.errorHandler.Error(fmt.Sprintf("Reload failed: %v", msg.err))
		return m, clearStatusAfter(statusClearDuration, m.statusSeq)
	case fileChangedMsg:
		return m, tea.Batch(loadReportCmd(m.cfg.Path, m.cfg.LoadOptions), m.Init())
	case watchErrorMsg:
		m.errorHandler.Warning(fmt.Sprintf("Watch: %v", msg.err))
		return m, tea.Batch(clearStatusAfter(statusClearDuration, m.statusSeq), m.Init())
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) bind(doc *report.Document) {
	m.doc = doc
	m.recon = viewstate.New(doc.Registry(),
		viewstate.WithProvider(m.cfg.Provider),
		viewstate.WithLogger(m.cfg.Logger))
}

// rebind swaps in a reloaded report and re-applies the filter, query and
// panel state the user had.
func (m *Model) rebind(doc *report.Document) {
	filter := m.recon.ActiveFilter()
	query := m.recon.Registry().Search.Value
	expanded := m.recon.PanelExpanded()

	m.bind(doc)
	m.recon.Registry().Search.Value = query
	m.recon.ApplyCategoryFilter(filter)
	if m.recon.PanelExpanded() != expanded {
		m.recon.ToggleIssuesPanel()
	}
	m.refresh()
}

func statusPrefix(t errors.MessageType) string {
	switch t {
	case errors.MessageTypeError:
		return "Error: "
	case errors.MessageTypeWarning:
		return "Warning: "
	default:
		return ""
	}
}
