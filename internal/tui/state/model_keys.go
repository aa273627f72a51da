package state

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.input.Focused() {
		return m.handleSearchKey(msg)
	}

	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		m.input.CursorEnd()
		return m, tea.Batch(m.input.Focus(), textinput.Blink)
	case "i":
		m.recon.ToggleIssuesPanel()
		m.refresh()
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "J":
		m.ui.Issues().ScrollDown(1)
	case "K":
		m.ui.Issues().ScrollUp(1)
	case "r":
		return m, loadReportCmd(m.cfg.Path, m.cfg.LoadOptions)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			return m, m.selectControl(int(key[0] - '1'))
		}
	}
	return m, nil
}

// handleSearchKey feeds the search box. Every edit re-runs the search.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyEnter:
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.recon.Registry().Search.Value {
		m.recon.SetQuery(v)
		m.ui.SetCursor(0, 0)
		m.refresh()
	}
	return m, cmd
}

// selectControl applies the filter of the n-th control.
func (m *Model) selectControl(n int) tea.Cmd {
	controls := m.recon.Registry().Controls
	if n >= len(controls) {
		m.errorHandler.Warning(fmt.Sprintf("No filter %d", n+1))
		return clearStatusAfter(statusClearDuration, m.statusSeq)
	}
	m.recon.ApplyCategoryFilter(controls[n].Filter)
	m.ui.SetCursor(0, 0)
	m.refresh()
	return nil
}

func (m *Model) moveCursor(delta int) {
	m.ui.MoveCursor(delta, len(m.lines))
	m.updateListContent()
	if c := m.ui.Cursor(); c < len(m.lines) {
		m.ui.EnsureVisible(m.lines[c])
	}
}
