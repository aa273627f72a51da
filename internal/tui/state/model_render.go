package state

import (
	"strings"

	"github.com/cristianoliveira/lobster-view/internal/search"
	"github.com/cristianoliveira/lobster-view/internal/tui/render"
	"github.com/cristianoliveira/lobster-view/internal/viewstate"
)

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder
	width := m.ui.Width()
	reg := m.recon.Registry()

	controls := make([]render.Control, 0, len(reg.Controls))
	for _, c := range reg.Controls {
		controls = append(controls, render.Control{Label: c.Label, Active: c.Active()})
	}
	s.WriteString(render.FilterBar(controls, width))
	s.WriteString("\n\n")

	s.WriteString(m.ui.List().View())
	s.WriteString("\n")

	expanded := m.recon.PanelExpanded()
	s.WriteString(render.IssuesHeader(expanded, len(m.recon.VisibleIssues())))
	if expanded {
		s.WriteString("\n")
		s.WriteString(m.ui.Issues().View())
	}
	s.WriteString("\n")

	stats := m.recon.Stats()
	s.WriteString(render.Footer(render.FooterState{
		SearchFocused: m.input.Focused(),
		SearchView:    m.input.View(),
		Query:         reg.Search.Value,
		Visible:       stats.VisibleItems,
		Total:         stats.Items,
		Watching:      m.cfg.Watcher != nil,
		Status:        m.status,
		Width:         width,
	}))
	return s.String()
}

// refresh re-lays out the view and rebuilds both viewports from the
// reconciled state.
func (m *Model) refresh() {
	m.ui.Resize(m.recon.PanelExpanded())
	m.updateListContent()
	m.updateIssuesContent()
	if c := m.ui.Cursor(); c < len(m.lines) {
		m.ui.EnsureVisible(m.lines[c])
	}
}

// updateListContent renders visible groups with their visible items, then
// visible items that belong to no group.
func (m *Model) updateListContent() {
	reg := m.recon.Registry()
	width := m.ui.Width()

	m.ui.SetCursor(m.ui.Cursor(), len(m.recon.VisibleItems()))

	var b strings.Builder
	m.lines = m.lines[:0]
	line := 0
	writeLine := func(s string) {
		if line > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s)
		line++
	}
	writeItem := func(item *viewstate.Item) {
		m.lines = append(m.lines, line)
		writeLine(render.Row(render.RowState{
			ID:       item.ID,
			Category: item.Category(),
			Name:     search.DisplayName(item.NameHTML),
			Width:    width,
			Selected: len(m.lines)-1 == m.ui.Cursor(),
		}))
	}

	for _, g := range reg.Groups {
		if !g.Visible() {
			continue
		}
		visible := 0
		for _, item := range g.Items {
			if item.Visible() {
				visible++
			}
		}
		writeLine(render.GroupHeader(g.Title, visible, len(g.Items)))
		for _, item := range g.Items {
			if item.Visible() {
				writeItem(item)
			}
		}
	}

	var ungrouped []*viewstate.Item
	total := 0
	for _, item := range reg.Items {
		if item.Group != nil {
			continue
		}
		total++
		if item.Visible() {
			ungrouped = append(ungrouped, item)
		}
	}
	if len(ungrouped) > 0 {
		writeLine(render.GroupHeader("", len(ungrouped), total))
		for _, item := range ungrouped {
			writeItem(item)
		}
	}

	if line == 0 {
		writeLine(render.Empty("No items match the current filter"))
	}
	m.ui.List().SetContent(b.String())
}

func (m *Model) updateIssuesContent() {
	issues := m.recon.VisibleIssues()
	if len(issues) == 0 {
		m.ui.Issues().SetContent(render.Empty("No issues"))
		return
	}
	lines := make([]string, 0, len(issues))
	for _, issue := range issues {
		lines = append(lines, render.IssueLine(issue.Category(), issue.Text, m.ui.Width()))
	}
	m.ui.Issues().SetContent(strings.Join(lines, "\n"))
}
