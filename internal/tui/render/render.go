// Package render draws the pieces of the report view with lipgloss.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/lobster-view/internal/colors"
)

const (
	categoryWidth = 11
	idWidth       = 12
	minNameWidth  = 10
	ellipsis      = "..."
)

var (
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	buttonStyle = lipgloss.NewStyle().Padding(0, 1)
	activeStyle = buttonStyle.Bold(true).Reverse(true)
)

// Control is a filter button as shown in the filter bar.
type Control struct {
	Label  string
	Active bool
}

// FilterBar renders the filter buttons, numbered from 1.
func FilterBar(controls []Control, width int) string {
	if len(controls) == 0 {
		return mutedStyle.Render("no filters")
	}
	parts := make([]string, 0, len(controls))
	for i, c := range controls {
		label := c.Label
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, c.Label)
		}
		style := buttonStyle
		if c.Active {
			style = activeStyle
		}
		parts = append(parts, style.Render(label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if width > 0 {
		return lipgloss.NewStyle().MaxWidth(width).Render(bar)
	}
	return bar
}

// GroupHeader renders the title line of a group.
func GroupHeader(title string, visible, total int) string {
	if title == "" {
		title = "(ungrouped)"
	}
	return titleStyle.Render(title) + " " + mutedStyle.Render(fmt.Sprintf("(%d/%d)", visible, total))
}

// RowState defines the inputs needed to render an item row.
type RowState struct {
	ID       string
	Category string
	Name     string
	Width    int
	Selected bool
}

// Row renders a single item row.
func Row(state RowState) string {
	nameWidth := state.Width - categoryWidth - idWidth - 6
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}

	badge := CategoryStyle(state.Category).Width(categoryWidth).Render(truncate(state.Category, categoryWidth))
	line := fmt.Sprintf("  %s  %-*s  %s",
		badge,
		idWidth, truncate(state.ID, idWidth),
		truncate(state.Name, nameWidth))

	if state.Selected {
		return lipgloss.NewStyle().Reverse(true).Render(line)
	}
	return line
}

// CategoryStyle returns the badge style for a category.
func CategoryStyle(category string) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch category {
	case "ok":
		return style.Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
	case "missing":
		return style.Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	case "partial", "warning":
		return style.Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow)))
	case "justified":
		return style.Foreground(lipgloss.Color(ansiColorNumber(colors.Cyan)))
	default:
		return style
	}
}

// IssuesHeader renders the issues panel title.
func IssuesHeader(expanded bool, visible int) string {
	marker := "▸"
	if expanded {
		marker = "▾"
	}
	return titleStyle.Render(fmt.Sprintf("%s Issues (%d)", marker, visible))
}

// IssueLine renders one issue.
func IssueLine(category, text string, width int) string {
	line := "  " + CategoryStyle(category).Render("•") + " " + text
	if width > 0 {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// Empty renders the placeholder for an empty list.
func Empty(msg string) string {
	return mutedStyle.Render(msg)
}

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	SearchFocused bool
	SearchView    string
	Query         string
	Visible       int
	Total         int
	Watching      bool
	Status        string
	Width         int
}

// Footer renders the search box, counters, status line and key help.
func Footer(state FooterState) string {
	var b strings.Builder

	switch {
	case state.SearchFocused:
		b.WriteString(state.SearchView)
	case state.Query != "":
		b.WriteString("/" + state.Query)
	}
	if b.Len() > 0 {
		b.WriteString("  ")
	}
	counts := fmt.Sprintf("%d/%d items", state.Visible, state.Total)
	if state.Watching {
		counts += " · watching"
	}
	b.WriteString(mutedStyle.Render(counts))

	if state.Status != "" {
		b.WriteString("\n")
		b.WriteString(state.Status)
	}

	help := "1-9: filter  i: issues  /: search  j/k: move  J/K: scroll issues  r: reload  q: quit"
	if state.SearchFocused {
		help = "enter: keep query  esc: leave search"
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(truncate(help, state.Width)))
	return b.String()
}

// truncate shortens s to width runes, ending in "..." when cut. A width of
// zero or less leaves s unchanged.
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return string(r[:width])
	}
	return string(r[:width-len(ellipsis)]) + ellipsis
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// For example, "\033[0;34m" returns "34".
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
