package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// nameWidth bounds the Name column.
const nameWidth = 48

// TableFormatter prints visible items as a table.
type TableFormatter struct {
	headerStyle lipgloss.Style
	cellStyle   lipgloss.Style
}

// NewTableFormatter creates a TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headerStyle: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		cellStyle:   lipgloss.NewStyle().Padding(0, 1),
	}
}

func (f *TableFormatter) Format(s Snapshot, w io.Writer) error {
	rows := make([][]string, 0, len(s.Items))
	for _, item := range s.Items {
		rows = append(rows, []string{item.ID, item.Category, item.Group, truncate(item.Name, nameWidth)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "CATEGORY", "GROUP", "NAME").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return f.headerStyle
			}
			return f.cellStyle
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d/%d items, %d/%d issues\n",
		s.Stats.VisibleItems, s.Stats.Items, s.Stats.VisibleIssues, s.Stats.Issues)
	return err
}

// truncate shortens s to width runes, ending in "..." when cut.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width < 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
