package format

import (
	"fmt"
	"io"
)

// SimpleFormatter prints items grouped under their group title, followed by
// the issues when the panel is expanded.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

func (f *SimpleFormatter) Format(s Snapshot, w io.Writer) error {
	group := "\x00"
	for _, item := range s.Items {
		if item.Group != group {
			group = item.Group
			title := group
			if title == "" {
				title = "(ungrouped)"
			}
			if _, err := fmt.Fprintf(w, "== %s ==\n", title); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  [%s] %s\n", item.Category, item.Name); err != nil {
			return err
		}
	}

	if s.IssuesExpanded {
		if _, err := fmt.Fprintf(w, "== Issues (%d) ==\n", len(s.Issues)); err != nil {
			return err
		}
		for _, issue := range s.Issues {
			if _, err := fmt.Fprintf(w, "  - %s\n", issue.Text); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "%d/%d items shown (filter=%s query=%q)\n",
		s.Stats.VisibleItems, s.Stats.Items, s.Filter, s.Query)
	return err
}
