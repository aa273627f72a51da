// Package format renders a reconciled report view for the CLI.
package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/lobster-view/internal/errors"
	"github.com/cristianoliveira/lobster-view/internal/search"
	"github.com/cristianoliveira/lobster-view/internal/viewstate"
)

// Formatter writes a Snapshot.
type Formatter interface {
	Format(s Snapshot, w io.Writer) error
}

// FormatterType names an output format.
type FormatterType string

const (
	// FormatterTypeSimple prints one visible item per line under its group.
	FormatterTypeSimple FormatterType = "simple"
	// FormatterTypeTable prints visible items as a bordered table.
	FormatterTypeTable FormatterType = "table"
	// FormatterTypeJSON prints the whole snapshot as JSON.
	FormatterTypeJSON FormatterType = "json"
)

// Types returns the supported format names.
func Types() []string {
	return []string{string(FormatterTypeSimple), string(FormatterTypeTable), string(FormatterTypeJSON)}
}

// New returns the formatter for t. An empty type selects simple.
func New(t FormatterType) (Formatter, error) {
	switch t {
	case FormatterTypeSimple, "":
		return NewSimpleFormatter(), nil
	case FormatterTypeTable:
		return NewTableFormatter(), nil
	case FormatterTypeJSON:
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", errors.ErrUnknownFormat, t, Types())
	}
}

// ItemView is a visible item.
type ItemView struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Group    string `json:"group,omitempty"`
	Name     string `json:"name"`
}

// IssueView is a visible issue.
type IssueView struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Snapshot is the reconciled view state at one point in time.
type Snapshot struct {
	Filter         string          `json:"filter"`
	Query          string          `json:"query"`
	IssuesExpanded bool            `json:"issues_expanded"`
	Items          []ItemView      `json:"items"`
	Issues         []IssueView     `json:"issues"`
	Stats          viewstate.Stats `json:"stats"`
}

// NewSnapshot captures the current state of r.
func NewSnapshot(r *viewstate.Reconciler) Snapshot {
	s := Snapshot{
		Filter:         r.ActiveFilter(),
		Query:          r.Query(),
		IssuesExpanded: r.PanelExpanded(),
		Items:          []ItemView{},
		Issues:         []IssueView{},
		Stats:          r.Stats(),
	}
	for _, item := range r.VisibleItems() {
		v := ItemView{ID: item.ID, Category: item.Category(), Name: search.DisplayName(item.NameHTML)}
		if item.Group != nil {
			v.Group = item.Group.Title
		}
		s.Items = append(s.Items, v)
	}
	for _, issue := range r.VisibleIssues() {
		s.Issues = append(s.Issues, IssueView{Category: issue.Category(), Text: issue.Text})
	}
	return s
}
