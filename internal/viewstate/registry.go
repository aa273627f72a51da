package viewstate

import (
	"fmt"

	"github.com/cristianoliveira/lobster-view/internal/errors"
)

// Identities of the singleton nodes.
const (
	PanelID  = "issues-section"
	ToggleID = "BtnToggleIssue"
	SearchID = "search"
)

// Registry is the set of nodes a Reconciler works on. It is built once by
// the caller; the reconciler mutates node state but never adds or removes
// nodes.
type Registry struct {
	Items    []*Item
	Groups   []*Group
	Issues   []*Issue
	Controls []*Control

	Panel  *Panel
	Toggle *Toggle
	Search *SearchInput
}

// NewRegistry returns a registry with empty singletons, as produced by a
// report whose panel and search box carry no inline state yet.
func NewRegistry() *Registry {
	return &Registry{
		Panel:  &Panel{},
		Toggle: &Toggle{Label: LabelShowIssues},
		Search: &SearchInput{},
	}
}

// AddGroup registers a group and links the given items to it.
func (r *Registry) AddGroup(g *Group, items ...*Item) *Group {
	for _, item := range items {
		item.Group = g
		g.Items = append(g.Items, item)
	}
	r.Groups = append(r.Groups, g)
	return g
}

// Validate reports a missing singleton node.
func (r *Registry) Validate() error {
	switch {
	case r.Panel == nil:
		return fmt.Errorf("%w: #%s", errors.ErrMissingNode, PanelID)
	case r.Toggle == nil:
		return fmt.Errorf("%w: #%s", errors.ErrMissingNode, ToggleID)
	case r.Search == nil:
		return fmt.Errorf("%w: #%s", errors.ErrMissingNode, SearchID)
	}
	return nil
}

// Control returns the control dispatching filter, or nil.
func (r *Registry) Control(filter string) *Control {
	for _, c := range r.Controls {
		if c.Filter == filter {
			return c
		}
	}
	return nil
}
