// Package viewstate reconciles the presentation state of a LOBSTER report:
// category filtering, the active filter button, the issues panel and item
// name search. It works over an injected Registry of nodes instead of a live
// document, so the same logic drives the HTML binder, the CLI and the TUI.
package viewstate

import "strings"

// Display modes written to nodes.
const (
	DisplayUnset    = ""
	DisplayBlock    = "block"
	DisplayNone     = "none"
	DisplayListItem = "list-item"
)

// Markup conventions of the report generator.
const (
	FilterAll        = "all"
	ItemIDPrefix     = "item-"
	ItemClassPrefix  = "item-"
	IssueClassPrefix = "issue issue-"
	ControlPrefix    = "button"
	ActiveMarker     = "buttonActive"

	MatchStateHidden   = "hidden-not-matching"
	MatchStateMatching = "matching-"
)

// Kind tags the node descriptor.
type Kind int

const (
	KindItem Kind = iota
	KindIssue
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindIssue:
		return "issue"
	default:
		return "unknown"
	}
}

// Descriptor is the structural view of an item or issue.
type Descriptor struct {
	Kind     Kind
	Category string
	Group    *Group
}

// Item is a report item node.
type Item struct {
	// ID is the identity attribute, prefixed with "item-".
	ID string
	// Class is the category class, "item-<category>".
	Class string
	// NameHTML is the rendered content of the item's name label.
	NameHTML string
	// Display is the inline display mode.
	Display string
	// MatchState records the last search outcome for this item.
	MatchState string
	// Group is the owning group, nil when the item is ungrouped.
	Group *Group
}

// Visible reports whether the item is displayed.
func (i *Item) Visible() bool {
	return i.Display != DisplayNone
}

// Category returns the category suffix of the item's class.
func (i *Item) Category() string {
	return strings.TrimPrefix(i.Class, ItemClassPrefix)
}

// Descriptor returns the item's structural descriptor.
func (i *Item) Descriptor() Descriptor {
	return Descriptor{Kind: KindItem, Category: i.Category(), Group: i.Group}
}

// Group is a container of items whose visibility derives from its children.
type Group struct {
	ID      string
	Title   string
	Items   []*Item
	Display string
}

// Visible reports whether the group is displayed.
func (g *Group) Visible() bool {
	return g.Display != DisplayNone
}

// recompute hides the group unless at least one child is visible.
func (g *Group) recompute() {
	g.Display = DisplayNone
	for _, item := range g.Items {
		if item.Visible() {
			g.Display = DisplayBlock
			return
		}
	}
}

// Issue is an entry of the issues list.
type Issue struct {
	// Class is the class attribute, "issue issue-<category>".
	Class   string
	Text    string
	Display string
}

// Visible reports whether the issue is displayed.
func (i *Issue) Visible() bool {
	return i.Display != DisplayNone
}

// Category returns the category suffix of the issue's class.
func (i *Issue) Category() string {
	return strings.TrimPrefix(i.Class, IssueClassPrefix)
}

// Descriptor returns the issue's structural descriptor.
func (i *Issue) Descriptor() Descriptor {
	return Descriptor{Kind: KindIssue, Category: i.Category()}
}

// Control is a filter button.
type Control struct {
	Class  string
	Label  string
	Filter string
}

// Active reports whether the control carries the active marker.
func (c *Control) Active() bool {
	return HasClass(c.Class, ActiveMarker)
}

// Panel is the issues panel. Its state is read back from the inline style.
type Panel struct {
	Style string
}

// Display returns the panel's inline display mode.
func (p *Panel) Display() string {
	return StyleDisplay(p.Style)
}

// Toggle is the button paired with the issues panel.
type Toggle struct {
	Label string
	Class string
}

// SearchInput holds the current search text.
type SearchInput struct {
	Value string
}
