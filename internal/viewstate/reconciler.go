package viewstate

import (
	"strings"

	"github.com/cristianoliveira/lobster-view/internal/search"
)

// Panel styles and toggle labels.
const (
	ExpandedPanelStyle  = "display: block; flex-direction: column; height: 200px;overflow:auto;"
	CollapsedPanelStyle = "display: none"
	LabelShowIssues     = "Show Issues"
	LabelHideIssues     = "Hide Issues"
)

// Logger receives debug records for every operation.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithProvider sets the item name matcher. The default is the last-token
// provider.
func WithProvider(p search.Provider) Option {
	return func(r *Reconciler) {
		if p != nil {
			r.matcher = p
		}
	}
}

// WithLogger sets the debug logger.
func WithLogger(l Logger) Option {
	return func(r *Reconciler) {
		if l != nil {
			r.logger = l
		}
	}
}

// Reconciler applies filter, search and panel operations to a Registry.
// It is not safe for concurrent use; every operation runs to completion on
// the caller's goroutine.
type Reconciler struct {
	reg          *Registry
	matcher      search.Provider
	logger       Logger
	activeFilter string
}

// New creates a Reconciler over reg.
func New(reg *Registry, opts ...Option) *Reconciler {
	r := &Reconciler{
		reg:          reg,
		matcher:      search.NewLastTokenProvider(),
		logger:       nopLogger{},
		activeFilter: FilterAll,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the reconciler mutates.
func (r *Reconciler) Registry() *Registry {
	return r.reg
}

// ActiveFilter returns the filter of the last ApplyCategoryFilter call.
func (r *Reconciler) ActiveFilter() string {
	return r.activeFilter
}

// Query returns the lower-cased search query.
func (r *Reconciler) Query() string {
	return strings.ToLower(r.reg.Search.Value)
}

// ApplyCategoryFilter shows the items and issues of one category ("all"
// shows everything), recomputes group visibility, marks the matching control
// active and re-applies the current search.
func (r *Reconciler) ApplyCategoryFilter(filter string) {
	r.activeFilter = filter
	r.logger.Debug("apply category filter", "filter", filter)

	for _, item := range r.reg.Items {
		if filter == FilterAll || item.Class == ItemClassPrefix+filter {
			item.Display = DisplayBlock
		} else {
			item.Display = DisplayNone
		}
	}

	r.recomputeGroups()

	for _, issue := range r.reg.Issues {
		if filter == FilterAll || issue.Class == IssueClassPrefix+filter {
			issue.Display = DisplayListItem
		} else {
			issue.Display = DisplayNone
		}
	}

	r.SetActiveButton(filter)
	// The category pass may have re-shown items the search had hidden.
	r.ApplySearch()
}

// SetActiveButton moves the active marker to the control whose class
// contains "button"+filter, compared case-insensitively. When no control
// matches, no control is left active.
func (r *Reconciler) SetActiveButton(filter string) {
	for _, c := range r.reg.Controls {
		if c.Active() {
			c.Class = RemoveClass(c.Class, ActiveMarker)
		}
	}

	want := strings.ToLower(ControlPrefix + filter)
	for _, c := range r.reg.Controls {
		if strings.Contains(strings.ToLower(c.Class), want) {
			c.Class = AddClass(c.Class, ActiveMarker)
			r.logger.Debug("activate control", "filter", filter, "class", c.Class)
			return
		}
	}
	r.logger.Debug("no control for filter", "filter", filter)
}

// PanelExpanded reports whether the issues panel is expanded. An empty
// display mode reads as collapsed.
func (r *Reconciler) PanelExpanded() bool {
	switch r.reg.Panel.Display() {
	case DisplayUnset, DisplayNone:
		return false
	default:
		return true
	}
}

// ToggleIssuesPanel flips the issues panel between collapsed and expanded
// and mirrors the state on the toggle control.
func (r *Reconciler) ToggleIssuesPanel() {
	panel, toggle := r.reg.Panel, r.reg.Toggle
	if r.PanelExpanded() {
		panel.Style = CollapsedPanelStyle
		toggle.Label = LabelShowIssues
		toggle.Class = AddClass(toggle.Class, ActiveMarker)
	} else {
		panel.Style = ExpandedPanelStyle
		toggle.Label = LabelHideIssues
		toggle.Class = RemoveClass(toggle.Class, ActiveMarker)
	}
	r.logger.Debug("toggle issues panel", "expanded", r.PanelExpanded())
}

// SetQuery replaces the search text and applies it.
func (r *Reconciler) SetQuery(q string) {
	r.reg.Search.Value = q
	r.ApplySearch()
}

// ApplySearch hides every item whose name does not match the current query.
// A matching item is shown again only if the previous search hid it; the
// category filter is not consulted.
func (r *Reconciler) ApplySearch() {
	query := r.Query()
	hidden := 0
	for _, item := range r.reg.Items {
		if r.matcher.Match(item.NameHTML, query) {
			if strings.HasPrefix(item.MatchState, MatchStateHidden) {
				item.Display = DisplayBlock
			}
			item.MatchState = MatchStateMatching + query
		} else {
			item.MatchState = MatchStateHidden
			item.Display = DisplayNone
			hidden++
		}
	}
	r.recomputeGroups()
	r.logger.Debug("apply search", "query", query, "provider", r.matcher.Name(), "hidden", hidden)
}

func (r *Reconciler) recomputeGroups() {
	for _, g := range r.reg.Groups {
		g.recompute()
	}
}
