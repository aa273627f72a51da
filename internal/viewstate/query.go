package viewstate

import "sort"

// CategoryStats counts the items of one category.
type CategoryStats struct {
	Total   int `json:"total"`
	Visible int `json:"visible"`
}

// Stats summarises the current view.
type Stats struct {
	Items         int                      `json:"items"`
	VisibleItems  int                      `json:"visible_items"`
	Issues        int                      `json:"issues"`
	VisibleIssues int                      `json:"visible_issues"`
	Categories    map[string]CategoryStats `json:"categories"`
}

// CategoryNames returns the category keys in sorted order.
func (s Stats) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VisibleItems returns the displayed items in registry order.
func (r *Reconciler) VisibleItems() []*Item {
	var items []*Item
	for _, item := range r.reg.Items {
		if item.Visible() {
			items = append(items, item)
		}
	}
	return items
}

// VisibleIssues returns the displayed issues in registry order.
func (r *Reconciler) VisibleIssues() []*Issue {
	var issues []*Issue
	for _, issue := range r.reg.Issues {
		if issue.Visible() {
			issues = append(issues, issue)
		}
	}
	return issues
}

// ActiveControls returns every control carrying the active marker.
func (r *Reconciler) ActiveControls() []*Control {
	var controls []*Control
	for _, c := range r.reg.Controls {
		if c.Active() {
			controls = append(controls, c)
		}
	}
	return controls
}

// Stats counts total and visible nodes.
func (r *Reconciler) Stats() Stats {
	s := Stats{
		Items:      len(r.reg.Items),
		Issues:     len(r.reg.Issues),
		Categories: make(map[string]CategoryStats),
	}
	for _, item := range r.reg.Items {
		cs := s.Categories[item.Category()]
		cs.Total++
		if item.Visible() {
			cs.Visible++
			s.VisibleItems++
		}
		s.Categories[item.Category()] = cs
	}
	for _, issue := range r.reg.Issues {
		if issue.Visible() {
			s.VisibleIssues++
		}
	}
	return s
}
