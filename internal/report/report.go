// Package report binds a rendered LOBSTER HTML report to a view-state
// registry. Load reads the markup into nodes, Sync writes the reconciled node
// state back and Render emits the resulting page.
package report

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/cristianoliveira/lobster-view/internal/viewstate"
)

// DefaultGroupSelector matches the detailed-report sections of the page.
const DefaultGroupSelector = `div[class^="detailed-report-"]`

// DefaultPath is the file name the report generator writes by default.
const DefaultPath = "lobster_report.html"

var filterCall = regexp.MustCompile(`buttonFilter\(\s*['"]([^'"]*)['"]\s*\)`)

// Options holds configuration for loading a report.
type Options struct {
	// GroupSelector selects the containers that group report items.
	GroupSelector string
}

// Option is a function that modifies load options.
type Option func(*Options)

// WithGroupSelector sets the selector used for item groups.
func WithGroupSelector(sel string) Option {
	return func(o *Options) {
		if sel != "" {
			o.GroupSelector = sel
		}
	}
}

// Document is a parsed report together with its node registry.
type Document struct {
	doc *goquery.Document
	reg *viewstate.Registry

	itemSel    []*goquery.Selection
	groupSel   []*goquery.Selection
	issueSel   []*goquery.Selection
	controlSel []*goquery.Selection
	panelSel   *goquery.Selection
	toggleSel  *goquery.Selection
	searchSel  *goquery.Selection
}

// Load parses a report and builds its registry. A report without the issues
// panel, its toggle or the search box is rejected.
func Load(r io.Reader, opts ...Option) (*Document, error) {
	o := Options{GroupSelector: DefaultGroupSelector}
	for _, opt := range opts {
		opt(&o)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	d := &Document{doc: doc, reg: &viewstate.Registry{}}
	d.bindSingletons()
	d.bindGroups(o.GroupSelector)
	d.bindItems(o.GroupSelector)
	d.bindIssues()
	d.bindControls()

	if err := d.reg.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadFile opens and loads the report at path.
func LoadFile(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	d, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Registry returns the nodes bound to the document.
func (d *Document) Registry() *viewstate.Registry {
	return d.reg
}

func (d *Document) bindSingletons() {
	if s := d.doc.Find("#" + viewstate.PanelID).First(); s.Length() > 0 {
		d.panelSel = s
		d.reg.Panel = &viewstate.Panel{Style: s.AttrOr("style", "")}
	}
	if s := d.doc.Find("#" + viewstate.ToggleID).First(); s.Length() > 0 {
		d.toggleSel = s
		d.reg.Toggle = &viewstate.Toggle{
			Label: strings.TrimSpace(s.Text()),
			Class: s.AttrOr("class", ""),
		}
	}
	if s := d.doc.Find("#" + viewstate.SearchID).First(); s.Length() > 0 {
		d.searchSel = s
		d.reg.Search = &viewstate.SearchInput{Value: s.AttrOr("value", "")}
	}
}

func (d *Document) bindGroups(selector string) {
	d.doc.Find(selector).Each(func(i int, s *goquery.Selection) {
		id := s.AttrOr("id", "")
		if id == "" {
			id = s.AttrOr("class", "")
		}
		d.reg.Groups = append(d.reg.Groups, &viewstate.Group{
			ID:      id,
			Title:   strings.TrimSpace(s.Find("h3").First().Text()),
			Display: viewstate.StyleDisplay(s.AttrOr("style", "")),
		})
		d.groupSel = append(d.groupSel, s)
	})
}

func (d *Document) bindItems(groupSelector string) {
	d.doc.Find(`div[id^="` + viewstate.ItemIDPrefix + `"]`).Each(func(i int, s *goquery.Selection) {
		nameHTML, _ := s.ChildrenFiltered(".item-name").First().Html()
		item := &viewstate.Item{
			ID:         s.AttrOr("id", ""),
			Class:      s.AttrOr("class", ""),
			NameHTML:   nameHTML,
			Display:    viewstate.StyleDisplay(s.AttrOr("style", "")),
			MatchState: s.AttrOr("title", ""),
		}
		if g := d.groupOf(s.ParentsFiltered(groupSelector).First()); g != nil {
			item.Group = g
			g.Items = append(g.Items, item)
		}
		d.reg.Items = append(d.reg.Items, item)
		d.itemSel = append(d.itemSel, s)
	})
}

// groupOf returns the group bound to the given element, if any.
func (d *Document) groupOf(s *goquery.Selection) *viewstate.Group {
	if s.Length() == 0 {
		return nil
	}
	for i, gs := range d.groupSel {
		if gs.IsSelection(s) {
			return d.reg.Groups[i]
		}
	}
	return nil
}

func (d *Document) bindIssues() {
	d.doc.Find(".issue").Each(func(i int, s *goquery.Selection) {
		d.reg.Issues = append(d.reg.Issues, &viewstate.Issue{
			Class:   s.AttrOr("class", ""),
			Text:    strings.TrimSpace(s.Text()),
			Display: viewstate.StyleDisplay(s.AttrOr("style", "")),
		})
		d.issueSel = append(d.issueSel, s)
	})
}

func (d *Document) bindControls() {
	d.doc.Find("button").Each(func(i int, s *goquery.Selection) {
		if s.AttrOr("id", "") == viewstate.ToggleID {
			return
		}
		class := s.AttrOr("class", "")
		filter := controlFilter(s.AttrOr("onclick", ""), class)
		if filter == "" {
			return
		}
		d.reg.Controls = append(d.reg.Controls, &viewstate.Control{
			Class:  class,
			Label:  strings.TrimSpace(s.Text()),
			Filter: filter,
		})
		d.controlSel = append(d.controlSel, s)
	})
}

// controlFilter returns the filter a button dispatches: the argument of its
// buttonFilter(...) handler, or else the suffix of its button<Filter> class.
func controlFilter(onclick, class string) string {
	if m := filterCall.FindStringSubmatch(onclick); m != nil {
		return m[1]
	}
	for _, c := range strings.Fields(class) {
		if c == viewstate.ControlPrefix || c == viewstate.ActiveMarker {
			continue
		}
		if strings.HasPrefix(c, viewstate.ControlPrefix) {
			return strings.ToLower(strings.TrimPrefix(c, viewstate.ControlPrefix))
		}
	}
	return ""
}

// Sync writes the current node state back into the markup.
func (d *Document) Sync() {
	for i, item := range d.reg.Items {
		s := d.itemSel[i]
		setStyleDisplay(s, item.Display)
		if item.MatchState != "" {
			s.SetAttr("title", item.MatchState)
		} else {
			s.RemoveAttr("title")
		}
	}
	for i, g := range d.reg.Groups {
		setStyleDisplay(d.groupSel[i], g.Display)
	}
	for i, issue := range d.reg.Issues {
		setStyleDisplay(d.issueSel[i], issue.Display)
	}
	for i, c := range d.reg.Controls {
		d.controlSel[i].SetAttr("class", c.Class)
	}

	if d.reg.Panel.Style != "" {
		d.panelSel.SetAttr("style", d.reg.Panel.Style)
	} else {
		d.panelSel.RemoveAttr("style")
	}
	d.toggleSel.SetText(" " + d.reg.Toggle.Label + " ")
	d.toggleSel.SetAttr("class", d.reg.Toggle.Class)
	d.searchSel.SetAttr("value", d.reg.Search.Value)
}

func setStyleDisplay(s *goquery.Selection, display string) {
	style := viewstate.SetStyleDisplay(s.AttrOr("style", ""), display)
	if style == "" {
		s.RemoveAttr("style")
		return
	}
	s.SetAttr("style", style)
}

// Render writes the whole page.
func (d *Document) Render(w io.Writer) error {
	html, err := d.doc.Html()
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = io.WriteString(w, html)
	return err
}

// WriteFile syncs the node state and writes the page to path.
func (d *Document) WriteFile(path string) error {
	d.Sync()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := d.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
