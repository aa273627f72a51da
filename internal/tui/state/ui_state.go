package state

import (
	"github.com/charmbracelet/bubbles/viewport"
)

const (
	defaultWidth       = 80
	defaultHeight      = 24
	defaultPanelHeight = 8
	// chromeLines is the filter bar, its spacer, the issues header and the
	// two footer lines.
	chromeLines = 5
	minListRows = 3
)

// UIState holds the layout of the view: the item list and issues
// viewports, the terminal size and the cursor.
type UIState struct {
	list        viewport.Model
	issues      viewport.Model
	width       int
	height      int
	panelHeight int
	cursor      int
}

// NewUIState creates a UIState for the default terminal size.
func NewUIState(panelHeight int) *UIState {
	if panelHeight <= 0 {
		panelHeight = defaultPanelHeight
	}
	u := &UIState{
		width:       defaultWidth,
		height:      defaultHeight,
		panelHeight: panelHeight,
	}
	u.list = viewport.New(u.width, 1)
	u.issues = viewport.New(u.width, panelHeight)
	u.Resize(false)
	return u
}

// List returns the item list viewport.
func (u *UIState) List() *viewport.Model {
	return &u.list
}

// Issues returns the issues panel viewport.
func (u *UIState) Issues() *viewport.Model {
	return &u.issues
}

// Width returns the terminal width.
func (u *UIState) Width() int {
	return u.width
}

// Height returns the terminal height.
func (u *UIState) Height() int {
	return u.height
}

// PanelHeight returns the number of rows of the expanded issues panel.
func (u *UIState) PanelHeight() int {
	return u.panelHeight
}

// SetSize records the terminal size. Non-positive values keep the defaults.
func (u *UIState) SetSize(width, height int) {
	u.width, u.height = width, height
	if width <= 0 {
		u.width = defaultWidth
	}
	if height <= 0 {
		u.height = defaultHeight
	}
}

// Resize lays the viewports out for the current size. The issues panel
// takes its rows from the list only when expanded.
func (u *UIState) Resize(issuesExpanded bool) {
	listRows := u.height - chromeLines
	if issuesExpanded {
		listRows -= u.panelHeight
	}
	if listRows < minListRows {
		listRows = minListRows
	}
	u.list.Width, u.list.Height = u.width, listRows
	u.issues.Width, u.issues.Height = u.width, u.panelHeight
}

// Cursor returns the index of the selected item.
func (u *UIState) Cursor() int {
	return u.cursor
}

// SetCursor moves the cursor to n, clamped to [0, count).
func (u *UIState) SetCursor(n, count int) {
	switch {
	case count <= 0 || n < 0:
		u.cursor = 0
	case n >= count:
		u.cursor = count - 1
	default:
		u.cursor = n
	}
}

// MoveCursor moves the cursor by delta within [0, count).
func (u *UIState) MoveCursor(delta, count int) {
	u.SetCursor(u.cursor+delta, count)
}

// EnsureVisible scrolls the list so that line is inside the viewport.
func (u *UIState) EnsureVisible(line int) {
	top := u.list.YOffset
	switch {
	case line < top:
		u.list.SetYOffset(line)
	case line >= top+u.list.Height:
		u.list.SetYOffset(line - u.list.Height + 1)
	}
}
