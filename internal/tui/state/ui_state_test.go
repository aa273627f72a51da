package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUIStateDefaults(t *testing.T) {
	u := NewUIState(0)
	assert.Equal(t, defaultWidth, u.Width())
	assert.Equal(t, defaultHeight, u.Height())
	assert.Equal(t, defaultPanelHeight, u.PanelHeight())
	assert.Equal(t, defaultHeight-chromeLines, u.List().Height)
}

func TestResize(t *testing.T) {
	u := NewUIState(6)
	u.SetSize(100, 30)

	u.Resize(false)
	assert.Equal(t, 25, u.List().Height)
	assert.Equal(t, 100, u.List().Width)

	u.Resize(true)
	assert.Equal(t, 19, u.List().Height)
	assert.Equal(t, 6, u.Issues().Height)

	u.SetSize(100, 8)
	u.Resize(true)
	assert.Equal(t, minListRows, u.List().Height)
}

func TestSetSizeIgnoresNonPositive(t *testing.T) {
	u := NewUIState(4)
	u.SetSize(0, -1)
	assert.Equal(t, defaultWidth, u.Width())
	assert.Equal(t, defaultHeight, u.Height())
}

func TestCursorClamping(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		delta    int
		count    int
		expected int
	}{
		{"down", 0, 1, 3, 1},
		{"past end", 2, 5, 3, 2},
		{"before start", 1, -4, 3, 0},
		{"empty list", 2, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUIState(4)
			u.SetCursor(tt.start, 10)
			u.MoveCursor(tt.delta, tt.count)
			assert.Equal(t, tt.expected, u.Cursor())
		})
	}
}

func TestEnsureVisible(t *testing.T) {
	u := NewUIState(4)
	u.SetSize(80, chromeLines+5)
	u.Resize(false)
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "row"
	}
	u.List().SetContent(strings.Join(lines, "\n"))

	u.EnsureVisible(12)
	assert.Equal(t, 8, u.List().YOffset)

	u.EnsureVisible(10)
	assert.Equal(t, 8, u.List().YOffset)

	u.EnsureVisible(2)
	assert.Equal(t, 2, u.List().YOffset)
}
