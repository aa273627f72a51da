package state

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/lobster-view/internal/report"
	"github.com/cristianoliveira/lobster-view/internal/viewstate"
)

const fixture = "../../report/testdata/lobster_report.html"

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// copyFixture places the fixture report in a temp dir so reload tests can
// rewrite it.
func copyFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), report.DefaultPath)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func newTestModel(t *testing.T, cfg Config) *Model {
	t.Helper()
	if cfg.Path == "" {
		cfg.Path = copyFixture(t)
	}
	doc, err := report.LoadFile(cfg.Path)
	require.NoError(t, err)
	return NewModel(cfg, doc)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m *Model, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func visibleIDs(m *Model) []string {
	var ids []string
	for _, item := range m.Reconciler().VisibleItems() {
		ids = append(ids, item.ID)
	}
	return ids
}

func plainView(m *Model) string {
	return ansi.ReplaceAllString(m.View(), "")
}

func TestNewModelAppliesDefaultFilter(t *testing.T) {
	m := newTestModel(t, Config{DefaultFilter: "ok"})

	assert.Equal(t, "ok", m.Reconciler().ActiveFilter())
	assert.Equal(t, []string{"item-1f2a"}, visibleIDs(m))
	assert.Nil(t, m.Init())
}

func TestNumberKeysSelectControls(t *testing.T) {
	m := newTestModel(t, Config{DefaultFilter: viewstate.FilterAll})

	send(t, m, key("3"))
	assert.Equal(t, "missing", m.Reconciler().ActiveFilter())
	assert.Equal(t, []string{"item-2b3c"}, visibleIDs(m))

	active := m.Reconciler().ActiveControls()
	require.Len(t, active, 1)
	assert.Equal(t, "missing", active[0].Filter)

	send(t, m, key("1"))
	assert.Len(t, visibleIDs(m), 4)
}

func TestNumberKeyWithoutControlWarns(t *testing.T) {
	m := newTestModel(t, Config{})

	cmd := send(t, m, key("9"))
	assert.NotNil(t, cmd)
	assert.Contains(t, m.status, "No filter 9")
	assert.Len(t, visibleIDs(m), 4)
}

func TestToggleIssuesKey(t *testing.T) {
	m := newTestModel(t, Config{PanelHeight: 4})
	assert.False(t, m.Reconciler().PanelExpanded())
	assert.Contains(t, plainView(m), "▸ Issues (2)")

	send(t, m, key("i"))
	assert.True(t, m.Reconciler().PanelExpanded())
	assert.Equal(t, viewstate.LabelHideIssues, m.Reconciler().Registry().Toggle.Label)
	view := plainView(m)
	assert.Contains(t, view, "▾ Issues (2)")
	assert.Contains(t, view, "req Lexer: missing reference to Code")

	send(t, m, key("i"))
	assert.False(t, m.Reconciler().PanelExpanded())
}

func TestSearchInput(t *testing.T) {
	m := newTestModel(t, Config{})

	send(t, m, key("/"))
	assert.True(t, m.input.Focused())

	// While focused, bound keys such as "i" are query text.
	send(t, m, key("e"), key("m"), key("i"), key("t"))
	assert.Equal(t, "emit", m.Reconciler().Registry().Search.Value)
	assert.Equal(t, []string{"item-3d4e"}, visibleIDs(m))

	send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "emi", m.Reconciler().Registry().Search.Value)

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.input.Focused())
	assert.Equal(t, "emi", m.Reconciler().Query())
	assert.Contains(t, plainView(m), "/emi")
}

func TestSearchEscKeepsQuery(t *testing.T) {
	m := newTestModel(t, Config{})

	send(t, m, key("/"), key("x"), key("y"), key("z"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.input.Focused())
	assert.Equal(t, "xyz", m.Reconciler().Query())
	assert.Empty(t, visibleIDs(m))
	assert.Contains(t, plainView(m), "No items match the current filter")
}

func TestCursorMovement(t *testing.T) {
	m := newTestModel(t, Config{})

	send(t, m, key("j"), key("j"))
	assert.Equal(t, 2, m.ui.Cursor())

	send(t, m, key("j"), key("j"), key("j"))
	assert.Equal(t, 3, m.ui.Cursor())

	send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, m.ui.Cursor())

	send(t, m, key("2"))
	assert.Equal(t, 0, m.ui.Cursor())
}

func TestViewGroupsItems(t *testing.T) {
	m := newTestModel(t, Config{DefaultFilter: viewstate.FilterAll})
	send(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	view := plainView(m)
	assert.Contains(t, view, "1 Show All")
	assert.Contains(t, view, "Requirements and Specification (2/2)")
	assert.Contains(t, view, "Implementation (2/2)")
	assert.NotContains(t, view, "Verification and Validation")
	assert.Contains(t, view, "req example.Parser")
	assert.Contains(t, view, "4/4 items")
}

func TestReloadKeepsViewState(t *testing.T) {
	m := newTestModel(t, Config{})
	send(t, m, key("4"), key("i"))
	m.Reconciler().SetQuery("EMIT")

	cmd := send(t, m, key("r"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, reportLoadedMsg{}, msg)

	before := m.Reconciler()
	send(t, m, msg)
	after := m.Reconciler()

	assert.NotSame(t, before, after)
	assert.Equal(t, "partial", after.ActiveFilter())
	assert.Equal(t, "emit", after.Query())
	assert.True(t, after.PanelExpanded())
	assert.Equal(t, []string{"item-3d4e"}, visibleIDs(m))
	assert.Contains(t, m.status, "Reloaded")
}

func TestReloadPicksUpChanges(t *testing.T) {
	path := copyFixture(t)
	m := newTestModel(t, Config{Path: path})

	require.NoError(t, os.WriteFile(path, []byte(`<div id="issues-section"></div>
<button id="BtnToggleIssue">Show Issues</button><input id="search">
<div class="item-ok" id="item-new"><div class="item-name"><svg></svg> fresh</div></div>`), 0644))

	cmd := send(t, m, fileChangedMsg{})
	require.NotNil(t, cmd)
	msg := loadReportCmd(path, nil)()
	send(t, m, msg)

	assert.Equal(t, []string{"item-new"}, visibleIDs(m))
}

func TestReloadFailureSetsStatus(t *testing.T) {
	path := copyFixture(t)
	m := newTestModel(t, Config{Path: path})
	require.NoError(t, os.Remove(path))

	msg := loadReportCmd(path, nil)()
	require.IsType(t, reportFailedMsg{}, msg)
	cmd := send(t, m, msg)

	assert.NotNil(t, cmd)
	assert.Contains(t, m.status, "Error: Reload failed")
	assert.Len(t, visibleIDs(m), 4)

	latest, ok := m.errorHandler.Latest()
	require.True(t, ok)
	assert.Contains(t, latest.Text, "Reload failed")
}

func TestClearStatus(t *testing.T) {
	m := newTestModel(t, Config{})
	send(t, m, key("9"))
	seq := m.statusSeq

	send(t, m, clearStatusMsg{seq: seq - 1})
	assert.NotEmpty(t, m.status)

	send(t, m, clearStatusMsg{seq: seq})
	assert.Empty(t, m.status)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, Config{})
		cmd := send(t, m, k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestExpandIssuesOnStart(t *testing.T) {
	m := newTestModel(t, Config{ExpandIssues: true})

	assert.True(t, m.Reconciler().PanelExpanded())
	assert.Contains(t, plainView(m), "▾ Issues (2)")
}
