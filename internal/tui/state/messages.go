package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/lobster-view/internal/report"
	"github.com/cristianoliveira/lobster-view/internal/watcher"
)

// reportLoadedMsg carries a freshly parsed report.
type reportLoadedMsg struct {
	doc *report.Document
}

// reportFailedMsg is sent when a reload cannot parse the report.
type reportFailedMsg struct {
	err error
}

// fileChangedMsg is sent when the watched report changed on disk.
type fileChangedMsg struct{}

// watchErrorMsg carries an error reported by the watcher.
type watchErrorMsg struct {
	err error
}

// clearStatusMsg clears the status line if it still shows message seq.
type clearStatusMsg struct {
	seq int
}

// loadReportCmd parses the report at path.
func loadReportCmd(path string, opts []report.Option) tea.Cmd {
	return func() tea.Msg {
		doc, err := report.LoadFile(path, opts...)
		if err != nil {
			return reportFailedMsg{err: err}
		}
		return reportLoadedMsg{doc: doc}
	}
}

// waitForChange blocks until the watcher reports a change or an error.
func waitForChange(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.Changes():
			return fileChangedMsg{}
		case err := <-w.Errors():
			return watchErrorMsg{err: err}
		}
	}
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
