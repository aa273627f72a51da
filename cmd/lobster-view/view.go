package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/lobster-view/cmd"
	"github.com/cristianoliveira/lobster-view/internal/config"
	"github.com/cristianoliveira/lobster-view/internal/logging"
	"github.com/cristianoliveira/lobster-view/internal/report"
	"github.com/cristianoliveira/lobster-view/internal/tui/state"
	"github.com/cristianoliveira/lobster-view/internal/watcher"
)

const viewCommandLong = `Browse a report interactively.

USAGE:
    lobster-view view [REPORT] [OPTIONS]

KEYS:
    1-9        Apply the n-th filter button
    /          Edit the search query (enter or esc to leave)
    i          Show or hide the issues panel
    j/k        Move the cursor
    J/K        Scroll the issues panel
    r          Reload the report
    q          Quit

OPTIONS:
    --watch                  Reload when the report file changes
    --filter <category>      Initial category (all, ok, missing, partial, justified, ...)
    --search <query>         Initial search query
    --issues                 Start with the issues panel expanded
    --search-mode <mode>     Name matching: lasttoken (default), substring, token, regex
    --group-selector <sel>   Selector of the item group containers
    -h, --help               Show this help`

// programRunner runs a bubbletea model until it quits.
type programRunner func(m tea.Model) error

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewViewCmd creates the view command with explicit dependencies.
func NewViewCmd(load reportLoader, run programRunner) *cobra.Command {
	if load == nil {
		panic("NewViewCmd: load dependency cannot be nil")
	}
	if run == nil {
		panic("NewViewCmd: run dependency cannot be nil")
	}

	var flags viewFlags
	var watch bool

	viewCmd := &cobra.Command{
		Use:   "view [REPORT]",
		Short: "Browse a report interactively",
		Long:  viewCommandLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := reportPath(args)
			provider, err := flags.provider()
			if err != nil {
				return err
			}
			opts := flags.loadOptions()
			doc, err := load(path, opts...)
			if err != nil {
				return err
			}
			doc.Registry().Search.Value = flags.search

			if !cmd.Flags().Changed("watch") {
				watch = config.GetBool("watch", false)
			}

			cfg := state.Config{
				Path:          path,
				LoadOptions:   opts,
				Provider:      provider,
				DefaultFilter: flags.filterOrDefault(),
				PanelHeight:   config.GetInt("panel_height", 8),
				ExpandIssues:  flags.issues,
				Logger:        logging.With("report", path),
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if watch {
				w, err := newReportWatcher(path)
				if err != nil {
					return err
				}
				cfg.Watcher = w
				go func() {
					if err := w.Run(ctx); err != nil && ctx.Err() == nil {
						logging.Warn("watcher stopped", "path", path, "error", err)
					}
				}()
			}

			logging.Info("starting view", "report", path, "watch", watch, "provider", provider.Name())
			if err := run(state.NewModel(cfg, doc)); err != nil {
				return fmt.Errorf("view: %w", err)
			}
			return nil
		},
	}

	registerViewFlags(viewCmd, &flags)
	viewCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload when the report file changes (default from config)")

	return viewCmd
}

func newReportWatcher(path string) (*watcher.Watcher, error) {
	debounce := time.Duration(config.GetInt("watch_debounce_ms", int(watcher.DefaultDebounce/time.Millisecond))) * time.Millisecond
	return watcher.New(path, watcher.WithDebounce(debounce))
}

// viewCmd represents the view command
var viewCmd = NewViewCmd(report.LoadFile, runProgram)

func init() {
	cmd.RootCmd.AddCommand(viewCmd)
}
