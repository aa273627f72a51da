package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/lobster-view/internal/config"
	"github.com/cristianoliveira/lobster-view/internal/logging"
	"github.com/cristianoliveira/lobster-view/internal/report"
	"github.com/cristianoliveira/lobster-view/internal/search"
	"github.com/cristianoliveira/lobster-view/internal/viewstate"
)

// reportLoader parses the report at path.
type reportLoader func(path string, opts ...report.Option) (*report.Document, error)

// viewFlags are the view state options shared by filter, apply and view.
// Empty values fall back to the configuration.
type viewFlags struct {
	filter        string
	search        string
	issues        bool
	searchMode    string
	groupSelector string
}

func registerViewFlags(cmd *cobra.Command, f *viewFlags) {
	cmd.Flags().StringVar(&f.filter, "filter", "", "Category to show: all, ok, missing, partial, justified, ... (default from config)")
	cmd.Flags().StringVar(&f.search, "search", "", "Search query matched against item names")
	cmd.Flags().BoolVar(&f.issues, "issues", false, "Expand the issues panel")
	cmd.Flags().StringVar(&f.searchMode, "search-mode", "", fmt.Sprintf("Name matching: %v (default from config)", search.Modes()))
	cmd.Flags().StringVar(&f.groupSelector, "group-selector", "", "Selector of the item group containers (default from config)")
}

// reportPath returns the report argument, or the generator's default file name.
func reportPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return report.DefaultPath
}

func (f viewFlags) filterOrDefault() string {
	if f.filter != "" {
		return f.filter
	}
	return config.Get("default_filter", viewstate.FilterAll)
}

func (f viewFlags) loadOptions() []report.Option {
	sel := f.groupSelector
	if sel == "" {
		sel = config.Get("group_selector", report.DefaultGroupSelector)
	}
	return []report.Option{report.WithGroupSelector(sel)}
}

func (f viewFlags) provider() (search.Provider, error) {
	mode := f.searchMode
	if mode == "" {
		mode = config.Get("search_mode", search.ModeLastToken)
	}
	return search.New(mode)
}

// prepare loads the report and applies the requested view state to it: the
// category filter first, then the query, then the issues panel.
func prepare(load reportLoader, path string, f viewFlags) (*report.Document, *viewstate.Reconciler, error) {
	provider, err := f.provider()
	if err != nil {
		return nil, nil, err
	}

	doc, err := load(path, f.loadOptions()...)
	if err != nil {
		return nil, nil, err
	}

	logger := logging.With("report", path)
	recon := viewstate.New(doc.Registry(),
		viewstate.WithProvider(provider),
		viewstate.WithLogger(logger))

	filter := f.filterOrDefault()
	recon.ApplyCategoryFilter(filter)
	if f.search != "" {
		recon.SetQuery(f.search)
	}
	if f.issues && !recon.PanelExpanded() {
		recon.ToggleIssuesPanel()
	}

	stats := recon.Stats()
	logger.Info("view state applied",
		"filter", filter,
		"query", recon.Query(),
		"provider", provider.Name(),
		"visible_items", stats.VisibleItems,
		"items", stats.Items)
	return doc, recon, nil
}
