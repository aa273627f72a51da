package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/lobster-view/cmd"
	"github.com/cristianoliveira/lobster-view/internal/colors"
	"github.com/cristianoliveira/lobster-view/internal/report"
)

const applyCommandLong = `Apply a view state to a report and write the resulting page.

The written page opens in a browser with the filter, search and issues panel
already in the requested state.

USAGE:
    lobster-view apply [REPORT] --out <path> [OPTIONS]

OPTIONS:
    --out <path>             Where to write the page (required; may equal REPORT)
    --filter <category>      Category to show (all, ok, missing, partial, justified, ...)
    --search <query>         Search query matched against item names
    --issues                 Expand the issues panel
    --search-mode <mode>     Name matching: lasttoken (default), substring, token, regex
    --group-selector <sel>   Selector of the item group containers
    -h, --help               Show this help`

// NewApplyCmd creates the apply command with explicit dependencies.
func NewApplyCmd(load reportLoader) *cobra.Command {
	if load == nil {
		panic("NewApplyCmd: load dependency cannot be nil")
	}

	var flags viewFlags
	var out string

	applyCmd := &cobra.Command{
		Use:   "apply [REPORT]",
		Short: "Write a report with a view state applied",
		Long:  applyCommandLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("apply: --out is required")
			}
			doc, recon, err := prepare(load, reportPath(args), flags)
			if err != nil {
				return err
			}
			if err := doc.WriteFile(out); err != nil {
				return err
			}
			stats := recon.Stats()
			colors.Success(fmt.Sprintf("Wrote %s (%d/%d items visible)", out, stats.VisibleItems, stats.Items))
			return nil
		},
	}

	registerViewFlags(applyCmd, &flags)
	applyCmd.Flags().StringVarP(&out, "out", "o", "", "Where to write the page")

	return applyCmd
}

// applyCmd represents the apply command
var applyCmd = NewApplyCmd(report.LoadFile)

func init() {
	cmd.RootCmd.AddCommand(applyCmd)
}
