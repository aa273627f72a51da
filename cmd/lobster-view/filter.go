package main

import (
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/lobster-view/cmd"
	"github.com/cristianoliveira/lobster-view/internal/config"
	"github.com/cristianoliveira/lobster-view/internal/format"
	"github.com/cristianoliveira/lobster-view/internal/report"
)

const filterCommandLong = `Apply a view state to a report and print what stays visible.

USAGE:
    lobster-view filter [REPORT] [OPTIONS]

REPORT defaults to lobster_report.html in the current directory.

OPTIONS:
    --filter <category>      Category to show (all, ok, missing, partial, justified, ...)
    --search <query>         Search query matched against item names
    --issues                 Include the issues panel
    --search-mode <mode>     Name matching: lasttoken (default), substring, token, regex
    --group-selector <sel>   Selector of the item group containers
    --format=<format>        Output format: simple (default), table, json
    -h, --help               Show this help`

// NewFilterCmd creates the filter command with explicit dependencies.
func NewFilterCmd(load reportLoader) *cobra.Command {
	if load == nil {
		panic("NewFilterCmd: load dependency cannot be nil")
	}

	var flags viewFlags
	var outputFormat string

	filterCmd := &cobra.Command{
		Use:   "filter [REPORT]",
		Short: "Print the visible items of a report",
		Long:  filterCommandLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat == "" {
				outputFormat = config.Get("output_format", string(format.FormatterTypeSimple))
			}
			formatter, err := format.New(format.FormatterType(outputFormat))
			if err != nil {
				return err
			}

			_, recon, err := prepare(load, reportPath(args), flags)
			if err != nil {
				return err
			}
			return formatter.Format(format.NewSnapshot(recon), cmd.OutOrStdout())
		},
	}

	registerViewFlags(filterCmd, &flags)
	filterCmd.Flags().StringVar(&outputFormat, "format", "", "Output format: simple, table, json (default from config)")

	return filterCmd
}

// filterCmd represents the filter command
var filterCmd = NewFilterCmd(report.LoadFile)

func init() {
	cmd.RootCmd.AddCommand(filterCmd)
}
