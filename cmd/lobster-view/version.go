package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/lobster-view/cmd"
	"github.com/cristianoliveira/lobster-view/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(info func() version.Info) *cobra.Command {
	if info == nil {
		panic("NewVersionCmd: info dependency cannot be nil")
	}

	var outputFormat string

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of lobster-view.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			i := info()
			switch outputFormat {
			case "", "simple":
				v := i.Version
				if i.Commit != "" && i.Commit != "unknown" {
					v += "+" + i.Commit
				}
				fmt.Fprintf(cmd.OutOrStdout(), "lobster-view version %s\n", v)
				return nil
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(i)
			default:
				return fmt.Errorf("version: unknown format %q (want simple or json)", outputFormat)
			}
		},
	}
	versionCmd.Flags().StringVar(&outputFormat, "format", "simple", "Output format: simple, json")

	return versionCmd
}

// versionCmd represents the version command
var versionCmd = NewVersionCmd(version.Get)

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
