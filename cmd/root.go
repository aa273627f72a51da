/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/lobster-view/internal/colors"
	"github.com/cristianoliveira/lobster-view/internal/config"
	"github.com/cristianoliveira/lobster-view/internal/logging"
	"github.com/cristianoliveira/lobster-view/internal/version"
)

const description = "Filter, search and browse LOBSTER HTML reports from the terminal."

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           "lobster-view",
	Short:         description,
	Long:          description,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.ShutdownGlobal()
	},
}

var (
	configPath string
	debugFlag  bool
	quietFlag  bool
)

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			if cmd.Long != "" {
				fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
				return
			}
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		PrintHelp(cmd, cmd.OutOrStdout())
	})

	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/lobster-view/config.toml)")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "print debug output")
	RootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "suppress informational output")
}

// setup loads the configuration and wires console and file logging.
// Command-line flags win over the file and the environment.
func setup(cmd *cobra.Command) error {
	if configPath != "" {
		if err := os.Setenv(config.EnvPrefix+"CONFIG_PATH", configPath); err != nil {
			return err
		}
	}
	config.Load()
	if cmd.Flags().Changed("debug") {
		config.Set("debug", fmt.Sprint(debugFlag))
	}
	if cmd.Flags().Changed("quiet") {
		config.Set("quiet", fmt.Sprint(quietFlag))
	}

	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	logging.Info("command started", "command", cmd.Name(), "args", strings.Join(os.Args[1:], " "))
	return nil
}

// commandOrder is the order commands are listed in the help text.
var commandOrder = []string{"filter", "apply", "view", "version"}

// PrintHelp writes the help text of the root command.
func PrintHelp(cmd *cobra.Command, w io.Writer) {
	var lines []string
	for _, name := range commandOrder {
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				lines = append(lines, fmt.Sprintf("    %-24s %s", c.Use, c.Short))
				break
			}
		}
	}

	fmt.Fprintf(w, `lobster-view v%s

%s

USAGE:
    lobster-view [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    --config <path>  Read configuration from path
    --debug          Print debug output
    --quiet          Suppress informational output
    -h, --help       Show help message
`, cmd.Version, description, strings.Join(lines, "\n"))
}
