package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/lobster-view/internal/colors"
	"github.com/cristianoliveira/lobster-view/internal/config"
)

const fixture = "../../internal/report/testdata/lobster_report.html"

// setupConfig loads defaults from an empty temp home and captures console
// output.
func setupConfig(t *testing.T) *bytes.Buffer {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv(config.EnvPrefix+"CONFIG_PATH", "")
	config.Load()

	var console bytes.Buffer
	colors.SetOutput(&console, &console)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return &console
}

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestReportPath(t *testing.T) {
	require.Equal(t, "lobster_report.html", reportPath(nil))
	require.Equal(t, "lobster_report.html", reportPath([]string{""}))
	require.Equal(t, "x.html", reportPath([]string{"x.html"}))
}

func TestConstructorsRejectNil(t *testing.T) {
	require.Panics(t, func() { NewFilterCmd(nil) })
	require.Panics(t, func() { NewApplyCmd(nil) })
	require.Panics(t, func() { NewViewCmd(nil, runProgram) })
	require.Panics(t, func() { NewVersionCmd(nil) })
}
