package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestPrintHelpListsCommandsInOrder(t *testing.T) {
	root := &cobra.Command{Use: "lobster-view", Version: "1.2.3"}
	for _, name := range []string{"version", "view", "filter", "extra"} {
		root.AddCommand(&cobra.Command{Use: name + " [REPORT]", Short: name + " short", Run: func(*cobra.Command, []string) {}})
	}

	var buf bytes.Buffer
	PrintHelp(root, &buf)
	out := buf.String()

	assert.Contains(t, out, "lobster-view v1.2.3")
	assert.Contains(t, out, "filter [REPORT]")
	assert.NotContains(t, out, "extra")
	assert.NotContains(t, out, "apply")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("filter [REPORT]")), bytes.Index(buf.Bytes(), []byte("view [REPORT]")))
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("view [REPORT]")), bytes.Index(buf.Bytes(), []byte("version [REPORT]")))
}

func TestRootHidesCompletion(t *testing.T) {
	assert.True(t, RootCmd.CompletionOptions.HiddenDefaultCmd)
	assert.NotEmpty(t, RootCmd.Version)
	assert.NotNil(t, RootCmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, RootCmd.PersistentFlags().Lookup("quiet"))
}
