package main

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/lobster-view/internal/config"
	"github.com/cristianoliveira/lobster-view/internal/errors"
	"github.com/cristianoliveira/lobster-view/internal/format"
	"github.com/cristianoliveira/lobster-view/internal/report"
)

func filterJSON(t *testing.T, args ...string) format.Snapshot {
	t.Helper()
	out, err := execute(t, NewFilterCmd(report.LoadFile), append([]string{fixture, "--format", "json"}, args...)...)
	require.NoError(t, err)
	var s format.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	return s
}

func itemIDs(s format.Snapshot) []string {
	ids := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestFilterDefaults(t *testing.T) {
	setupConfig(t)

	s := filterJSON(t)
	assert.Equal(t, "all", s.Filter)
	assert.Len(t, s.Items, 4)
	assert.False(t, s.IssuesExpanded)
}

func TestFilterCategory(t *testing.T) {
	setupConfig(t)

	s := filterJSON(t, "--filter", "missing", "--issues")
	assert.Equal(t, []string{"item-2b3c"}, itemIDs(s))
	assert.True(t, s.IssuesExpanded)
	require.Len(t, s.Issues, 1)
	assert.Equal(t, "missing", s.Issues[0].Category)
}

func TestFilterSearch(t *testing.T) {
	setupConfig(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"last token", []string{"--search", "EMIT"}, []string{"item-3d4e"}},
		{"last token ignores leading words", []string{"--search", "python"}, []string{}},
		{"substring", []string{"--search", "python", "--search-mode", "substring"}, []string{"item-3d4e", "item-4f5a"}},
		{"search within category", []string{"--search", "example", "--filter", "ok"}, []string{"item-1f2a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itemIDs(filterJSON(t, tt.args...)))
		})
	}
}

func TestFilterUsesConfigDefaults(t *testing.T) {
	setupConfig(t)
	config.Set("default_filter", "partial")
	config.Set("output_format", "simple")

	out, err := execute(t, NewFilterCmd(report.LoadFile), fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "[partial] Python Function emit")
	assert.Contains(t, out, "1/4 items shown (filter=partial query=\"\")")
}

func TestFilterTable(t *testing.T) {
	setupConfig(t)

	out, err := execute(t, NewFilterCmd(report.LoadFile), fixture, "--format", "table", "--filter", "ok")
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "item-1f2a")
	assert.NotContains(t, out, "item-2b3c")
}

func TestFilterErrors(t *testing.T) {
	setupConfig(t)

	_, err := execute(t, NewFilterCmd(report.LoadFile), fixture, "--format", "xml")
	assert.ErrorIs(t, err, errors.ErrUnknownFormat)

	_, err = execute(t, NewFilterCmd(report.LoadFile), fixture, "--search-mode", "fuzzy")
	assert.ErrorIs(t, err, errors.ErrUnknownSearchMode)

	_, err = execute(t, NewFilterCmd(report.LoadFile), "does-not-exist.html")
	assert.Error(t, err)

	_, err = execute(t, NewFilterCmd(report.LoadFile), fixture, "extra")
	assert.Error(t, err)
}
