package main

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/lobster-view/internal/version"
)

func TestVersionCmd(t *testing.T) {
	tests := []struct {
		name     string
		info     version.Info
		expected string
	}{
		{
			name:     "development version without commit",
			info:     version.Info{Version: "development", Commit: "unknown"},
			expected: "lobster-view version development\n",
		},
		{
			name:     "release version with commit",
			info:     version.Info{Version: "1.0.0", Commit: "abc1234"},
			expected: "lobster-view version 1.0.0+abc1234\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewVersionCmd(func() version.Info { return tt.info })
			out, err := execute(t, c)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestVersionCmdJSON(t *testing.T) {
	want := version.Info{Version: "0.2.0", Commit: "def5678", GoVersion: "go1.24.2"}
	out, err := execute(t, NewVersionCmd(func() version.Info { return want }), "--format", "json")
	require.NoError(t, err)

	var got version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, want, got)

	_, err = execute(t, NewVersionCmd(version.Get), "--format", "xml")
	assert.Error(t, err)
}
