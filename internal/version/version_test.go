package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		expected string
	}{
		{"development version without commit", "development", "unknown", "development"},
		{"release version with commit", "1.0.0", "abc1234", "1.0.0+abc1234"},
		{"empty commit shows only version", "0.3.1", "", "0.3.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origCommit := Version, Commit
			defer func() { Version, Commit = origVersion, origCommit }()

			Version, Commit = tt.version, tt.commit
			assert.Equal(t, tt.expected, String())
		})
	}
}

func TestGetKeepsLdflagsValues(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	Version, Commit, Date = "1.2.3", "abcdef0", "2026-01-02"
	info := Get()

	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abcdef0", info.Commit)
	assert.Equal(t, "2026-01-02", info.Date)
}
