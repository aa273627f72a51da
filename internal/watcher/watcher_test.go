package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func start(t *testing.T, path string, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(path, opts...)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
	// Let the watch get established before the test writes.
	time.Sleep(50 * time.Millisecond)
	return w
}

func waitChange(t *testing.T, w *Watcher) {
	t.Helper()
	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestNewResolvesPath(t *testing.T) {
	w, err := New("report.html")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))
	assert.Equal(t, DefaultDebounce, w.debounce)
}

func TestNotifyDetectsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lobster_report.html")
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

	w := start(t, path, WithDebounce(20*time.Millisecond))
	require.NoError(t, os.WriteFile(path, []byte("<html><body></body></html>"), 0644))

	waitChange(t, w)
}

func TestNotifyIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lobster_report.html")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	w := start(t, path, WithDebounce(20*time.Millisecond))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.html"), []byte("x"), 0644))

	select {
	case <-w.Changes():
		t.Fatal("change reported for another file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDebounceCoalescesWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lobster_report.html")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	w := start(t, path, WithDebounce(150*time.Millisecond))
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0644))
		time.Sleep(10 * time.Millisecond)
	}

	waitChange(t, w)
	select {
	case <-w.Changes():
		t.Fatal("burst produced more than one change")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestPollingDetectsWriteAndRemoval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lobster_report.html")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	w := start(t, path,
		WithPolling(true),
		WithPollInterval(20*time.Millisecond),
		WithDebounce(10*time.Millisecond))

	require.NoError(t, os.WriteFile(path, []byte("longer content"), 0644))
	waitChange(t, w)

	require.NoError(t, os.Remove(path))
	select {
	case err := <-w.Errors():
		assert.ErrorIs(t, err, ErrFileRemoved)
	case <-time.After(3 * time.Second):
		t.Fatal("removal not reported")
	}
}
