// Package watcher reports changes to a report file so the view can reload it.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Defaults used when an option is zero.
const (
	DefaultDebounce     = 200 * time.Millisecond
	DefaultPollInterval = 2 * time.Second
)

// ErrFileRemoved is reported when the watched file disappears.
var ErrFileRemoved = errors.New("watched file was removed")

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the watcher waits for writes to settle.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithPollInterval sets the stat interval used in polling mode.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.pollInterval = d
		}
	}
}

// WithPolling forces polling instead of filesystem notifications.
func WithPolling(enabled bool) Option {
	return func(w *Watcher) {
		w.polling = enabled
	}
}

// Watcher watches a single file. Bursts of writes produce one event.
type Watcher struct {
	path         string
	debounce     time.Duration
	pollInterval time.Duration
	polling      bool

	changes chan struct{}
	errs    chan error

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for path. Nothing is watched until Run is called.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		path:         abs,
		debounce:     DefaultDebounce,
		pollInterval: DefaultPollInterval,
		changes:      make(chan struct{}, 1),
		errs:         make(chan error, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Changes delivers one value per settled burst of writes.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Errors delivers watch errors. Values are dropped when nobody reads them.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Run watches until ctx is done. It falls back to polling when notifications
// cannot be set up.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stopTimer()

	if !w.polling {
		fsw, err := fsnotify.NewWatcher()
		if err == nil {
			// The directory is watched so atomic replaces are seen.
			if err = fsw.Add(filepath.Dir(w.path)); err == nil {
				defer fsw.Close()
				return w.runNotify(ctx, fsw)
			}
			fsw.Close()
		}
	}
	return w.runPoll(ctx)
}

func (w *Watcher) runNotify(ctx context.Context, fsw *fsnotify.Watcher) error {
	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			switch {
			case ev.Has(fsnotify.Remove):
				w.report(ErrFileRemoved)
			case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create), ev.Has(fsnotify.Rename):
				w.trigger()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.report(err)
		}
	}
}

func (w *Watcher) runPoll(ctx context.Context) error {
	var lastMod time.Time
	var lastSize int64
	existed := false
	if info, err := os.Stat(w.path); err == nil {
		lastMod, lastSize, existed = info.ModTime(), info.Size(), true
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				if os.IsNotExist(err) {
					if existed {
						existed = false
						w.report(ErrFileRemoved)
					}
					continue
				}
				w.report(err)
				continue
			}
			if !existed || !info.ModTime().Equal(lastMod) || info.Size() != lastSize {
				lastMod, lastSize, existed = info.ModTime(), info.Size(), true
				w.trigger()
			}
		}
	}
}

// trigger (re)starts the debounce timer.
func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.changes <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Watcher) report(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
