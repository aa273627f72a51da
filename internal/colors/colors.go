// Package colors provides color output utilities.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// DebugEnv enables debug output when set to "true" or "1".
const DebugEnv = "LOBSTER_VIEW_DEBUG"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled bool
	quiet        bool
	mu           sync.RWMutex
	logger       Logger
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv(DebugEnv); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// DebugEnabled reports whether debug output is on.
func DebugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debugEnabled
}

// SetQuiet suppresses Info and Success output.
func SetQuiet(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. A nil writer restores the default.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelSuccess
	levelWarn
	levelError
)

func emit(lvl level, toStderr bool, format string, msgs []string) {
	msg := strings.Join(msgs, " ")

	mu.RLock()
	l, out, errOut, q := logger, stdout, stderr, quiet
	mu.RUnlock()

	if l != nil {
		switch lvl {
		case levelDebug:
			l.Debug(msg)
		case levelInfo:
			l.Info(msg)
		case levelSuccess:
			l.Info(msg, "type", "success")
		case levelWarn:
			l.Warn(msg)
		case levelError:
			l.Error(msg)
		}
	}

	w := out
	if toStderr {
		w = errOut
	} else if q {
		return
	}
	if _, err := fmt.Fprintf(w, format, msg); err != nil && lvl != levelError {
		// Last resort; never recurse into emit from here.
		fmt.Fprintf(os.Stderr, "Error: failed to print message: %v\n", err)
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	emit(levelError, true, Red+"Error:"+Reset+" %s"+Reset+"\n", msgs)
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	emit(levelSuccess, false, Green+checkmark+Reset+" %s"+Reset+"\n", msgs)
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	emit(levelWarn, true, Yellow+"Warning:"+Reset+" %s"+Reset+"\n", msgs)
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	emit(levelInfo, false, Blue+"%s"+Reset+"\n", msgs)
}

// LogInfo outputs a log informational message to stderr.
func LogInfo(msgs ...string) {
	emit(levelInfo, true, Blue+"%s"+Reset+"\n", msgs)
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	if !DebugEnabled() {
		return
	}
	emit(levelDebug, true, Cyan+"Debug:"+Reset+" %s"+Reset+"\n", msgs)
}
