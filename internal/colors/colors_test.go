package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(nil, nil) })
	return &out, &errOut
}

type recordingLogger struct {
	entries []string
}

func (r *recordingLogger) Debug(msg string, _ ...any) { r.entries = append(r.entries, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.entries = append(r.entries, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.entries = append(r.entries, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.entries = append(r.entries, "error:"+msg) }

func TestOutputStreams(t *testing.T) {
	tests := []struct {
		name      string
		print     func(...string)
		onStderr  bool
		substring string
		color     string
	}{
		{"error", Error, true, "Error:", Red},
		{"warning", Warning, true, "Warning:", Yellow},
		{"success", Success, false, checkmark, Green},
		{"info", Info, false, "", Blue},
		{"log info", LogInfo, true, "", Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := capture(t)
			tt.print("report", "loaded")

			got, other := out.String(), errOut.String()
			if tt.onStderr {
				got, other = other, got
			}
			assert.Empty(t, other)
			assert.Contains(t, got, "report loaded")
			assert.Contains(t, got, tt.substring)
			assert.Contains(t, got, tt.color)
		})
	}
}

func TestDebugGating(t *testing.T) {
	_, errOut := capture(t)

	SetDebug(false)
	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	defer SetDebug(false)
	Debug("shown")
	assert.Contains(t, errOut.String(), "Debug:")
	assert.Contains(t, errOut.String(), "shown")
	assert.Contains(t, errOut.String(), Cyan)
}

func TestQuietSuppressesStdout(t *testing.T) {
	out, errOut := capture(t)
	SetQuiet(true)
	defer SetQuiet(false)

	Info("nothing")
	Success("nothing")
	Warning("still shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "still shown")
}

func TestLoggerMirror(t *testing.T) {
	capture(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	Info("a")
	Warning("b")
	Error("c")
	Success("d")

	assert.Equal(t, []string{"info:a", "warn:b", "error:c", "info:d"}, rec.entries)
}
