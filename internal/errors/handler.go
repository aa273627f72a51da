package errors

import (
	"sync"
	"time"

	"github.com/cristianoliveira/lobster-view/internal/colors"
)

// Handler reports user-facing messages. The CLI prints them, the TUI keeps
// them for its status line.
type Handler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console printer used by CLIHandler.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

type colorsOutput struct{}

func (colorsOutput) Error(msgs ...string)   { colors.Error(msgs...) }
func (colorsOutput) Warning(msgs ...string) { colors.Warning(msgs...) }
func (colorsOutput) Info(msgs ...string)    { colors.Info(msgs...) }
func (colorsOutput) Success(msgs ...string) { colors.Success(msgs...) }

// CLIHandler prints messages to the console.
type CLIHandler struct {
	out ColorOutput
}

// NewCLIHandler creates a handler printing through out.
func NewCLIHandler(out ColorOutput) *CLIHandler {
	return &CLIHandler{out: out}
}

// NewDefaultCLIHandler creates a handler printing through the colors package.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(colorsOutput{})
}

func (h *CLIHandler) Error(msg string)   { h.out.Error(msg) }
func (h *CLIHandler) Warning(msg string) { h.out.Warning(msg) }
func (h *CLIHandler) Info(msg string)    { h.out.Info(msg) }
func (h *CLIHandler) Success(msg string) { h.out.Success(msg) }

// MessageType is the severity of a Message.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// Message is one entry kept by TUIHandler.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// maxMessages bounds the TUIHandler history.
const maxMessages = 50

// TUIHandler stores messages for display in the TUI.
type TUIHandler struct {
	mu       sync.RWMutex
	messages []Message
	onAdd    func(msg Message)
	now      func() time.Time
}

// NewTUIHandler creates a handler. onAdd, when set, is called for every
// message while the handler lock is held.
func NewTUIHandler(onAdd func(msg Message)) *TUIHandler {
	return &TUIHandler{onAdd: onAdd, now: time.Now}
}

func (h *TUIHandler) Error(msg string)   { h.add(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.add(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.add(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.add(msg, MessageTypeSuccess) }

func (h *TUIHandler) add(msg string, t MessageType) {
	h.mu.Lock()
	defer h.mu.Unlock()

	m := Message{Text: msg, Type: t, Timestamp: h.now()}
	h.messages = append(h.messages, m)
	if len(h.messages) > maxMessages {
		h.messages = h.messages[len(h.messages)-maxMessages:]
	}
	if h.onAdd != nil {
		h.onAdd(m)
	}
}

// Latest returns the most recent message.
func (h *TUIHandler) Latest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// All returns a copy of the kept messages, oldest first.
func (h *TUIHandler) All() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Clear drops every message.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}
