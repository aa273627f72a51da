// Package search provides the name matching used by report item search.
// It supports multiple strategies (last token, substring, token, regex)
// through a common Provider interface. The report's own behaviour is the
// last-token strategy, which is the default.
package search

import (
	"fmt"
	"html"
	"strings"

	"github.com/cristianoliveira/lobster-view/internal/errors"
)

// Provider names.
const (
	ModeLastToken = "lasttoken"
	ModeSubstring = "substring"
	ModeToken     = "token"
	ModeRegex     = "regex"
)

// IconSentinel is the closing tag of the icon rendered before every item name.
const IconSentinel = "</svg>"

// Provider defines the interface for search providers.
// Implementations receive the rendered content of an item's name label and
// the (already lower-cased) query.
type Provider interface {
	// Match returns true if the item name matches the search query.
	Match(nameHTML, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool // If true, names are compared lower-cased
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the provider registered under mode.
func New(mode string, opts ...Option) (Provider, error) {
	switch strings.ToLower(mode) {
	case ModeLastToken, "":
		return NewLastTokenProvider(), nil
	case ModeSubstring:
		return NewSubstringProvider(opts...), nil
	case ModeToken:
		return NewTokenProvider(opts...), nil
	case ModeRegex:
		return NewRegexProvider(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownSearchMode, mode)
	}
}

// Modes lists the supported provider names.
func Modes() []string {
	return []string{ModeLastToken, ModeSubstring, ModeToken, ModeRegex}
}

// afterIcon returns the part of content following the last icon sentinel.
func afterIcon(content string) string {
	if i := strings.LastIndex(content, IconSentinel); i >= 0 {
		return content[i+len(IconSentinel):]
	}
	return content
}

// LastToken derives the comparable name of an item: the rendered content is
// lower-cased, everything up to the last "</svg>" is dropped and the final
// whitespace-delimited word of the rest is returned.
//
// Only that word is ever compared, so "login" does not match an item named
// "Login Requirement".
func LastToken(nameHTML string) string {
	fields := strings.Fields(afterIcon(strings.ToLower(nameHTML)))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// DisplayName returns the full text following the icon, with entities
// decoded and surrounding whitespace removed.
func DisplayName(nameHTML string) string {
	return strings.TrimSpace(html.UnescapeString(afterIcon(nameHTML)))
}

func (o Options) fold(s string) string {
	if o.CaseInsensitive {
		return strings.ToLower(s)
	}
	return s
}
