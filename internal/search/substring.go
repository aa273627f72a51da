package search

import (
	"strings"
)

// SubstringProvider provides substring-based search.
// Matches if the full display name contains the query as a substring.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if the display name contains the query substring.
func (p *SubstringProvider) Match(nameHTML, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(p.opts.fold(DisplayName(nameHTML)), p.opts.fold(query))
}

// Name returns the provider name.
func (p *SubstringProvider) Name() string {
	return ModeSubstring
}
