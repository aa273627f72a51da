package search

import (
	"strings"
)

// TokenProvider provides token-based search.
// The query is split into whitespace-separated tokens.
// Each token must be found in the display name (AND logic).
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if every query token is found in the display name.
func (p *TokenProvider) Match(nameHTML, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}

	name := p.opts.fold(DisplayName(nameHTML))
	for _, token := range tokens {
		if !strings.Contains(name, p.opts.fold(token)) {
			return false
		}
	}
	return true
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return ModeToken
}
