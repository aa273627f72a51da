package search

import "strings"

// LastTokenProvider matches when the last word of the item name contains the
// query. This is how the report page itself searches.
type LastTokenProvider struct{}

// NewLastTokenProvider creates a new last-token search provider.
func NewLastTokenProvider() Provider {
	return LastTokenProvider{}
}

// Match returns true if the last token of the name contains query.
func (LastTokenProvider) Match(nameHTML, query string) bool {
	return strings.Contains(LastToken(nameHTML), query)
}

// Name returns the provider name.
func (LastTokenProvider) Name() string {
	return ModeLastToken
}
