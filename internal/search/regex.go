package search

import (
	"regexp"
	"sync"
)

// RegexProvider provides regex-based search over the display name.
type RegexProvider struct {
	opts    Options
	cache   map[string]*regexp.Regexp
	cacheMu sync.RWMutex
}

// NewRegexProvider creates a new regex search provider.
func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{
		opts:  applyOptions(opts),
		cache: make(map[string]*regexp.Regexp),
	}
}

// Match returns true if the display name matches the regex pattern.
// If the query is not a valid regex, it returns false for every item.
func (p *RegexProvider) Match(nameHTML, query string) bool {
	if query == "" {
		return true
	}

	re, err := p.getRegex(query)
	if err != nil {
		return false
	}
	return re.MatchString(DisplayName(nameHTML))
}

// getRegex returns a compiled regex for the given pattern, using cache.
func (p *RegexProvider) getRegex(pattern string) (*regexp.Regexp, error) {
	p.cacheMu.RLock()
	re, ok := p.cache[pattern]
	p.cacheMu.RUnlock()

	if ok {
		return re, nil
	}

	// Compile with case-insensitive flag if configured
	var re2 *regexp.Regexp
	var err error
	if p.opts.CaseInsensitive {
		re2, err = regexp.Compile("(?i)" + pattern)
	} else {
		re2, err = regexp.Compile(pattern)
	}

	if err != nil {
		return nil, err
	}

	p.cacheMu.Lock()
	p.cache[pattern] = re2
	p.cacheMu.Unlock()

	return re2, nil
}

// Name returns the provider name.
func (p *RegexProvider) Name() string {
	return ModeRegex
}
