package logging

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// redactor replaces the values of sensitive keys in log key-value pairs.
type redactor struct {
	words map[string]bool
}

func newRedactor() *redactor {
	words := map[string]bool{}
	for _, w := range []string{"secret", "password", "token", "auth", "credential"} {
		words[w] = true
	}
	return &redactor{words: words}
}

// redact returns a copy of pairs ([k1, v1, k2, v2, ...]) where every value
// whose key has a sensitive segment is replaced.
func (r *redactor) redact(pairs []any) []any {
	out := make([]any, len(pairs))
	copy(out, pairs)
	for i := 0; i+1 < len(out); i += 2 {
		if key, ok := out[i].(string); ok && r.sensitive(key) {
			out[i+1] = redacted
		}
	}
	return out
}

func (r *redactor) sensitive(key string) bool {
	for _, part := range nonAlphanumeric.Split(strings.ToLower(key), -1) {
		if r.words[part] {
			return true
		}
	}
	return false
}
