package viewstate

import "strings"

// HasClass reports whether the whitespace separated class list contains token.
func HasClass(class, token string) bool {
	for _, c := range strings.Fields(class) {
		if c == token {
			return true
		}
	}
	return false
}

// AddClass appends token to the class list unless already present.
func AddClass(class, token string) string {
	if HasClass(class, token) {
		return class
	}
	fields := append(strings.Fields(class), token)
	return strings.Join(fields, " ")
}

// RemoveClass drops every occurrence of token from the class list.
func RemoveClass(class, token string) string {
	fields := strings.Fields(class)
	kept := fields[:0]
	for _, c := range fields {
		if c != token {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, " ")
}

// StyleDisplay returns the value of the last display declaration in an
// inline style, lower-cased. It returns "" when there is none.
func StyleDisplay(style string) string {
	display := ""
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), "display") {
			display = strings.ToLower(strings.TrimSpace(value))
		}
	}
	return display
}

// SetStyleDisplay rewrites the display declaration of an inline style,
// keeping every other declaration in place. An empty display removes it.
func SetStyleDisplay(style, display string) string {
	var decls []string
	replaced := false
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, _, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(name), "display") {
			if display != "" && !replaced {
				decls = append(decls, "display: "+display)
			}
			replaced = true
			continue
		}
		decls = append(decls, decl)
	}
	if !replaced && display != "" {
		decls = append([]string{"display: " + display}, decls...)
	}
	if len(decls) == 0 {
		return ""
	}
	return strings.Join(decls, "; ") + ";"
}
