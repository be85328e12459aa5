package stringutil

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// SafeFileName trims name and replaces each run of whitespace with "_".
// An empty result falls back to fallback.
func SafeFileName(name, fallback string) string {
	s := strings.TrimSpace(name)
	if s == "" {
		s = strings.TrimSpace(fallback)
	}
	s = whitespace.ReplaceAllString(s, "_")
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, s)
}
