package textanalyzer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims and lowercases raw input, applies NFKD decomposition and
// drops every rune outside the 7-bit ASCII range. Combining marks produced by
// the decomposition go with it, so "café" becomes "cafe" and non-Latin
// scripts disappear entirely.
func Normalize(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))
	text = norm.NFKD.String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}

	// Compatibility decompositions can surface uppercase ASCII (U+210C -> "H")
	// or expose whitespace that was hidden behind a dropped rune.
	return strings.TrimSpace(strings.ToLower(b.String()))
}
