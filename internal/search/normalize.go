package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases text and strips diacritics via NFD decomposition, so
// "página" and "pagina" compare equal. Pattern tables mix accented and
// unaccented entries; every comparison in this package happens on normalized
// text from both sides.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lowered)
	if err != nil {
		return lowered
	}
	return out
}

// Tokenize splits normalized text on whitespace and keeps tokens of length ≥3
// that are not purely numeric, deduplicated preserving first-seen order.
func Tokenize(normalized string) []string {
	parts := strings.Fields(normalized)
	seen := make(map[string]bool, len(parts))
	var out []string
	for _, p := range parts {
		if len(p) < 3 || isNumeric(p) {
			continue
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
