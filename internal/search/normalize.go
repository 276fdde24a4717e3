package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and drops the combining marks,
// so "Bánh Mì" folds to "Banh Mi".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes text for comparison: lowercase, diacritics removed,
// "đ" mapped to "d" (NFD does not decompose it), surrounding whitespace
// trimmed. Never fails and is idempotent.
func Normalize(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = strings.ReplaceAll(folded, "đ", "d")
	return strings.TrimSpace(folded)
}

// NormalizeStrict additionally collapses every non-alphanumeric rune to a
// space and squeezes repeated whitespace. Used for search queries.
func NormalizeStrict(s string) string {
	folded := Normalize(s)
	folded = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, folded)
	return strings.Join(strings.Fields(folded), " ")
}
