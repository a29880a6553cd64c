// Package textnorm provides case and diacritic folding for matching free-text
// labels. This is part of the platform layer and contains no business logic.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var germanUmlauts = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// Lower lowercases s and composes combining marks, so "ü" and "ü" compare equal.
func Lower(s string) string {
	return norm.NFC.String(strings.ToLower(s))
}

// StripAccents lowercases s and removes all combining marks ("Eigentümer" -> "eigentumer").
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return result
}

// Transliterate lowercases s and spells German umlauts out ("Eigentümer" -> "eigentuemer").
// Remaining accents are stripped.
func Transliterate(s string) string {
	return StripAccents(germanUmlauts.Replace(Lower(s)))
}

// ContainsFolded reports whether label contains token under any of the supported
// spellings: literal lowercase, transliterated umlauts, or stripped accents.
func ContainsFolded(label, token string) bool {
	lower := Lower(label)
	if strings.Contains(lower, Lower(token)) {
		return true
	}
	if strings.Contains(Transliterate(lower), Transliterate(token)) {
		return true
	}
	return strings.Contains(StripAccents(lower), StripAccents(token))
}
