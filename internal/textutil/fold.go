package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// Fold lowercases s, strips diacritics and collapses internal whitespace,
// so "  Marrón   o PARDO" and "marron o pardo" compare equal.
func Fold(s string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(folder.String(stripped)), " ")
}

// FirstWord returns the first whitespace-separated word of s, folded.
func FirstWord(s string) string {
	fields := strings.Fields(Fold(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
