package stringutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// FoldAccents strips combining marks, so "José Núñez" becomes "Jose Nunez".
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify converts a string to a file-name friendly slug.
// It folds accents, lowercases the input, replaces non-alphanumeric
// characters with hyphens, collapses consecutive hyphens, and trims
// leading/trailing hyphens.
func Slugify(name string) string {
	s := strings.ToLower(FoldAccents(name))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// NormalizeName reduces a person's name to lowercase ASCII words separated
// by single spaces. Punctuation, including hyphens and apostrophes, becomes
// a word break.
func NormalizeName(name string) string {
	s := strings.ToLower(FoldAccents(name))
	s = nonAlphanumeric.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
