package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dStroke maps the Vietnamese barred d, which has no Unicode decomposition.
var dStroke = runes.Map(func(r rune) rune {
	switch r {
	case 'đ':
		return 'd'
	case 'Đ':
		return 'D'
	}
	return r
})

// Normalize strips Vietnamese diacritics and lowercases text.
// "Xi măng Hà Tiên" -> "xi mang ha tien". Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	// transform.Chain keeps internal buffers, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), dStroke, norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		return strings.ToLower(text)
	}
	return out
}

// Tokenize normalizes text and splits it on anything that is not a letter or digit.
func Tokenize(text string) []string {
	return strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// CollapseSpaces normalizes text and joins its tokens with single spaces,
// dropping punctuation. Used for exact phrase comparisons.
func CollapseSpaces(text string) string {
	return strings.Join(Tokenize(text), " ")
}
