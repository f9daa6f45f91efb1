/*
Package casefold classifies words by case (all-caps, title-case) and converts
between them, and provides the NFD canonicalization every trie key and
matcher pattern in this module is built from.

Case classification and re-casing are locale-independent: they use
unicode.Is* category checks plus golang.org/x/text/cases with language.Und,
never a specific language's collation rules. Non-letter runes (digits,
punctuation, combining marks) never falsify a classification; only letters
with an explicit case are considered.

Use Cases:
  - Dictionary.Check tries the all-caps and title-case fallbacks described
    by the spec before giving up on a candidate.
  - Dictionary.Suggest re-cases results to match the caller's input casing.
*/
package casefold

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	titleCaser = cases.Title(language.Und)
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// Canonicalize validates that word is well-formed UTF-8 and returns its
// Unicode NFD (canonical decomposition) form. All trie keys and matcher
// input are derived from this function so that byte-level comparison and
// edit-distance computation always operate on code points, not raw bytes.
//
// Complexity: O(len(word)).
func Canonicalize(word string) (string, bool) {
	if !utf8.ValidString(word) {
		return "", false
	}
	return norm.NFD.String(word), true
}

// IsAllCaps reports whether word contains at least one uppercase letter and
// no lowercase or title-case letter. Letters in other case-neutral
// categories (digits, punctuation, combining marks) do not affect the
// result either way.
//
// Complexity: O(len(word)).
func IsAllCaps(word string) bool {
	sawUpper := false
	for _, r := range word {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			sawUpper = true
		}
	}
	return sawUpper
}

// IsTitleCase reports whether word's first rune is uppercase or title-case
// and already in title form, and every subsequent rune is neither uppercase
// nor title-case.
//
// Complexity: O(len(word)).
func IsTitleCase(word string) bool {
	if word == "" {
		return false
	}
	first, size := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(first) && !unicode.IsTitle(first) {
		return false
	}
	if string(first) != titleCaser.String(string(first)) {
		return false
	}
	for _, r := range word[size:] {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
	}
	return true
}

// ToTitle returns the title-case of word's first rune concatenated with the
// lowercased remainder of word.
//
// Complexity: O(len(word)).
func ToTitle(word string) string {
	if word == "" {
		return word
	}
	first, size := utf8.DecodeRuneInString(word)
	return titleCaser.String(string(first)) + lowerCaser.String(word[size:])
}

// ToUpper upper-cases word using locale-independent Unicode folding.
//
// Complexity: O(len(word)).
func ToUpper(word string) string {
	return upperCaser.String(word)
}

// ToLower lower-cases word using locale-independent Unicode folding.
//
// Complexity: O(len(word)).
func ToLower(word string) string {
	return lowerCaser.String(word)
}
