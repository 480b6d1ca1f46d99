// Package parsing provides text normalization for extracted résumé content.
package parsing

import (
	"strings"
	"unicode"
)

// DefaultAllowedPunct is the punctuation kept during normalization, chosen
// so that technology names like "c++", "c#", ".net" and "node.js" survive.
const DefaultAllowedPunct = "-+#."

// Normalizer cleans raw extracted text into a canonical lowercase form:
// everything outside the allow-set (letters, digits, space, AllowedPunct)
// becomes a space, whitespace runs collapse to a single space, and the
// result is trimmed. Normalization is deterministic and idempotent.
type Normalizer struct {
	// AllowedPunct lists punctuation runes preserved as-is.
	AllowedPunct string
}

// NewNormalizer returns a Normalizer with the default allow-set.
func NewNormalizer() *Normalizer {
	return &Normalizer{AllowedPunct: DefaultAllowedPunct}
}

// Normalize returns the canonical form of text. It never fails, including
// for the empty string.
func (n *Normalizer) Normalize(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if n.allowed(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	// Fields both collapses interior whitespace and trims the ends.
	return strings.Join(strings.Fields(b.String()), " ")
}

func (n *Normalizer) allowed(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	if r == ' ' {
		return true
	}
	return strings.ContainsRune(n.AllowedPunct, r)
}

// NormalizeText normalizes text with the default allow-set.
func NormalizeText(text string) string {
	return NewNormalizer().Normalize(text)
}

// WordCount returns the number of whitespace-delimited tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
