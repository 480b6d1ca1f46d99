// Package experience derives a years-of-experience figure from résumé text
// using a small set of heuristic patterns.
package experience

import (
	"regexp"
	"strconv"
)

// yearPatterns are tried in order against normalized, lowercased text.
// Each may yield multiple numbers; all hits are pooled and the maximum
// wins. "yıl" covers Turkish-language résumés.
//
// The "experience" pattern deliberately allows an unbounded lazy gap to
// the next number, so it can pick up an unrelated figure that merely
// follows the word later in the text. Known looseness, kept for parity
// with the historical behavior.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*\+?\s*(?:years?|yıl)`),
	regexp.MustCompile(`(\d+)\s*(?:yr|y)s?\b`),
	regexp.MustCompile(`experience.*?(\d+)`),
	regexp.MustCompile(`(\d+)\s*(?:years|yıl)\s*(?:of\s*)?experience`),
}

// Years returns the largest number of years matched by any pattern, or 0
// when nothing matches. The input should already be normalized lowercase
// text.
func Years(normalizedText string) int {
	maxYears := 0
	for _, pattern := range yearPatterns {
		for _, m := range pattern.FindAllStringSubmatch(normalizedText, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if n > maxYears {
				maxYears = n
			}
		}
	}
	return maxYears
}
