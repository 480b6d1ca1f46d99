package matching

import (
	"regexp"
	"strings"
)

// actionVerbs are impact verbs commonly screened for by recruiters.
var actionVerbs = []string{
	"developed", "designed", "implemented", "created", "led", "managed",
	"executed", "improved", "analyzed", "optimized", "tested", "automated",
	"collaborated", "integrated", "supported", "documented",
}

// metricPattern finds quantified results ("30%", "100+ test cases",
// "2 hours"). It runs against raw text because normalization strips "%".
var metricPattern = regexp.MustCompile(
	`\d+(\.\d+)?\s?(%|percent|users|cases|bugs|issues|coverage|time|minutes|hours|days|saniye|dk|test|project|release|sprint)`)

// FindActionVerbs returns the action verbs present in text as substrings,
// in the fixed list order. Matching is case-insensitive.
func FindActionVerbs(text string) []string {
	lowered := strings.ToLower(text)
	found := make([]string, 0)
	for _, v := range actionVerbs {
		if strings.Contains(lowered, v) {
			found = append(found, v)
		}
	}
	return found
}

// FindMetrics returns the quantified-result phrases present in text,
// deduplicated, in first-occurrence order.
func FindMetrics(text string) []string {
	matches := metricPattern.FindAllString(strings.ToLower(text), -1)
	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
