// Package matching tests taxonomy keywords against normalized résumé text
// and extracts ancillary signals (action verbs, quantified metrics).
package matching

import (
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// MatchCategories tests every keyword of every category in the profile for
// case-insensitive substring containment in normalizedText. The text must
// already be normalized (lowercase); keywords are lowercased here.
//
// Matching is a pure containment test with no word-boundary enforcement,
// so a keyword that is a substring of a longer word still counts. That
// behavior is intentional and relied on downstream.
//
// One CategoryResult is returned per category, in the profile's declared
// category order; Found and Missing preserve the declared keyword order.
// Percentages are filled in later by the score calculator.
func MatchCategories(normalizedText string, profile *types.RoleProfile) []types.CategoryResult {
	results := make([]types.CategoryResult, 0, len(profile.Categories))
	for _, cat := range profile.Categories {
		found := make([]string, 0, len(cat.Keywords))
		missing := make([]string, 0)
		for _, kw := range cat.Keywords {
			if strings.Contains(normalizedText, strings.ToLower(kw)) {
				found = append(found, kw)
			} else {
				missing = append(missing, kw)
			}
		}
		results = append(results, types.CategoryResult{
			Category: cat.Name,
			Found:    found,
			Missing:  missing,
			Count:    len(found),
		})
	}
	return results
}
