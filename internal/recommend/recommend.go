// Package recommend turns score results into an ordered list of
// human-readable improvement suggestions.
package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
)

const (
	// lowCategoryThreshold triggers the combined weak-categories message.
	lowCategoryThreshold = 50.0
	// overallDetailThreshold triggers the generic add-detail message.
	overallDetailThreshold = 70.0
)

// Closing suggestions appended to every recommendation list.
var closingSuggestions = []string{
	"List relevant certifications and link your LinkedIn or GitHub profile.",
	"Quantify your results with numbers, such as coverage gained or defects prevented.",
}

// Generate builds the recommendation list for one analysis. The output is
// fully determined by its inputs: identical (role, matched, info) always
// produce the identical list, in the same order.
//
// Rule order: weak categories first (one combined message), then the
// role's fixed advice rules, then the generic detail nudge when the
// overall score is below 70, then the fixed closing suggestions.
func Generate(role types.Role, matched []types.CategoryResult, info types.ScoreInfo) []string {
	recs := make([]string, 0, 4+len(roleRules[role]))

	weak := make([]string, 0, len(matched))
	for _, cr := range matched {
		if cr.Percentage < lowCategoryThreshold {
			weak = append(weak, cr.Category)
		}
	}
	if len(weak) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Strengthen these categories with concrete keywords: %s. Weave the missing terms into your project and work descriptions.",
			strings.Join(weak, ", ")))
	}

	for _, rule := range roleRules[role] {
		cr, ok := findCategory(matched, rule.Category)
		if ok && cr.Percentage < rule.Threshold {
			recs = append(recs, rule.Message)
		}
	}

	if info.Overall < overallDetailThreshold {
		recs = append(recs, "Add more technical detail to your project and experience sections to lift your overall match.")
	}

	recs = append(recs, closingSuggestions...)
	return recs
}

func findCategory(matched []types.CategoryResult, name string) (types.CategoryResult, bool) {
	for _, cr := range matched {
		if cr.Category == name {
			return cr, true
		}
	}
	return types.CategoryResult{}, false
}
