package matching

import (
	"strings"
	"testing"

	"github.com/jonathan/cv-analyzer/internal/parsing"
	"github.com/jonathan/cv-analyzer/internal/taxonomy"
	"github.com/jonathan/cv-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *types.RoleProfile {
	return &types.RoleProfile{
		Role: types.RoleManualTester,
		Categories: []types.KeywordCategory{
			{Name: "Tools", Keywords: []string{"jira", "postman", "selenium"}},
			{Name: "Process", Keywords: []string{"regression", "exploratory"}},
		},
	}
}

func TestMatchCategories_FoundAndMissingPartition(t *testing.T) {
	text := parsing.NormalizeText("Logged defects in Jira, ran regression suites with Selenium.")
	results := MatchCategories(text, testProfile())
	require.Len(t, results, 2)

	tools := results[0]
	assert.Equal(t, "Tools", tools.Category)
	assert.Equal(t, []string{"jira", "selenium"}, tools.Found)
	assert.Equal(t, []string{"postman"}, tools.Missing)
	assert.Equal(t, 2, tools.Count)
	assert.Equal(t, 3, tools.Total())

	process := results[1]
	assert.Equal(t, []string{"regression"}, process.Found)
	assert.Equal(t, []string{"exploratory"}, process.Missing)
}

func TestMatchCategories_OrderFollowsTaxonomyNotDiscovery(t *testing.T) {
	// "selenium" appears before "jira" in the text, but the taxonomy
	// order (jira, selenium) must win.
	text := parsing.NormalizeText("selenium first then jira")
	results := MatchCategories(text, testProfile())
	assert.Equal(t, []string{"jira", "selenium"}, results[0].Found)
}

func TestMatchCategories_SubstringContainment(t *testing.T) {
	// Containment is deliberate: "regression" inside a longer token matches.
	text := parsing.NormalizeText("antiregressionism")
	results := MatchCategories(text, testProfile())
	assert.Equal(t, []string{"regression"}, results[1].Found)
}

func TestMatchCategories_EmptyText(t *testing.T) {
	results := MatchCategories("", testProfile())
	require.Len(t, results, 2)
	for i, r := range results {
		assert.Empty(t, r.Found)
		assert.Len(t, r.Missing, len(testProfile().Categories[i].Keywords))
		assert.Equal(t, 0, r.Count)
	}
}

func TestMatchCategories_FullTaxonomyPartitionInvariant(t *testing.T) {
	text := parsing.NormalizeText("selenium python jenkins postman api testing with docker")
	for _, profile := range taxonomy.Profiles() {
		p := profile
		results := MatchCategories(text, &p)
		require.Len(t, results, len(p.Categories))
		for i, r := range results {
			declared := p.Categories[i].Keywords
			assert.Len(t, append(append([]string{}, r.Found...), r.Missing...), len(declared))
			// No keyword may be in both lists.
			for _, f := range r.Found {
				assert.NotContains(t, r.Missing, f)
			}
			// Recombining found+missing in declared order yields the declared set.
			union := make(map[string]bool)
			for _, kw := range r.Found {
				union[kw] = true
			}
			for _, kw := range r.Missing {
				union[kw] = true
			}
			for _, kw := range declared {
				assert.True(t, union[kw], "keyword %q lost", kw)
			}
		}
	}
}

func TestFindActionVerbs(t *testing.T) {
	text := "Designed and implemented test frameworks; improved coverage."
	verbs := FindActionVerbs(text)
	assert.Equal(t, []string{"designed", "implemented", "improved"}, verbs)
}

func TestFindActionVerbs_None(t *testing.T) {
	assert.Empty(t, FindActionVerbs("plain description with no impact words"))
}

func TestFindMetrics(t *testing.T) {
	text := "Cut run time by 30% and wrote 150 test cases across 4 sprints."
	metrics := FindMetrics(text)
	assert.Contains(t, metrics, "30%")
	assert.Contains(t, strings.Join(metrics, "|"), "150 test")
}

func TestFindMetrics_Deduplicates(t *testing.T) {
	metrics := FindMetrics("30% faster, then another 30% on top")
	count := 0
	for _, m := range metrics {
		if m == "30%" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
