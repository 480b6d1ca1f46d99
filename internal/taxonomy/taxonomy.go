// Package taxonomy holds the versioned role→category→keyword configuration
// the matcher runs against. The taxonomy is defined once at process start
// and treated as read-only afterwards, so concurrent analyses share it
// without locking.
package taxonomy

import (
	"fmt"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// Version identifies the current taxonomy revision. Bump when keyword sets
// change so exported reports can be traced to the taxonomy that produced them.
const Version = "2024.2"

// Keywords are matched as case-insensitive substrings of normalized text.
// Phrases containing characters outside the normalizer allow-set (the "/"
// in "ci/cd") cannot match normalized text; they are kept for parity with
// the historical keyword lists.
var profiles = []types.RoleProfile{
	{
		Role: types.RoleManualTester,
		Categories: []types.KeywordCategory{
			{
				Name: "Testing Fundamentals",
				Keywords: []string{
					"test case", "test scenario", "test plan",
					"test execution", "manual testing",
				},
			},
			{
				Name: "Defect Management",
				Keywords: []string{
					"bug", "defect", "jira", "regression",
				},
			},
			{
				Name: "Process & Documentation",
				Keywords: []string{
					"exploratory", "test documentation", "qa process",
				},
			},
		},
	},
	{
		Role: types.RoleTestAutomation,
		Categories: []types.KeywordCategory{
			{
				Name: "Automation Frameworks",
				Keywords: []string{
					"selenium", "webdriver", "cypress", "pytest",
					"testng", "robot framework", "page object",
				},
			},
			{
				Name: "Programming & Design",
				Keywords: []string{
					"python", "java", "test script", "bdd", "tdd",
				},
			},
			{
				Name: "CI/CD & Build Tools",
				Keywords: []string{
					"jenkins", "ci/cd", "git", "docker", "maven",
					"gradle", "allure",
				},
			},
			{
				Name: "API Testing",
				Keywords: []string{
					"api testing", "postman", "rest", "automation",
				},
			},
		},
	},
	{
		Role: types.RoleFullStackAutomation,
		Categories: []types.KeywordCategory{
			{
				Name: "Frontend Automation",
				Keywords: []string{
					"frontend automation", "selenium", "cypress",
					"playwright", "javascript", "typescript",
				},
			},
			{
				Name: "Backend & API",
				Keywords: []string{
					"backend automation", "rest assured", "api automation",
					"microservices", "graphql", "java", "python",
				},
			},
			{
				Name: "Cloud & Infrastructure",
				Keywords: []string{
					"docker", "kubernetes", "aws", "azure", "ci/cd",
				},
			},
			{
				Name: "Performance & Data",
				Keywords: []string{
					"performance testing", "load testing", "jmeter",
					"gatling", "database testing",
				},
			},
		},
	},
}

// ProfileFor returns the keyword profile for a role. The returned profile
// is shared, read-only configuration; callers must not mutate it.
func ProfileFor(role types.Role) (*types.RoleProfile, error) {
	for i := range profiles {
		if profiles[i].Role == role {
			return &profiles[i], nil
		}
	}
	return nil, fmt.Errorf("no keyword profile for role %q", role)
}

// Profiles returns all role profiles in canonical role order.
func Profiles() []types.RoleProfile {
	return profiles
}

// Validate checks the structural invariants of the taxonomy: every role
// has at least one category, every category has at least one keyword, and
// keywords are unique within their category. It is run by tests and can be
// called at startup as a guard against bad edits.
func Validate() error {
	for _, p := range profiles {
		if len(p.Categories) == 0 {
			return fmt.Errorf("role %q has no categories", p.Role)
		}
		for _, c := range p.Categories {
			if c.Name == "" {
				return fmt.Errorf("role %q has an unnamed category", p.Role)
			}
			if len(c.Keywords) == 0 {
				return fmt.Errorf("role %q category %q has no keywords", p.Role, c.Name)
			}
			seen := make(map[string]bool, len(c.Keywords))
			for _, kw := range c.Keywords {
				if kw == "" {
					return fmt.Errorf("role %q category %q has an empty keyword", p.Role, c.Name)
				}
				if seen[kw] {
					return fmt.Errorf("role %q category %q has duplicate keyword %q", p.Role, c.Name, kw)
				}
				seen[kw] = true
			}
		}
	}
	return nil
}
