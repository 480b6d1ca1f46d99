// Package types defines the shared data structures exchanged between
// analysis components: role profiles, match results, scores, and reports.
package types

// KeywordCategory is a named, ordered group of keyword phrases within a
// role's taxonomy. Keyword order is significant: match results preserve it.
type KeywordCategory struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// RoleProfile maps a role to its ordered keyword categories. Profiles are
// built once at startup and never mutated afterwards, so they are safe to
// share across concurrent analyses without locking.
type RoleProfile struct {
	Role       Role              `json:"role"`
	Categories []KeywordCategory `json:"categories"`
}

// TotalKeywords returns the number of keywords across all categories.
func (p *RoleProfile) TotalKeywords() int {
	total := 0
	for _, c := range p.Categories {
		total += len(c.Keywords)
	}
	return total
}

// Category returns the named category and whether it exists.
func (p *RoleProfile) Category(name string) (KeywordCategory, bool) {
	for _, c := range p.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return KeywordCategory{}, false
}
