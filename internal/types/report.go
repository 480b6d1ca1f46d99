package types

import "time"

// CategoryResult holds the match outcome for one keyword category.
// Found and Missing partition the category's full keyword set and both
// preserve the taxonomy's declared keyword order.
type CategoryResult struct {
	Category string   `json:"category"`
	Found    []string `json:"found"`
	Missing  []string `json:"missing"`
	Count    int      `json:"count"`
	// Percentage is 100*Count/len(keywords), rounded to one decimal,
	// or 0 for an empty category.
	Percentage float64 `json:"percentage"`
}

// Total returns the size of the category's full keyword set.
func (r *CategoryResult) Total() int {
	return len(r.Found) + len(r.Missing)
}

// ScoreInfo holds the computed fitness score for one analysis.
type ScoreInfo struct {
	// Overall is the bonus-adjusted coverage percentage, always in [0, 100].
	Overall    float64            `json:"overall"`
	ByCategory map[string]float64 `json:"by_category"`
	// TotalKeywords and TotalFound are summed across all categories.
	TotalKeywords int `json:"total_keywords"`
	TotalFound    int `json:"total_found"`
	// Bonus is the additive tier reward: 0, 5, or 10.
	Bonus float64 `json:"bonus"`
}

// AnalysisReport is the complete output of one analysis invocation.
// A report is constructed once by the orchestrator and never mutated;
// it has no identity beyond the request that produced it.
type AnalysisReport struct {
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`

	// Matched holds one CategoryResult per taxonomy category, in the
	// taxonomy's declared category order.
	Matched   []CategoryResult `json:"matched"`
	ScoreInfo ScoreInfo        `json:"score_info"`

	ExperienceYears int `json:"experience_years"`
	WordCount       int `json:"word_count"`

	Recommendations []string `json:"recommendations"`

	// Ancillary signals surfaced for presentation only.
	ActionVerbs []string `json:"action_verbs,omitempty"`
	Metrics     []string `json:"metrics,omitempty"`

	// SimilarityScore is set only when a job description was supplied and
	// the similarity-blend strategy ran (0-100).
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
}

// CategoryResult returns the result for the named category and whether
// the category exists in this report.
func (r *AnalysisReport) CategoryResult(name string) (CategoryResult, bool) {
	for _, cr := range r.Matched {
		if cr.Category == name {
			return cr, true
		}
	}
	return CategoryResult{}, false
}

// ReportExport is the downstream-facing JSON shape consumed by report-file
// exporters. Field names are part of the external contract and must not
// change.
type ReportExport struct {
	Role            string             `json:"Role"`
	Score           float64            `json:"Score"`
	AnalysisDate    string             `json:"Analysis_Date"`
	TotalKeywords   int                `json:"Total_Keywords"`
	FoundKeywords   int                `json:"Found_Keywords"`
	ExperienceYears int                `json:"Experience_Years"`
	WordCount       int                `json:"Word_Count"`
	CategoryScores  map[string]float64 `json:"Category_Scores"`
	Recommendations []string           `json:"Recommendations"`
}

// Export converts the report into its external JSON contract shape.
func (r *AnalysisReport) Export() ReportExport {
	return ReportExport{
		Role:            r.Role.String(),
		Score:           r.ScoreInfo.Overall,
		AnalysisDate:    r.CreatedAt.Format("2006-01-02 15:04:05"),
		TotalKeywords:   r.ScoreInfo.TotalKeywords,
		FoundKeywords:   r.ScoreInfo.TotalFound,
		ExperienceYears: r.ExperienceYears,
		WordCount:       r.WordCount,
		CategoryScores:  r.ScoreInfo.ByCategory,
		Recommendations: r.Recommendations,
	}
}
