package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/cv-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *types.AnalysisReport {
	return &types.AnalysisReport{
		Role: types.RoleManualTester,
		Matched: []types.CategoryResult{
			{Category: "Tools", Found: []string{"jira"}, Missing: []string{"postman"}, Count: 1, Percentage: 50},
		},
		ScoreInfo: types.ScoreInfo{
			Overall:       76,
			TotalKeywords: 2,
			TotalFound:    1,
			Bonus:         5,
		},
		ExperienceYears: 3,
		WordCount:       120,
		ActionVerbs:     []string{"tested", "documented"},
		Metrics:         []string{"30%"},
		Recommendations: []string{"Add more detail."},
	}
}

func TestVerdict_Bands(t *testing.T) {
	assert.Equal(t, "Major revision needed", Verdict(0))
	assert.Equal(t, "Major revision needed", Verdict(59.9))
	assert.Equal(t, "Needs improvement", Verdict(60))
	assert.Equal(t, "Needs improvement", Verdict(79.9))
	assert.Equal(t, "Strong ATS match", Verdict(80))
	assert.Equal(t, "Strong ATS match", Verdict(100))
}

func TestPrintReport_ContainsSections(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "ATS SCORE")
	assert.Contains(t, out, "CATEGORY BREAKDOWN")
	assert.Contains(t, out, "SIGNALS")
	assert.Contains(t, out, "RECOMMENDATIONS")
	assert.Contains(t, out, "76.0 / 100")
	assert.Contains(t, out, "Needs improvement")
	assert.Contains(t, out, "missing: postman")
}

func TestPrintReport_NilReportIsSafe(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScore_ShowsSimilarityWhenSet(t *testing.T) {
	report := sampleReport()
	sim := 64.0
	report.SimilarityScore = &sim

	var buf bytes.Buffer
	NewPrinter(&buf).PrintScore(report)
	assert.Contains(t, buf.String(), "64% similarity")
}
