package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/cv-analyzer/internal/scoring"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// DefaultTextBudget caps how many characters of résumé text go into the
// prompt; the analysis quality plateaus well before typical résumé length.
const DefaultTextBudget = 6000

// AnalysisResult is the fixed-shape output of the LLM-delegated analyzer.
type AnalysisResult struct {
	ExtractedSkills []string `json:"extracted_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExperienceYears int      `json:"experience_years"`
	Recommendations []string `json:"recommendations"`
	RoleFitScore    float64  `json:"role_fit_score"`
}

// analysisResultSchema validates the response shape before decoding. A
// response that does not conform is a parse error surfaced verbatim to
// the caller; nothing is retried.
const analysisResultSchema = `{
	"type": "object",
	"required": ["extracted_skills", "missing_skills", "experience_years", "recommendations", "role_fit_score"],
	"properties": {
		"extracted_skills": {"type": "array", "items": {"type": "string"}},
		"missing_skills": {"type": "array", "items": {"type": "string"}},
		"experience_years": {"type": "integer", "minimum": 0},
		"recommendations": {"type": "array", "items": {"type": "string"}},
		"role_fit_score": {"type": "number", "minimum": 0, "maximum": 100}
	}
}`

// ParseError represents a malformed LLM response.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Analyzer delegates résumé analysis to an LLM backend.
type Analyzer struct {
	client Client
	// TextBudget caps prompt size; zero means DefaultTextBudget.
	TextBudget int
}

// NewAnalyzer creates an analyzer over the given client.
func NewAnalyzer(client Client) *Analyzer {
	return &Analyzer{client: client}
}

func (a *Analyzer) budget() int {
	if a.TextBudget > 0 {
		return a.TextBudget
	}
	return DefaultTextBudget
}

// BuildPrompt constructs the analysis prompt for the given role and
// normalized résumé text, truncated to the analyzer's character budget.
func (a *Analyzer) BuildPrompt(role types.Role, normalizedText string) string {
	text := Truncate(normalizedText, a.budget())

	var sb strings.Builder
	sb.WriteString("You are an applicant tracking system evaluating a resume for the role of ")
	sb.WriteString(role.String())
	sb.WriteString(".\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(`{
  "extracted_skills": ["string"],
  "missing_skills": ["string"],
  "experience_years": 0,
  "recommendations": ["string"],
  "role_fit_score": 0
}`)
	sb.WriteString("\n\nIMPORTANT:\n")
	sb.WriteString("- role_fit_score is a number from 0 to 100.\n")
	sb.WriteString("- experience_years is a non-negative integer.\n")
	sb.WriteString("- Base everything on the resume text alone; do not invent skills.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation.\n\n")
	sb.WriteString("Resume text:\n\"\"\"\n")
	sb.WriteString(text)
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// Analyze sends the résumé to the LLM and decodes its structured verdict.
// The context's deadline and cancellation apply to the backend call.
func (a *Analyzer) Analyze(ctx context.Context, role types.Role, normalizedText string) (*AnalysisResult, error) {
	raw, err := a.client.GenerateJSON(ctx, a.BuildPrompt(role, normalizedText), TierStandard)
	if err != nil {
		return nil, fmt.Errorf("llm analysis failed: %w", err)
	}
	return ParseAnalysisResult(raw)
}

// ParseAnalysisResult validates and decodes a raw LLM response into an
// AnalysisResult.
func ParseAnalysisResult(raw string) (*AnalysisResult, error) {
	cleaned := CleanJSONBlock(raw)

	validation, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(analysisResultSchema),
		gojsonschema.NewStringLoader(cleaned),
	)
	if err != nil {
		return nil, &ParseError{Message: "response is not valid JSON", Cause: err}
	}
	if !validation.Valid() {
		details := make([]string, 0, len(validation.Errors()))
		for _, e := range validation.Errors() {
			details = append(details, e.String())
		}
		return nil, &ParseError{Message: "response does not match expected shape: " + strings.Join(details, "; ")}
	}

	var result AnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, &ParseError{Message: "failed to decode response", Cause: err}
	}
	return &result, nil
}

// Truncate cuts s to at most budget bytes without splitting a UTF-8 rune.
func Truncate(s string, budget int) string {
	if budget <= 0 {
		return ""
	}
	if len(s) <= budget {
		return s
	}
	// Back up past any continuation bytes at the cut point.
	for budget > 0 && s[budget]&0xC0 == 0x80 {
		budget--
	}
	return s[:budget]
}

// Name returns the configuration name of the strategy.
func (a *Analyzer) Name() string { return scoring.StrategyLLM }

// Score implements scoring.Strategy by delegating to the LLM and using its
// role-fit verdict as the overall score. Errors (including malformed
// responses) surface to the caller; the keyword scoring path remains
// available as an independent fallback.
func (a *Analyzer) Score(ctx context.Context, req scoring.Request) (scoring.Result, error) {
	result, err := a.Analyze(ctx, req.Role, req.NormalizedText)
	if err != nil {
		return scoring.Result{}, err
	}
	overall := result.RoleFitScore
	if overall > 100 {
		overall = 100
	}
	if overall < 0 {
		overall = 0
	}
	return scoring.Result{Overall: overall}, nil
}
