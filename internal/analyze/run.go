// Package analyze orchestrates one résumé analysis: normalization,
// keyword matching, scoring, experience extraction, and recommendation
// generation, assembled into a single AnalysisReport.
package analyze

import (
	"context"
	"time"

	"github.com/jonathan/cv-analyzer/internal/experience"
	"github.com/jonathan/cv-analyzer/internal/matching"
	"github.com/jonathan/cv-analyzer/internal/parsing"
	"github.com/jonathan/cv-analyzer/internal/recommend"
	"github.com/jonathan/cv-analyzer/internal/scoring"
	"github.com/jonathan/cv-analyzer/internal/taxonomy"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// DefaultMinTextLength is the minimum number of raw characters required
// before an analysis is attempted.
const DefaultMinTextLength = 200

// State names the pipeline stages. An analysis either walks the full
// sequence to StateReported or stops at StateFailed; there are no retries
// and no partial reports.
type State string

// Pipeline states
const (
	StateIdle          State = "idle"
	StateTextExtracted State = "text_extracted"
	StateNormalized    State = "normalized"
	StateMatched       State = "matched"
	StateScored        State = "scored"
	StateReported      State = "reported"
	StateFailed        State = "failed"
)

// ProgressEvent reports a pipeline stage transition.
type ProgressEvent struct {
	State   State  `json:"state"`
	Message string `json:"message"`
}

// ProgressCallback receives pipeline progress events.
type ProgressCallback func(event ProgressEvent)

// Input is the request for one analysis.
type Input struct {
	// RawText is the extracted résumé text.
	RawText string
	Role    types.Role
	// JobDescription is optional; strategies that do not use it ignore it.
	JobDescription string
}

// Options configures one analysis run.
type Options struct {
	// MinTextLength overrides DefaultMinTextLength when positive.
	MinTextLength int
	// Strategy selects the scoring backend; nil means the keyword default.
	Strategy scoring.Strategy
	// OnProgress, when set, receives stage transitions.
	OnProgress ProgressCallback
}

func (o *Options) minLength() int {
	if o.MinTextLength > 0 {
		return o.MinTextLength
	}
	return DefaultMinTextLength
}

func (o *Options) strategy() scoring.Strategy {
	if o.Strategy != nil {
		return o.Strategy
	}
	return scoring.KeywordStrategy{}
}

func (o *Options) emit(state State, message string) {
	if o.OnProgress != nil {
		o.OnProgress(ProgressEvent{State: state, Message: message})
	}
}

// Run executes the full analysis pipeline once. It is side-effect-free:
// the returned report is owned exclusively by the caller and nothing is
// retained between invocations. The context is consulted only by
// strategies that do external work (the LLM backend); the core path has
// no suspension points.
//
// Text below the minimum length fails with InsufficientContentError and
// no report. Strategy failures surface as BackendFailureError; rerunning
// with the default strategy yields an independent keyword-only report.
func Run(ctx context.Context, in Input, opts Options) (*types.AnalysisReport, error) {
	opts.emit(StateIdle, "starting analysis")

	minLen := opts.minLength()
	if len(in.RawText) < minLen {
		opts.emit(StateFailed, "resume text too short")
		return nil, &InsufficientContentError{Length: len(in.RawText), MinLength: minLen}
	}

	opts.emit(StateTextExtracted, "text accepted")

	profile, err := taxonomy.ProfileFor(in.Role)
	if err != nil {
		opts.emit(StateFailed, "unknown role")
		return nil, err
	}

	normalized := parsing.NormalizeText(in.RawText)
	if len(normalized) < minLen {
		opts.emit(StateFailed, "normalized text too short")
		return nil, &InsufficientContentError{Length: len(normalized), MinLength: minLen}
	}
	opts.emit(StateNormalized, "text normalized")

	matched := matching.MatchCategories(normalized, profile)
	opts.emit(StateMatched, "keywords matched")

	info := scoring.Calculate(matched)

	strategy := opts.strategy()
	result, err := strategy.Score(ctx, scoring.Request{
		NormalizedText: normalized,
		JobDescription: in.JobDescription,
		Role:           in.Role,
		Base:           info,
	})
	if err != nil {
		opts.emit(StateFailed, "scoring backend failed")
		return nil, &BackendFailureError{Strategy: strategy.Name(), Cause: err}
	}
	info.Overall = result.Overall
	opts.emit(StateScored, "score computed")

	report := &types.AnalysisReport{
		Role:            in.Role,
		CreatedAt:       time.Now(),
		Matched:         matched,
		ScoreInfo:       info,
		ExperienceYears: experience.Years(normalized),
		WordCount:       parsing.WordCount(normalized),
		ActionVerbs:     matching.FindActionVerbs(in.RawText),
		Metrics:         matching.FindMetrics(in.RawText),
		SimilarityScore: result.Similarity,
	}
	report.Recommendations = recommend.Generate(in.Role, matched, info)

	opts.emit(StateReported, "report assembled")
	return report, nil
}
