package scoring

import (
	"context"

	"github.com/jonathan/cv-analyzer/internal/similarity"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// Strategy names selectable via configuration.
const (
	StrategyKeyword    = "keyword"
	StrategySimilarity = "similarity"
	StrategyLLM        = "llm"
)

// Request carries the per-analysis inputs a strategy may need. Base is the
// keyword score computed by Calculate; it is always available so strategies
// can blend with or fall back to it.
type Request struct {
	NormalizedText string
	JobDescription string
	Role           types.Role
	Base           types.ScoreInfo
}

// Result is a strategy's final verdict. Similarity is set only when a
// job-description similarity score contributed to Overall.
type Result struct {
	Overall    float64
	Similarity *float64
}

// Strategy computes the final overall score for an analysis. The keyword
// matcher, similarity blend, and LLM-delegated analyzer all sit behind
// this interface, selected by configuration.
type Strategy interface {
	Name() string
	Score(ctx context.Context, req Request) (Result, error)
}

// KeywordStrategy is the default: the bonus-adjusted taxonomy coverage
// score, unchanged.
type KeywordStrategy struct{}

// Name returns the configuration name of the strategy.
func (KeywordStrategy) Name() string { return StrategyKeyword }

// Score returns the base keyword score.
func (KeywordStrategy) Score(_ context.Context, req Request) (Result, error) {
	return Result{Overall: req.Base.Overall}, nil
}

// SimilarityBlendStrategy blends the keyword score with a TF-IDF cosine
// similarity between the résumé and the job description:
//
//	final = 0.6*base + 0.4*similarity
//
// Without a job description it degrades to the plain keyword score. The
// similarity computation itself fails soft to 0, so this strategy never
// returns an error.
type SimilarityBlendStrategy struct {
	BaseWeight       float64
	SimilarityWeight float64
}

// NewSimilarityBlendStrategy returns the strategy with the standard
// 0.6/0.4 blend weights.
func NewSimilarityBlendStrategy() *SimilarityBlendStrategy {
	return &SimilarityBlendStrategy{BaseWeight: 0.6, SimilarityWeight: 0.4}
}

// Name returns the configuration name of the strategy.
func (*SimilarityBlendStrategy) Name() string { return StrategySimilarity }

// Score blends the base score with job-description similarity.
func (s *SimilarityBlendStrategy) Score(_ context.Context, req Request) (Result, error) {
	if req.JobDescription == "" {
		return Result{Overall: req.Base.Overall}, nil
	}

	sim := similarity.Score(req.NormalizedText, req.JobDescription)
	blended := Round1(s.BaseWeight*req.Base.Overall + s.SimilarityWeight*sim)
	if blended > maxScore {
		blended = maxScore
	}
	return Result{Overall: blended, Similarity: &sim}, nil
}
