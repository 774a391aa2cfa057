package metadata

import (
	"context"

	"imd/internal/logger"
)

const defaultTopMatches = 5

// Result is the outcome of fixing one record.
type Result struct {
	Original Record
	Final    Record
	Best     Scored
	Top      []Scored
}

// Fixer orchestrates metadata fixing: searches the provider for candidates,
// scores and ranks them, and merges the best match into the original.
type Fixer struct {
	provider Provider
	scorer   Scorer
	topN     int
	logger   *logger.Logger
}

// NewFixer creates a Fixer. If topN is 0 or negative, the default (5) is used.
func NewFixer(p Provider, s Scorer, topN int, log *logger.Logger) *Fixer {
	if topN <= 0 {
		topN = defaultTopMatches
	}
	return &Fixer{
		provider: p,
		scorer:   s,
		topN:     topN,
		logger:   log,
	}
}

// Fix finds the best catalog match for original and returns the merged record.
// It has no side effects besides the search and logging.
func (f *Fixer) Fix(ctx context.Context, original Record) (Result, error) {
	candidates, err := Retrieve(ctx, f.provider, original, f.logger)
	if err != nil {
		return Result{}, err
	}

	ranking, err := Select(original, candidates, f.scorer)
	if err != nil {
		return Result{}, err
	}

	top := ranking.Top(f.topN)
	for i, s := range top {
		f.logger.Debug("  #%d score %.3f: %s", i+1, s.Score, s.Record)
	}
	f.logger.Debug("Best match: %s (score: %.3f)", ranking.Best.Record, ranking.Best.Score)

	return Result{
		Original: original,
		Final:    Merge(original, ranking.Best.Record),
		Best:     ranking.Best,
		Top:      top,
	}, nil
}
