package ranking

import (
	"context"

	"github.com/jonathan/job-matcher/internal/types"
)

// Chain tries strategies in order until one produces a result list.
// Failures along the way are captured as StrategyErrors and returned
// alongside the winning results. If every strategy fails, the rule
// scorer runs over an empty profile so callers always receive a list
// built from static defaults. Context cancellation stops the chain
// immediately.
type Chain struct {
	Strategies []string
	Opts       Options
}

// NewChain builds a chain over the given strategies. With none given
// it tries tfidf first and falls back to rule.
func NewChain(strategies ...string) *Chain {
	if len(strategies) == 0 {
		strategies = []string{types.StrategyTFIDF, types.StrategyRule}
	}
	return &Chain{Strategies: strategies}
}

// Rank runs the chain. The returned StrategyError slice records every
// strategy that failed before a result was produced; it is empty when
// the first strategy succeeds.
func (c *Chain) Rank(ctx context.Context, jobs []types.JobPosting, profile *types.CandidateProfile) ([]types.MatchResult, []StrategyError, error) {
	var failures []StrategyError

	for _, strategy := range c.Strategies {
		opts := c.Opts
		opts.Strategy = strategy

		results, err := Rank(ctx, jobs, profile, opts)
		if err == nil {
			return results, failures, nil
		}
		if ctx.Err() != nil {
			return nil, failures, err
		}
		failures = append(failures, StrategyError{Strategy: strategy, Err: err})
	}

	// Static defaults: the rule scorer cannot fail, and an empty
	// profile scores every posting on its own merits only.
	opts := c.Opts
	opts.Strategy = types.StrategyRule
	results, err := Rank(ctx, jobs, &types.CandidateProfile{}, opts)
	return results, failures, err
}
