package ranking

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/types"
)

// Defaults applied by Rank when Options leaves them unset.
const (
	DefaultLimit        = 10
	DefaultMinRelevance = 20
	defaultParallelism  = 4
)

// Options tunes one ranking call.
type Options struct {
	// Strategy selects the scorer: types.StrategyRule (default) or
	// types.StrategyTFIDF. One call uses exactly one strategy.
	Strategy string

	// Limit caps the result list. 0 means DefaultLimit.
	Limit int

	// MinRelevance drops results whose match percentage falls below
	// it. nil means DefaultMinRelevance; 0 keeps everything.
	MinRelevance *int

	// Parallelism bounds concurrent job scoring. 0 means the default.
	Parallelism int

	// OnJobError receives per-job failures (invalid postings, scorer
	// errors). Those jobs are skipped; ranking continues. May be nil.
	OnJobError func(jobID string, err error)
}

func (o Options) limit() int {
	if o.Limit <= 0 {
		return DefaultLimit
	}
	return o.Limit
}

func (o Options) minRelevance() int {
	if o.MinRelevance == nil {
		return DefaultMinRelevance
	}
	return *o.MinRelevance
}

func (o Options) parallelism() int {
	if o.Parallelism <= 0 {
		return defaultParallelism
	}
	return o.Parallelism
}

func (o Options) reportJobError(jobID string, err error) {
	if o.OnJobError != nil {
		o.OnJobError(jobID, err)
	}
}

// Rank scores every posting against the profile with the selected
// strategy and returns the filtered, ordered, truncated result list.
// Input slices are never mutated. Individual job failures are skipped
// and reported through Options.OnJobError; only systemic failures
// (no profile, unknown strategy, cancellation) return an error. An
// empty job list yields an empty, non-nil result.
func Rank(ctx context.Context, jobs []types.JobPosting, profile *types.CandidateProfile, opts Options) ([]types.MatchResult, error) {
	if profile == nil {
		return nil, &InputError{Message: "candidate profile is required"}
	}
	if len(jobs) == 0 {
		return []types.MatchResult{}, nil
	}

	scorer, err := scorerFor(opts.Strategy, profile, jobs)
	if err != nil {
		return nil, err
	}

	// The parallel phase writes into per-job slots so output order
	// never depends on goroutine scheduling.
	results := make([]*types.MatchResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallelism())

	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			job := jobs[i]
			if err := job.Validate(); err != nil {
				opts.reportJobError(job.ID, &InputError{JobID: job.ID, Message: err.Error()})
				return nil
			}
			res, err := scorer.Score(gctx, &job, profile)
			if err != nil {
				opts.reportJobError(job.ID, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	minRel := opts.minRelevance()
	ranked := make([]types.MatchResult, 0, len(jobs))
	for i, res := range results {
		if res == nil || res.MatchPercentage < minRel {
			continue
		}
		r := *res
		r.PostedAt = jobs[i].PostedAt
		ranked = append(ranked, r)
	}

	// Score descending, then most recent posting, then ID, for a
	// total deterministic order.
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].MatchScore != ranked[b].MatchScore {
			return ranked[a].MatchScore > ranked[b].MatchScore
		}
		if !ranked[a].PostedAt.Equal(ranked[b].PostedAt) {
			return ranked[a].PostedAt.After(ranked[b].PostedAt)
		}
		return ranked[a].JobID < ranked[b].JobID
	})

	if limit := opts.limit(); len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// scorerFor builds the scorer for a strategy name. The empty string
// selects the rule scorer.
func scorerFor(strategy string, profile *types.CandidateProfile, jobs []types.JobPosting) (Scorer, error) {
	switch strategy {
	case "", types.StrategyRule:
		return RuleScorer{}, nil
	case types.StrategyTFIDF:
		return NewVectorScorer(profile, jobs), nil
	default:
		return nil, &StrategyError{Strategy: strategy, Err: &InputError{Message: "unknown strategy"}}
	}
}
