package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestVectorScorerRelativeOrder(t *testing.T) {
	profile := midProfile("accounting", "auditing", "payroll")
	jobs := []types.JobPosting{
		{
			ID: "job-accounts", Title: "Accounting Officer",
			Description: "accounting and payroll duties, auditing support",
		},
		{
			ID: "job-driver", Title: "Company Driver",
			Description: "driving company vehicles around town",
		},
	}

	scorer := NewVectorScorer(profile, jobs)

	accounts, err := scorer.Score(context.Background(), &jobs[0], profile)
	require.NoError(t, err)
	driver, err := scorer.Score(context.Background(), &jobs[1], profile)
	require.NoError(t, err)

	assert.Greater(t, accounts.MatchScore, driver.MatchScore)
	assert.GreaterOrEqual(t, driver.MatchScore, 0.0)
	assert.LessOrEqual(t, accounts.MatchScore, 100.0)
}

func TestVectorScorerEmptyProfile(t *testing.T) {
	profile := &types.CandidateProfile{}
	jobs := []types.JobPosting{{ID: "job-1", Title: "Analyst", Description: "data work"}}

	scorer := NewVectorScorer(profile, jobs)
	res, err := scorer.Score(context.Background(), &jobs[0], profile)
	require.NoError(t, err)

	// Zero profile vector fails closed to similarity 0.
	assert.Zero(t, res.MatchScore)
	assert.Equal(t, types.LabelPoor, res.MatchLabel)
}

func TestVectorScorerSkillBreakdown(t *testing.T) {
	profile := midProfile("python")
	jobs := []types.JobPosting{
		{ID: "job-1", Title: "Analyst", Skills: []string{"Python", "SQL"}},
	}

	scorer := NewVectorScorer(profile, jobs)
	res, err := scorer.Score(context.Background(), &jobs[0], profile)
	require.NoError(t, err)

	assert.Equal(t, []string{"python"}, res.SkillMatches)
	assert.Equal(t, []string{"sql"}, res.MissingSkills)
	assert.Equal(t, types.StrategyTFIDF, res.Strategy)
}

func TestVectorScorerIdenticalTexts(t *testing.T) {
	// A posting whose text matches the profile exactly approaches 100.
	profile := &types.CandidateProfile{
		Skills: types.SkillSet{Detected: []string{"nursing", "midwifery"}},
	}
	jobs := []types.JobPosting{
		{ID: "job-1", Title: "nursing midwifery"},
	}

	scorer := NewVectorScorer(profile, jobs)
	res, err := scorer.Score(context.Background(), &jobs[0], profile)
	require.NoError(t, err)
	assert.Greater(t, res.MatchScore, 90.0)
}
