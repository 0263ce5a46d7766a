package ranking

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/job-matcher/internal/analyzer"
	"github.com/jonathan/job-matcher/internal/types"
)

// Component weights of the rule-based score. They sum to 100; the
// composite is still clamped in case future components overlap.
const (
	skillsWeight    = 40.0
	locationWeight  = 20.0
	educationWeight = 15.0

	experienceExact      = 25.0
	experienceAdjacent   = 15.0
	experienceOverQual   = 20.0
	locationRemoteCredit = 15.0
)

// RuleScorer is the deterministic component scorer: skills 40,
// experience 25, location 20, education 15.
type RuleScorer struct{}

// Name returns the strategy identifier.
func (RuleScorer) Name() string { return types.StrategyRule }

// Score computes the composite rule score for one posting. It never
// fails; a posting with no scorable fields simply scores 0.
func (RuleScorer) Score(_ context.Context, job *types.JobPosting, profile *types.CandidateProfile) (*types.MatchResult, error) {
	matches, missing := matchSkills(job, profile)

	score := skillScore(job, matches) +
		experienceScore(job, profile) +
		locationScore(job) +
		educationScore(profile)
	score = math.Min(score, 100)

	pct := int(math.Round(score))
	return &types.MatchResult{
		JobID:           job.ID,
		JobTitle:        job.Title,
		Strategy:        types.StrategyRule,
		MatchScore:      score,
		MatchPercentage: pct,
		MatchLabel:      types.LabelForPercentage(pct),
		SkillMatches:    matches,
		MissingSkills:   missing,
	}, nil
}

// skillScore splits the skills weight evenly across the posting's
// declared skills. A posting declaring none contributes 0, never a
// division by zero.
func skillScore(job *types.JobPosting, matches []string) float64 {
	declared := declaredSkillCount(job)
	if declared == 0 {
		return 0
	}
	return skillsWeight * float64(len(matches)) / float64(declared)
}

// declaredSkillCount counts distinct non-blank declared skills, the
// same set matchSkills partitions.
func declaredSkillCount(job *types.JobPosting) int {
	seen := make(map[string]bool, len(job.Skills))
	for _, s := range job.Skills {
		skill := strings.ToLower(strings.TrimSpace(s))
		if skill != "" {
			seen[skill] = true
		}
	}
	return len(seen)
}

// experienceScore compares seniority bands. Exact match earns full
// credit, one band away partial credit, overqualified beyond that a
// reduced credit, underqualified beyond that nothing.
func experienceScore(job *types.JobPosting, profile *types.CandidateProfile) float64 {
	jobLevel := parseJobLevel(job.Level)
	distance := profile.Experience.Level.Rank() - jobLevel.Rank()

	switch {
	case distance == 0:
		return experienceExact
	case distance == 1 || distance == -1:
		return experienceAdjacent
	case distance >= 2:
		return experienceOverQual
	default:
		return 0
	}
}

// parseJobLevel maps the free-text level of a posting onto the
// seniority ladder. Unrecognized or missing levels read as mid, the
// middle of the ladder.
func parseJobLevel(level string) types.ExperienceLevel {
	l := strings.ToLower(strings.TrimSpace(level))
	switch {
	case strings.Contains(l, "entry") || strings.Contains(l, "graduate") || strings.Contains(l, "intern"):
		return types.LevelEntry
	case strings.Contains(l, "junior"):
		return types.LevelJunior
	case strings.Contains(l, "senior") || strings.Contains(l, "lead") || strings.Contains(l, "principal"):
		return types.LevelSenior
	case strings.Contains(l, "executive") || strings.Contains(l, "director") || strings.Contains(l, "chief") || strings.Contains(l, "head"):
		return types.LevelExecutive
	default:
		return types.LevelMid
	}
}

// locationScore gives full credit when the posting sits in a
// recognized employment hub, partial credit for remote postings. The
// credit does not depend on the candidate's own location.
func locationScore(job *types.JobPosting) float64 {
	if analyzer.IsLocationHub(job.Location.String()) {
		return locationWeight
	}
	if job.IsRemote() {
		return locationRemoteCredit
	}
	return 0
}

// educationScore is a flat credit for holding any degree.
func educationScore(profile *types.CandidateProfile) float64 {
	if profile.Education.HasDegree() {
		return educationWeight
	}
	return 0
}
