package ranking

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/job-matcher/internal/textproc"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/jonathan/job-matcher/internal/vectorizer"
)

// VectorScorer scores postings by TF-IDF cosine similarity between
// the candidate's profile text and each posting's text. Its
// vocabulary is fixed over one ranking call: build a fresh scorer per
// call with NewVectorScorer.
type VectorScorer struct {
	vec        *vectorizer.Vectorizer
	profileVec []float64
}

// NewVectorScorer builds the shared vocabulary from the profile text
// plus every posting in the batch, then pre-computes the profile
// vector.
func NewVectorScorer(profile *types.CandidateProfile, jobs []types.JobPosting) *VectorScorer {
	profileDoc := textproc.Normalize(profileText(profile))

	corpus := make([][]string, 0, len(jobs)+1)
	corpus = append(corpus, profileDoc)
	for i := range jobs {
		corpus = append(corpus, textproc.Normalize(jobs[i].Text()))
	}

	vec := vectorizer.New(corpus)
	return &VectorScorer{
		vec:        vec,
		profileVec: vec.Vector(profileDoc),
	}
}

// Name returns the strategy identifier.
func (*VectorScorer) Name() string { return types.StrategyTFIDF }

// Score computes the similarity percentage for one posting. The skill
// breakdown uses the same matching rules as the rule scorer so both
// strategies explain themselves the same way.
func (s *VectorScorer) Score(_ context.Context, job *types.JobPosting, profile *types.CandidateProfile) (*types.MatchResult, error) {
	jobVec := s.vec.Vector(textproc.Normalize(job.Text()))
	score := vectorizer.SimilarityPercent(s.profileVec, jobVec)
	if math.IsNaN(score) || score < 0 || score > 100 {
		return nil, &ComputeError{JobID: job.ID, Err: fmt.Errorf("similarity out of range: %v", score)}
	}

	matches, missing := matchSkills(job, profile)
	pct := int(math.Round(score))
	return &types.MatchResult{
		JobID:           job.ID,
		JobTitle:        job.Title,
		Strategy:        types.StrategyTFIDF,
		MatchScore:      score,
		MatchPercentage: pct,
		MatchLabel:      types.LabelForPercentage(pct),
		SkillMatches:    matches,
		MissingSkills:   missing,
	}, nil
}

// profileText flattens a profile into the free text the vector
// strategy embeds: skills, titles, education, certifications,
// languages, and locations.
func profileText(profile *types.CandidateProfile) string {
	parts := make([]string, 0, 32)
	parts = append(parts, profile.Skills.Detected...)
	parts = append(parts, profile.Experience.Titles...)
	parts = append(parts, profile.Education.Degrees...)
	parts = append(parts, profile.Education.Fields...)
	parts = append(parts, profile.Certifications...)
	parts = append(parts, profile.Languages...)
	parts = append(parts, profile.Location...)
	return strings.Join(parts, " ")
}
