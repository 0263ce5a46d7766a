package ranking

import (
	"context"
	"strings"

	"github.com/jonathan/job-matcher/internal/textproc"
	"github.com/jonathan/job-matcher/internal/types"
)

// Scorer scores a single job posting against a candidate profile.
// Implementations must be safe for concurrent use within one ranking
// call and must not mutate their inputs.
type Scorer interface {
	Name() string
	Score(ctx context.Context, job *types.JobPosting, profile *types.CandidateProfile) (*types.MatchResult, error)
}

// stemKey reduces a possibly multi-word skill to a comparable key by
// stemming each word. "data analysis" and "Data Analyst" do not
// collide, but "databases" and "database" do.
func stemKey(skill string) string {
	words := strings.Fields(strings.ToLower(skill))
	for i, w := range words {
		words[i] = textproc.Stem(w)
	}
	return strings.Join(words, " ")
}

// matchSkills splits a job's declared skills into those the candidate
// has and those they lack. Matching is case-insensitive with stemming
// on both sides; declared skills are deduplicated, output order
// follows the posting.
func matchSkills(job *types.JobPosting, profile *types.CandidateProfile) (matches, missing []string) {
	detected := profile.DetectedSkillSet()
	stems := make(map[string]bool, len(detected))
	for s := range detected {
		stems[stemKey(s)] = true
	}

	matches = make([]string, 0, len(job.Skills))
	missing = make([]string, 0, len(job.Skills))
	seen := make(map[string]bool, len(job.Skills))

	for _, declared := range job.Skills {
		skill := strings.ToLower(strings.TrimSpace(declared))
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true

		if detected[skill] || stems[stemKey(skill)] {
			matches = append(matches, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matches, missing
}
