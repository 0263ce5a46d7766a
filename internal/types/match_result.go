//nolint:revive
package types

import "time"

// MatchLabel is the human-readable band for a match percentage.
type MatchLabel string

// Match labels from best to worst.
const (
	LabelPerfect   MatchLabel = "Perfect Match"
	LabelExcellent MatchLabel = "Excellent Match"
	LabelGood      MatchLabel = "Good Match"
	LabelFair      MatchLabel = "Fair Match"
	LabelPoor      MatchLabel = "Poor Match"
)

// LabelForPercentage maps a match percentage to its label. Lower
// bounds are inclusive: 90 is Perfect, 80 Excellent, 70 Good, 60 Fair.
func LabelForPercentage(pct int) MatchLabel {
	switch {
	case pct >= 90:
		return LabelPerfect
	case pct >= 80:
		return LabelExcellent
	case pct >= 70:
		return LabelGood
	case pct >= 60:
		return LabelFair
	default:
		return LabelPoor
	}
}

// MatchResult is the outcome of scoring one job posting against one
// candidate profile. MatchScore is in [0, 100]; MatchPercentage is the
// score rounded to the nearest integer.
type MatchResult struct {
	JobID           string     `json:"job_id"`
	JobTitle        string     `json:"job_title,omitempty"`
	Strategy        string     `json:"strategy"`
	MatchScore      float64    `json:"match_score"`
	MatchPercentage int        `json:"match_percentage"`
	MatchLabel      MatchLabel `json:"match_label"`
	SkillMatches    []string   `json:"skill_matches"`
	MissingSkills   []string   `json:"missing_skills"`
	PostedAt        time.Time  `json:"posted_at,omitempty"`
}
