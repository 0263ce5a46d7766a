// Package types defines the data structures exchanged between the
// analyzer, the ranking engine, and the HTTP/CLI surfaces.
//
//nolint:revive
package types

// ExperienceLevel is a seniority band derived from total years of
// professional experience.
type ExperienceLevel string

// Experience levels, ordered from least to most senior.
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// Rank returns the position of the level on the seniority ladder,
// starting at 0 for entry. Unknown levels rank as mid.
func (l ExperienceLevel) Rank() int {
	switch l {
	case LevelEntry:
		return 0
	case LevelJunior:
		return 1
	case LevelMid:
		return 2
	case LevelSenior:
		return 3
	case LevelExecutive:
		return 4
	default:
		return 2
	}
}

// LevelForYears maps total years of experience to a seniority band.
// Bands: <1 entry, 1-2 junior, 3-5 mid, 6-9 senior, 10+ executive.
func LevelForYears(years float64) ExperienceLevel {
	switch {
	case years < 1:
		return LevelEntry
	case years < 3:
		return LevelJunior
	case years < 6:
		return LevelMid
	case years < 10:
		return LevelSenior
	default:
		return LevelExecutive
	}
}

// SkillSet holds the skills detected in a resume, split by kind.
// Detected is always the union of Technical and Soft.
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Detected  []string `json:"detected"`
}

// Experience summarizes the professional history detected in a resume.
type Experience struct {
	TotalYears float64         `json:"total_years"`
	Level      ExperienceLevel `json:"level"`
	Titles     []string        `json:"titles,omitempty"`
}

// Education summarizes the academic history detected in a resume.
type Education struct {
	Degrees      []string `json:"degrees,omitempty"`
	Institutions []string `json:"institutions,omitempty"`
	Fields       []string `json:"fields,omitempty"`
}

// HasDegree reports whether at least one degree was detected.
func (e Education) HasDegree() bool {
	return len(e.Degrees) > 0
}

// CandidateProfile is the structured output of resume analysis and the
// candidate-side input to job scoring. All string fields are
// lower-cased by the analyzer so scorers can compare without folding.
type CandidateProfile struct {
	Skills         SkillSet   `json:"skills"`
	Experience     Experience `json:"experience"`
	Education      Education  `json:"education"`
	Languages      []string   `json:"languages,omitempty"`
	Certifications []string   `json:"certifications,omitempty"`
	Location       []string   `json:"location,omitempty"`
	Strengths      []string   `json:"strengths,omitempty"`
}

// DetectedSkillSet returns the detected skills as a lookup set.
func (p *CandidateProfile) DetectedSkillSet() map[string]bool {
	set := make(map[string]bool, len(p.Skills.Detected))
	for _, s := range p.Skills.Detected {
		set[s] = true
	}
	return set
}
