//nolint:revive
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Hints are optional cues supplied alongside raw resume text. They
// never override what the analyzer finds in the text itself; Location
// is used only when the text contains no recognizable location.
type Hints struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Location string `json:"location,omitempty"`
}

// AnalyzeRequest asks for a resume to be turned into a profile.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	Hints      Hints  `json:"hints,omitempty"`
}

// Validate checks the request fields.
func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}

// Ranking strategies accepted by RecommendRequest and the CLI.
const (
	StrategyRule  = "rule"
	StrategyTFIDF = "tfidf"
)

// RecommendRequest asks for ranked job recommendations. Exactly one of
// Profile or ResumeText must be set; Jobs may be supplied inline,
// otherwise the server loads visible postings from the store.
type RecommendRequest struct {
	Profile      *CandidateProfile `json:"profile,omitempty"`
	ResumeText   string            `json:"resume_text,omitempty"`
	Jobs         []JobPosting      `json:"jobs,omitempty"`
	Limit        int               `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	MinRelevance *int              `json:"min_relevance,omitempty" validate:"omitempty,min=0,max=100"`
	Strategy     string            `json:"strategy,omitempty" validate:"omitempty,oneof=rule tfidf"`
}

// Validate checks field constraints and the profile/resume exclusivity.
func (r *RecommendRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	hasProfile := r.Profile != nil
	hasResume := strings.TrimSpace(r.ResumeText) != ""
	if !hasProfile && !hasResume {
		return fmt.Errorf("either profile or resume_text is required")
	}
	if hasProfile && hasResume {
		return fmt.Errorf("profile and resume_text are mutually exclusive")
	}
	return nil
}
