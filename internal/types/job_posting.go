//nolint:revive
package types

import (
	"strings"
	"time"
)

// JobLocation is a Sierra Leone posting location. Any field may be
// empty; String joins the non-empty parts for display and matching.
type JobLocation struct {
	Town     string `json:"town,omitempty"`
	District string `json:"district,omitempty"`
	Province string `json:"province,omitempty"`
}

// String returns the location as a single comma-joined string.
func (l JobLocation) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Town, l.District, l.Province} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}

// JobPosting is a single job advertisement as stored or supplied
// inline. Skills are the employer's declared requirements.
type JobPosting struct {
	ID          string      `json:"id" validate:"required"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	Level       string      `json:"level,omitempty"`
	Location    JobLocation `json:"location,omitempty"`
	Salary      float64     `json:"salary,omitempty" validate:"omitempty,min=0"`
	Category    string      `json:"category,omitempty"`
	WorkType    string      `json:"work_type,omitempty"`
	WorkSetup   string      `json:"work_setup,omitempty" validate:"omitempty,oneof=onsite remote hybrid"`
	PostedAt    time.Time   `json:"posted_at,omitempty"`
}

// Validate checks that the posting has the fields scoring depends on.
func (j *JobPosting) Validate() error {
	return validate.Struct(j)
}

// IsRemote reports whether the posting advertises remote work, either
// through the work setup field or the location text.
func (j *JobPosting) IsRemote() bool {
	if strings.EqualFold(j.WorkSetup, "remote") {
		return true
	}
	return strings.Contains(strings.ToLower(j.Location.String()), "remote")
}

// Text returns the free text of the posting for term-weighting:
// title, description, and declared skills joined with spaces.
func (j *JobPosting) Text() string {
	parts := make([]string, 0, 2+len(j.Skills))
	parts = append(parts, j.Title, j.Description)
	parts = append(parts, j.Skills...)
	return strings.Join(parts, " ")
}
