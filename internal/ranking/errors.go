// Package ranking scores job postings against a candidate profile and
// produces ordered recommendation lists.
package ranking

import "fmt"

// InputError indicates a malformed scoring input, either a job posting
// missing required fields or an absent profile. Per-job input errors
// are isolated by Rank; only the profile-level case aborts a call.
type InputError struct {
	JobID   string
	Message string
}

func (e *InputError) Error() string {
	if e.JobID == "" {
		return fmt.Sprintf("invalid ranking input: %s", e.Message)
	}
	return fmt.Sprintf("invalid job %s: %s", e.JobID, e.Message)
}

// ComputeError indicates that a scorer produced an unusable value for
// one job. The job is skipped; the error is surfaced via OnJobError.
type ComputeError struct {
	JobID string
	Err   error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("scoring job %s: %v", e.JobID, e.Err)
}

func (e *ComputeError) Unwrap() error {
	return e.Err
}

// StrategyError records the failure of one strategy inside a fallback
// chain.
type StrategyError struct {
	Strategy string
	Err      error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("strategy %s failed: %v", e.Strategy, e.Err)
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}
