package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestPrintCandidateProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCandidateProfile(&types.CandidateProfile{
		Skills: types.SkillSet{
			Technical: []string{"python", "sql"},
			Soft:      []string{"communication"},
		},
		Experience:     types.Experience{TotalYears: 4, Level: types.LevelMid},
		Education:      types.Education{Degrees: []string{"bsc"}},
		Certifications: []string{"acca"},
		Location:       []string{"freetown"},
	})

	out := buf.String()
	assert.Contains(t, out, "CANDIDATE PROFILE")
	assert.Contains(t, out, "4.0 years (mid)")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "communication")
	assert.Contains(t, out, "freetown")
}

func TestPrintCandidateProfileNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCandidateProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatchResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResults([]types.MatchResult{
		{
			JobID: "job-1", JobTitle: "Frontend Developer",
			MatchScore: 86.67, MatchLabel: types.LabelExcellent,
			SkillMatches:  []string{"javascript", "react"},
			MissingSkills: []string{"leadership"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB RECOMMENDATIONS")
	assert.Contains(t, out, "Frontend Developer")
	assert.Contains(t, out, "86.67")
	assert.Contains(t, out, "javascript, react")
	assert.Contains(t, out, "leadership")
}

func TestPrintMatchResultsTruncates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := make([]types.MatchResult, 8)
	for i := range results {
		results[i] = types.MatchResult{JobID: "job", MatchLabel: types.LabelPoor}
	}
	p.PrintMatchResults(results)

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintMatchResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResults(nil)
	assert.Empty(t, buf.String())
}

func TestPrintStrategyFailures(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStrategyFailures([]string{"strategy tfidf failed: boom"})
	out := buf.String()
	assert.Contains(t, out, "STRATEGY FALLBACKS")
	assert.True(t, strings.Contains(out, "tfidf"))

	buf.Reset()
	p.PrintStrategyFailures(nil)
	assert.Empty(t, buf.String())
}
