package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestAnalyzeDetectsSkills(t *testing.T) {
	a := New(Config{})

	resume := `Experienced developer with JavaScript, React and Node.js.
Strong communication and leadership in cross-functional teams.`

	profile := a.Analyze(resume, types.Hints{})
	require.NotNil(t, profile)

	assert.Contains(t, profile.Skills.Technical, "javascript")
	assert.Contains(t, profile.Skills.Technical, "react")
	assert.Contains(t, profile.Skills.Technical, "node.js")
	assert.Contains(t, profile.Skills.Soft, "communication")
	assert.Contains(t, profile.Skills.Soft, "leadership")

	// Detected is always the union of technical and soft.
	for _, s := range profile.Skills.Technical {
		assert.Contains(t, profile.Skills.Detected, s)
	}
	for _, s := range profile.Skills.Soft {
		assert.Contains(t, profile.Skills.Detected, s)
	}
}

func TestAnalyzeWordBoundaries(t *testing.T) {
	a := New(Config{})

	// "java" must not fire inside "javascript", nor "excel" inside
	// "excellent".
	profile := a.Analyze("JavaScript developer with excellent results", types.Hints{})
	assert.NotContains(t, profile.Skills.Technical, "java")
	assert.NotContains(t, profile.Skills.Technical, "excel")
	assert.Contains(t, profile.Skills.Technical, "javascript")
}

func TestAnalyzeExperienceYears(t *testing.T) {
	a := New(Config{})

	tests := []struct {
		name      string
		resume    string
		wantYears float64
		wantLevel types.ExperienceLevel
	}{
		{"explicit years", "7 years of software development", 7, types.LevelSenior},
		{"takes the largest figure", "2 years at Acme, then 4 years at Beta", 4, types.LevelMid},
		{"plus suffix", "10+ years in accounting", 10, types.LevelExecutive},
		{"yrs abbreviation", "3 yrs experience in sales", 3, types.LevelMid},
		{"fractional years", "1.5 years of nursing", 1.5, types.LevelJunior},
		{"no figure falls back to default", "A motivated graduate", DefaultExperienceYears, types.LevelJunior},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := a.Analyze(tt.resume, types.Hints{})
			assert.InDelta(t, tt.wantYears, profile.Experience.TotalYears, 1e-9)
			assert.Equal(t, tt.wantLevel, profile.Experience.Level)
		})
	}
}

func TestAnalyzeEducation(t *testing.T) {
	a := New(Config{})

	resume := "BSc in Computer Science from Fourah Bay College, University of Sierra Leone"
	profile := a.Analyze(resume, types.Hints{})

	assert.Contains(t, profile.Education.Degrees, "bsc")
	assert.Contains(t, profile.Education.Fields, "computer science")
	assert.Contains(t, profile.Education.Institutions, "fourah bay college")
	assert.True(t, profile.Education.HasDegree())
}

func TestAnalyzeLanguagesAndCertifications(t *testing.T) {
	a := New(Config{})

	resume := "Fluent in English and Krio. ACCA qualified, CCNA in progress."
	profile := a.Analyze(resume, types.Hints{})

	assert.Contains(t, profile.Languages, "english")
	assert.Contains(t, profile.Languages, "krio")
	assert.Contains(t, profile.Certifications, "acca")
	assert.Contains(t, profile.Certifications, "ccna")
}

func TestAnalyzeLocation(t *testing.T) {
	a := New(Config{})

	t.Run("from text", func(t *testing.T) {
		profile := a.Analyze("Based in Freetown, available for work in Makeni", types.Hints{})
		assert.Contains(t, profile.Location, "freetown")
		assert.Contains(t, profile.Location, "makeni")
	})

	t.Run("falls back to hint", func(t *testing.T) {
		profile := a.Analyze("No location mentioned", types.Hints{Location: "Kenema"})
		assert.Equal(t, []string{"kenema"}, profile.Location)
	})

	t.Run("country default when nothing is known", func(t *testing.T) {
		profile := a.Analyze("No location mentioned", types.Hints{})
		assert.Equal(t, []string{"sierra leone"}, profile.Location)
	})
}

func TestAnalyzeNeverFails(t *testing.T) {
	a := New(Config{})

	for _, text := range []string{"", "   ", "!!!", "\x00\x01\x02", "1234567890"} {
		profile := a.Analyze(text, types.Hints{})
		require.NotNil(t, profile)
		assert.Equal(t, DefaultExperienceYears, profile.Experience.TotalYears)
		assert.Equal(t, types.LevelJunior, profile.Experience.Level)
	}
}

func TestAnalyzeCustomDictionaries(t *testing.T) {
	a := New(Config{TechnicalSkills: []string{"cobol"}})

	profile := a.Analyze("COBOL maintainer with javascript on the side", types.Hints{})
	assert.Equal(t, []string{"cobol"}, profile.Skills.Technical)
	assert.NotContains(t, profile.Skills.Technical, "javascript")
}

func TestAnalyzeTitles(t *testing.T) {
	a := New(Config{})

	profile := a.Analyze("Worked as a project Manager and later as an Engineer", types.Hints{})
	assert.Contains(t, profile.Experience.Titles, "manager")
	assert.Contains(t, profile.Experience.Titles, "engineer")
}

func TestExtractYearsIgnoresNoise(t *testing.T) {
	// Calendar years never parse as experience figures.
	years, found := extractYears("graduated in 2019, joined in 2021")
	assert.False(t, found)
	assert.Zero(t, years)
}

func TestIsLocationHub(t *testing.T) {
	assert.True(t, IsLocationHub("Freetown, Western Area Urban"))
	assert.True(t, IsLocationHub("KENEMA"))
	assert.True(t, IsLocationHub("Sierra Leone"))
	assert.False(t, IsLocationHub("Monrovia"))
	assert.False(t, IsLocationHub("Labour Office"))
	assert.False(t, IsLocationHub(""))
}
