package analyzer

import (
	"strings"
	"unicode"

	"github.com/jonathan/job-matcher/internal/types"
)

// defaultLocation is the country-level fallback used when neither the
// resume text nor the hints mention a recognizable location.
const defaultLocation = "sierra leone"

// Analyzer extracts structured candidate profiles from resume text.
type Analyzer struct {
	cfg Config
}

// New creates an Analyzer. Empty Config fields use the built-in
// dictionaries.
func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg.merged()}
}

// Analyze builds a CandidateProfile from raw resume text. It is
// best-effort: unreadable or empty input yields a sparse profile with
// the documented experience default rather than an error. Hints only
// fill gaps; they never override what the text says.
func (a *Analyzer) Analyze(resumeText string, hints types.Hints) *types.CandidateProfile {
	text := strings.ToLower(resumeText)

	technical := detectPhrases(text, a.cfg.TechnicalSkills)
	soft := detectPhrases(text, a.cfg.SoftSkills)

	detected := make([]string, 0, len(technical)+len(soft))
	detected = append(detected, technical...)
	detected = append(detected, soft...)

	years, found := extractYears(text)
	if !found {
		years = DefaultExperienceYears
	}

	profile := &types.CandidateProfile{
		Skills: types.SkillSet{
			Technical: technical,
			Soft:      soft,
			Detected:  detected,
		},
		Experience: types.Experience{
			TotalYears: years,
			Level:      types.LevelForYears(years),
			Titles:     detectPhrases(text, a.cfg.Titles),
		},
		Education: types.Education{
			Degrees:      detectPhrases(text, a.cfg.Degrees),
			Institutions: detectPhrases(text, a.cfg.Institutions),
			Fields:       detectPhrases(text, a.cfg.Fields),
		},
		Languages:      detectPhrases(text, a.cfg.Languages),
		Certifications: detectPhrases(text, a.cfg.Certifications),
		Location:       a.detectLocation(text, hints),
	}
	profile.Strengths = buildStrengths(profile)

	return profile
}

// detectLocation finds Sierra Leone hubs mentioned in the text,
// falling back to the hint location and finally the country default.
func (a *Analyzer) detectLocation(text string, hints types.Hints) []string {
	if hubs := detectPhrases(text, a.cfg.LocationHubs); len(hubs) > 0 {
		return hubs
	}
	if loc := strings.TrimSpace(strings.ToLower(hints.Location)); loc != "" {
		return []string{loc}
	}
	return []string{defaultLocation}
}

// IsLocationHub reports whether the text names a recognized employment
// hub. It uses the same word-boundary matching as analysis, so "Bo"
// matches but "Labour Office" does not.
func IsLocationHub(text string) bool {
	return len(detectPhrases(strings.ToLower(text), defaultLocationHubs)) > 0
}

// buildStrengths derives short, deterministic highlight lines from
// the detected profile. Purely informational; scoring ignores them.
func buildStrengths(p *types.CandidateProfile) []string {
	var strengths []string

	if n := len(p.Skills.Technical); n > 0 {
		top := p.Skills.Technical
		if len(top) > 3 {
			top = top[:3]
		}
		strengths = append(strengths, "hands-on with "+strings.Join(top, ", "))
		if n >= 5 {
			strengths = append(strengths, "broad technical skill set")
		}
	}
	if p.Experience.TotalYears >= 6 {
		strengths = append(strengths, "extensive professional experience")
	}
	if len(p.Certifications) > 0 {
		strengths = append(strengths, "professionally certified")
	}
	if len(p.Skills.Soft) > 0 {
		strengths = append(strengths, "demonstrated "+p.Skills.Soft[0])
	}

	return strengths
}

// detectPhrases returns the dictionary entries present in the text,
// in dictionary order, using word-boundary matching so that "java"
// does not fire inside "javascript".
func detectPhrases(text string, dict []string) []string {
	found := make([]string, 0, 8)
	for _, phrase := range dict {
		if containsPhrase(text, strings.ToLower(phrase)) {
			found = append(found, strings.ToLower(phrase))
		}
	}
	return found
}

// containsPhrase reports whether phrase occurs in text delimited by
// non-alphanumeric runes on both sides.
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for offset := 0; offset+len(phrase) <= len(text); {
		i := strings.Index(text[offset:], phrase)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(phrase)
		if boundaryAt(text, start-1) && boundaryAt(text, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

// boundaryAt reports whether position i is outside the text or holds
// a rune that cannot continue a token.
func boundaryAt(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	r := rune(text[i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
}
