package analyzer

import (
	"regexp"
	"strconv"
)

// DefaultExperienceYears is assumed when a resume mentions no year
// figures at all. Two years keeps unknown candidates at junior level
// instead of penalizing them to entry.
const DefaultExperienceYears = 2.0

// yearsPattern matches figures like "5 years", "3+ yrs", "2.5 years
// of experience". Case folding happens before matching.
var yearsPattern = regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\b`)

// extractYears scans lower-cased resume text for experience-year
// figures and returns the largest one found. The boolean reports
// whether any figure was present.
func extractYears(text string) (float64, bool) {
	matches := yearsPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	var max float64
	found := false
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		// Figures above a working lifetime are treated as noise
		// (years like "2024" never reach here due to the two-digit cap).
		if v > 60 {
			continue
		}
		found = true
		if v > max {
			max = v
		}
	}
	return max, found
}
