// Package ingestion prepares raw resume input for analysis: HTML
// stripping and whitespace normalization.
package ingestion

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes resume text while preserving line structure:
// CRLF to LF, trailing whitespace trimmed, runs of spaces collapsed,
// and at most one consecutive blank line kept.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
		if line == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// Prepare is the full ingestion pipeline: strip markup if the input
// looks like HTML, then clean whitespace.
func Prepare(content string) string {
	if looksLikeHTML(content) {
		content = StripHTML(content)
	}
	return CleanText(content)
}
