// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// itemList renders up to maxItemsToShow bulleted items with a
// trailing "... and N more" line when truncated.
func itemList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintCandidateProfile outputs a human-readable summary of an analyzed resume.
func (p *Printer) PrintCandidateProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Experience: %.1f years (%s)\n", profile.Experience.TotalYears, profile.Experience.Level))
	if len(profile.Location) > 0 {
		sb.WriteString(fmt.Sprintf("Location:   %s\n", strings.Join(profile.Location, ", ")))
	}
	sb.WriteString("\n")

	if len(profile.Skills.Technical) > 0 {
		sb.WriteString("Technical Skills:\n")
		itemList(&sb, profile.Skills.Technical)
		sb.WriteString("\n")
	}
	if len(profile.Skills.Soft) > 0 {
		sb.WriteString("Soft Skills:\n")
		itemList(&sb, profile.Skills.Soft)
		sb.WriteString("\n")
	}
	if len(profile.Education.Degrees) > 0 {
		sb.WriteString("Education:\n")
		itemList(&sb, profile.Education.Degrees)
		sb.WriteString("\n")
	}
	if len(profile.Certifications) > 0 {
		sb.WriteString("Certifications:\n")
		itemList(&sb, profile.Certifications)
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs the ranked recommendations with scores and
// skill breakdowns.
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder

	for i, r := range results {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(results)-maxItemsToShow))
			break
		}

		title := r.JobTitle
		if title == "" {
			title = r.JobID
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("   Score: %.2f (%s)\n", r.MatchScore, r.MatchLabel))
		if len(r.SkillMatches) > 0 {
			sb.WriteString(fmt.Sprintf("   Matched: %s\n", strings.Join(r.SkillMatches, ", ")))
		}
		if len(r.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("   Missing: %s\n", strings.Join(r.MissingSkills, ", ")))
		}
	}

	p.printBox("JOB RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStrategyFailures reports scorers that failed before a fallback
// produced results.
func (p *Printer) PrintStrategyFailures(failures []string) {
	if len(failures) == 0 {
		return
	}

	var sb strings.Builder
	for _, f := range failures {
		sb.WriteString(fmt.Sprintf("  • %s\n", f))
	}
	p.printBox("STRATEGY FALLBACKS", strings.TrimSuffix(sb.String(), "\n"))
}
