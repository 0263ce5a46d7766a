package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/analyzer"
	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume into a candidate profile",
	Long:  "Extracts skills, experience level, education and location from a resume text file using dictionary matching, producing a CandidateProfile JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeResume  string
	analyzeHints   string
	analyzeOutput  string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeHints, "hints", "", "Path to optional hints JSON file (name, email, location)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output CandidateProfile JSON file (defaults to stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted profile summary")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", analyzeResume, err)
	}

	hints, err := loadHints(analyzeHints)
	if err != nil {
		return err
	}

	resumeText := ingestion.Prepare(string(content))
	profile := analyzer.New(analyzer.Config{}).Analyze(resumeText, hints)

	jsonOutput, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile to JSON: %w", err)
	}

	if err := writeOutput(analyzeOutput, jsonOutput); err != nil {
		return err
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintCandidateProfile(profile)
	}

	return nil
}

// loadHints reads an optional hints file. An empty path yields zero hints.
func loadHints(path string) (types.Hints, error) {
	var hints types.Hints
	if path == "" {
		return hints, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return hints, fmt.Errorf("failed to read hints file %s: %w", path, err)
	}
	if err := json.Unmarshal(content, &hints); err != nil {
		return hints, fmt.Errorf("failed to unmarshal hints JSON: %w", err)
	}
	return hints, nil
}

// writeOutput writes data to path, creating parent directories, or to
// stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", data)
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
