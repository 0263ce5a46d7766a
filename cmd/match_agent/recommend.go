package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/analyzer"
	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank job postings against a candidate",
	Long: `Ranks job postings from a JSON file against a candidate profile, producing a MatchResult list sorted by relevance.

The candidate comes from either --profile (a pre-built CandidateProfile JSON) or --resume (raw resume text, analyzed first). Configuration can be loaded from a JSON file using --config; command-line arguments override config file values.`,
	RunE: runRecommend,
}

var (
	recommendConfigPath   string
	recommendJobs         string
	recommendProfile      string
	recommendResume       string
	recommendLimit        int
	recommendMinRelevance int
	recommendStrategy     string
	recommendLocation     string
	recommendOutput       string
	recommendVerbose      bool
)

func init() {
	// Config file flag (processed first)
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	recommendCmd.Flags().StringVarP(&recommendJobs, "jobs", "j", "", "Path to job postings JSON file")
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to CandidateProfile JSON file (mutually exclusive with --resume)")
	recommendCmd.Flags().StringVarP(&recommendResume, "resume", "r", "", "Path to resume text file (mutually exclusive with --profile)")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "l", 0, "Maximum recommendations returned (default 10)")
	recommendCmd.Flags().IntVar(&recommendMinRelevance, "min-relevance", -1, "Minimum match percentage kept, 0-100 (default 20)")
	recommendCmd.Flags().StringVarP(&recommendStrategy, "strategy", "s", "", "Scoring strategy: rule or tfidf (default: tfidf with rule fallback)")
	recommendCmd.Flags().StringVar(&recommendLocation, "location", "", "Candidate location hint used when the resume names none")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output MatchResult JSON file (defaults to stdout)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print formatted recommendations")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if recommendConfigPath != "" {
		loadedCfg, err := config.LoadConfig(recommendConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = recommendJobs
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = recommendProfile
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = recommendResume
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = recommendLimit
	}
	if cmd.Flags().Changed("min-relevance") {
		minRel := recommendMinRelevance
		cfg.MinRelevance = &minRel
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = recommendStrategy
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = recommendLocation
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = recommendVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Limit: ranking.DefaultLimit,
	})

	// Step 4: Validate required fields after merging
	if cfg.Jobs == "" {
		return fmt.Errorf("--jobs is required (via flag or config)")
	}
	if cfg.Profile == "" && cfg.Resume == "" {
		return fmt.Errorf("either --profile or --resume must be provided (via flag or config)")
	}
	if cfg.Profile != "" && cfg.Resume != "" {
		return fmt.Errorf("--profile and --resume are mutually exclusive; provide only one")
	}

	// Step 5: Load inputs
	jobs, err := loadJobPostings(cfg.Jobs)
	if err != nil {
		return err
	}

	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	// Step 6: Rank
	opts := ranking.Options{
		Limit:        cfg.Limit,
		MinRelevance: cfg.MinRelevance,
		OnJobError: func(jobID string, err error) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: skipping job %s: %v\n", jobID, err)
		},
	}

	var (
		results  []types.MatchResult
		failures []ranking.StrategyError
	)
	if cfg.Strategy != "" {
		opts.Strategy = cfg.Strategy
		results, err = ranking.Rank(ctx, jobs, profile, opts)
	} else {
		chain := ranking.NewChain()
		chain.Opts = opts
		results, failures, err = chain.Rank(ctx, jobs, profile)
	}
	if err != nil {
		return fmt.Errorf("failed to rank jobs: %w", err)
	}

	// Step 7: Write output
	jsonOutput, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match results to JSON: %w", err)
	}
	if err := writeOutput(recommendOutput, jsonOutput); err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintStrategyFailures(strategyFailureLines(failures))
		printer.PrintMatchResults(results)
	}

	_, _ = fmt.Fprintf(os.Stderr, "Ranked %d postings, kept %d\n", len(jobs), len(results))
	return nil
}

// loadJobPostings reads and unmarshals a job postings JSON file. The
// file is checked against the job postings schema first; schema
// violations are reported as warnings but do not fail the command.
func loadJobPostings(path string) ([]types.JobPosting, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}

	// Schema validation is a safety check, not a requirement
	schemaPath := schemas.ResolveSchemaPath(schemas.JobPostingsSchema)
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: jobs file validation failed: %v\n", err)
		}
	}

	var jobs []types.JobPosting
	if err := json.Unmarshal(content, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
	}
	return jobs, nil
}

// loadProfile builds the candidate profile, either from a pre-built
// profile file or by analyzing a resume text file.
func loadProfile(cfg config.Config) (*types.CandidateProfile, error) {
	if cfg.Profile != "" {
		content, err := os.ReadFile(cfg.Profile)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile file %s: %w", cfg.Profile, err)
		}
		var profile types.CandidateProfile
		if err := json.Unmarshal(content, &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
		}
		return &profile, nil
	}

	content, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", cfg.Resume, err)
	}

	hints := types.Hints{Name: cfg.Name, Email: cfg.Email, Location: cfg.Location}
	resumeText := ingestion.Prepare(string(content))
	return analyzer.New(analyzer.Config{}).Analyze(resumeText, hints), nil
}

func strategyFailureLines(failures []ranking.StrategyError) []string {
	lines := make([]string, 0, len(failures))
	for i := range failures {
		lines = append(lines, failures[i].Error())
	}
	return lines
}
