package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-match/internal/ingestion"
	"github.com/jonathan/cv-match/internal/observability"
	"github.com/jonathan/cv-match/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a CV against one or more job postings",
	Long:  "Analyze a CV against job postings: keyword overlap, experience and education fit, and improvement suggestions. Results are printed as JSON, or as formatted boxes with --verbose.",
	RunE:  runAnalyze,
}

var (
	analyzeCVPath   string
	analyzeJobPaths []string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCVPath, "cv", "", "Path to CV JSON file")
	analyzeCmd.Flags().StringArrayVar(&analyzeJobPaths, "job", nil, "Path to job posting JSON file (repeatable)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cvPath := analyzeCVPath
	if cvPath == "" {
		cvPath = cfg.CV
	}
	if cvPath == "" {
		return fmt.Errorf("--cv is required (or set 'cv' in the config file)")
	}
	jobPaths := analyzeJobPaths
	if len(jobPaths) == 0 && cfg.Job != "" {
		jobPaths = []string{cfg.Job}
	}
	if len(jobPaths) == 0 {
		return fmt.Errorf("at least one --job is required (or set 'job' in the config file)")
	}

	cv, postings, err := loadInputs(cvPath, jobPaths)
	if err != nil {
		return err
	}

	ctx := context.Background()
	eng, closer, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer()

	results, err := eng.AnalyzeAll(ctx, cv, postings)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for i, result := range results {
			printer.PrintResult(postings[i].Title, &result)
			printer.PrintScoreBreakdown(&result.Scoring)
			printer.PrintSuggestions(result.Suggestions)
		}
		return nil
	}

	return printJSON(results)
}

// loadInputs reads and validates the CV and posting files.
func loadInputs(cvPath string, jobPaths []string) (*types.CVData, []*types.JobPosting, error) {
	cv, err := ingestion.LoadCV(cvPath)
	if err != nil {
		return nil, nil, err
	}
	postings := make([]*types.JobPosting, len(jobPaths))
	for i, path := range jobPaths {
		posting, err := ingestion.LoadPosting(path)
		if err != nil {
			return nil, nil, err
		}
		postings[i] = posting
	}
	return cv, postings, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
