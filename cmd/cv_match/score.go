package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-match/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a CV against a job posting",
	Long:  "Score a CV against a job posting across the keyword, experience, education, and skills dimensions, and report whether it meets the minimum score.",
	RunE:  runScore,
}

var (
	scoreCVPath  string
	scoreJobPath string
)

func init() {
	scoreCmd.Flags().StringVar(&scoreCVPath, "cv", "", "Path to CV JSON file")
	scoreCmd.Flags().StringVar(&scoreJobPath, "job", "", "Path to job posting JSON file")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cvPath := scoreCVPath
	if cvPath == "" {
		cvPath = cfg.CV
	}
	jobPath := scoreJobPath
	if jobPath == "" {
		jobPath = cfg.Job
	}
	if cvPath == "" || jobPath == "" {
		return fmt.Errorf("--cv and --job are required (or set 'cv' and 'job' in the config file)")
	}

	cv, postings, err := loadInputs(cvPath, []string{jobPath})
	if err != nil {
		return err
	}

	ctx := context.Background()
	eng, closer, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer()

	result := eng.Analyze(ctx, cv, postings[0])

	if verbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoreBreakdown(&result.Scoring)
	} else if err := printJSON(result.Scoring); err != nil {
		return err
	}

	if eng.MeetsRequirements(cv, postings[0]) {
		fmt.Fprintln(os.Stdout, "The CV meets the job requirements.")
	} else {
		fmt.Fprintln(os.Stdout, "The CV does not meet the job requirements.")
	}
	return nil
}
