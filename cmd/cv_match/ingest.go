package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-match/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a job posting from a text file or URL",
	Long:  "Ingest a job posting from either a text file or URL, clean the content, and write a structured posting JSON with metadata.",
	RunE:  runIngest,
}

var (
	ingestTextFile string
	ingestURL      string
	ingestOutDir   string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestTextFile, "text-file", "t", "", "Path to text file containing the job posting")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the job posting from")
	ingestCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")

	_ = ingestCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	if ingestTextFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestTextFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	var cleanedText string
	var metadata *ingestion.Metadata
	var err error

	if ingestTextFile != "" {
		cleanedText, metadata, err = ingestion.IngestFromFile(ingestTextFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		cleanedText, metadata, err = ingestion.IngestFromURL(context.Background(), ingestURL)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	posting := ingestion.ParsePosting(cleanedText)
	if ingestURL != "" {
		posting.URL = ingestURL
	}
	metadata.Title = posting.Title
	metadata.Company = posting.Company

	if err := ingestion.WriteOutput(ingestOutDir, posting, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested job posting\n")
	fmt.Fprintf(os.Stdout, "Posting: %s/job_posting.json\n", ingestOutDir)
	fmt.Fprintf(os.Stdout, "Metadata: %s/job_posting.meta.json\n", ingestOutDir)

	return nil
}
