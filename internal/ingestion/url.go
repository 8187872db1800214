package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-match/internal/fetch"
	"github.com/jonathan/cv-match/internal/types"
)

// IngestFromFile reads a raw posting text file and returns the cleaned
// text with metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	cleanedText := CleanText(string(content))
	metadata := NewMetadata(cleanedText, "")

	return cleanedText, metadata, nil
}

// IngestFromURL fetches a posting page, extracts its main text, and
// returns the cleaned text with metadata.
func IngestFromURL(ctx context.Context, urlStr string) (string, *Metadata, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", nil, fmt.Errorf("failed to extract text: %w", err)
	}

	cleanedText := CleanText(text)
	metadata := NewMetadata(cleanedText, urlStr)

	return cleanedText, metadata, nil
}

// WriteOutput writes the structured posting and metadata to output files.
func WriteOutput(outDir string, posting *types.JobPosting, metadata *Metadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	postingJSON, err := json.MarshalIndent(posting, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal posting: %w", err)
	}
	postingPath := filepath.Join(outDir, "job_posting.json")
	if err := os.WriteFile(postingPath, postingJSON, 0644); err != nil {
		return fmt.Errorf("failed to write posting file: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	metaPath := filepath.Join(outDir, "job_posting.meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
