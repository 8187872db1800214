package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-match/internal/schemas"
	"github.com/jonathan/cv-match/internal/taxonomy"
	"github.com/jonathan/cv-match/internal/types"
)

// LoadCV reads a CV JSON file, validates it against the CV schema, and
// returns the normalized structure.
func LoadCV(path string) (*types.CVData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("cv file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read cv file: %w", err)
	}

	if err := schemas.ValidateCV(string(data)); err != nil {
		return nil, fmt.Errorf("cv file %s: %w", path, err)
	}

	var cv types.CVData
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, fmt.Errorf("failed to parse cv JSON: %w", err)
	}
	cv.Normalize()
	return &cv, nil
}

// LoadPosting reads a job posting JSON file, validates it against the
// posting schema, and returns the normalized structure.
func LoadPosting(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("job file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	if err := schemas.ValidatePosting(string(data)); err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}

	var posting types.JobPosting
	if err := json.Unmarshal(data, &posting); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	posting.Normalize()
	return &posting, nil
}

// LoadSkills reads a custom skill taxonomy JSON file.
func LoadSkills(path string) ([]taxonomy.SkillDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file: %w", err)
	}
	var skills []taxonomy.SkillDefinition
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills JSON: %w", err)
	}
	return skills, nil
}
