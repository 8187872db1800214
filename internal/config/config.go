// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	CV         string `json:"cv,omitempty"`          // Path to CV JSON file
	Job        string `json:"job,omitempty"`         // Path to job posting JSON file
	JobURL     string `json:"job_url,omitempty"`     // URL to fetch job posting text from
	SkillsFile string `json:"skills_file,omitempty"` // Path to custom skill taxonomy JSON

	// Analyzer weights (keyword/experience/education). All three must be
	// set together; all-zero selects the built-in defaults.
	KeywordWeight    float64 `json:"keyword_weight,omitempty"`
	ExperienceWeight float64 `json:"experience_weight,omitempty"`
	EducationWeight  float64 `json:"education_weight,omitempty"`

	// Scoring weights, independent of the analyzer weights.
	ScoreKeywordWeight    float64 `json:"score_keyword_weight,omitempty"`
	ScoreExperienceWeight float64 `json:"score_experience_weight,omitempty"`
	ScoreEducationWeight  float64 `json:"score_education_weight,omitempty"`
	ScoreSkillsWeight     float64 `json:"score_skills_weight,omitempty"`

	// Behavior
	MinimumScore    float64  `json:"minimum_score,omitempty"`     // Threshold for the requirements check (0.0-1.0)
	UseTFIDF        bool     `json:"use_tfidf,omitempty"`         // Use the TF-IDF analyzer variant
	CustomStopWords []string `json:"custom_stop_words,omitempty"` // Extra stop words on top of the default set
	Verbose         bool     `json:"verbose,omitempty"`           // Print detailed debug information

	// Integrations
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for suggestion refinement
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for run history
	Port        int    `json:"port,omitempty"`         // API server port
	JWTSecret   string `json:"jwt_secret,omitempty"`   // HS256 secret for the optional login endpoint
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	// Validate numeric ranges
	for name, w := range map[string]float64{
		"keyword_weight":          c.KeywordWeight,
		"experience_weight":       c.ExperienceWeight,
		"education_weight":        c.EducationWeight,
		"score_keyword_weight":    c.ScoreKeywordWeight,
		"score_experience_weight": c.ScoreExperienceWeight,
		"score_education_weight":  c.ScoreEducationWeight,
		"score_skills_weight":     c.ScoreSkillsWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("config error: '%s' must be between 0 and 1", name)
		}
	}
	if c.MinimumScore < 0 || c.MinimumScore > 1 {
		return fmt.Errorf("config error: 'minimum_score' must be between 0 and 1")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	// Validate file paths exist (if specified)
	if c.CV != "" {
		if _, err := os.Stat(c.CV); os.IsNotExist(err) {
			return fmt.Errorf("config error: cv file not found: %s", c.CV)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.SkillsFile != "" {
		if _, err := os.Stat(c.SkillsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.SkillsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CV == "" {
		result.CV = defaults.CV
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.SkillsFile == "" {
		result.SkillsFile = defaults.SkillsFile
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MinimumScore == 0 {
		result.MinimumScore = defaults.MinimumScore
	}
	if result.KeywordWeight == 0 && result.ExperienceWeight == 0 && result.EducationWeight == 0 {
		result.KeywordWeight = defaults.KeywordWeight
		result.ExperienceWeight = defaults.ExperienceWeight
		result.EducationWeight = defaults.EducationWeight
	}
	if result.ScoreKeywordWeight == 0 && result.ScoreExperienceWeight == 0 &&
		result.ScoreEducationWeight == 0 && result.ScoreSkillsWeight == 0 {
		result.ScoreKeywordWeight = defaults.ScoreKeywordWeight
		result.ScoreExperienceWeight = defaults.ScoreExperienceWeight
		result.ScoreEducationWeight = defaults.ScoreEducationWeight
		result.ScoreSkillsWeight = defaults.ScoreSkillsWeight
	}
	if len(result.CustomStopWords) == 0 {
		result.CustomStopWords = defaults.CustomStopWords
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
