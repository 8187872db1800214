package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-match/internal/analyzer"
	"github.com/jonathan/cv-match/internal/config"
	"github.com/jonathan/cv-match/internal/engine"
	"github.com/jonathan/cv-match/internal/ingestion"
	"github.com/jonathan/cv-match/internal/llm"
	"github.com/jonathan/cv-match/internal/scoring"
	"github.com/jonathan/cv-match/internal/taxonomy"
)

// loadConfig loads and validates the config file named by --config,
// returning an empty config when the flag is unset.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildEngine assembles the analysis engine from config. The Gemini
// refiner is attached only when an API key is available; a closer is
// returned for the underlying client.
func buildEngine(ctx context.Context, cfg *config.Config) (*engine.Engine, func(), error) {
	opts := engine.Options{
		Analyzer: analyzer.Options{
			KeywordWeight:    cfg.KeywordWeight,
			ExperienceWeight: cfg.ExperienceWeight,
			EducationWeight:  cfg.EducationWeight,
			CustomStopWords:  cfg.CustomStopWords,
		},
		Scoring: scoring.Criteria{
			KeywordWeight:    cfg.ScoreKeywordWeight,
			ExperienceWeight: cfg.ScoreExperienceWeight,
			EducationWeight:  cfg.ScoreEducationWeight,
			SkillsWeight:     cfg.ScoreSkillsWeight,
		},
		MinimumScore: cfg.MinimumScore,
		UseTFIDF:     cfg.UseTFIDF,
	}

	if cfg.SkillsFile != "" {
		skills, err := ingestion.LoadSkills(cfg.SkillsFile)
		if err != nil {
			return nil, nil, err
		}
		opts.Skills = skills
	} else {
		opts.Skills = taxonomy.DefaultSkills()
	}

	closer := func() {}
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewClient(ctx, nil, apiKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		opts.Refiner = llm.NewRefiner(client)
		closer = func() { _ = client.Close() }
	}

	return engine.New(opts), closer, nil
}
