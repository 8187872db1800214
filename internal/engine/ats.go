// Package engine provides the top-level ATS facade combining the
// analyzer, the scoring engine, and the skill matcher.
package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-match/internal/analyzer"
	"github.com/jonathan/cv-match/internal/scoring"
	"github.com/jonathan/cv-match/internal/taxonomy"
	"github.com/jonathan/cv-match/internal/types"
)

// defaultMinimumScore is the score threshold for MeetsRequirements.
const defaultMinimumScore = 0.6

// MissingSkill is a required skill absent from the CV, with related
// skills the CV already holds as suggested alternatives.
type MissingSkill struct {
	Skill        string                     `json:"skill"`
	Alternatives []taxonomy.SkillDefinition `json:"alternatives,omitempty"`
}

// Result is the combined outcome of analysis and scoring.
type Result struct {
	Score         float64         `json:"score"`
	Analysis      analyzer.Result `json:"analysis"`
	Scoring       scoring.CVScore `json:"scoring"`
	Suggestions   []string        `json:"suggestions"`
	MissingSkills []MissingSkill  `json:"missing_skills"`
}

// SuggestionRefiner rewrites rule-generated suggestions, e.g. via an LLM.
// Refinement is strictly additive: failures fall back to the input.
type SuggestionRefiner interface {
	Refine(ctx context.Context, suggestions []string) ([]string, error)
}

// Options configures the engine. Zero values select defaults throughout.
type Options struct {
	Analyzer     analyzer.Options
	Scoring      scoring.Criteria
	Skills       []taxonomy.SkillDefinition // nil selects the default taxonomy
	MinimumScore float64
	UseTFIDF     bool
	Refiner      SuggestionRefiner
}

// Engine coordinates analysis, scoring, and skill matching.
type Engine struct {
	analyzer     analyzer.Analyzer
	scorer       *scoring.Engine
	matcher      *taxonomy.Matcher
	minimumScore float64
	refiner      SuggestionRefiner
}

// New builds an Engine from options.
func New(opts Options) *Engine {
	var a analyzer.Analyzer
	if opts.UseTFIDF {
		a = analyzer.NewTFIDF(opts.Analyzer)
	} else {
		a = analyzer.NewClassic(opts.Analyzer)
	}
	matcher := taxonomy.NewMatcher(opts.Skills)
	minimum := opts.MinimumScore
	if minimum == 0 {
		minimum = defaultMinimumScore
	}
	return &Engine{
		analyzer:     a,
		scorer:       scoring.NewEngine(opts.Scoring, matcher),
		matcher:      matcher,
		minimumScore: minimum,
		refiner:      opts.Refiner,
	}
}

// Analyze runs analysis and scoring against a single posting, merges the
// suggestion lists, and attaches alternatives for missing skills. It
// never returns an error; invalid input degrades to a zero-score result.
func (e *Engine) Analyze(ctx context.Context, cv *types.CVData, posting *types.JobPosting) Result {
	analysis := e.analyzer.Analyze(cv, posting)

	scored := e.scorer.Score(cv, posting)

	missingSkills := e.findMissingSkills(cv, posting)
	suggestions := e.mergeSuggestions(cv, analysis, scored, missingSkills)

	if e.refiner != nil && len(suggestions) > 0 {
		if refined, err := e.refiner.Refine(ctx, suggestions); err == nil && len(refined) > 0 {
			suggestions = refined
		}
	}

	return Result{
		Score:         scored.Overall,
		Analysis:      analysis,
		Scoring:       scored,
		Suggestions:   suggestions,
		MissingSkills: missingSkills,
	}
}

// AnalyzeAll analyzes one CV against many postings concurrently. Results
// keep the input order. The only error source is context cancellation.
func (e *Engine) AnalyzeAll(ctx context.Context, cv *types.CVData, postings []*types.JobPosting) ([]Result, error) {
	results := make([]Result, len(postings))
	g, gCtx := errgroup.WithContext(ctx)
	for i, posting := range postings {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = e.Analyze(gCtx, cv, posting)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MeetsRequirements reports whether the weighted overall score reaches
// the configured minimum.
func (e *Engine) MeetsRequirements(cv *types.CVData, posting *types.JobPosting) bool {
	return e.scorer.Score(cv, posting).Overall >= e.minimumScore
}

// mergeSuggestions deduplicates the analysis, scoring, and skill
// suggestions, preserving first-seen order.
func (e *Engine) mergeSuggestions(cv *types.CVData, analysis analyzer.Result, scored scoring.CVScore, missingSkills []MissingSkill) []string {
	seen := make(map[string]struct{})
	merged := []string{}
	add := func(s string) {
		if _, dup := seen[s]; dup || s == "" {
			return
		}
		seen[s] = struct{}{}
		merged = append(merged, s)
	}

	for _, s := range analysis.Suggestions {
		add(s)
	}
	for _, section := range []scoring.SectionScore{scored.Keywords, scored.Experience, scored.Education, scored.Skills} {
		for _, s := range section.Suggestions {
			add(s)
		}
	}
	for _, ms := range missingSkills {
		if len(ms.Alternatives) == 0 {
			continue
		}
		names := make([]string, len(ms.Alternatives))
		for i, alt := range ms.Alternatives {
			names[i] = alt.Name
		}
		add(fmt.Sprintf("Consider adding %q or related skills: %s", ms.Skill, strings.Join(names, ", ")))
	}
	if cv != nil && cv.PersonalInfo.Title == "" {
		add("Add a professional title to your CV")
	}
	return merged
}

// findMissingSkills returns required skills absent from the CV. For
// skills known to the taxonomy, alternatives are the related skills the
// CV already lists.
func (e *Engine) findMissingSkills(cv *types.CVData, posting *types.JobPosting) []MissingSkill {
	if cv == nil || posting == nil {
		return []MissingSkill{}
	}
	cvSkills := make(map[string]struct{}, len(cv.Skills))
	for _, s := range cv.Skills {
		cvSkills[strings.ToLower(s.Name)] = struct{}{}
	}

	missing := []MissingSkill{}
	for _, skill := range posting.Skills {
		if _, ok := cvSkills[strings.ToLower(skill)]; ok {
			continue
		}
		ms := MissingSkill{Skill: skill}
		if _, known := e.matcher.FindSkill(skill); known {
			for _, related := range e.matcher.RelatedSkills(skill) {
				if _, held := cvSkills[strings.ToLower(related.Name)]; held {
					ms.Alternatives = append(ms.Alternatives, related)
				}
			}
		}
		missing = append(missing, ms)
	}
	return missing
}
