// Package analyzer orchestrates keyword extraction, feature scoring, and
// suggestion generation into a single CV-vs-posting analysis.
package analyzer

import (
	"strings"

	"github.com/jonathan/cv-match/internal/keywords"
	"github.com/jonathan/cv-match/internal/types"
)

// Result is the outcome of a single CV-vs-posting analysis.
type Result struct {
	Score            float64  `json:"score"`
	KeywordMatches   []string `json:"keyword_matches"`
	MissingKeywords  []string `json:"missing_keywords"`
	Suggestions      []string `json:"suggestions"`
	FormattingIssues []string `json:"formatting_issues"` // reserved for future formatting checks
}

// Analyzer analyzes a CV against a job posting. Implementations never
// return errors; invalid input degrades to a zero-score Result with an
// explanatory suggestion.
type Analyzer interface {
	Analyze(cv *types.CVData, posting *types.JobPosting) Result
}

// Default analyzer weights.
const (
	defaultKeywordWeight    = 0.5
	defaultExperienceWeight = 0.3
	defaultEducationWeight  = 0.2
)

// Options configures analyzer weights and stop words. Zero-valued weights
// select the defaults. CustomStopWords extend the default stop-word set;
// the default core is never shrunk.
type Options struct {
	KeywordWeight    float64
	ExperienceWeight float64
	EducationWeight  float64
	CustomStopWords  []string
}

func (o Options) withDefaults() Options {
	if o.KeywordWeight == 0 && o.ExperienceWeight == 0 && o.EducationWeight == 0 {
		o.KeywordWeight = defaultKeywordWeight
		o.ExperienceWeight = defaultExperienceWeight
		o.EducationWeight = defaultEducationWeight
	}
	return o
}

// base carries the state shared by the classic and TF-IDF variants.
type base struct {
	opts Options
	stop keywords.StopWords
}

func newBase(opts Options) base {
	opts = opts.withDefaults()
	return base{
		opts: opts,
		stop: keywords.NewStopWords(opts.CustomStopWords),
	}
}

// validate returns a short-circuit Result for the three terminal input
// states (missing input, empty posting, empty CV), or nil for the normal
// path. The empty-posting result must not leak job-specific terms.
func (b *base) validate(cv *types.CVData, posting *types.JobPosting) *Result {
	if cv == nil || posting == nil {
		return &Result{
			Score:            0,
			KeywordMatches:   []string{},
			MissingKeywords:  []string{},
			Suggestions:      []string{"CV or job posting is missing."},
			FormattingIssues: []string{},
		}
	}
	if posting.IsEmpty() {
		return &Result{
			Score:            0,
			KeywordMatches:   []string{},
			MissingKeywords:  []string{},
			Suggestions:      []string{"The job posting is empty. Add job details for analysis."},
			FormattingIssues: []string{},
		}
	}
	if cv.IsEmpty() {
		missing := keywords.Extract(b.jobText(posting), b.stop)
		if missing == nil {
			missing = []string{}
		}
		return &Result{
			Score:            0,
			KeywordMatches:   []string{},
			MissingKeywords:  missing,
			Suggestions:      []string{"CV is empty or missing critical sections."},
			FormattingIssues: []string{},
		}
	}
	return nil
}

// jobText concatenates the analyzable posting fields.
func (b *base) jobText(posting *types.JobPosting) string {
	var parts []string
	if posting.Title != "" {
		parts = append(parts, posting.Title)
	}
	if posting.Description != "" {
		parts = append(parts, posting.Description)
	}
	if len(posting.Skills) > 0 {
		parts = append(parts, strings.Join(posting.Skills, " "))
	}
	if len(posting.Qualifications) > 0 {
		parts = append(parts, strings.Join(posting.Qualifications, " "))
	}
	if len(posting.Responsibilities) > 0 {
		parts = append(parts, strings.Join(posting.Responsibilities, " "))
	}
	return strings.Join(parts, " ")
}

// cvText concatenates the analyzable CV fields.
func (b *base) cvText(cv *types.CVData) string {
	var parts []string
	if cv.PersonalInfo.Summary != "" {
		parts = append(parts, cv.PersonalInfo.Summary)
	}
	if cv.PersonalInfo.Name != "" {
		parts = append(parts, cv.PersonalInfo.Name)
	}
	for _, exp := range cv.Experience {
		parts = append(parts, exp.Position, exp.Employer)
		if len(exp.Responsibilities) > 0 {
			parts = append(parts, strings.Join(exp.Responsibilities, " "))
		}
		if len(exp.Achievements) > 0 {
			parts = append(parts, strings.Join(exp.Achievements, " "))
		}
	}
	for _, edu := range cv.Education {
		parts = append(parts, edu.Degree, edu.Field, edu.Institution)
	}
	for _, skill := range cv.Skills {
		parts = append(parts, skill.Name)
	}
	return strings.Join(parts, " ")
}

// overall combines the component scores with the configured weights and
// clamps the result to [0, 1].
func (b *base) overall(keywordScore, experienceScore, educationScore float64) float64 {
	score := keywordScore*b.opts.KeywordWeight +
		experienceScore*b.opts.ExperienceWeight +
		educationScore*b.opts.EducationWeight
	return min(1, max(0, score))
}
