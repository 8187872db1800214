// Package scoring combines four weighted dimension scores (keywords,
// experience, education, skills) into one overall CV score.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/cv-match/internal/analyzer"
	"github.com/jonathan/cv-match/internal/keywords"
	"github.com/jonathan/cv-match/internal/taxonomy"
	"github.com/jonathan/cv-match/internal/types"
)

// Criteria holds the dimension weights. Zero values select the defaults.
// These weights are independent of the analyzer's weights.
type Criteria struct {
	KeywordWeight    float64
	ExperienceWeight float64
	EducationWeight  float64
	SkillsWeight     float64
}

// Default scoring weights.
const (
	defaultKeywordWeight    = 0.4
	defaultExperienceWeight = 0.3
	defaultEducationWeight  = 0.2
	defaultSkillsWeight     = 0.1
)

func (c Criteria) withDefaults() Criteria {
	if c.KeywordWeight == 0 && c.ExperienceWeight == 0 && c.EducationWeight == 0 && c.SkillsWeight == 0 {
		c.KeywordWeight = defaultKeywordWeight
		c.ExperienceWeight = defaultExperienceWeight
		c.EducationWeight = defaultEducationWeight
		c.SkillsWeight = defaultSkillsWeight
	}
	return c
}

// SectionScore is one dimension's score with its supporting evidence.
type SectionScore struct {
	Score       float64  `json:"score"`
	Matches     []string `json:"matches"`
	Missing     []string `json:"missing"`
	Suggestions []string `json:"suggestions"`
}

// CVScore is the weighted overall score plus per-dimension breakdowns.
type CVScore struct {
	Overall    float64      `json:"overall"`
	Keywords   SectionScore `json:"keywords"`
	Experience SectionScore `json:"experience"`
	Education  SectionScore `json:"education"`
	Skills     SectionScore `json:"skills"`
}

// Engine scores a CV against a posting across the four dimensions.
type Engine struct {
	weights Criteria
	matcher *taxonomy.Matcher
	stop    keywords.StopWords
}

// NewEngine builds a scoring engine. A nil matcher selects the default
// taxonomy.
func NewEngine(criteria Criteria, matcher *taxonomy.Matcher) *Engine {
	if matcher == nil {
		matcher = taxonomy.NewMatcher(nil)
	}
	return &Engine{
		weights: criteria.withDefaults(),
		matcher: matcher,
		stop:    keywords.DefaultStopWords(),
	}
}

// Score scores cv against posting. Like the analyzer, it never fails:
// degenerate input produces low scores, not errors.
func (e *Engine) Score(cv *types.CVData, posting *types.JobPosting) CVScore {
	if cv == nil || posting == nil {
		empty := SectionScore{Matches: []string{}, Missing: []string{}, Suggestions: []string{}}
		return CVScore{Keywords: empty, Experience: empty, Education: empty, Skills: empty}
	}

	kw := e.scoreKeywords(cv, posting)
	exp := e.scoreExperience(cv, posting)
	edu := e.scoreEducation(cv, posting)
	skills := e.scoreSkills(cv, posting)

	overall := kw.Score*e.weights.KeywordWeight +
		exp.Score*e.weights.ExperienceWeight +
		edu.Score*e.weights.EducationWeight +
		skills.Score*e.weights.SkillsWeight

	return CVScore{
		Overall:    min(1, max(0, overall)),
		Keywords:   kw,
		Experience: exp,
		Education:  edu,
		Skills:     skills,
	}
}

func (e *Engine) scoreKeywords(cv *types.CVData, posting *types.JobPosting) SectionScore {
	cvText := cvScoringText(cv)
	jobText := jobScoringText(posting)

	matches, missing := analyzer.KeywordMatching(cvText, jobText, e.stop)

	score := 0.0
	if denom := len(matches) + len(missing); denom > 0 {
		score = float64(len(matches)) / float64(denom)
	}
	suggestions := []string{}
	if len(missing) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Add missing keywords: %s", strings.Join(missing, ", ")))
	}
	return SectionScore{Score: score, Matches: matches, Missing: missing, Suggestions: suggestions}
}

func (e *Engine) scoreExperience(cv *types.CVData, posting *types.JobPosting) SectionScore {
	cvYears, requiredYears, found := analyzer.ExperienceYears(cv, posting)

	score := 0.5 // neutral when the posting states no requirement
	if found && requiredYears > 0 {
		score = min(1, cvYears/float64(requiredYears))
	}

	matches := []string{fmt.Sprintf("%d years of experience", int(math.Floor(cvYears)))}
	missing := []string{}
	suggestions := []string{}
	if found && cvYears < float64(requiredYears) {
		missing = append(missing, fmt.Sprintf("%d more years needed", requiredYears-int(math.Floor(cvYears))))
		suggestions = append(suggestions,
			fmt.Sprintf("Job requires %d years of experience, you have %d", requiredYears, int(math.Floor(cvYears))))
	}
	return SectionScore{Score: score, Matches: matches, Missing: missing, Suggestions: suggestions}
}

func (e *Engine) scoreEducation(cv *types.CVData, posting *types.JobPosting) SectionScore {
	cvLevel, requiredLevel := analyzer.EducationLevels(cv, posting)

	score := 0.5
	if requiredLevel > 0 {
		score = min(1, float64(cvLevel)/float64(requiredLevel))
	}

	matches := []string{}
	for _, edu := range cv.Education {
		matches = append(matches, edu.Degree)
	}
	missing := []string{}
	suggestions := []string{}
	if cvLevel < requiredLevel {
		missing = append(missing, "required education level not met")
		suggestions = append(suggestions, "Your education level might be below the job requirements.")
	}
	return SectionScore{Score: score, Matches: matches, Missing: missing, Suggestions: suggestions}
}

func (e *Engine) scoreSkills(cv *types.CVData, posting *types.JobPosting) SectionScore {
	required := posting.Skills
	if len(required) == 0 {
		return SectionScore{Score: 1, Matches: []string{}, Missing: []string{}, Suggestions: []string{}}
	}

	cvSkills := make(map[string]struct{}, len(cv.Skills))
	for _, s := range cv.Skills {
		cvSkills[strings.ToLower(s.Name)] = struct{}{}
	}

	matches := []string{}
	missing := []string{}
	suggestions := []string{}
	for _, skill := range required {
		name := skill
		// Prefer the taxonomy's canonical casing when the skill is known.
		if def, ok := e.matcher.FindSkill(skill); ok {
			name = def.Name
		}
		if e.cvHasSkill(cvSkills, skill) {
			matches = append(matches, name)
		} else {
			missing = append(missing, name)
			suggestions = append(suggestions, fmt.Sprintf("Add missing skill: %s", name))
		}
	}

	return SectionScore{
		Score:       float64(len(matches)) / float64(len(required)),
		Matches:     matches,
		Missing:     missing,
		Suggestions: suggestions,
	}
}

// cvHasSkill checks the required skill (and its taxonomy aliases) against
// the CV's skill names, case-insensitively.
func (e *Engine) cvHasSkill(cvSkills map[string]struct{}, required string) bool {
	if _, ok := cvSkills[strings.ToLower(required)]; ok {
		return true
	}
	if def, ok := e.matcher.FindSkill(required); ok {
		if _, ok := cvSkills[strings.ToLower(def.Name)]; ok {
			return true
		}
		for _, alias := range def.Aliases {
			if _, ok := cvSkills[strings.ToLower(alias)]; ok {
				return true
			}
		}
	}
	return false
}

// cvScoringText gathers the CV fields considered for keyword scoring.
func cvScoringText(cv *types.CVData) string {
	var parts []string
	if cv.PersonalInfo.Name != "" {
		parts = append(parts, cv.PersonalInfo.Name)
	}
	for _, exp := range cv.Experience {
		parts = append(parts, exp.Position, exp.Employer)
		parts = append(parts, exp.Responsibilities...)
	}
	for _, edu := range cv.Education {
		parts = append(parts, edu.Degree, edu.Field)
	}
	for _, s := range cv.Skills {
		parts = append(parts, s.Name)
	}
	return strings.Join(parts, " ")
}

// jobScoringText gathers the posting fields considered for keyword scoring.
func jobScoringText(posting *types.JobPosting) string {
	var parts []string
	if posting.Title != "" {
		parts = append(parts, posting.Title)
	}
	if posting.Description != "" {
		parts = append(parts, posting.Description)
	}
	parts = append(parts, posting.Responsibilities...)
	parts = append(parts, posting.Qualifications...)
	return strings.Join(parts, " ")
}
