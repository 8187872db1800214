package analyzer

import "github.com/jonathan/cv-match/internal/types"

// Classic scores keyword overlap as the ratio of matched job keywords to
// all job keywords.
type Classic struct {
	base
}

// NewClassic builds the classic analyzer variant.
func NewClassic(opts Options) *Classic {
	return &Classic{base: newBase(opts)}
}

// Analyze implements Analyzer.
func (a *Classic) Analyze(cv *types.CVData, posting *types.JobPosting) Result {
	if early := a.validate(cv, posting); early != nil {
		return *early
	}

	jobText := a.jobText(posting)
	cvText := a.cvText(cv)

	matches, missing := KeywordMatching(cvText, jobText, a.stop)

	keywordScore := 0.0
	if total := len(matches) + len(missing); total > 0 {
		keywordScore = float64(len(matches)) / float64(total)
	}
	cvYears, requiredYears, _ := ExperienceYears(cv, posting)
	cvLevel, requiredLevel := EducationLevels(cv, posting)

	return Result{
		Score:            a.overall(keywordScore, experienceScore(cvYears, requiredYears), educationScore(cvLevel, requiredLevel)),
		KeywordMatches:   matches,
		MissingKeywords:  missing,
		Suggestions:      GenerateSuggestions(cv, posting, missing),
		FormattingIssues: []string{},
	}
}
