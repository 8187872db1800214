package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/cv-match/internal/keywords"
	"github.com/jonathan/cv-match/internal/types"
)

var wordRe = regexp.MustCompile(`[A-Za-z0-9_]+`)

// tokenize splits text into word tokens.
func tokenize(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// corpus is a minimal TF-IDF document collection built fresh per
// analysis. Its weights are not yet folded into the keyword score; the
// corpus is kept as the extension point for relevance weighting.
type corpus struct {
	docs []map[string]int
}

func (c *corpus) add(text string) {
	counts := make(map[string]int)
	for _, token := range tokenize(strings.ToLower(text)) {
		counts[token]++
	}
	c.docs = append(c.docs, counts)
}

// tfidf returns the term's TF-IDF weight in the given document.
func (c *corpus) tfidf(term string, doc int) float64 {
	if doc < 0 || doc >= len(c.docs) {
		return 0
	}
	term = strings.ToLower(term)
	tf := float64(c.docs[doc][term])
	if tf == 0 {
		return 0
	}
	containing := 0
	for _, d := range c.docs {
		if d[term] > 0 {
			containing++
		}
	}
	idf := math.Log(float64(len(c.docs))/float64(containing)) + 1
	return tf * idf
}

// TFIDF is the tokenizer-backed analyzer variant. It matches job keywords
// against the CV token set (falling back to substring containment) and
// builds a TF-IDF corpus over both documents.
type TFIDF struct {
	base
}

// NewTFIDF builds the TF-IDF analyzer variant.
func NewTFIDF(opts Options) *TFIDF {
	return &TFIDF{base: newBase(opts)}
}

// Analyze implements Analyzer.
func (a *TFIDF) Analyze(cv *types.CVData, posting *types.JobPosting) Result {
	if early := a.validate(cv, posting); early != nil {
		return *early
	}

	cvText := a.cvText(cv)
	jobText := a.jobText(posting)

	c := &corpus{}
	c.add(cvText)
	c.add(jobText)

	jobKeywords := keywords.Extract(jobText, a.stop)
	cvTokens := make(map[string]struct{})
	for _, token := range tokenize(cvText) {
		cvTokens[strings.ToLower(token)] = struct{}{}
	}
	cvTextLower := strings.ToLower(cvText)

	existsInCV := func(keyword string) bool {
		lower := strings.ToLower(keyword)
		if _, ok := cvTokens[lower]; ok {
			return true
		}
		return strings.Contains(cvTextLower, lower)
	}

	// Distinct lowercase keyword forms, first occurrence wins.
	seen := make(map[string]struct{}, len(jobKeywords))
	matches := []string{}
	missing := []string{}
	for _, keyword := range jobKeywords {
		lower := strings.ToLower(keyword)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		if existsInCV(keyword) {
			matches = append(matches, lower)
		} else {
			missing = append(missing, lower)
		}
	}

	keywordScore := 0.0
	if len(jobKeywords) > 0 {
		keywordScore = float64(len(matches)) / float64(len(jobKeywords))
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
