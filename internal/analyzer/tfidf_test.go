package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-match/internal/types"
)

func TestTFIDF_TerminalStatesMatchClassic(t *testing.T) {
	a := NewTFIDF(Options{})

	missing := a.Analyze(nil, nil)
	assert.Equal(t, []string{"CV or job posting is missing."}, missing.Suggestions)

	emptyPosting := a.Analyze(sampleCV(), &types.JobPosting{Title: "Engineer"})
	assert.Equal(t, 0.0, emptyPosting.Score)
	assert.Empty(t, emptyPosting.MissingKeywords)
	assert.Equal(t, []string{"The job posting is empty. Add job details for analysis."}, emptyPosting.Suggestions)

	emptyCV := a.Analyze(&types.CVData{}, samplePosting())
	assert.Equal(t, 0.0, emptyCV.Score)
	assert.NotEmpty(t, emptyCV.MissingKeywords)
	assert.Equal(t, []string{"CV is empty or missing critical sections."}, emptyCV.Suggestions)
}

func TestTFIDF_MatchesAreLowercase(t *testing.T) {
	a := NewTFIDF(Options{})

	result := a.Analyze(sampleCV(), samplePosting())

	require.NotEmpty(t, result.KeywordMatches)
	for _, k := range append(result.KeywordMatches, result.MissingKeywords...) {
		assert.Equal(t, strings.ToLower(k), k)
	}
	assert.Contains(t, result.KeywordMatches, "typescript")
	assert.Contains(t, result.MissingKeywords, "docker")
}

func TestTFIDF_SubstringFallbackMatchesCompoundTerms(t *testing.T) {
	// "Node.js" never appears as one token; containment must still match.
	cv := &types.CVData{
		PersonalInfo: types.PersonalInfo{Summary: "Backend services in Node.js"},
		Skills:       []types.SkillEntry{{Name: "Node.js"}},
	}
	posting := &types.JobPosting{Description: "We run Node.js services."}

	result := NewTFIDF(Options{}).Analyze(cv, posting)

	assert.Contains(t, result.KeywordMatches, "node.js")
	assert.NotContains(t, result.MissingKeywords, "node.js")
}

func TestTFIDF_ScoreBoundedAndDeterministic(t *testing.T) {
	a := NewTFIDF(Options{})

	first := a.Analyze(sampleCV(), samplePosting())
	second := a.Analyze(sampleCV(), samplePosting())

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first.Score, 0.0)
	assert.LessOrEqual(t, first.Score, 1.0)
}

func TestCorpus_TermWeights(t *testing.T) {
	c := &corpus{}
	c.add("go go postgres")
	c.add("rust tooling")

	// Term present only in one of two documents: tf=2, idf=ln(2)+1.
	assert.InDelta(t, 2*(0.6931+1), c.tfidf("go", 0), 0.01)
	// Absent term and out-of-range document index weigh zero.
	assert.Equal(t, 0.0, c.tfidf("go", 1))
	assert.Equal(t, 0.0, c.tfidf("go", 5))
}
