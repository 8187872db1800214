package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-match/internal/types"
)

func fixtureCV() *types.CVData {
	return &types.CVData{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe", Title: "Senior Frontend Engineer"},
		Experience: []types.ExperienceEntry{
			{
				Position:         "Frontend Engineer",
				Employer:         "Acme",
				StartDate:        "2018-01",
				EndDate:          "2023-01",
				Responsibilities: []string{"Built React components with TypeScript", "Wrote Jest suites"},
			},
		},
		Education: []types.EducationEntry{
			{Degree: "Master of Science", Field: "Computer Science", Institution: "State University"},
		},
		Skills: []types.SkillEntry{
			{Name: "React"}, {Name: "TypeScript"}, {Name: "Node.js"}, {Name: "Jest"},
		},
	}
}

func fixturePosting() *types.JobPosting {
	return &types.JobPosting{
		Title:       "Senior Frontend Engineer",
		Company:     "Globex",
		Description: "Build rich interfaces with React and TypeScript.",
		Qualifications: []string{
			"5+ years of experience",
			"Master degree in Computer Science",
		},
		Skills: []string{"TypeScript", "React", "Node.js", "Jest", "Docker", "Kubernetes"},
	}
}

func TestAnalyze_StrongCandidate(t *testing.T) {
	e := New(Options{})

	result := e.Analyze(context.Background(), fixtureCV(), fixturePosting())

	assert.Greater(t, result.Score, 0.5)
	assert.Contains(t, result.Analysis.KeywordMatches, "typescript")
	assert.Contains(t, result.Analysis.KeywordMatches, "react")
	assert.Contains(t, result.Analysis.MissingKeywords, "docker")
	assert.Contains(t, result.Analysis.MissingKeywords, "kubernetes")

	skills := make([]string, len(result.MissingSkills))
	for i, ms := range result.MissingSkills {
		skills[i] = ms.Skill
	}
	assert.Equal(t, []string{"Docker", "Kubernetes"}, skills)
}

func TestAnalyze_InvalidInputDegradesToZero(t *testing.T) {
	e := New(Options{})

	result := e.Analyze(context.Background(), nil, nil)

	assert.Equal(t, 0.0, result.Score)
	assert.Contains(t, result.Analysis.Suggestions, "CV or job posting is missing.")
}

func TestAnalyze_MergedSuggestionsDeduplicated(t *testing.T) {
	e := New(Options{})

	result := e.Analyze(context.Background(), fixtureCV(), fixturePosting())

	seen := make(map[string]int)
	for _, s := range result.Suggestions {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, "duplicate suggestion: %s", s)
	}
}

func TestAnalyze_MissingTitlePrompt(t *testing.T) {
	e := New(Options{})
	cv := fixtureCV()
	cv.PersonalInfo.Title = ""

	result := e.Analyze(context.Background(), cv, fixturePosting())

	assert.Contains(t, result.Suggestions, "Add a professional title to your CV")
}

func TestAnalyze_AlternativesForKnownMissingSkills(t *testing.T) {
	e := New(Options{})
	cv := fixtureCV()
	cv.Skills = []types.SkillEntry{{Name: "JavaScript"}}
	posting := fixturePosting()
	posting.Skills = []string{"TypeScript"}

	result := e.Analyze(context.Background(), cv, posting)

	require.Len(t, result.MissingSkills, 1)
	require.Len(t, result.MissingSkills[0].Alternatives, 1)
	assert.Equal(t, "JavaScript", result.MissingSkills[0].Alternatives[0].Name)
	assert.Contains(t, result.Suggestions, `Consider adding "TypeScript" or related skills: JavaScript`)
}

func TestAnalyze_UnknownMissingSkillHasNoAlternatives(t *testing.T) {
	e := New(Options{})
	posting := fixturePosting()
	posting.Skills = []string{"Befunge"}

	result := e.Analyze(context.Background(), fixtureCV(), posting)

	require.Len(t, result.MissingSkills, 1)
	assert.Empty(t, result.MissingSkills[0].Alternatives)
}

type stubRefiner struct {
	out []string
	err error
}

func (s *stubRefiner) Refine(_ context.Context, _ []string) ([]string, error) {
	return s.out, s.err
}

func TestAnalyze_RefinerRewritesSuggestions(t *testing.T) {
	e := New(Options{Refiner: &stubRefiner{out: []string{"polished advice"}}})

	result := e.Analyze(context.Background(), fixtureCV(), fixturePosting())

	assert.Equal(t, []string{"polished advice"}, result.Suggestions)
}

func TestAnalyze_RefinerFailureFallsBack(t *testing.T) {
	plain := New(Options{})
	failing := New(Options{Refiner: &stubRefiner{err: errors.New("quota exceeded")}})

	want := plain.Analyze(context.Background(), fixtureCV(), fixturePosting())
	got := failing.Analyze(context.Background(), fixtureCV(), fixturePosting())

	assert.Equal(t, want.Suggestions, got.Suggestions)
}

func TestAnalyzeAll_PreservesOrder(t *testing.T) {
	e := New(Options{})
	postings := []*types.JobPosting{
		fixturePosting(),
		{Title: "Engineer"}, // empty posting
		fixturePosting(),
	}

	results, err := e.AnalyzeAll(context.Background(), fixtureCV(), postings)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Greater(t, results[0].Score, 0.0)
	assert.Equal(t, 0.0, results[1].Score)
	assert.Equal(t, results[0], results[2])
}

func TestAnalyzeAll_CancelledContext(t *testing.T) {
	e := New(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.AnalyzeAll(ctx, fixtureCV(), []*types.JobPosting{fixturePosting()})

	assert.Error(t, err)
}

func TestMeetsRequirements(t *testing.T) {
	e := New(Options{})

	assert.True(t, e.MeetsRequirements(fixtureCV(), fixturePosting()))
	assert.False(t, e.MeetsRequirements(&types.CVData{}, fixturePosting()))
}

func TestMeetsRequirements_CustomThreshold(t *testing.T) {
	strict := New(Options{MinimumScore: 0.99})

	assert.False(t, strict.MeetsRequirements(fixtureCV(), fixturePosting()))
}

func TestUseTFIDFVariant(t *testing.T) {
	e := New(Options{UseTFIDF: true})

	result := e.Analyze(context.Background(), fixtureCV(), fixturePosting())

	assert.Contains(t, result.Analysis.KeywordMatches, "typescript")
	assert.Contains(t, result.Analysis.MissingKeywords, "docker")
}
