package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-match/internal/keywords"
	"github.com/jonathan/cv-match/internal/types"
)

func TestEducationLevels_HighestCVDegreeWins(t *testing.T) {
	cv := &types.CVData{
		Education: []types.EducationEntry{
			{Degree: "Bachelor of Arts", Field: "History"},
			{Degree: "Master of Science", Field: "Computer Science"},
		},
	}
	posting := &types.JobPosting{Description: "Bachelor degree required"}

	cvLevel, requiredLevel := EducationLevels(cv, posting)

	assert.Equal(t, 4, cvLevel)
	assert.Equal(t, 3, requiredLevel)
}

func TestEducationLevels_QualificationsScannedBeforeDescription(t *testing.T) {
	cv := &types.CVData{}
	posting := &types.JobPosting{
		Description:    "PhD preferred",
		Qualifications: []string{"Bachelor degree in a technical field"},
	}

	_, requiredLevel := EducationLevels(cv, posting)

	// The qualifications match wins; the description is not consulted.
	assert.Equal(t, 3, requiredLevel)
}

func TestEducationLevels_DescriptionFallback(t *testing.T) {
	posting := &types.JobPosting{
		Description:    "Doctorate strongly preferred",
		Qualifications: []string{"Solid communication"},
	}

	_, requiredLevel := EducationLevels(&types.CVData{}, posting)

	assert.Equal(t, 5, requiredLevel)
}

func TestEducationLevels_DefaultsToHighSchoolBaseline(t *testing.T) {
	posting := &types.JobPosting{Description: "No formal requirements"}

	cvLevel, requiredLevel := EducationLevels(&types.CVData{}, posting)

	assert.Equal(t, 0, cvLevel)
	assert.Equal(t, 1, requiredLevel)
}

func TestEducationLevels_UnrecognizedDegreeContributesNothing(t *testing.T) {
	cv := &types.CVData{
		Education: []types.EducationEntry{{Degree: "Certificate of Attendance"}},
	}

	cvLevel, _ := EducationLevels(cv, &types.JobPosting{Description: "x"})

	assert.Equal(t, 0, cvLevel)
}

func TestExperienceYears_MonthGranularity(t *testing.T) {
	cv := &types.CVData{
		Experience: []types.ExperienceEntry{
			{Position: "Engineer", Employer: "Acme", StartDate: "2018-01", EndDate: "2023-01"},
		},
	}

	cvYears, _, _ := ExperienceYears(cv, &types.JobPosting{})

	assert.InDelta(t, 5.0, cvYears, 0.01)
}

func TestExperienceYears_SumsEntries(t *testing.T) {
	cv := &types.CVData{
		Experience: []types.ExperienceEntry{
			{StartDate: "2015-06", EndDate: "2017-06"},
			{StartDate: "2019-01", EndDate: "2020-07"},
		},
	}

	cvYears, _, _ := ExperienceYears(cv, &types.JobPosting{})

	assert.InDelta(t, 3.5, cvYears, 0.01)
}

func TestExperienceYears_OngoingEntryCountsUntilNow(t *testing.T) {
	cv := &types.CVData{
		Experience: []types.ExperienceEntry{{StartDate: "2020-01"}},
	}

	cvYears, _, _ := ExperienceYears(cv, &types.JobPosting{})

	assert.Greater(t, cvYears, 4.0)
}

func TestExperienceYears_UnparseableDateContributesNothing(t *testing.T) {
	cv := &types.CVData{
		Experience: []types.ExperienceEntry{
			{StartDate: "when I was young", EndDate: "2020-01"},
			{StartDate: ""},
		},
	}

	cvYears, _, _ := ExperienceYears(cv, &types.JobPosting{})

	assert.Equal(t, 0.0, cvYears)
}

func TestExperienceYears_RequiredFromDescription(t *testing.T) {
	posting := &types.JobPosting{Description: "We need 5+ years of experience with Go."}

	_, requiredYears, found := ExperienceYears(&types.CVData{}, posting)

	assert.True(t, found)
	assert.Equal(t, 5, requiredYears)
}

func TestExperienceYears_RequiredFromQualifications(t *testing.T) {
	posting := &types.JobPosting{
		Qualifications: []string{"Great attitude", "minimum of 7 years in backend work"},
	}

	_, requiredYears, found := ExperienceYears(&types.CVData{}, posting)

	assert.True(t, found)
	assert.Equal(t, 7, requiredYears)
}

func TestExperienceYears_AlternatePhrasing(t *testing.T) {
	posting := &types.JobPosting{Description: "Prior experience of 4 years is expected."}

	_, requiredYears, found := ExperienceYears(&types.CVData{}, posting)

	assert.True(t, found)
	assert.Equal(t, 4, requiredYears)
}

func TestExperienceYears_MaxAcrossMatches(t *testing.T) {
	posting := &types.JobPosting{
		Description:    "3 years of experience minimum",
		Qualifications: []string{"at least 6 years"},
	}

	_, requiredYears, _ := ExperienceYears(&types.CVData{}, posting)

	assert.Equal(t, 6, requiredYears)
}

func TestExperienceYears_NoRequirementStated(t *testing.T) {
	posting := &types.JobPosting{Description: "Join our friendly engineering group."}

	_, requiredYears, found := ExperienceYears(&types.CVData{}, posting)

	assert.False(t, found)
	assert.Equal(t, 0, requiredYears)
}

func TestKeywordMatching_PartitionsAndLowercases(t *testing.T) {
	matches, missing := KeywordMatching(
		"Built services with Docker and PostgreSQL",
		"Looking for Docker and Kubernetes expertise",
		keywords.DefaultStopWords(),
	)

	assert.Contains(t, matches, "docker")
	assert.Contains(t, missing, "kubernetes")
	assert.NotContains(t, missing, "docker")
}

func TestExperienceScore_NeutralWithoutRequirement(t *testing.T) {
	assert.Equal(t, 0.5, experienceScore(10, 0))
}

func TestExperienceScore_CappedAtOne(t *testing.T) {
	assert.Equal(t, 1.0, experienceScore(12, 5))
	assert.InDelta(t, 0.4, experienceScore(2, 5), 0.001)
}

func TestEducationScore_CappedAtOne(t *testing.T) {
	assert.Equal(t, 1.0, educationScore(5, 1))
	assert.InDelta(t, 0.2, educationScore(1, 5), 0.001)
}
