package analyzer

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/cv-match/internal/types"
)

// GenerateSuggestions turns scoring gaps into improvement suggestions.
// The rules are independent and additive; the output order follows the
// rule order here and is relied on by callers.
func GenerateSuggestions(cv *types.CVData, posting *types.JobPosting, missingKeywords []string) []string {
	suggestions := []string{}

	if len(missingKeywords) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Consider adding these keywords to your CV: %s", strings.Join(missingKeywords, ", ")))
	}

	cvSkills := make(map[string]struct{}, len(cv.Skills))
	for _, s := range cv.Skills {
		cvSkills[strings.ToLower(s.Name)] = struct{}{}
	}
	var missingSkills []string
	for _, skill := range posting.Skills {
		if _, ok := cvSkills[strings.ToLower(skill)]; !ok {
			missingSkills = append(missingSkills, skill)
		}
	}
	if len(missingSkills) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Add relevant skills: %s", strings.Join(missingSkills, ", ")))
	}

	cvYears, requiredYears, _ := ExperienceYears(cv, posting)
	if requiredYears > 0 && cvYears < float64(requiredYears) {
		suggestions = append(suggestions,
			fmt.Sprintf("The job requires %d years of experience, but your CV shows %d years.",
				requiredYears, int(math.Floor(cvYears))))
	}

	cvLevel, requiredLevel := EducationLevels(cv, posting)
	if requiredLevel > 0 && cvLevel < requiredLevel {
		suggestions = append(suggestions, "Your education level might be below the job requirements.")
	}

	if len(cv.Skills) == 0 {
		suggestions = append(suggestions, "Add a skills section to your CV.")
	}
	if len(cv.Experience) == 0 {
		suggestions = append(suggestions, "Add work experience to your CV.")
	}
	if len(cv.Education) == 0 {
		suggestions = append(suggestions, "Add education details to your CV.")
	}

	return suggestions
}
