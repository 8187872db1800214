package analyzer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/cv-match/internal/keywords"
	"github.com/jonathan/cv-match/internal/types"
)

// educationLevels maps degree keywords to ordinal levels. Matching is
// case-insensitive substring over free-text degree fields.
var educationLevels = map[string]int{
	"high school": 1,
	"associate":   2,
	"bachelor":    3,
	"master":      4,
	"phd":         5,
	"doctorate":   5,
}

// EducationLevels returns the highest education level held by the CV and
// the level required by the posting. Qualifications are scanned before
// the description; when neither names a level the requirement defaults
// to 1 (high school baseline) so education scoring never divides by zero.
func EducationLevels(cv *types.CVData, posting *types.JobPosting) (cvLevel, requiredLevel int) {
	for _, edu := range cv.Education {
		if level := findEducationLevel(edu.Degree); level > cvLevel {
			cvLevel = level
		}
	}
	for _, qual := range posting.Qualifications {
		if level := findEducationLevel(qual); level > requiredLevel {
			requiredLevel = level
		}
	}
	if requiredLevel == 0 && posting.Description != "" {
		requiredLevel = findEducationLevel(posting.Description)
	}
	if requiredLevel == 0 {
		requiredLevel = 1
	}
	return cvLevel, requiredLevel
}

func findEducationLevel(text string) int {
	lower := strings.ToLower(text)
	level := 0
	for keyword, value := range educationLevels {
		if strings.Contains(lower, keyword) && value > level {
			level = value
		}
	}
	return level
}

// requiredYearsPatterns are checked in order against the description and
// each qualification; the maximum captured value wins.
var requiredYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of)?\s*experience`),
	regexp.MustCompile(`(?i)experience\s*(?:of)?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*\+\s*years?\s*(?:of)?\s*experience`),
	regexp.MustCompile(`(?i)minimum\s*(?:of)?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)at\s*least\s*(\d+)\+?\s*years?`),
}

// dateFormats are tried in order when parsing experience entry dates.
var dateFormats = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	"Jan 2006",
	"January 2006",
	"01/2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ExperienceYears returns the total fractional years of experience on the
// CV and the years required by the posting. found is false when no
// requirement pattern matched anywhere; requiredYears is 0 in that case.
// "No requirement stated" and "requirement of zero years" score
// identically (neutral).
func ExperienceYears(cv *types.CVData, posting *types.JobPosting) (cvYears float64, requiredYears int, found bool) {
	now := time.Now()
	for _, exp := range cv.Experience {
		start, ok := parseDate(exp.StartDate)
		if !ok {
			continue
		}
		end := now
		if exp.EndDate != "" {
			parsed, ok := parseDate(exp.EndDate)
			if !ok {
				continue
			}
			end = parsed
		}
		years := float64(end.Year()-start.Year()) + float64(int(end.Month())-int(start.Month()))/12
		if years > 0 {
			cvYears += years
		}
	}

	check := func(text string) {
		for _, pat := range requiredYearsPatterns {
			m := pat.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			if n, err := strconv.Atoi(m[1]); err == nil {
				if n > requiredYears {
					requiredYears = n
				}
				found = true
			}
		}
	}
	if posting.Description != "" {
		check(posting.Description)
	}
	for _, qual := range posting.Qualifications {
		check(qual)
	}
	if !found {
		requiredYears = 0
	}
	return cvYears, requiredYears, found
}

// KeywordMatching extracts keyword sets from both texts and partitions
// the job keywords into case-insensitive matches and missing. Both
// returned lists are lowercased.
func KeywordMatching(cvText, jobText string, stop keywords.StopWords) (matches, missing []string) {
	jobKeywords := keywords.Extract(jobText, stop)
	cvKeywords := keywords.Extract(cvText, stop)

	cvLower := make(map[string]struct{}, len(cvKeywords))
	for _, k := range cvKeywords {
		cvLower[strings.ToLower(k)] = struct{}{}
	}

	matches = []string{}
	missing = []string{}
	for _, k := range jobKeywords {
		if _, ok := cvLower[strings.ToLower(k)]; ok {
			matches = append(matches, strings.ToLower(k))
		} else {
			missing = append(missing, strings.ToLower(k))
		}
	}
	return matches, missing
}

// experienceScore is min(1, cvYears/requiredYears), or a neutral 0.5
// when no requirement applies.
func experienceScore(cvYears float64, requiredYears int) float64 {
	if requiredYears > 0 {
		return min(1, cvYears/float64(requiredYears))
	}
	return 0.5
}

// educationScore mirrors experienceScore. The neutral branch is kept for
// parity even though EducationLevels floors the requirement at 1.
func educationScore(cvLevel, requiredLevel int) float64 {
	if requiredLevel > 0 {
		return min(1, float64(cvLevel)/float64(requiredLevel))
	}
	return 0.5
}
