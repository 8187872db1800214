// Package ingestion loads CVs and job postings from files and converts
// raw posting text into structured form.
package ingestion

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-match/internal/types"
)

var multiSpaceRe = regexp.MustCompile(`\s+`)
var blankLinesRe = regexp.MustCompile(`\n\n\n+`)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF to LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	// Max 2 consecutive blank lines
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Keep markdown headings as-is, normalize leading spaces to 0
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Preserve bullet lists with their indentation
	if isBulletLine(line) {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	// Regular lines: collapse runs of spaces, keep leading indentation
	leadingSpace := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// sectionHeadings maps normalized heading text to posting sections.
var sectionHeadings = map[string]string{
	"qualifications":       "qualifications",
	"requirements":         "qualifications",
	"what we look for":     "qualifications",
	"what you bring":       "qualifications",
	"responsibilities":     "responsibilities",
	"what you will do":     "responsibilities",
	"what you'll do":       "responsibilities",
	"duties":               "responsibilities",
	"skills":               "skills",
	"required skills":      "skills",
	"technical skills":     "skills",
	"about the role":       "description",
	"description":          "description",
	"about the job":        "description",
	"job description":      "description",
}

// ParsePosting converts cleaned free-text into a structured job posting.
// The first non-empty line becomes the title; recognized headings open
// qualification, responsibility, and skill sections whose bullet lines
// become list entries. Text outside recognized sections joins the
// description.
func ParsePosting(text string) *types.JobPosting {
	posting := &types.JobPosting{}
	posting.Normalize()

	text = CleanText(text)
	if text == "" {
		return posting
	}

	section := "description"
	var description []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if posting.Title == "" {
			posting.Title = strings.TrimLeft(line, "# ")
			continue
		}

		if name, ok := matchHeading(line); ok {
			section = name
			continue
		}

		item := strings.TrimLeft(line, "-*•· ")
		switch section {
		case "qualifications":
			posting.Qualifications = append(posting.Qualifications, item)
		case "responsibilities":
			posting.Responsibilities = append(posting.Responsibilities, item)
		case "skills":
			// Skill sections often pack several skills on one line.
			for _, skill := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ';' }) {
				if skill = strings.TrimSpace(skill); skill != "" {
					posting.Skills = append(posting.Skills, skill)
				}
			}
		default:
			description = append(description, line)
		}
	}
	posting.Description = strings.Join(description, "\n")
	return posting
}

// matchHeading reports whether the line is a recognized section heading.
func matchHeading(line string) (string, bool) {
	heading := strings.ToLower(strings.TrimSpace(strings.TrimLeft(line, "# ")))
	heading = strings.TrimSuffix(heading, ":")
	name, ok := sectionHeadings[heading]
	return name, ok
}
