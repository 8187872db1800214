// Package types provides type definitions for structured data used throughout the cv-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CVData represents a candidate profile consumed read-only by the analysis engine.
// Produced by an external CV source (markdown parser, storage layer, manual JSON).
type CVData struct {
	PersonalInfo PersonalInfo      `json:"personal_info"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []SkillEntry      `json:"skills"`
}

// PersonalInfo holds the candidate's identity and contact details.
type PersonalInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// ExperienceEntry represents a single work experience item.
type ExperienceEntry struct {
	Position         string   `json:"position"`
	Employer         string   `json:"employer"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date,omitempty"` // empty means ongoing
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
}

// EducationEntry represents a degree held by the candidate.
// Degree is free text; level detection is substring-based downstream.
type EducationEntry struct {
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduation_date,omitempty"`
}

// SkillEntry represents a single named skill on the CV.
type SkillEntry struct {
	Name     string `json:"name"`
	Level    string `json:"level,omitempty"`
	Category string `json:"category,omitempty"`
}

// Normalize replaces nil slices with empty slices so scoring code never
// needs nil checks on optional arrays.
func (cv *CVData) Normalize() {
	if cv.Experience == nil {
		cv.Experience = []ExperienceEntry{}
	}
	if cv.Education == nil {
		cv.Education = []EducationEntry{}
	}
	if cv.Skills == nil {
		cv.Skills = []SkillEntry{}
	}
	for i := range cv.Experience {
		if cv.Experience[i].Responsibilities == nil {
			cv.Experience[i].Responsibilities = []string{}
		}
		if cv.Experience[i].Achievements == nil {
			cv.Experience[i].Achievements = []string{}
		}
	}
}

// IsEmpty reports whether the CV is missing all critical sections.
func (cv *CVData) IsEmpty() bool {
	return len(cv.Experience) == 0 && len(cv.Education) == 0 && len(cv.Skills) == 0
}
