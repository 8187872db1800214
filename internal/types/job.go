//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a job posting consumed read-only by the analysis engine.
// Produced by an external posting source (ingestion, scraper output, manual JSON).
type JobPosting struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Description      string   `json:"description"`
	Qualifications   []string `json:"qualifications,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	URL              string   `json:"url,omitempty"`
}

// Normalize replaces nil slices with empty slices so the empty-posting
// check and scoring code never need nil checks.
func (p *JobPosting) Normalize() {
	if p.Qualifications == nil {
		p.Qualifications = []string{}
	}
	if p.Responsibilities == nil {
		p.Responsibilities = []string{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
}

// IsEmpty reports whether the posting carries no analyzable content.
// A posting with only a title is still considered empty.
func (p *JobPosting) IsEmpty() bool {
	return p.Description == "" &&
		len(p.Responsibilities) == 0 &&
		len(p.Qualifications) == 0 &&
		len(p.Skills) == 0
}
