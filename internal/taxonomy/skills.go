// Package taxonomy provides a lookup structure over named skills with
// aliases, categories, and a relatedness graph.
package taxonomy

// Category classifies a skill definition.
type Category string

// Skill categories.
const (
	CategoryProgramming   Category = "programming"
	CategoryDatabase      Category = "database"
	CategoryCloud         Category = "cloud"
	CategoryDevOps        Category = "devops"
	CategoryManagement    Category = "management"
	CategoryDesign        Category = "design"
	CategoryCommunication Category = "communication"
	CategorySoft          Category = "soft"
)

// SkillDefinition describes a canonical skill with its alternate
// spellings, category, and related skills (by canonical name).
type SkillDefinition struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
	Category Category `json:"category"`
	Related  []string `json:"related,omitempty"`
}

// DefaultSkills returns the built-in skill taxonomy used when a Matcher
// is constructed without custom definitions.
func DefaultSkills() []SkillDefinition {
	return []SkillDefinition{
		{
			Name:     "JavaScript",
			Aliases:  []string{"JS", "ECMAScript", "Node.js", "NodeJS"},
			Category: CategoryProgramming,
			Related:  []string{"TypeScript", "React", "Vue", "Angular"},
		},
		{
			Name:     "TypeScript",
			Aliases:  []string{"TS"},
			Category: CategoryProgramming,
			Related:  []string{"JavaScript", "Angular"},
		},
		{
			Name:     "Python",
			Aliases:  []string{"py"},
			Category: CategoryProgramming,
			Related:  []string{"Django", "Flask", "FastAPI"},
		},
		{
			Name:     "Go",
			Aliases:  []string{"Golang"},
			Category: CategoryProgramming,
			Related:  []string{"Docker", "Kubernetes"},
		},
		{
			Name:     "React",
			Aliases:  []string{"React.js", "ReactJS"},
			Category: CategoryProgramming,
			Related:  []string{"JavaScript", "TypeScript", "Redux"},
		},
		{
			Name:     "Vue",
			Aliases:  []string{"Vue.js", "VueJS"},
			Category: CategoryProgramming,
			Related:  []string{"JavaScript", "Vuex"},
		},
		{
			Name:     "PostgreSQL",
			Aliases:  []string{"Postgres", "PSQL"},
			Category: CategoryDatabase,
			Related:  []string{"SQL", "Database Design"},
		},
		{
			Name:     "MongoDB",
			Aliases:  []string{"Mongo", "Document DB"},
			Category: CategoryDatabase,
			Related:  []string{"NoSQL", "Database Design"},
		},
		{
			Name:     "AWS",
			Aliases:  []string{"Amazon Web Services", "Amazon Cloud"},
			Category: CategoryCloud,
			Related:  []string{"Cloud Computing", "DevOps"},
		},
		{
			Name:     "Azure",
			Aliases:  []string{"Microsoft Azure", "MS Azure"},
			Category: CategoryCloud,
			Related:  []string{"Cloud Computing", "DevOps"},
		},
		{
			Name:     "Docker",
			Aliases:  []string{"docker-ce"},
			Category: CategoryDevOps,
			Related:  []string{"Kubernetes", "CI/CD"},
		},
		{
			Name:     "Kubernetes",
			Aliases:  []string{"K8s"},
			Category: CategoryDevOps,
			Related:  []string{"Docker", "CI/CD"},
		},
		{
			Name:     "Leadership",
			Aliases:  []string{"Team Lead", "Project Lead"},
			Category: CategoryManagement,
			Related:  []string{"Management", "Team Building"},
		},
		{
			Name:     "Communication",
			Aliases:  []string{"Written Communication", "Verbal Communication"},
			Category: CategoryCommunication,
			Related:  []string{"Presentation", "Documentation"},
		},
	}
}
