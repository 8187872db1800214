package taxonomy

import "strings"

// Matcher resolves free-text skill mentions to canonical skill
// definitions and answers relatedness queries. All lookups are
// case-insensitive over both canonical names and aliases.
type Matcher struct {
	skills  map[string]SkillDefinition // canonical lowercase name -> definition
	aliases map[string]string          // alias lowercase -> canonical lowercase name
	order   []string                   // canonical lowercase names in insertion order
}

// NewMatcher builds a Matcher over the given skill definitions.
// A nil slice selects the built-in default taxonomy.
func NewMatcher(skills []SkillDefinition) *Matcher {
	if skills == nil {
		skills = DefaultSkills()
	}
	m := &Matcher{
		skills:  make(map[string]SkillDefinition, len(skills)),
		aliases: make(map[string]string),
		order:   make([]string, 0, len(skills)),
	}
	for _, s := range skills {
		key := strings.ToLower(s.Name)
		if _, exists := m.skills[key]; !exists {
			m.order = append(m.order, key)
		}
		m.skills[key] = s
		for _, alias := range s.Aliases {
			m.aliases[strings.ToLower(alias)] = key
		}
	}
	return m
}

// FindSkill resolves name against canonical names and aliases.
func (m *Matcher) FindSkill(name string) (SkillDefinition, bool) {
	key := strings.ToLower(name)
	if def, ok := m.skills[key]; ok {
		return def, true
	}
	if canonical, ok := m.aliases[key]; ok {
		if def, ok := m.skills[canonical]; ok {
			return def, true
		}
	}
	return SkillDefinition{}, false
}

// RelatedSkills resolves name, then resolves each entry in its related
// list. Unknown names and unresolvable related entries yield no results.
func (m *Matcher) RelatedSkills(name string) []SkillDefinition {
	def, ok := m.FindSkill(name)
	if !ok || len(def.Related) == 0 {
		return nil
	}
	related := make([]SkillDefinition, 0, len(def.Related))
	for _, r := range def.Related {
		if rd, ok := m.FindSkill(r); ok {
			related = append(related, rd)
		}
	}
	return related
}

// FindByCategory returns all definitions in the given category, in
// taxonomy insertion order.
func (m *Matcher) FindByCategory(category Category) []SkillDefinition {
	var defs []SkillDefinition
	for _, key := range m.order {
		if def := m.skills[key]; def.Category == category {
			defs = append(defs, def)
		}
	}
	return defs
}

// AreRelated reports whether the two names resolve to known definitions
// whose relatedness lists connect them in either direction. The stored
// graph is not guaranteed bidirectional, so either edge counts.
func (m *Matcher) AreRelated(a, b string) bool {
	defA, okA := m.FindSkill(a)
	defB, okB := m.FindSkill(b)
	if !okA || !okB {
		return false
	}
	return containsFold(defA.Related, defB.Name) || containsFold(defB.Related, defA.Name)
}

func containsFold(list []string, target string) bool {
	for _, s := range list {
		if strings.EqualFold(s, target) {
			return true
		}
	}
	return false
}
