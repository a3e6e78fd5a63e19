//nolint:revive // types is a standard Go package name pattern
package types

// DocumentRecord represents the structured content extracted from the
// LaTeX CV template. Immutable after creation.
type DocumentRecord struct {
	Header   DocumentHeader   `json:"header"`
	Sections DocumentSections `json:"sections"`
}

// DocumentHeader holds the candidate identity from the top of the document.
type DocumentHeader struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// DocumentSections holds the sectioned lists of the document body.
type DocumentSections struct {
	Education    []EducationEntry    `json:"education"`
	Experience   []ExperienceEntry   `json:"experience"`
	Skills       map[string][]string `json:"skills"` // category -> skill names
	Projects     []ProjectEntry      `json:"projects"`
	Achievements []string            `json:"achievements"`
}

// EducationEntry represents one education item.
type EducationEntry struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Dates        string   `json:"dates"`
	Achievements []string `json:"achievements"`
}

// ExperienceEntry represents one work experience item.
type ExperienceEntry struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Dates   string   `json:"dates"`
	Bullets []string `json:"bullets"`
}

// ProjectEntry represents one project item.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// SkillNames returns every skill across all categories, in no particular
// category order but deterministic within a category.
func (d *DocumentRecord) SkillNames() []string {
	var names []string
	for _, category := range []string{"programming", "databases", "frameworks", "tools"} {
		names = append(names, d.Sections.Skills[category]...)
	}
	for category, skills := range d.Sections.Skills {
		switch category {
		case "programming", "databases", "frameworks", "tools":
		default:
			names = append(names, skills...)
		}
	}
	return names
}
