// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobRecord represents a structured job description extracted from raw text.
// It is produced once per job description and immutable after creation.
type JobRecord struct {
	RoleTitle            string   `json:"role_title"`
	CoreResponsibilities []string `json:"core_responsibilities"`
	RequiredSkills       []string `json:"required_skills"`
	PreferredSkills      []string `json:"preferred_skills"`
	Keywords             []string `json:"keywords"`
	Seniority            string   `json:"seniority"`    // junior, mid, senior, lead
	Location             string   `json:"location"`
	CompanyType          string   `json:"company_type"` // startup, corporate, tech, consulting, ...
}

// AllSkills returns the union of required and preferred skills, in order,
// without duplicates.
func (j *JobRecord) AllSkills() []string {
	seen := make(map[string]bool)
	var skills []string
	for _, s := range append(append([]string{}, j.RequiredSkills...), j.PreferredSkills...) {
		if s != "" && !seen[s] {
			skills = append(skills, s)
			seen[s] = true
		}
	}
	return skills
}
