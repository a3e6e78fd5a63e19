//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// minJustificationLen is the minimum justification length for a section
// edit to be considered applicable.
const minJustificationLen = 10

// EditSet is the set of proposed changes to the template document.
type EditSet struct {
	SectionEdits      []SectionEdit     `json:"section_edits"`
	SkillAdditions    []SkillAddition   `json:"skill_additions"`
	ProjectReordering []ProjectPriority `json:"project_reordering"`
}

// SectionEdit is one proposed literal text replacement within a section.
type SectionEdit struct {
	Section       string     `json:"section"`    // experience, projects, skills, education
	Subsection    string     `json:"subsection"`
	OriginalText  string     `json:"original_text"`
	NewText       string     `json:"new_text"`
	EditType      string     `json:"edit_type" validate:"omitempty,oneof=replace reorder emphasize"`
	Confidence    Confidence `json:"confidence"`
	Justification string     `json:"justification"`
}

// SkillAddition requests emphasis or addition of skills within a category.
type SkillAddition struct {
	Category          string   `json:"category"`
	SkillsToEmphasize []string `json:"skills_to_emphasize"`
	SkillsToAdd       []string `json:"skills_to_add"`
}

// ProjectPriority requests a reordering of one project.
type ProjectPriority struct {
	ProjectName string `json:"project_name"`
	NewPriority int    `json:"new_priority"`
	Reason      string `json:"reason"`
}

// Applicable returns a copy of the edit set keeping only section edits
// that carry HIGH confidence and a non-trivial justification. Skill
// additions and project reordering pass through unchanged.
func (e EditSet) Applicable() EditSet {
	filtered := EditSet{
		SectionEdits:      make([]SectionEdit, 0, len(e.SectionEdits)),
		SkillAdditions:    e.SkillAdditions,
		ProjectReordering: e.ProjectReordering,
	}
	for _, edit := range e.SectionEdits {
		if edit.Confidence != ConfidenceHigh {
			continue
		}
		if len(strings.TrimSpace(edit.Justification)) <= minJustificationLen {
			continue
		}
		filtered.SectionEdits = append(filtered.SectionEdits, edit)
	}
	return filtered
}

// IsEmpty reports whether the edit set requests no work at all: no
// section edits and no skill addition with a non-empty emphasize list.
func (e EditSet) IsEmpty() bool {
	if len(e.SectionEdits) > 0 {
		return false
	}
	for _, add := range e.SkillAdditions {
		if len(add.SkillsToEmphasize) > 0 {
			return false
		}
	}
	return true
}
