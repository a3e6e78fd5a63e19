// Package editing applies a proposed edit set to the raw template
// document with literal substring semantics. Apply is a pure function:
// it never fails, and an edit that cannot be applied safely is skipped
// rather than aborting the whole set.
package editing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// sourceMarker is the inert comment appended after each replacement so
// the provenance of a change stays visible in the output document.
func sourceMarker(section string, index int) string {
	return fmt.Sprintf(" %% source: %s_%d", section, index)
}

// Apply rewrites doc according to the edit set and returns the result.
// Section edits run first, in list order, each replacing every literal
// occurrence of its original text; later edits see the output of
// earlier ones. Skill emphasis runs second and is idempotent. An empty
// edit set returns doc unchanged.
func Apply(doc string, edits *types.EditSet) string {
	if edits == nil || edits.IsEmpty() {
		return doc
	}

	out := doc
	for i, edit := range edits.SectionEdits {
		out = applySectionEdit(out, edit, i)
	}
	for _, addition := range edits.SkillAdditions {
		for _, skill := range addition.SkillsToEmphasize {
			out = emphasizeSkill(out, skill)
		}
	}
	return out
}

// applySectionEdit replaces all occurrences of the edit's original text
// and appends a source marker to the replacement. Edits with missing or
// identical text, or whose original text is absent from the document,
// are skipped without touching it.
func applySectionEdit(doc string, edit types.SectionEdit, index int) string {
	if edit.OriginalText == "" || edit.NewText == "" {
		return doc
	}
	if edit.OriginalText == edit.NewText {
		return doc
	}
	if !strings.Contains(doc, edit.OriginalText) {
		return doc
	}
	// Replacing every occurrence, not just the one the edit was derived
	// from, is deliberate: an edit targeting a common phrase will touch
	// every place that phrase appears.
	return strings.ReplaceAll(doc, edit.OriginalText, edit.NewText+sourceMarker(edit.Section, index))
}

// emphasizeSkill wraps whole-word, case-insensitive matches of the
// skill name in \textbf{}. A document that already emphasizes the skill
// is left alone, which makes repeated application a no-op.
func emphasizeSkill(doc, skill string) string {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return doc
	}
	if strings.Contains(doc, `\textbf{`+skill+`}`) {
		return doc
	}

	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	if err != nil {
		return doc
	}
	if !re.MatchString(doc) {
		return doc
	}
	return re.ReplaceAllString(doc, `\textbf{`+skill+`}`)
}
