//nolint:revive // types is a standard Go package name pattern
package types

// ChangeLog records the changes applied during one tailoring run.
type ChangeLog struct {
	Changes []Change      `json:"changes"`
	Summary ChangeSummary `json:"summary"`
}

// Change is a single applied change with its provenance.
type Change struct {
	OriginalText  string     `json:"original_text"`
	NewText       string     `json:"new_text"`
	JobReference  string     `json:"job_reference"`
	Confidence    Confidence `json:"confidence"`
	Justification string     `json:"justification"`
}

// ChangeSummary aggregates the run outcome for the caller.
type ChangeSummary struct {
	KeywordsAdded        []string `json:"keywords_added"`
	KeywordsMissing      []string `json:"keywords_missing"`
	QuestionsForUser     []string `json:"questions_for_user"`
	RelevanceImprovement string   `json:"relevance_improvement"`
}
