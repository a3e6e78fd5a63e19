//nolint:revive // types is a standard Go package name pattern
package types

// Confidence is the coarse classification attached to a proposed change.
// Only HIGH-confidence section edits are ever auto-applied.
type Confidence string

// Confidence tiers, highest first.
const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// GapAnalysis captures the comparison between a JobRecord and a
// DocumentRecord. Derived data; not persisted beyond one pipeline run.
type GapAnalysis struct {
	MatchedKeywords        []string           `json:"matched_keywords"`
	MissingKeywords        []string           `json:"missing_keywords"`
	SuggestedRewrites      []SuggestedRewrite `json:"suggested_rewrites"`
	ClarificationQuestions []string           `json:"clarification_questions"`
	RelevanceScore         string             `json:"relevance_score"`
}

// SuggestedRewrite is a single proposed bullet rewrite with its trigger.
type SuggestedRewrite struct {
	OriginalBullet  string     `json:"original_bullet"`
	ProposedRewrite string     `json:"proposed_rewrite"`
	JobTrigger      string     `json:"job_trigger"`
	Confidence      Confidence `json:"confidence"`
}
