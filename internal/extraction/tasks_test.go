package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/types"
)

// stubGenerator returns canned responses and records the prompts it saw.
type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) Complete(_ context.Context, prompt string, _ llm.Options) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestParseJob_Success(t *testing.T) {
	gen := &stubGenerator{response: `Here you go:
{
  "role_title": "Backend Engineer",
  "core_responsibilities": ["Build services"],
  "required_skills": ["Go", "PostgreSQL"],
  "preferred_skills": ["Kubernetes"],
  "keywords": ["go", "grpc"],
  "seniority": "senior",
  "location": "Berlin",
  "company_type": "startup"
}`}

	record, err := ParseJob(context.Background(), gen, llm.Options{}, "job text")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", record.RoleTitle)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, record.RequiredSkills)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "job text")
	assert.Contains(t, gen.prompts[0], "Return ONLY")
}

func TestParseJob_ShapeMismatch(t *testing.T) {
	// required_skills must be a list, not a string
	gen := &stubGenerator{response: `{"role_title": "x", "required_skills": "Go", "keywords": []}`}

	_, err := ParseJob(context.Background(), gen, llm.Options{}, "job text")
	var malformed *MalformedOutputError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Raw, "role_title")
}

func TestParseJob_ServiceErrorPassesThrough(t *testing.T) {
	cause := &llm.UnavailableError{Attempts: 3}
	gen := &stubGenerator{err: cause}

	_, err := ParseJob(context.Background(), gen, llm.Options{}, "job text")
	assert.True(t, errors.Is(err, cause))
}

func TestFallbackJobRecord_KeywordsFromText(t *testing.T) {
	record := FallbackJobRecord("Senior GO Engineer with Kubernetes experience")
	assert.Equal(t, "Software Engineer", record.RoleTitle)
	assert.Equal(t, []string{"senior", "go", "engineer", "with", "kubernetes", "experience"}, record.Keywords)
}

func TestFallbackJobRecord_TruncatesKeywords(t *testing.T) {
	record := FallbackJobRecord(strings.Repeat("word ", 50))
	assert.Len(t, record.Keywords, fallbackKeywordLimit)
}

func TestFallbackJobRecord_EmptyText(t *testing.T) {
	// A job description with zero extractable keywords still yields a
	// usable record.
	record := FallbackJobRecord("")
	assert.NotNil(t, record.Keywords)
	assert.Empty(t, record.Keywords)
	assert.Equal(t, "mid", record.Seniority)
}

func TestParseDocument_Success(t *testing.T) {
	gen := &stubGenerator{response: `{
  "header": {"name": "Ada Lovelace", "contact": "ada@example.com"},
  "sections": {
    "education": [],
    "experience": [{"role": "Engineer", "company": "Acme", "dates": "2020", "bullets": ["built things"]}],
    "skills": {"programming": ["Go"]},
    "projects": [],
    "achievements": []
  }
}`}

	record, err := ParseDocument(context.Background(), gen, llm.Options{}, "\\documentclass{article}")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", record.Header.Name)
	require.Len(t, record.Sections.Experience, 1)
	assert.Equal(t, "Acme", record.Sections.Experience[0].Company)
}

func TestParseDocument_MissingSections(t *testing.T) {
	gen := &stubGenerator{response: `{"header": {"name": "x"}}`}

	_, err := ParseDocument(context.Background(), gen, llm.Options{}, "doc")
	var malformed *MalformedOutputError
	assert.ErrorAs(t, err, &malformed)
}

func TestProposeEdits_FiltersLowConfidence(t *testing.T) {
	gen := &stubGenerator{response: `{
  "section_edits": [
    {"section": "experience", "original_text": "a", "new_text": "b", "confidence": "HIGH", "justification": "matches the required Go skills"},
    {"section": "experience", "original_text": "c", "new_text": "d", "confidence": "MEDIUM", "justification": "matches the required Go skills"},
    {"section": "skills", "original_text": "e", "new_text": "f", "confidence": "HIGH", "justification": "short"}
  ],
  "skill_additions": [{"category": "programming", "skills_to_emphasize": ["Go"], "skills_to_add": []}],
  "project_reordering": []
}`}

	edits, err := ProposeEdits(context.Background(), gen, llm.Options{}, FallbackJobRecord(""), FallbackGapAnalysis())
	require.NoError(t, err)
	require.Len(t, edits.SectionEdits, 1)
	assert.Equal(t, "a", edits.SectionEdits[0].OriginalText)
	assert.Len(t, edits.SkillAdditions, 1)
}

func TestProposeEdits_MissingArraysRejected(t *testing.T) {
	gen := &stubGenerator{response: `{"section_edits": []}`}

	_, err := ProposeEdits(context.Background(), gen, llm.Options{}, FallbackJobRecord(""), FallbackGapAnalysis())
	var malformed *MalformedOutputError
	assert.ErrorAs(t, err, &malformed)
}

func TestGenerateQuestions_Success(t *testing.T) {
	gen := &stubGenerator{response: `{
  "questions": [
    {"id": "q1", "type": "conceptual", "difficulty": "easy", "category": "programming", "question": "What is a slice?", "expected_skills": ["Go"], "time_limit": 300}
  ],
  "total_questions": 1,
  "estimated_duration": 5
}`}

	questions, err := GenerateQuestions(context.Background(), gen, llm.Options{},
		FallbackJobRecord("go"), FallbackDocumentRecord(), types.DifficultyEasy, "likes distributed systems")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, types.DifficultyEasy, questions[0].Difficulty)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "EASY")
	assert.Contains(t, gen.prompts[0], "likes distributed systems")
}

func TestGenerateQuestions_EmptyBatchIsMalformed(t *testing.T) {
	gen := &stubGenerator{response: `{"questions": []}`}

	_, err := GenerateQuestions(context.Background(), gen, llm.Options{},
		FallbackJobRecord(""), FallbackDocumentRecord(), types.DifficultyHard, "")
	var malformed *MalformedOutputError
	assert.ErrorAs(t, err, &malformed)
}

func TestGenerateQuestions_UnknownTier(t *testing.T) {
	gen := &stubGenerator{}
	_, err := GenerateQuestions(context.Background(), gen, llm.Options{},
		FallbackJobRecord(""), FallbackDocumentRecord(), types.Difficulty("impossible"), "")
	assert.Error(t, err)
	assert.Empty(t, gen.prompts, "no service call for an unknown tier")
}

func TestEvaluateAnswer_Success(t *testing.T) {
	gen := &stubGenerator{response: `{
  "score": 85,
  "feedback": {"strengths": ["clear"], "improvements": [], "technical_accuracy": "good", "completeness": "complete", "communication": "clear"},
  "detailed_analysis": {"correct_concepts": ["indexes"], "missing_concepts": [], "suggested_improvements": [], "follow_up_questions": []},
  "skill_demonstration": {"demonstrated_skills": ["SQL"], "missing_skills": [], "skill_level": "advanced"},
  "overall_assessment": "good"
}`}

	question := &types.Question{ID: "q1", Question: "Explain indexes", Difficulty: types.DifficultyMedium}
	eval, err := EvaluateAnswer(context.Background(), gen, llm.Options{}, question, "an answer",
		FallbackJobRecord(""), FallbackDocumentRecord(), "")
	require.NoError(t, err)
	assert.Equal(t, 85, eval.Score)
	assert.Equal(t, "good", eval.OverallAssessment)
}

func TestEvaluateAnswer_NotesAppended(t *testing.T) {
	gen := &stubGenerator{response: `{"score": 50, "feedback": {}}`}
	question := &types.Question{ID: "q1", Question: "x"}

	_, err := EvaluateAnswer(context.Background(), gen, llm.Options{}, question, "a",
		FallbackJobRecord(""), FallbackDocumentRecord(), "prefers pair programming")
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "prefers pair programming")
}

func TestSummarizeChanges_Success(t *testing.T) {
	gen := &stubGenerator{response: `{
  "changes": [{"original_text": "a", "new_text": "b", "job_reference": "go", "confidence": "HIGH", "justification": "keyword match"}],
  "summary": {"keywords_added": ["go"], "keywords_missing": [], "questions_for_user": [], "relevance_improvement": "better"}
}`}

	log, err := SummarizeChanges(context.Background(), gen, llm.Options{},
		FallbackJobRecord(""), FallbackGapAnalysis(), "original", "tailored")
	require.NoError(t, err)
	require.Len(t, log.Changes, 1)
	assert.Equal(t, []string{"go"}, log.Summary.KeywordsAdded)
}

func TestSummarizeChanges_TruncatesDocumentExcerpts(t *testing.T) {
	gen := &stubGenerator{response: `{"changes": [], "summary": {}}`}
	longDoc := strings.Repeat("x", 5000)

	_, err := SummarizeChanges(context.Background(), gen, llm.Options{},
		FallbackJobRecord(""), FallbackGapAnalysis(), longDoc, longDoc)
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.NotContains(t, gen.prompts[0], longDoc)
	assert.Contains(t, gen.prompts[0], longDoc[:changeLogExcerptLen])
}

func TestFallbackChangeLog_FromEditSet(t *testing.T) {
	edits := &types.EditSet{
		SectionEdits: []types.SectionEdit{
			{Section: "experience", Subsection: "Acme", OriginalText: "a", NewText: "b", Confidence: types.ConfidenceHigh},
		},
	}
	gap := &types.GapAnalysis{MatchedKeywords: []string{"go"}, MissingKeywords: []string{"rust"}}

	log := FallbackChangeLog(edits, gap)
	require.Len(t, log.Changes, 1)
	assert.Equal(t, "Acme", log.Changes[0].JobReference)
	assert.Equal(t, []string{"go"}, log.Summary.KeywordsAdded)
	assert.Equal(t, []string{"rust"}, log.Summary.KeywordsMissing)
}

func TestGenerateLetter_FallbackUsesCandidateName(t *testing.T) {
	doc := FallbackDocumentRecord()
	doc.Header.Name = "Ada Lovelace"

	letter := FallbackLetter(doc)
	assert.Contains(t, letter.Letter.Signature, "Ada Lovelace")
	assert.Equal(t, "Dear Hiring Manager,", letter.Letter.Greeting)
}
