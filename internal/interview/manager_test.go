package interview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/types"
)

// countingGenerator fails every call and counts them. Safe for
// concurrent use since tier generation runs in parallel.
type countingGenerator struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (g *countingGenerator) Complete(context.Context, string, llm.Options) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err == nil {
		return "", &llm.UnavailableError{Attempts: 3}
	}
	return "", g.err
}

func (g *countingGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

const testDoc = `\documentclass{article}\begin{document}resume\end{document}`

func newTestManager(gen *countingGenerator) *Manager {
	return NewManager(gen, NewStore(), testDoc, "")
}

func startHeuristicSession(t *testing.T, m *Manager) *Session {
	t.Helper()
	sess, err := m.Start(context.Background(), StartParams{
		JobText: "Backend Engineer role requiring Go and PostgreSQL",
		Mode:    ModeHeuristic,
	})
	require.NoError(t, err)
	return sess
}

func TestStart_HeuristicModeNeverCallsService(t *testing.T) {
	gen := &countingGenerator{}
	m := newTestManager(gen)

	sess := startHeuristicSession(t, m)

	assert.Equal(t, 0, gen.callCount())
	assert.Equal(t, StatusActive, sess.Status)
	assert.Len(t, sess.Questions, 4*types.QuestionsPerDifficulty)
}

func TestStart_QuestionsInFixedTierOrder(t *testing.T) {
	m := newTestManager(&countingGenerator{})
	sess := startHeuristicSession(t, m)

	for tierIndex, tier := range types.Difficulties() {
		for i := 0; i < types.QuestionsPerDifficulty; i++ {
			q := sess.Questions[tierIndex*types.QuestionsPerDifficulty+i]
			assert.Equal(t, tier, q.Difficulty)
		}
	}
}

func TestStart_ServiceModeFallsBackPerTier(t *testing.T) {
	// Every service call fails: job parse, document parse, and all four
	// tier generations. The session must still come up with a full
	// heuristic question list.
	gen := &countingGenerator{}
	m := newTestManager(gen)

	sess, err := m.Start(context.Background(), StartParams{JobText: "Go role", Mode: ModeService})
	require.NoError(t, err)
	assert.Len(t, sess.Questions, 4*types.QuestionsPerDifficulty)
	assert.GreaterOrEqual(t, gen.callCount(), 6)
}

func TestStart_LastWriterWins(t *testing.T) {
	m := newTestManager(&countingGenerator{})

	first := startHeuristicSession(t, m)
	second := startHeuristicSession(t, m)

	current, ok := m.Store().Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)
	assert.NotEqual(t, first.ID, second.ID)

	// The superseded session stays addressable by ID.
	old, ok := m.Store().Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, first.ID, old.ID)
}

func TestNextQuestion_OmitsCanonicalAnswer(t *testing.T) {
	m := newTestManager(&countingGenerator{})
	sess := startHeuristicSession(t, m)

	view, done := sess.NextQuestion()
	require.False(t, done)
	assert.Equal(t, sess.Questions[0].ID, view.ID)
	assert.Equal(t, 1, view.QuestionNumber)
	assert.Equal(t, len(sess.Questions), view.TotalQuestions)
}

func TestSubmitAnswer_AdvancesAndCompletes(t *testing.T) {
	m := newTestManager(&countingGenerator{})
	sess := startHeuristicSession(t, m)

	total := len(sess.Questions)
	for i := 0; i < total; i++ {
		view, done := sess.NextQuestion()
		require.False(t, done, "question %d", i)

		result, err := m.SubmitAnswer(context.Background(), sess.ID, view.ID,
			fmt.Sprintf("Answer %d covering Go and related concepts in detail.", i), llm.Options{})
		require.NoError(t, err)
		assert.Equal(t, i+1, result.Completed)
		assert.Equal(t, i == total-1, result.IsComplete)
	}

	assert.Equal(t, StatusCompleted, sess.Status)
	assert.False(t, sess.EndTime.IsZero())

	_, done := sess.NextQuestion()
	assert.True(t, done)
}

func TestSubmitAnswer_AfterCompletionRejectedWithoutMutation(t *testing.T) {
	m := newTestManager(&countingGenerator{})
	sess := startHeuristicSession(t, m)

	for i := 0; i < len(sess.Questions); i++ {
		view, _ := sess.NextQuestion()
		_, err := m.SubmitAnswer(context.Background(), sess.ID, view.ID, "answer text", llm.Options{})
		require.NoError(t, err)
	}
	scoresBefore := append([]int{}, sess.Scores...)

	_, err := m.SubmitAnswer(context.Background(), sess.ID, sess.Questions[0].ID, "late answer", llm.Options{})
	var finished *SessionFinishedError
	require.ErrorAs(t, err, &finished)
	assert.Equal(t, scoresBefore, sess.Scores)
}

func TestSubmitAnswer_QuestionMismatchMutatesNothing(t *testing.T) {
	m := newTestManager(&countingGenerator{})
	sess := startHeuristicSession(t, m)

	_, err := m.SubmitAnswer(context.Background(), sess.ID, "wrong-id", "answer", llm.Options{})

	var mismatch *QuestionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, sess.Questions[0].ID, mismatch.Expected)
	assert.Equal(t, "wrong-id", mismatch.Got)
	assert.Equal(t, 0, sess.Index)
	assert.Empty(t, sess.Answers)
}

func TestSubmitAnswer_EmptyAnswerRejected(t *testing.T) {
	m := newTestManager(&countingGenerator{})
	sess := startHeuristicSession(t, m)

	_, err := m.SubmitAnswer(context.Background(), sess.ID, sess.Questions[0].ID, "   ", llm.Options{})
	var empty *EmptyAnswerError
	assert.ErrorAs(t, err, &empty)
}

func TestSubmitAnswer_UnknownSession(t *testing.T) {
	m := newTestManager(&countingGenerator{})

	_, err := m.SubmitAnswer(context.Background(), "missing", "q1", "answer", llm.Options{})
	var noSession *NoSessionError
	assert.ErrorAs(t, err, &noSession)
}

func TestSubmitAnswer_ServiceEvaluationFallsBackToHeuristic(t *testing.T) {
	gen := &countingGenerator{}
	m := newTestManager(gen)

	sess, err := m.Start(context.Background(), StartParams{JobText: "Go role", Mode: ModeService})
	require.NoError(t, err)

	result, err := m.SubmitAnswer(context.Background(), sess.ID, sess.Questions[0].ID,
		"A detailed answer about goroutines and channels.", llm.Options{})
	require.NoError(t, err)
	assert.NotNil(t, result.Evaluation)
	assert.GreaterOrEqual(t, result.Evaluation.Score, 0)
}

func TestResults_RequiresCompletedSession(t *testing.T) {
	m := newTestManager(&countingGenerator{})
	sess := startHeuristicSession(t, m)

	_, err := m.Results(sess.ID)
	var notFinished *SessionNotFinishedError
	require.ErrorAs(t, err, &notFinished)
	assert.Equal(t, len(sess.Questions), notFinished.Total)
}

func TestResults_AggregatesTiersAndRecommendations(t *testing.T) {
	m := newTestManager(&countingGenerator{})
	sess := startHeuristicSession(t, m)

	// Long answers mentioning the expected skill score well enough to
	// stay above the fundamentals threshold.
	for i := 0; i < len(sess.Questions); i++ {
		view, _ := sess.NextQuestion()
		q := sess.Questions[sess.Index]
		answer := strings.Repeat("I rely on "+strings.Join(q.ExpectedSkills, " and ")+" in production work. ", 8)
		_, err := m.SubmitAnswer(context.Background(), sess.ID, view.ID, answer, llm.Options{})
		require.NoError(t, err)
	}

	results, err := m.Results(sess.ID)
	require.NoError(t, err)

	assert.Equal(t, sess.ID, results.SessionID)
	assert.Equal(t, 4*types.QuestionsPerDifficulty, results.CompletedQuestions)
	require.Len(t, results.DifficultyStats, 4)
	for _, tier := range types.Difficulties() {
		stat := results.DifficultyStats[tier]
		assert.Equal(t, types.QuestionsPerDifficulty, stat.Count)
		assert.GreaterOrEqual(t, stat.AverageScore, fundamentalsThreshold)
	}
	require.NotEmpty(t, results.Recommendations)
	assert.Len(t, results.Recommendations, 1, "no weak tiers, only the overall recommendation")
}

func TestRecommendations_Thresholds(t *testing.T) {
	tests := []struct {
		name    string
		overall int
		stats   map[types.Difficulty]TierStats
		want    []string
	}{
		{
			name:    "below fundamentals",
			overall: 45,
			stats:   map[types.Difficulty]TierStats{},
			want:    []string{"Focus on fundamental concepts and practice basic problem-solving"},
		},
		{
			name:    "intermediate band",
			overall: 70,
			stats:   map[types.Difficulty]TierStats{},
			want:    []string{"Continue practicing intermediate-level problems and system design"},
		},
		{
			name:    "advanced with weak tier",
			overall: 85,
			stats: map[types.Difficulty]TierStats{
				types.DifficultyExtreme: {Count: 5, AverageScore: 40},
			},
			want: []string{
				"Excellent performance! Consider advanced topics and leadership scenarios",
				"Focus more on extreme level questions and concepts",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recommendations(tt.overall, tt.stats))
		})
	}
}
