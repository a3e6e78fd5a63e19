package interview

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-tailor/internal/extraction"
	"github.com/jonathan/cv-tailor/internal/heuristic"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/types"
)

// Manager creates sessions and drives them through their lifecycle.
type Manager struct {
	gen     extraction.Generator
	store   *Store
	docText string
	notes   string
}

// NewManager builds a session manager. docText is the raw template
// document; notes is the optional personal-notes supplement ("" when
// absent).
func NewManager(gen extraction.Generator, store *Store, docText, notes string) *Manager {
	return &Manager{gen: gen, store: store, docText: docText, notes: notes}
}

// Store exposes the manager's session store.
func (m *Manager) Store() *Store { return m.store }

// StartParams configures a new session.
type StartParams struct {
	JobText string
	Mode    Mode
	Options llm.Options
}

// Start builds a session: parses the job and the template document
// (each degrading to its static fallback), generates four difficulty
// tiers of questions, and registers the session as current. In service
// mode the tiers are generated concurrently and a failed tier falls
// back to the heuristic batch for that tier only. In heuristic mode no
// service call is made at all.
func (m *Manager) Start(ctx context.Context, params StartParams) (*Session, error) {
	mode := params.Mode
	if mode == "" {
		mode = ModeService
	}

	var job *types.JobRecord
	var doc *types.DocumentRecord
	if mode == ModeHeuristic {
		job = extraction.FallbackJobRecord(params.JobText)
		doc = extraction.FallbackDocumentRecord()
	} else {
		var err error
		job, err = extraction.ParseJob(ctx, m.gen, params.Options, params.JobText)
		if err != nil {
			job = extraction.FallbackJobRecord(params.JobText)
		}
		doc, err = extraction.ParseDocument(ctx, m.gen, params.Options, m.docText)
		if err != nil {
			doc = extraction.FallbackDocumentRecord()
		}
	}

	questions := m.generateTiers(ctx, mode, params.Options, job, doc)

	sess := &Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		Status:    StatusActive,
		Job:       job,
		Doc:       doc,
		Questions: questions,
		StartTime: time.Now().UTC(),
	}
	m.store.Put(sess)
	return sess, nil
}

// generateTiers produces the session question list in fixed tier order.
func (m *Manager) generateTiers(ctx context.Context, mode Mode, opts llm.Options, job *types.JobRecord, doc *types.DocumentRecord) []types.Question {
	fallback := heuristic.GenerateQuestions(job, doc)
	tiers := types.Difficulties()

	batches := make([][]types.Question, len(tiers))
	if mode == ModeHeuristic {
		for i, tier := range tiers {
			batches[i] = fallback[tier]
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for i, tier := range tiers {
			i, tier := i, tier // per-iteration copies; required under go <1.22
			g.Go(func() error {
				batch, err := extraction.GenerateQuestions(gctx, m.gen, opts, job, doc, tier, m.notes)
				if err != nil {
					batch = fallback[tier]
				}
				batches[i] = batch
				return nil
			})
		}
		_ = g.Wait() // goroutines never return an error; tier failures fall back
	}

	var questions []types.Question
	for _, batch := range batches {
		questions = append(questions, batch...)
	}
	return questions
}

// SubmitResult is returned from a successful answer submission.
type SubmitResult struct {
	Evaluation   *types.Evaluation
	IsComplete   bool
	Completed    int
	Total        int
	AverageScore int
}

// SubmitAnswer evaluates the answer for the question at the session's
// current index, records it, and advances the session. The question ID
// must match the current question; a mismatch mutates nothing. The
// session flips to completed when the last question is answered.
func (m *Manager) SubmitAnswer(ctx context.Context, sessionID, questionID, answer string, opts llm.Options) (*SubmitResult, error) {
	sess, ok := m.store.Get(sessionID)
	if !ok {
		return nil, &NoSessionError{ID: sessionID}
	}
	if strings.TrimSpace(answer) == "" {
		return nil, &EmptyAnswerError{}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Status != StatusActive {
		return nil, &SessionFinishedError{ID: sess.ID}
	}
	current := sess.Questions[sess.Index]
	if current.ID != questionID {
		return nil, &QuestionMismatchError{Expected: current.ID, Got: questionID}
	}

	eval := m.evaluate(ctx, sess, &current, answer, opts)

	sess.Answers = append(sess.Answers, AnswerRecord{
		QuestionID: questionID,
		Question:   current.Question,
		Difficulty: current.Difficulty,
		Answer:     answer,
		Evaluation: eval,
		Timestamp:  time.Now().UTC(),
	})
	sess.Scores = append(sess.Scores, eval.Score)
	sess.Index++

	if sess.Index >= len(sess.Questions) {
		sess.Status = StatusCompleted
		sess.EndTime = time.Now().UTC()
	}

	return &SubmitResult{
		Evaluation:   eval,
		IsComplete:   sess.Status == StatusCompleted,
		Completed:    len(sess.Answers),
		Total:        len(sess.Questions),
		AverageScore: roundedAverage(sess.Scores),
	}, nil
}

func (m *Manager) evaluate(ctx context.Context, sess *Session, question *types.Question, answer string, opts llm.Options) *types.Evaluation {
	if sess.Mode == ModeHeuristic {
		return heuristic.EvaluateAnswer(question, answer, sess.Doc)
	}
	eval, err := extraction.EvaluateAnswer(ctx, m.gen, opts, question, answer, sess.Job, sess.Doc, m.notes)
	if err != nil {
		return heuristic.EvaluateAnswer(question, answer, sess.Doc)
	}
	return eval
}
