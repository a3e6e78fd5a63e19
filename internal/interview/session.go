package interview

import (
	"sync"
	"time"

	"github.com/jonathan/cv-tailor/internal/types"
)

// Mode selects how a session generates questions and evaluates answers.
type Mode string

// Session operating modes.
const (
	// ModeService generates and evaluates through the generation
	// service, falling back to heuristics per tier or per answer.
	ModeService Mode = "service"
	// ModeHeuristic never touches the generation service.
	ModeHeuristic Mode = "heuristic"
)

// Status is the session lifecycle state.
type Status string

// Session lifecycle states. A completed session is terminal.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// AnswerRecord captures one submitted answer and its evaluation.
type AnswerRecord struct {
	QuestionID string            `json:"question_id"`
	Question   string            `json:"question"`
	Difficulty types.Difficulty  `json:"difficulty"`
	Answer     string            `json:"answer"`
	Evaluation *types.Evaluation `json:"evaluation"`
	Timestamp  time.Time         `json:"timestamp"`
}

// Session is one assessment run. All mutation goes through the manager,
// which serializes submit operations under the session mutex so the
// index-advance invariant holds even with concurrent callers.
type Session struct {
	mu sync.Mutex

	ID        string
	Mode      Mode
	Status    Status
	Job       *types.JobRecord
	Doc       *types.DocumentRecord
	Questions []types.Question
	Index     int
	Answers   []AnswerRecord
	Scores    []int
	StartTime time.Time
	EndTime   time.Time
}

// NextQuestion returns the restricted view of the question at the
// current index. done is true once every question has been answered.
func (s *Session) NextQuestion() (view types.QuestionView, done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Index >= len(s.Questions) {
		return types.QuestionView{}, true
	}
	q := s.Questions[s.Index]
	return q.View(s.Index+1, len(s.Questions)), false
}

// Progress reports how many questions have been answered and the
// running average score, rounded to the nearest integer.
func (s *Session) Progress() (completed, total, averageScore int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Answers), len(s.Questions), roundedAverage(s.Scores)
}

func roundedAverage(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, score := range scores {
		sum += score
	}
	return int(float64(sum)/float64(len(scores)) + 0.5)
}
