package interview

import (
	"fmt"
	"time"

	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	fundamentalsThreshold = 60
	advancedThreshold     = 80
)

// TierStats aggregates the scores recorded for one difficulty tier.
type TierStats struct {
	Count        int   `json:"count"`
	AverageScore int   `json:"average_score"`
	Scores       []int `json:"scores"`
}

// Results is the final report for a completed session.
type Results struct {
	SessionID          string                         `json:"session_id"`
	JobTitle           string                         `json:"job_title"`
	StartTime          time.Time                      `json:"start_time"`
	EndTime            time.Time                      `json:"end_time"`
	TotalQuestions     int                            `json:"total_questions"`
	CompletedQuestions int                            `json:"completed_questions"`
	OverallScore       int                            `json:"overall_score"`
	DifficultyStats    map[types.Difficulty]TierStats `json:"difficulty_stats"`
	Answers            []AnswerRecord                 `json:"answers"`
	Recommendations    []string                       `json:"recommendations"`
}

// Results computes the report for a completed session. A session that
// is still active yields a SessionNotFinishedError.
func (m *Manager) Results(sessionID string) (*Results, error) {
	sess, ok := m.store.Get(sessionID)
	if !ok {
		return nil, &NoSessionError{ID: sessionID}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Status != StatusCompleted {
		return nil, &SessionNotFinishedError{
			ID:        sess.ID,
			Completed: len(sess.Answers),
			Total:     len(sess.Questions),
		}
	}

	stats := tierStats(sess.Answers)
	overall := roundedAverage(sess.Scores)

	return &Results{
		SessionID:          sess.ID,
		JobTitle:           sess.Job.RoleTitle,
		StartTime:          sess.StartTime,
		EndTime:            sess.EndTime,
		TotalQuestions:     len(sess.Questions),
		CompletedQuestions: len(sess.Answers),
		OverallScore:       overall,
		DifficultyStats:    stats,
		Answers:            sess.Answers,
		Recommendations:    recommendations(overall, stats),
	}, nil
}

func tierStats(answers []AnswerRecord) map[types.Difficulty]TierStats {
	stats := make(map[types.Difficulty]TierStats)
	for _, tier := range types.Difficulties() {
		var scores []int
		for _, answer := range answers {
			if answer.Difficulty == tier {
				scores = append(scores, answer.Evaluation.Score)
			}
		}
		if len(scores) == 0 {
			continue
		}
		stats[tier] = TierStats{
			Count:        len(scores),
			AverageScore: roundedAverage(scores),
			Scores:       scores,
		}
	}
	return stats
}

// recommendations derives coaching advice from the overall score plus
// one extra entry per tier averaging below the fundamentals threshold.
func recommendations(overall int, stats map[types.Difficulty]TierStats) []string {
	var recs []string
	switch {
	case overall < fundamentalsThreshold:
		recs = append(recs, "Focus on fundamental concepts and practice basic problem-solving")
	case overall < advancedThreshold:
		recs = append(recs, "Continue practicing intermediate-level problems and system design")
	default:
		recs = append(recs, "Excellent performance! Consider advanced topics and leadership scenarios")
	}

	for _, tier := range types.Difficulties() {
		if stat, ok := stats[tier]; ok && stat.AverageScore < fundamentalsThreshold {
			recs = append(recs, fmt.Sprintf("Focus more on %s level questions and concepts", tier))
		}
	}
	return recs
}
