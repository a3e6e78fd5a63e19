// Package interview runs assessment sessions: tiered question
// generation, answer evaluation, and result aggregation.
package interview

import "fmt"

// NoSessionError reports that no session exists for the given ID.
type NoSessionError struct {
	ID string
}

func (e *NoSessionError) Error() string {
	if e.ID == "" {
		return "no active assessment session"
	}
	return fmt.Sprintf("no assessment session with id %s", e.ID)
}

// SessionFinishedError reports an answer submitted to a session that
// has already completed. The session's recorded scores are not touched.
type SessionFinishedError struct {
	ID string
}

func (e *SessionFinishedError) Error() string {
	return fmt.Sprintf("assessment session %s is already finished", e.ID)
}

// SessionNotFinishedError reports a results request against a session
// that is still active.
type SessionNotFinishedError struct {
	ID        string
	Completed int
	Total     int
}

func (e *SessionNotFinishedError) Error() string {
	return fmt.Sprintf("assessment session %s not finished: %d/%d questions answered", e.ID, e.Completed, e.Total)
}

// QuestionMismatchError reports a submitted answer whose question ID
// does not match the question at the session's current index.
type QuestionMismatchError struct {
	Expected string
	Got      string
}

func (e *QuestionMismatchError) Error() string {
	return fmt.Sprintf("question mismatch: expected %s, got %s", e.Expected, e.Got)
}

// EmptyAnswerError reports a submit call with no answer text.
type EmptyAnswerError struct{}

func (e *EmptyAnswerError) Error() string {
	return "answer is required"
}
