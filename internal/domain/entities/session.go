package entities

import "time"

// SessionStatus is returned after moving to the next question.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusFinished   SessionStatus = "finished"
)

// SessionState is one run through a fixed list of questions.
// It tracks the position, the score and whether the session is still active.
type SessionState struct {
	ID                   string     // unique session ID
	Questions            []Question // generated at start, never changed afterwards
	CurrentQuestionIndex int        // 0-based, equals len(Questions) once finished
	Score                int        // number of correct answers so far
	Active               bool       // true until the last question is passed
	Answered             bool       // whether the current question already has an answer
	StartedAt            time.Time  // timestamp when the session started
	UpdatedAt            time.Time  // timestamp of the last change
}

// NewSessionState creates an active session positioned at the first question.
func NewSessionState(id string, questions []Question) *SessionState {
	now := time.Now()
	return &SessionState{
		ID:        id,
		Questions: questions,
		Active:    true,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Total returns the number of questions in the session.
func (s *SessionState) Total() int {
	return len(s.Questions)
}

// QuestionNumber returns the 1-based number of the current question.
func (s *SessionState) QuestionNumber() int {
	return s.CurrentQuestionIndex + 1
}

// IsFinished reports whether every question has been passed.
func (s *SessionState) IsFinished() bool {
	return s.CurrentQuestionIndex >= len(s.Questions)
}

// Touch updates the last activity timestamp.
func (s *SessionState) Touch() {
	s.UpdatedAt = time.Now()
}
