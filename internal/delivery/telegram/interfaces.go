package telegram

import (
	"context"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

type QuizService interface {
	QuestionCount() int
	StartSession(ctx context.Context, questionCount int) (*entities.SessionState, error)
	CurrentQuestion(state *entities.SessionState) (entities.Question, error)
	SubmitAnswer(state *entities.SessionState, selectedIndex int) (entities.AnswerOutcome, error)
	Advance(state *entities.SessionState) (entities.SessionStatus, *entities.Summary, error)
}

type SessionStorage interface {
	Store(id string, session *entities.SessionState)
	Get(id string) (entities.SessionState, error)
	Update(id string, fn func(session *entities.SessionState) error) error
	Delete(id string)
	StoreMessageID(id string, messageID int)
	GetMessageID(id string) (int, bool)
}

type AnswerResolver interface {
	Resolve(input string, options []string) (int, bool)
}
