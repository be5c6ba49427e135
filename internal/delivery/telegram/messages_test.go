package telegram

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-quiz-bot/internal/service"
	"github.com/aliskhannn/vocab-quiz-bot/internal/storage"
)

func TestBuildProgressBar(t *testing.T) {
	assert.Equal(t, "[░░░░░░░░░░]", buildProgressBar(0, 20, 10))
	assert.Equal(t, "[█████░░░░░]", buildProgressBar(10, 20, 10))
	assert.Equal(t, "[██████████]", buildProgressBar(20, 20, 10))
	assert.Equal(t, "[░░░░░░░░░░]", buildProgressBar(3, 0, 10))
}

func TestTierMessage(t *testing.T) {
	tests := []struct {
		tier   entities.Tier
		prefix string
	}{
		{tier: entities.TierPerfect, prefix: "Идеально!"},
		{tier: entities.TierGreat, prefix: "Отлично!"},
		{tier: entities.TierGood, prefix: "Хорошо!"},
		{tier: entities.TierFair, prefix: "Неплохо!"},
		{tier: entities.TierNeedsWork, prefix: "Есть над чем поработать!"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.True(t, strings.HasPrefix(tierMessage(tt.tier), tt.prefix))
		})
	}
}

func TestFormatAnswerFeedback(t *testing.T) {
	correct := formatAnswerFeedback(entities.AnswerOutcome{Correct: true, CorrectTranslation: "mère"})
	assert.Contains(t, correct, "Правильно")
	assert.NotContains(t, correct, "mère")

	wrong := formatAnswerFeedback(entities.AnswerOutcome{
		Correct:            false,
		SelectedIndex:      1,
		CorrectIndex:       2,
		CorrectTranslation: "grand-mère",
	})
	assert.Contains(t, wrong, "Неправильно")
	assert.Contains(t, wrong, `*grand\-mère*`)
}

func TestFormatQuizResult(t *testing.T) {
	text := formatQuizResult(service.Summarize(16, 20))

	assert.Contains(t, text, `16/20 \(80%\)`)
	assert.Contains(t, text, md(tierMessage(entities.TierGreat)))
}

func TestFormatScore(t *testing.T) {
	state := entities.SessionState{
		Questions:            make([]entities.Question, 20),
		CurrentQuestionIndex: 4,
		Score:                3,
		Active:               true,
		Answered:             true,
	}
	text := formatScore(state)
	assert.Contains(t, text, "Правильных ответов: 3 из 5")
	assert.Contains(t, text, "Вопрос 5/20")

	state.CurrentQuestionIndex = 20
	state.Score = 20
	state.Active = false
	state.Answered = false
	assert.Contains(t, formatScore(state), "Квиз завершён")
}

func TestQuizErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: storage.ErrSessionNotFound, want: msgNoActiveQuiz},
		{err: service.ErrSessionComplete, want: msgQuizFinished},
		{err: service.ErrAlreadyAnswered, want: msgAlreadyAnswered},
		{err: fmt.Errorf("%w: 9", service.ErrInvalidAnswerIndex), want: msgUnrecognizedAnswer},
		{err: errStaleRound, want: msgStaleButton},
		{err: errNotAnswered, want: msgAnswerFirst},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got, ok := quizErrorMessage(tt.err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := quizErrorMessage(errors.New("db is down"))
	assert.False(t, ok)
}

func TestIsNextWord(t *testing.T) {
	assert.True(t, isNextWord("Далее"))
	assert.True(t, isNextWord("  next "))
	assert.True(t, isNextWord(">"))
	assert.False(t, isNextWord("mère"))
	assert.False(t, isNextWord("2"))
}
