package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

func testQuestion() entities.Question {
	return entities.Question{
		Term:               "бабушка",
		CorrectTranslation: "grand-mère",
		Options:            []string{"oncle", "grand-mère", "tante", "cousin"},
		CorrectIndex:       1,
	}
}

func TestBuildQuizAnswerKeyboard(t *testing.T) {
	kb := buildQuizAnswerKeyboard(testQuestion(), "1a2b3c4d", 5)

	require.Len(t, kb.InlineKeyboard, 4)
	for i, row := range kb.InlineKeyboard {
		require.Len(t, row, 1)
		require.NotNil(t, row[0].CallbackData)
		assert.Equal(t, buildQuizAnswerCallback("1a2b3c4d", 5, i), *row[0].CallbackData)
	}
	assert.Equal(t, "2. grand-mère", kb.InlineKeyboard[1][0].Text)
}

func TestBuildQuizFeedbackKeyboard(t *testing.T) {
	outcome := entities.AnswerOutcome{SelectedIndex: 3, CorrectIndex: 1, CorrectTranslation: "grand-mère"}
	kb := buildQuizFeedbackKeyboard(testQuestion(), outcome, "1a2b3c4d", 5)

	require.Len(t, kb.InlineKeyboard, 5)
	assert.Equal(t, "1. oncle", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "✅ 2. grand-mère", kb.InlineKeyboard[1][0].Text)
	assert.Equal(t, "❌ 4. cousin", kb.InlineKeyboard[3][0].Text)

	for _, row := range kb.InlineKeyboard[:4] {
		assert.Equal(t, buildQuizNoopCallback(), *row[0].CallbackData)
	}

	next := kb.InlineKeyboard[4][0]
	assert.Equal(t, buildQuizNextCallback("1a2b3c4d", 5), *next.CallbackData)
}
