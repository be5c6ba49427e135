package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

// buildStartKeyboard builds keyboard for the welcome screen.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Начать квиз", buildQuizStartCallback()),
		),
	)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Играть снова", buildQuizStartCallback()),
		),
	)
}

// buildQuizAnswerKeyboard builds keyboard for an unanswered question, one option per row.
func buildQuizAnswerKeyboard(q entities.Question, tag string, round int) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for i, option := range q.Options {
		label := fmt.Sprintf("%d. %s", i+1, option)
		button := tgbotapi.NewInlineKeyboardButtonData(label, buildQuizAnswerCallback(tag, round, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizFeedbackKeyboard marks the correct and the wrongly chosen option
// and adds the button leading to the next question.
func buildQuizFeedbackKeyboard(q entities.Question, outcome entities.AnswerOutcome, tag string, round int) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options)+1)
	for i, option := range q.Options {
		label := fmt.Sprintf("%d. %s", i+1, option)
		switch {
		case i == outcome.CorrectIndex:
			label = "✅ " + label
		case i == outcome.SelectedIndex:
			label = "❌ " + label
		}
		button := tgbotapi.NewInlineKeyboardButtonData(label, buildQuizNoopCallback())
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Далее ▶️", buildQuizNextCallback(tag, round)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
