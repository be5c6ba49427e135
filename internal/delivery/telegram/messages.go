// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-quiz-bot/internal/service"
)

// Error and hint messages.
const (
	msgInternalError      = "Что‑то пошло не так. Попробуйте позже."
	msgQuizUnavailable    = "Не удалось создать квиз, попробуйте позже."
	msgNotEnoughWords     = "В словаре слишком мало слов для квиза: нужно минимум 4 разных перевода."
	msgNoActiveQuiz       = "Сейчас нет активного квиза. Начните новый: /quiz"
	msgQuizFinished       = "Квиз уже завершён. Начните новый: /quiz"
	msgAlreadyAnswered    = "Ответ на этот вопрос уже принят."
	msgStaleButton        = "Этот вопрос уже закрыт."
	msgUnrecognizedAnswer = "Не понял ответ. Нажмите на вариант или введите его номер от 1 до 4."
	msgPressNext          = "Нажмите «Далее ▶️» или напишите «далее», чтобы перейти к следующему вопросу."
	msgUnknownCommand     = "Неизвестная команда. Список доступных команд:\n\n/quiz — начать новый квиз\n/score — текущий счёт\n/help — помощь"
	msgCorrectToast       = "✅ Правильно!"
	msgIncorrectToast     = "❌ Неправильно"
)

// Words accepted as "next question" in plain text, compared in lower case.
var nextWords = map[string]struct{}{
	"далее":  {},
	"дальше": {},
	"next":   {},
	">":      {},
}

// welcomeMessage builds welcome message safely for MarkdownV2.
func welcomeMessage(total int) string {
	var sb strings.Builder

	sb.WriteString(bold("👨‍👩‍👧‍👦 Семья по‑французски"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Проверьте, как хорошо вы знаете названия членов семьи на французском."))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("В квизе %d вопросов. Для каждого русского слова выберите правильный перевод из четырёх вариантов.", total)))
	sb.WriteString("\n\n")
	sb.WriteString(md("Отвечать можно кнопками или цифрами 1–4."))

	return sb.String()
}

func helpMessage() string {
	var sb strings.Builder

	sb.WriteString(bold("Как играть"))
	sb.WriteString("\n\n")
	sb.WriteString(md("/quiz — начать новый квиз (текущий будет сброшен)"))
	sb.WriteString("\n")
	sb.WriteString(md("/score — показать текущий счёт"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Ответ: нажмите кнопку, отправьте цифру 1–4 или напишите слово по‑французски."))
	sb.WriteString("\n")
	sb.WriteString(md("Следующий вопрос: кнопка «Далее ▶️» или слово «далее»."))

	return sb.String()
}

// buildProgressBar creates a text progress bar.
func buildProgressBar(current, total, length int) string {
	filled := 0
	if total > 0 {
		filled = min(int(float64(current)/float64(total)*float64(length)), length)
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// formatQuizQuestion formats the current question (MarkdownV2 safe).
func formatQuizQuestion(state *entities.SessionState, q entities.Question) string {
	return fmt.Sprintf(
		"%s  %s\n%s\n\n%s\n%s",
		md(fmt.Sprintf("Вопрос %d/%d", state.QuestionNumber(), state.Total())),
		md(fmt.Sprintf("⭐ %d", state.Score)),
		md(buildProgressBar(state.CurrentQuestionIndex, state.Total(), 10)),
		md("Как это будет по‑французски?"),
		bold(q.Term),
	)
}

// formatAnswerFeedback formats feedback for a quiz answer (MarkdownV2 safe).
func formatAnswerFeedback(outcome entities.AnswerOutcome) string {
	if outcome.Correct {
		return fmt.Sprintf("%s\n%s", bold("✅ Правильно!"), md("Отличный выбор!"))
	}
	return fmt.Sprintf(
		"%s\n%s %s",
		bold("❌ Неправильно"),
		md("Правильный ответ:"),
		bold(outcome.CorrectTranslation),
	)
}

// tierMessage returns the closing remark for a result tier.
func tierMessage(tier entities.Tier) string {
	switch tier {
	case entities.TierPerfect:
		return "Идеально! Ты знаешь все семейные слова на французском! 🎉"
	case entities.TierGreat:
		return "Отлично! Ты хорошо знаешь семейные слова на французском! 👍"
	case entities.TierGood:
		return "Хорошо! Ты знаешь основные семейные слова на французском! 👏"
	case entities.TierFair:
		return "Неплохо! Продолжай учить французские названия членов семьи! 💪"
	default:
		return "Есть над чем поработать! Повтори слова и попробуй снова! 📚"
	}
}

// formatQuizResult formats quiz results (MarkdownV2 safe).
func formatQuizResult(summary entities.Summary) string {
	return fmt.Sprintf(
		"%s\n\n%s %s\n%s\n\n%s",
		bold("🏁 Квиз завершён!"),
		md("Результат:"),
		bold(fmt.Sprintf("%d/%d (%d%%)", summary.Score, summary.Total, summary.Percentage)),
		md(buildProgressBar(summary.Score, summary.Total, 10)),
		md(tierMessage(summary.Tier)),
	)
}

// formatScore formats the /score reply for a session.
func formatScore(state entities.SessionState) string {
	if !state.Active {
		return formatQuizResult(service.Summarize(state.Score, state.Total()))
	}

	answered := state.CurrentQuestionIndex
	if state.Answered {
		answered++
	}

	return fmt.Sprintf(
		"%s\n\n%s\n%s",
		bold("📊 Текущий счёт"),
		md(fmt.Sprintf("Правильных ответов: %d из %d", state.Score, answered)),
		md(fmt.Sprintf("Вопрос %d/%d", state.QuestionNumber(), state.Total())),
	)
}
