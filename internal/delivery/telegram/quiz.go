package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-quiz-bot/internal/service"
	"github.com/aliskhannn/vocab-quiz-bot/internal/storage"
)

var (
	errStaleRound  = errors.New("callback belongs to another question")
	errNotAnswered = errors.New("current question is not answered yet")
)

const msgAnswerFirst = "Сначала выберите ответ на текущий вопрос."

// questionRef names the question a button belongs to: the session tag and
// the 1-based question number.
type questionRef struct {
	tag   string
	round int
}

// currentQuestion is used when the input is not bound to a specific message
// (typed answers and words).
var currentQuestion = questionRef{}

// check returns errStaleRound when ref points at another session or question.
func (ref questionRef) check(s *entities.SessionState) error {
	if ref == currentQuestion {
		return nil
	}
	if ref.tag != sessionTag(s.ID) || ref.round != s.QuestionNumber() {
		return errStaleRound
	}
	return nil
}

// quizErrorMessage maps quiz errors caused by the user to a reply.
func quizErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		return msgNoActiveQuiz, true
	case errors.Is(err, service.ErrSessionComplete):
		return msgQuizFinished, true
	case errors.Is(err, service.ErrAlreadyAnswered):
		return msgAlreadyAnswered, true
	case errors.Is(err, service.ErrInvalidAnswerIndex):
		return msgUnrecognizedAnswer, true
	case errors.Is(err, errStaleRound):
		return msgStaleButton, true
	case errors.Is(err, errNotAnswered):
		return msgAnswerFirst, true
	default:
		return "", false
	}
}

// startQuiz replaces the chat's session with a new one and shows the first question.
func (h *Handler) startQuiz(ctx context.Context, chatID int64) error {
	state, err := h.quizService.StartSession(ctx, 0)
	if err != nil {
		h.logger.Error("failed to start quiz session",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		if errors.Is(err, service.ErrInsufficientVocabulary) {
			return h.send(newPlainMessage(chatID, msgNotEnoughWords))
		}
		return h.send(newPlainMessage(chatID, msgQuizUnavailable))
	}

	h.sessions.Store(sessionKey(chatID), state)

	h.logger.Debug("quiz session created",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", state.ID),
		zap.Int("total_questions", state.Total()),
	)

	return h.sendQuestion(chatID, *state)
}

// sendQuestion posts the current question of state with its answer buttons.
func (h *Handler) sendQuestion(chatID int64, state entities.SessionState) error {
	q, err := h.quizService.CurrentQuestion(&state)
	if err != nil {
		return err
	}

	msg := newMessage(chatID, formatQuizQuestion(&state, q))
	msg.ReplyMarkup = buildQuizAnswerKeyboard(q, sessionTag(state.ID), state.QuestionNumber())

	sent, err := h.sendMessage(msg)
	if err != nil {
		return err
	}

	h.sessions.StoreMessageID(sessionKey(chatID), sent.MessageID)
	return nil
}

// submitAnswer records the answer for the question ref points at and turns
// the question message into feedback.
func (h *Handler) submitAnswer(chatID int64, ref questionRef, index int) (entities.AnswerOutcome, error) {
	var (
		outcome  entities.AnswerOutcome
		snapshot entities.SessionState
	)

	err := h.sessions.Update(sessionKey(chatID), func(s *entities.SessionState) error {
		if err := ref.check(s); err != nil {
			return err
		}

		o, err := h.quizService.SubmitAnswer(s, index)
		if err != nil {
			return err
		}

		outcome = o
		snapshot = *s
		return nil
	})
	if err != nil {
		return entities.AnswerOutcome{}, err
	}

	h.logger.Debug("answer recorded",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", snapshot.ID),
		zap.Int("question", snapshot.QuestionNumber()),
		zap.Bool("correct", outcome.Correct),
	)

	h.showFeedback(chatID, snapshot, outcome)
	return outcome, nil
}

// showFeedback edits the question message to reveal the correct answer.
// Without a known message the feedback is sent as a new one.
func (h *Handler) showFeedback(chatID int64, state entities.SessionState, outcome entities.AnswerOutcome) {
	q := state.Questions[state.CurrentQuestionIndex]
	round := state.QuestionNumber()
	text := formatQuizQuestion(&state, q) + "\n\n" + formatAnswerFeedback(outcome)
	kb := buildQuizFeedbackKeyboard(q, outcome, sessionTag(state.ID), round)

	if msgID, ok := h.sessions.GetMessageID(sessionKey(chatID)); ok {
		edit := newEdit(chatID, msgID, text)
		edit.ReplyMarkup = &kb
		if err := h.send(edit); err == nil {
			return
		}
	}

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = kb
	_ = h.send(msg)
}

// nextQuestion leaves the question ref points at and shows either the next
// question or the results.
func (h *Handler) nextQuestion(chatID int64, ref questionRef) error {
	var (
		status   entities.SessionStatus
		summary  *entities.Summary
		snapshot entities.SessionState
	)

	err := h.sessions.Update(sessionKey(chatID), func(s *entities.SessionState) error {
		if err := ref.check(s); err != nil {
			return err
		}
		if s.Active && !s.Answered {
			return errNotAnswered
		}

		st, sum, err := h.quizService.Advance(s)
		if err != nil {
			return err
		}

		status, summary = st, sum
		snapshot = *s
		return nil
	})
	if err != nil {
		return err
	}

	if status == entities.StatusFinished && summary != nil {
		h.logger.Info("quiz finished",
			zap.Int64("chat_id", chatID),
			zap.String("session_id", snapshot.ID),
			zap.Int("score", summary.Score),
			zap.Int("total", summary.Total),
			zap.String("tier", string(summary.Tier)),
		)

		msg := newMessage(chatID, formatQuizResult(*summary))
		msg.ReplyMarkup = buildQuizResultKeyboard()
		return h.send(msg)
	}

	return h.sendQuestion(chatID, snapshot)
}

// answerCallback removes the loading state of a button and shows an optional toast.
func (h *Handler) answerCallback(callbackID, text string) {
	answer := tgbotapi.NewCallback(callbackID, text)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
