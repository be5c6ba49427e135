package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-quiz-bot/internal/storage"
)

// handleStart shows the welcome screen.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newMessage(chatID, welcomeMessage(h.quizService.QuestionCount()))
		msg.ReplyMarkup = buildStartKeyboard()
		return h.send(msg)
	}
}

// handleHelp explains the controls.
func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, helpMessage()))
	}
}

// handleQuiz starts a new quiz, dropping the running one.
func (h *Handler) handleQuiz() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.startQuiz(ctx, chatID)
	}
}

// handleScore shows the score of the chat's session.
func (h *Handler) handleScore() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.sessions.Get(sessionKey(chatID))
		if err != nil {
			if errors.Is(err, storage.ErrSessionNotFound) {
				return h.send(newPlainMessage(chatID, msgNoActiveQuiz))
			}
			return err
		}
		return h.send(newMessage(chatID, formatScore(state)))
	}
}

// handleText treats plain text as an answer to the current question or,
// once it is answered, as a request for the next one.
func (h *Handler) handleText(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.sessions.Get(sessionKey(chatID))
		if err != nil {
			if errors.Is(err, storage.ErrSessionNotFound) {
				return h.send(newPlainMessage(chatID, msgNoActiveQuiz))
			}
			return err
		}
		if !state.Active {
			return h.send(newPlainMessage(chatID, msgQuizFinished))
		}

		if state.Answered {
			if isNextWord(text) {
				return h.replyOnQuizError(chatID, h.nextQuestion(chatID, currentQuestion))
			}
			return h.send(newPlainMessage(chatID, msgPressNext))
		}

		index, ok := h.resolveAnswer(state, text)
		if !ok {
			return h.send(newPlainMessage(chatID, msgUnrecognizedAnswer))
		}

		_, err = h.submitAnswer(chatID, questionRef{tag: sessionTag(state.ID), round: state.QuestionNumber()}, index)
		return h.replyOnQuizError(chatID, err)
	}
}

func (h *Handler) resolveAnswer(state entities.SessionState, text string) (int, bool) {
	q, err := h.quizService.CurrentQuestion(&state)
	if err != nil {
		return 0, false
	}
	return h.resolver.Resolve(text, q.Options)
}

// replyOnQuizError answers user-caused quiz errors and passes the rest on.
func (h *Handler) replyOnQuizError(chatID int64, err error) error {
	if err == nil {
		return nil
	}
	if msg, ok := quizErrorMessage(err); ok {
		return h.send(newPlainMessage(chatID, msg))
	}
	return err
}

func isNextWord(text string) bool {
	_, ok := nextWords[strings.ToLower(strings.TrimSpace(text))]
	return ok
}
