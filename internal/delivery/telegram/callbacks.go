package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	data := decodeCallback(cb.Data)
	if data.Action != actionQuiz || len(data.Params) == 0 {
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	toast, err := h.dispatchQuizCallback(ctx, chatID, data)
	if err != nil {
		if msg, ok := quizErrorMessage(err); ok {
			toast = msg
		} else {
			h.logger.Error("quiz callback failed",
				zap.Int64("chat_id", chatID),
				zap.String("data", cb.Data),
				zap.Error(err),
			)
			toast = msgInternalError
		}
	}

	h.answerCallback(cb.ID, toast)
}

func (h *Handler) dispatchQuizCallback(ctx context.Context, chatID int64, data callbackData) (string, error) {
	switch data.Params[0] {
	case quizStart:
		return "", h.startQuiz(ctx, chatID)

	case quizAnswer:
		round, ok1 := data.intParam(2)
		index, ok2 := data.intParam(3)
		if !ok1 || !ok2 || data.Params[1] == "" {
			h.logger.Warn("invalid answer callback", zap.String("data", data.Raw))
			return "", nil
		}
		outcome, err := h.submitAnswer(chatID, questionRef{tag: data.Params[1], round: round}, index)
		if err != nil {
			return "", err
		}
		if outcome.Correct {
			return msgCorrectToast, nil
		}
		return msgIncorrectToast, nil

	case quizNext:
		round, ok := data.intParam(2)
		if !ok || data.Params[1] == "" {
			h.logger.Warn("invalid next callback", zap.String("data", data.Raw))
			return "", nil
		}
		return "", h.nextQuestion(chatID, questionRef{tag: data.Params[1], round: round})

	case quizNoop:
		return msgPressNext, nil

	default:
		h.logger.Warn("unknown quiz callback", zap.String("data", data.Raw))
		return "", nil
	}
}
