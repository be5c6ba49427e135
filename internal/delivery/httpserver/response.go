package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aliskhannn/vocab-quiz-bot/internal/service"
	"github.com/aliskhannn/vocab-quiz-bot/internal/storage"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// mapError returns the status code and error code for err.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, errInvalidInput), errors.Is(err, service.ErrInvalidAnswerIndex),
		errors.Is(err, service.ErrInvalidQuestionCount):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, service.ErrInsufficientVocabulary):
		return http.StatusUnprocessableEntity, "insufficient_vocabulary"
	case errors.Is(err, service.ErrSessionComplete):
		return http.StatusConflict, "session_complete"
	case errors.Is(err, service.ErrAlreadyAnswered):
		return http.StatusConflict, "already_answered"
	case errors.Is(err, service.ErrInvalidState):
		return http.StatusConflict, "invalid_state"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
