package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-quiz-bot/internal/service"
)

type createSessionReq struct {
	QuestionCount int `json:"question_count" validate:"omitempty,min=1,max=100"`
}

type answerReq struct {
	Index *int `json:"index" validate:"required,min=0,max=3"`
}

// questionView is a question without its answer.
type questionView struct {
	Number  int      `json:"number"`
	Total   int      `json:"total"`
	Term    string   `json:"term"`
	Options []string `json:"options"`
}

type sessionView struct {
	ID                   string            `json:"id"`
	CurrentQuestionIndex int               `json:"current_question_index"`
	Total                int               `json:"total"`
	Score                int               `json:"score"`
	Active               bool              `json:"active"`
	Answered             bool              `json:"answered"`
	Question             *questionView     `json:"question,omitempty"`
	Summary              *entities.Summary `json:"summary,omitempty"`
}

type nextRes struct {
	Status   entities.SessionStatus `json:"status"`
	Question *questionView          `json:"question,omitempty"`
	Summary  *entities.Summary      `json:"summary,omitempty"`
}

func newQuestionView(state *entities.SessionState, q entities.Question) *questionView {
	return &questionView{
		Number:  state.QuestionNumber(),
		Total:   state.Total(),
		Term:    q.Term,
		Options: append([]string(nil), q.Options...),
	}
}

func (s *Server) newSessionView(state *entities.SessionState) sessionView {
	v := sessionView{
		ID:                   state.ID,
		CurrentQuestionIndex: state.CurrentQuestionIndex,
		Total:                state.Total(),
		Score:                state.Score,
		Active:               state.Active,
		Answered:             state.Answered,
	}

	if q, err := s.quiz.CurrentQuestion(state); err == nil {
		v.Question = newQuestionView(state, q)
	}
	if !state.Active {
		summary := service.Summarize(state.Score, state.Total())
		v.Summary = &summary
	}

	return v
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := mapError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, status, code, "internal error")
		return
	}
	writeError(w, status, code, err.Error())
}

func (s *Server) handleVocabulary(w http.ResponseWriter, r *http.Request) {
	pairs, err := s.quiz.Vocabulary(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pairs": pairs})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionReq
	if err := decodeJSONBody(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	state, err := s.quiz.StartSession(r.Context(), req.QuestionCount)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.sessions.Store(state.ID, state)
	s.logger.Debug("quiz session created",
		zap.String("session_id", state.ID),
		zap.Int("total_questions", state.Total()),
	)

	writeJSON(w, http.StatusCreated, s.newSessionView(state))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.newSessionView(&state))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if _, err := s.sessions.Get(id); err != nil {
		s.fail(w, r, err)
		return
	}
	s.sessions.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	q, err := s.quiz.CurrentQuestion(&state)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newQuestionView(&state, q))
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerReq
	if err := decodeJSONBody(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	var outcome entities.AnswerOutcome
	err := s.sessions.Update(chi.URLParam(r, "sessionID"), func(state *entities.SessionState) error {
		o, err := s.quiz.SubmitAnswer(state, *req.Index)
		if err != nil {
			return err
		}
		outcome = o
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	var res nextRes
	err := s.sessions.Update(chi.URLParam(r, "sessionID"), func(state *entities.SessionState) error {
		status, summary, err := s.quiz.Advance(state)
		if err != nil {
			return err
		}

		res = nextRes{Status: status, Summary: summary}
		if q, err := s.quiz.CurrentQuestion(state); err == nil {
			res.Question = newQuestionView(state, q)
		}
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
