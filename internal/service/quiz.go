package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

// DefaultQuestionCount is the quiz length used when none is configured.
const DefaultQuestionCount = 20

var (
	ErrInsufficientVocabulary = errors.New("vocabulary needs at least 4 distinct translations")
	ErrInvalidQuestionCount   = errors.New("question count must be at least 1")
	ErrSessionComplete        = errors.New("quiz session is complete")
	ErrInvalidState           = errors.New("quiz session is not started")
	ErrInvalidAnswerIndex     = errors.New("answer index out of range")
	ErrAlreadyAnswered        = errors.New("question already answered")
)

type VocabularyRepo interface {
	GetAll(ctx context.Context) ([]entities.TranslationPair, error)
}

// QuizService generates quiz sessions and moves them forward.
// It holds no session state itself: every operation works on the
// SessionState passed in by the caller.
type QuizService struct {
	vocabularyRepo VocabularyRepo
	selector       *QuestionSelector
	options        *OptionGenerator
	questionCount  int
}

// NewQuizService creates a QuizService. A nil rng falls back to a time-seeded
// source and a non-positive questionCount to DefaultQuestionCount.
func NewQuizService(vocabularyRepo VocabularyRepo, rng RandomSource, questionCount int) *QuizService {
	if rng == nil {
		rng = NewRandomSource()
	}
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}

	return &QuizService{
		vocabularyRepo: vocabularyRepo,
		selector:       NewQuestionSelector(rng),
		options:        NewOptionGenerator(rng),
		questionCount:  questionCount,
	}
}

// QuestionCount returns the configured quiz length.
func (s *QuizService) QuestionCount() int {
	return s.questionCount
}

// Vocabulary returns the pairs questions are generated from.
func (s *QuizService) Vocabulary(ctx context.Context) ([]entities.TranslationPair, error) {
	pairs, err := s.vocabularyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get vocabulary: %w", err)
	}
	return pairs, nil
}

// StartSession loads the vocabulary and starts a new session.
// A non-positive questionCount uses the configured quiz length.
func (s *QuizService) StartSession(ctx context.Context, questionCount int) (*entities.SessionState, error) {
	if questionCount <= 0 {
		questionCount = s.questionCount
	}

	pairs, err := s.Vocabulary(ctx)
	if err != nil {
		return nil, err
	}

	return s.Start(pairs, questionCount)
}

// Start generates questionCount questions from vocabulary and returns a fresh session.
func (s *QuizService) Start(vocabulary []entities.TranslationPair, questionCount int) (*entities.SessionState, error) {
	if questionCount < 1 {
		return nil, ErrInvalidQuestionCount
	}
	if entities.DistinctTranslations(vocabulary) < entities.OptionsPerQuestion {
		return nil, ErrInsufficientVocabulary
	}

	questions := s.generateQuestions(vocabulary, questionCount)

	return entities.NewSessionState(uuid.NewString(), questions), nil
}

func (s *QuizService) generateQuestions(vocabulary []entities.TranslationPair, total int) []entities.Question {
	targets := s.selector.SelectPairs(vocabulary, total)

	questions := make([]entities.Question, 0, len(targets))
	for _, target := range targets {
		questions = append(questions, s.options.BuildQuestion(target, vocabulary))
	}

	return questions
}

// CurrentQuestion returns the question the session is positioned at.
func (s *QuizService) CurrentQuestion(state *entities.SessionState) (entities.Question, error) {
	if state == nil {
		return entities.Question{}, ErrInvalidState
	}
	if state.IsFinished() {
		return entities.Question{}, ErrSessionComplete
	}

	return state.Questions[state.CurrentQuestionIndex], nil
}

// SubmitAnswer records the answer for the current question and scores it.
// It does not move to the next question; see Advance.
func (s *QuizService) SubmitAnswer(state *entities.SessionState, selectedIndex int) (entities.AnswerOutcome, error) {
	if state == nil {
		return entities.AnswerOutcome{}, ErrInvalidState
	}
	if !state.Active || state.IsFinished() {
		return entities.AnswerOutcome{}, ErrSessionComplete
	}
	if state.Answered {
		return entities.AnswerOutcome{}, ErrAlreadyAnswered
	}

	q := state.Questions[state.CurrentQuestionIndex]
	if selectedIndex < 0 || selectedIndex >= len(q.Options) {
		return entities.AnswerOutcome{}, fmt.Errorf("%w: %d", ErrInvalidAnswerIndex, selectedIndex)
	}

	correct := q.IsCorrect(selectedIndex)
	if correct {
		state.Score++
	}
	state.Answered = true
	state.Touch()

	return entities.AnswerOutcome{
		Correct:            correct,
		SelectedIndex:      selectedIndex,
		CorrectIndex:       q.CorrectIndex,
		CorrectTranslation: q.CorrectTranslation,
	}, nil
}

// Advance moves the session to the next question. Advancing past an
// unanswered question skips it. When the last question is passed the
// session becomes inactive and the summary is returned.
func (s *QuizService) Advance(state *entities.SessionState) (entities.SessionStatus, *entities.Summary, error) {
	if state == nil {
		return "", nil, ErrInvalidState
	}
	if !state.Active || state.IsFinished() {
		return "", nil, ErrSessionComplete
	}

	state.CurrentQuestionIndex++
	state.Answered = false
	state.Touch()

	if state.IsFinished() {
		state.Active = false
		summary := Summarize(state.Score, state.Total())
		return entities.StatusFinished, &summary, nil
	}

	return entities.StatusInProgress, nil, nil
}
