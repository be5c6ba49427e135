package service

import (
	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

// QuestionSelector picks the vocabulary pair asked in each round.
// Pairs are drawn independently with replacement, so a pair may repeat
// and must repeat once the quiz is longer than the vocabulary.
type QuestionSelector struct {
	rng RandomSource
}

// NewQuestionSelector creates a new QuestionSelector.
func NewQuestionSelector(rng RandomSource) *QuestionSelector {
	return &QuestionSelector{rng: rng}
}

// SelectPairs returns total pairs chosen uniformly at random from vocabulary.
func (s *QuestionSelector) SelectPairs(vocabulary []entities.TranslationPair, total int) []entities.TranslationPair {
	if total <= 0 || len(vocabulary) == 0 {
		return nil
	}

	out := make([]entities.TranslationPair, 0, total)
	for i := 0; i < total; i++ {
		out = append(out, vocabulary[s.rng.Intn(len(vocabulary))])
	}

	return out
}
