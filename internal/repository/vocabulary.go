package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

var (
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
	ErrInvalidPair     = errors.New("vocabulary pair has empty term or translation")
)

// VocabularyRepository provides read-only access to the quiz vocabulary.
// Pairs are loaded once and kept in their original order.
type VocabularyRepository struct {
	pairs []entities.TranslationPair
}

// NewVocabularyRepository loads the vocabulary from a JSON file.
func NewVocabularyRepository(path string) (*VocabularyRepository, error) {
	pairs, err := loadVocabulary(path)
	if err != nil {
		return nil, err
	}

	return &VocabularyRepository{
		pairs: pairs,
	}, nil
}

// NewInMemoryVocabularyRepository creates a repository from the given pairs.
func NewInMemoryVocabularyRepository(pairs []entities.TranslationPair) (*VocabularyRepository, error) {
	if err := validatePairs(pairs); err != nil {
		return nil, err
	}

	return &VocabularyRepository{
		pairs: append([]entities.TranslationPair(nil), pairs...),
	}, nil
}

// GetAll returns a copy of all pairs in dataset order.
func (r *VocabularyRepository) GetAll(_ context.Context) ([]entities.TranslationPair, error) {
	return append([]entities.TranslationPair(nil), r.pairs...), nil
}

// Len returns the number of pairs.
func (r *VocabularyRepository) Len() int {
	return len(r.pairs)
}

func loadVocabulary(path string) ([]entities.TranslationPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}

	var wrapper struct {
		Pairs []entities.TranslationPair `json:"pairs"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vocabulary JSON: %w", err)
	}

	if err = validatePairs(wrapper.Pairs); err != nil {
		return nil, err
	}

	return wrapper.Pairs, nil
}

func validatePairs(pairs []entities.TranslationPair) error {
	if len(pairs) == 0 {
		return ErrEmptyVocabulary
	}

	for i, p := range pairs {
		if p.Term == "" || p.Translation == "" {
			return fmt.Errorf("pair %d: %w", i, ErrInvalidPair)
		}
	}

	return nil
}
