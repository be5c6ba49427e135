package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-quiz-bot/internal/infra/postgres"
)

const schema = `
	CREATE TABLE IF NOT EXISTS vocabulary_pairs (
		position    INTEGER PRIMARY KEY,
		term        TEXT NOT NULL,
		translation TEXT NOT NULL
	)
`

// TxRunner runs fn inside a transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// VocabularyRepository stores the quiz vocabulary in PostgreSQL.
type VocabularyRepository struct {
	db postgres.DBTX
	tx TxRunner
}

// NewVocabularyRepository creates a new VocabularyRepository.
func NewVocabularyRepository(db postgres.DBTX, tx TxRunner) *VocabularyRepository {
	return &VocabularyRepository{db: db, tx: tx}
}

// EnsureSchema creates the vocabulary table if it does not exist.
func (r *VocabularyRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create vocabulary_pairs: %w", err)
	}
	return nil
}

// GetAll returns every pair ordered by its position in the dataset.
func (r *VocabularyRepository) GetAll(ctx context.Context) ([]entities.TranslationPair, error) {
	query := `
		SELECT term, translation
		FROM vocabulary_pairs
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query vocabulary: %w", err)
	}

	pairs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.TranslationPair, error) {
		var p entities.TranslationPair
		err := row.Scan(&p.Term, &p.Translation)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan vocabulary: %w", err)
	}

	return pairs, nil
}

// ReplaceAll swaps the stored vocabulary for pairs in a single transaction.
func (r *VocabularyRepository) ReplaceAll(ctx context.Context, pairs []entities.TranslationPair) (int64, error) {
	var copied int64

	err := r.tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM vocabulary_pairs`); err != nil {
			return fmt.Errorf("delete vocabulary_pairs: %w", err)
		}

		rows := make([][]any, 0, len(pairs))
		for i, p := range pairs {
			rows = append(rows, []any{i + 1, p.Term, p.Translation})
		}

		n, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"vocabulary_pairs"},
			[]string{"position", "term", "translation"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("copy vocabulary_pairs: %w", err)
		}

		copied = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	return copied, nil
}
