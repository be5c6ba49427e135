// Package app holds wiring shared by the commands.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-quiz-bot/internal/config"
	"github.com/aliskhannn/vocab-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/vocab-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/vocab-quiz-bot/internal/repository"
	"github.com/aliskhannn/vocab-quiz-bot/internal/service"
)

// OpenVocabulary returns the vocabulary store selected by cfg and a function
// releasing its resources.
func OpenVocabulary(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.VocabularyRepo, func(), error) {
	switch cfg.Vocabulary.Source {
	case config.SourcePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}

		repo := pgrepo.NewVocabularyRepository(pool, postgres.NewTransactor(pool))
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}

		logger.Info("vocabulary loaded from postgres")
		return repo, pool.Close, nil

	default:
		repo, err := repository.NewVocabularyRepository(cfg.Vocabulary.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("load vocabulary %s: %w", cfg.Vocabulary.Path, err)
		}

		logger.Info("vocabulary loaded from file",
			zap.String("path", cfg.Vocabulary.Path),
			zap.Int("pairs", repo.Len()),
		)
		return repo, func() {}, nil
	}
}
