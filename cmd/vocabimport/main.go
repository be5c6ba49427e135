// Command vocabimport loads the JSON vocabulary into PostgreSQL.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-quiz-bot/internal/config"
	"github.com/aliskhannn/vocab-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/vocab-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/vocab-quiz-bot/internal/logger"
	"github.com/aliskhannn/vocab-quiz-bot/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	path := flag.String("file", cfg.Vocabulary.Path, "vocabulary JSON file")
	flag.Parse()

	lg, err := logger.New(cfg, "vocabimport")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := repository.NewVocabularyRepository(*path)
	if err != nil {
		lg.Fatal("failed to read vocabulary", zap.String("path", *path), zap.Error(err))
	}
	pairs, err := source.GetAll(ctx)
	if err != nil {
		lg.Fatal("failed to read vocabulary", zap.String("path", *path), zap.Error(err))
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		lg.Fatal("database is not configured", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        cfg.DB.MaxConnections,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	repo := pgrepo.NewVocabularyRepository(pool, postgres.NewTransactor(pool))
	if err := repo.EnsureSchema(ctx); err != nil {
		lg.Fatal("failed to prepare schema", zap.Error(err))
	}

	n, err := repo.ReplaceAll(ctx, pairs)
	if err != nil {
		lg.Fatal("failed to import vocabulary", zap.Error(err))
	}

	lg.Info("vocabulary imported", zap.String("path", *path), zap.Int64("pairs", n))
}
