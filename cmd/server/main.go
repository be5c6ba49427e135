package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-quiz-bot/internal/app"
	"github.com/aliskhannn/vocab-quiz-bot/internal/config"
	"github.com/aliskhannn/vocab-quiz-bot/internal/delivery/httpserver"
	"github.com/aliskhannn/vocab-quiz-bot/internal/logger"
	"github.com/aliskhannn/vocab-quiz-bot/internal/service"
	"github.com/aliskhannn/vocab-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg, "server")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	vocabulary, closeVocabulary, err := app.OpenVocabulary(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to open vocabulary", zap.Error(err))
	}
	defer closeVocabulary()

	quizService := service.NewQuizService(vocabulary, service.NewRandomSource(), cfg.Quiz.QuestionCount)
	sessions := storage.NewSessionStorage()

	janitor := storage.NewJanitor(sessions, cfg.Sessions.TTL, cfg.Sessions.CleanupInterval, lg)
	go func() {
		if err := janitor.Run(ctx); err != nil {
			lg.Error("session janitor failed", zap.Error(err))
		}
	}()

	srv := httpserver.New(quizService, sessions, lg, httpserver.Options{
		Addr:           cfg.HTTP.Addr,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})
	if err := srv.Run(ctx); err != nil {
		lg.Error("http server failed", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}
