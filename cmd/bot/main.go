package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-quiz-bot/internal/app"
	"github.com/aliskhannn/vocab-quiz-bot/internal/config"
	"github.com/aliskhannn/vocab-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/vocab-quiz-bot/internal/logger"
	"github.com/aliskhannn/vocab-quiz-bot/internal/service"
	"github.com/aliskhannn/vocab-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.RequireTelegram(); err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg, "bot")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

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

	handler := telegram.NewHandler(
		bot,
		lg,
		quizService,
		sessions,
		service.NewAnswerValidator(),
	)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		lg.Error("telegram handler failed", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}
