package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/vocab-quiz-bot/internal/config"
)

// New builds a JSON logger for production and a colored console logger
// everywhere else. Every entry carries the app name and environment.
func New(cfg *config.Config, app string) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zc.Build()
	if err != nil {
		return nil, err
	}

	return l.With(zap.String("app", app), zap.String("env", cfg.Env)), nil
}
