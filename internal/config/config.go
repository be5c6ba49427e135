package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownVocabularySource     = errors.New("unknown vocabulary source")
	ErrInvalidSessionSettings      = errors.New("session ttl and cleanup interval must be positive")
)

// Vocabulary sources.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string     `mapstructure:"env"`        // current application environment (local, dev, production etc)
	TelegramAPIToken string     `mapstructure:"-"`          // Telegram API token loaded from environment
	Vocabulary       Vocabulary `mapstructure:"vocabulary"` // where the quiz words come from
	Quiz             Quiz       `mapstructure:"quiz"`       // quiz parameters
	HTTP             HTTP       `mapstructure:"http"`       // HTTP API parameters
	Sessions         Sessions   `mapstructure:"sessions"`   // in-memory session housekeeping
	DB               DB         `mapstructure:"database"`   // database configuration section
}

// Vocabulary selects the vocabulary store.
type Vocabulary struct {
	Source string `mapstructure:"source"` // "file" or "postgres"
	Path   string `mapstructure:"path"`   // JSON dataset path, also read by the import command
}

// Quiz contains quiz parameters.
type Quiz struct {
	QuestionCount int `mapstructure:"question_count"` // questions per session
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Addr           string        `mapstructure:"addr"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Sessions controls eviction of abandoned sessions.
type Sessions struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int32         `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
	}
	return db.URL, nil
}

// RequireTelegram checks that the bot token is set.
func (c *Config) RequireTelegram() error {
	if c.TelegramAPIToken == "" {
		return fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}
	return nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Values from .env never override variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("vocabulary.source", SourceFile)
	v.SetDefault("vocabulary.path", "assets/data/vocabulary.json")
	v.SetDefault("quiz.question_count", 20)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("http.request_timeout", "10s")
	v.SetDefault("sessions.ttl", "1h")
	v.SetDefault("sessions.cleanup_interval", "10m")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Secrets only come from the environment.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if cfg.Sessions.TTL <= 0 || cfg.Sessions.CleanupInterval <= 0 {
		return nil, fmt.Errorf("%w: ttl=%s cleanup_interval=%s",
			ErrInvalidSessionSettings, cfg.Sessions.TTL, cfg.Sessions.CleanupInterval)
	}

	switch cfg.Vocabulary.Source {
	case SourceFile:
	case SourcePostgres:
		if _, err := cfg.DB.DSN(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVocabularySource, cfg.Vocabulary.Source)
	}

	return &cfg, nil
}
