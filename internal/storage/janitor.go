package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Janitor periodically removes abandoned sessions from a SessionStorage.
type Janitor struct {
	storage  *SessionStorage
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
}

// NewJanitor creates a janitor evicting sessions idle for longer than ttl every interval.
func NewJanitor(storage *SessionStorage, ttl, interval time.Duration, logger *zap.Logger) *Janitor {
	return &Janitor{
		storage:  storage,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// Run schedules the cleanup job and blocks until ctx is cancelled.
func (j *Janitor) Run(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.Sweep(time.Now())
	})
	if err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}

	c.Start()
	j.logger.Info("session janitor started",
		zap.Duration("ttl", j.ttl),
		zap.Duration("interval", j.interval),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("session janitor stopped")

	return nil
}

// Sweep evicts idle sessions once.
func (j *Janitor) Sweep(now time.Time) int {
	removed := j.storage.EvictIdle(j.ttl, now)
	if removed > 0 {
		j.logger.Info("evicted idle quiz sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", j.storage.Len()),
		)
	}
	return removed
}
