package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJanitor_Sweep(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessionStorage()
	s.Store("fresh", newSession("fresh", now))
	s.Store("stale", newSession("stale", now.Add(-31*time.Minute)))

	j := NewJanitor(s, 30*time.Minute, time.Minute, zap.NewNop())

	assert.Equal(t, 1, j.Sweep(now))
	assert.Equal(t, 0, j.Sweep(now))
	assert.Equal(t, 1, s.Len())
}

func TestJanitor_RunStopsOnCancel(t *testing.T) {
	j := NewJanitor(NewSessionStorage(), time.Hour, time.Minute, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("janitor did not stop")
	}
}
