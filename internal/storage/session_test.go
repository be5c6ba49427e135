package storage

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

func newSession(id string, updatedAt time.Time) *entities.SessionState {
	return &entities.SessionState{
		ID:        id,
		Questions: make([]entities.Question, 3),
		Active:    true,
		StartedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

func TestSessionStorage_StoreGetDelete(t *testing.T) {
	s := NewSessionStorage()

	_, err := s.Get("a")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s.Store("a", newSession("a", time.Now()))
	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, 1, s.Len())

	s.Delete("a")
	_, err = s.Get("a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestSessionStorage_GetReturnsCopy(t *testing.T) {
	s := NewSessionStorage()
	s.Store("a", newSession("a", time.Now()))

	got, err := s.Get("a")
	require.NoError(t, err)
	got.Score = 10

	again, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 0, again.Score)
}

func TestSessionStorage_Update(t *testing.T) {
	s := NewSessionStorage()

	err := s.Update("missing", func(*entities.SessionState) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s.Store("a", newSession("a", time.Now()))

	fnErr := errors.New("boom")
	err = s.Update("a", func(session *entities.SessionState) error {
		session.Score++
		return fnErr
	})
	assert.ErrorIs(t, err, fnErr)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update("a", func(session *entities.SessionState) error {
				session.Score++
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 51, got.Score)
}

func TestSessionStorage_MessageIDs(t *testing.T) {
	s := NewSessionStorage()
	s.Store("a", newSession("a", time.Now()))

	_, ok := s.GetMessageID("a")
	assert.False(t, ok)

	s.StoreMessageID("a", 42)
	id, ok := s.GetMessageID("a")
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	// A new session under the same key forgets the old message.
	s.Store("a", newSession("a", time.Now()))
	_, ok = s.GetMessageID("a")
	assert.False(t, ok)

	s.StoreMessageID("a", 43)
	s.Delete("a")
	_, ok = s.GetMessageID("a")
	assert.False(t, ok)
}

func TestSessionStorage_EvictIdle(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessionStorage()
	s.Store("fresh", newSession("fresh", now.Add(-time.Minute)))
	s.Store("stale", newSession("stale", now.Add(-2*time.Hour)))
	s.StoreMessageID("stale", 7)

	removed := s.EvictIdle(time.Hour, now)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())
	_, err := s.Get("stale")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, ok := s.GetMessageID("stale")
	assert.False(t, ok)
	_, err = s.Get("fresh")
	assert.NoError(t, err)
}
