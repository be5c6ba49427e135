package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// SessionStorage provides in-memory storage for quiz sessions by session ID.
type SessionStorage struct {
	mu         sync.RWMutex
	sessions   map[string]*entities.SessionState
	messageIDs map[string]int
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions:   make(map[string]*entities.SessionState),
		messageIDs: make(map[string]int),
	}
}

// Store saves a session under id, replacing any previous one.
func (s *SessionStorage) Store(id string, session *entities.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = session
	delete(s.messageIDs, id)
}

// Get returns a copy of the session stored under id.
func (s *SessionStorage) Get(id string) (entities.SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return entities.SessionState{}, ErrSessionNotFound
	}
	return *session, nil
}

// Update runs fn on the session stored under id while holding the lock,
// so a session is never changed by two callers at once.
func (s *SessionStorage) Update(id string, fn func(session *entities.SessionState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(session)
}

// Delete removes the session stored under id.
func (s *SessionStorage) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	delete(s.messageIDs, id)
}

// StoreMessageID remembers the chat message showing the current question.
func (s *SessionStorage) StoreMessageID(id string, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messageIDs[id] = messageID
}

// GetMessageID returns the message stored by StoreMessageID.
func (s *SessionStorage) GetMessageID(id string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messageID, ok := s.messageIDs[id]
	return messageID, ok
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle removes sessions not updated within ttl and returns how many were removed.
func (s *SessionStorage) EvictIdle(ttl time.Duration, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if now.Sub(session.UpdatedAt) > ttl {
			delete(s.sessions, id)
			delete(s.messageIDs, id)
			removed++
		}
	}

	return removed
}
