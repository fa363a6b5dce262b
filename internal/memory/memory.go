package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"intelliassist/internal/model"
)

const (
	// DefaultMaxSessions caps the number of concurrent conversation sessions.
	DefaultMaxSessions = 1000

	// DefaultSessionTTL expires idle sessions.
	DefaultSessionTTL = 30 * time.Minute

	// DefaultMaxTurns bounds the history kept per session.
	DefaultMaxTurns = 20
)

// Store keeps per-session conversation history in an expiring LRU.
// Reads return copies so callers never share the cached slice. The mutex
// covers the get-append-put sequence in Add, which the LRU's own lock does
// not make atomic.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, []model.ChatTurn]
	maxTurns int
}

// New creates a conversation store. Zero values fall back to defaults.
func New(maxSessions int, ttl time.Duration, maxTurns int) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	return &Store{
		sessions: expirable.NewLRU[string, []model.ChatTurn](maxSessions, nil, ttl),
		maxTurns: maxTurns,
	}
}

// Add appends a turn to the session history, dropping the oldest turns when
// the history exceeds the per-session bound.
func (s *Store) Add(sessionID string, turn model.ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, _ := s.sessions.Get(sessionID)
	history = append(history, turn)
	if len(history) > s.maxTurns {
		history = history[len(history)-s.maxTurns:]
	}
	s.sessions.Add(sessionID, history)
}

// History returns a copy of the session's conversation history, oldest first.
func (s *Store) History(sessionID string) []model.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}
	out := make([]model.ChatTurn, len(history))
	copy(out, history)
	return out
}

// Clear removes a session's history.
func (s *Store) Clear(sessionID string) {
	s.sessions.Remove(sessionID)
}
