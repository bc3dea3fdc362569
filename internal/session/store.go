package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store keeps per-client conversation history
type Store interface {
	History(sessionID string) []Message
	Append(sessionID string, messages ...Message)
	Recent(sessionID string, n int) []Message
	Clear(sessionID string)
	Len() int
}

// Config bounds the store
type Config struct {
	TTL         time.Duration // idle sessions expire after this
	MaxSessions int
	MaxMessages int // history kept per session, oldest trimmed first
}

// lruStore is an in-memory Store over an expirable LRU. The LRU bounds
// total memory; MaxMessages bounds each session.
type lruStore struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
	maxMsgs  int
}

// New creates a new in-memory session store
func New(cfg Config) Store {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1024
	}
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = 20
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}

	return &lruStore{
		sessions: expirable.NewLRU[string, *Session](
			cfg.MaxSessions,
			nil, // No eviction callback
			cfg.TTL,
		),
		maxMsgs: cfg.MaxMessages,
	}
}

// History returns a copy of the full stored history
func (s *lruStore) History(sessionID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}
	out := make([]Message, len(sess.Messages))
	copy(out, sess.Messages)
	return out
}

// Append adds messages to a session, creating it on first use. History is
// trimmed to the newest MaxMessages entries.
func (s *lruStore) Append(sessionID string, messages ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		sess = &Session{ID: sessionID}
	}

	sess.Messages = append(sess.Messages, messages...)
	if len(sess.Messages) > s.maxMsgs {
		trimmed := make([]Message, s.maxMsgs)
		copy(trimmed, sess.Messages[len(sess.Messages)-s.maxMsgs:])
		sess.Messages = trimmed
	}

	s.sessions.Add(sessionID, sess)
}

// Recent returns a copy of the last n messages
func (s *lruStore) Recent(sessionID string, n int) []Message {
	history := s.History(sessionID)
	if len(history) > n {
		history = history[len(history)-n:]
	}
	return history
}

// Clear drops a session's history
func (s *lruStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Remove(sessionID)
}

// Len reports how many sessions are live
func (s *lruStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Len()
}
