package auth

import (
	"sync"
	"time"
)

type Session struct {
	UserID    uint
	ExpiresAt time.Time
}

func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SessionStore abstracts the token -> session mapping so authenticate does
// not depend on any particular storage. The server backs it with an
// in-memory map; a cache or database table would satisfy it equally.
type SessionStore interface {
	Put(token string, session Session)
	Get(token string) (Session, bool)
	Delete(token string)
	Sweep()
}

// MemorySessionStore is a mutex-guarded map with expiry checked on read and
// a periodic sweep for entries nobody reads again.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]Session)}
}

func (s *MemorySessionStore) Put(token string, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session
}

func (s *MemorySessionStore) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[token]
	if !exists {
		return Session{}, false
	}
	if session.Expired() {
		delete(s.sessions, token)
		return Session{}, false
	}
	return session, true
}

func (s *MemorySessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *MemorySessionStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, session := range s.sessions {
		if session.Expired() {
			delete(s.sessions, token)
		}
	}
}

// StartSweeper sweeps on the given interval until the returned stop
// function is called.
func (s *MemorySessionStore) StartSweeper(interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}
