package client

import (
	"sync"
	"time"
)

// SessionUser is the authenticated user as the client knows it.
type SessionUser struct {
	ID        uint
	Email     string
	Token     string
	ExpiresAt time.Time
}

// Session holds at most one signed-in user. It lives only in memory.
type Session struct {
	mu        sync.RWMutex
	user      *SessionUser
	observers map[int]func(*SessionUser)
	nextID    int
}

func NewSession() *Session {
	return &Session{observers: map[int]func(*SessionUser){}}
}

// Current returns a copy of the signed-in user, or nil.
func (s *Session) Current() *SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Set(u SessionUser) {
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	s.notify()
}

func (s *Session) Clear() {
	s.mu.Lock()
	changed := s.user != nil
	s.user = nil
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// Subscribe registers fn to run after every change with the new user (nil
// once cleared). The returned func removes it.
func (s *Session) Subscribe(fn func(*SessionUser)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// observers run outside the lock so they may read the session
func (s *Session) notify() {
	s.mu.RLock()
	fns := make([]func(*SessionUser), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	current := s.Current()
	for _, fn := range fns {
		fn(current)
	}
}
