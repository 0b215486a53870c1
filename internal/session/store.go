package session

import (
	"sync"

	"quizforge/internal/domain"
	"quizforge/internal/util"
)

// Store holds the live sessions, keyed by ULID. Sessions are process-local
// and vanish on restart; isolation between browsers comes from the key alone.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*domain.Session),
	}
}

// Create mints a new session id and registers an empty session under it.
func (s *Store) Create() (string, *domain.Session) {
	id := util.NewULID()
	sess := domain.NewSession()

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return id, sess
}

// Get returns the session for an id, or nil when it is unknown.
func (s *Store) Get(id string) *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// GetOrCreate returns the existing session for id, or registers a fresh one
// under a new id when the id is empty or unknown. The returned id is the one
// the session actually lives under.
func (s *Store) GetOrCreate(id string) (string, *domain.Session) {
	if id != "" {
		if sess := s.Get(id); sess != nil {
			return id, sess
		}
	}
	return s.Create()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
