package storage

import (
	"sort"
	"sync"

	"github.com/lehigh-university-libraries/circulation/internal/models"
)

// SessionStore keeps library sessions in memory, keyed by session ID.
type SessionStore struct {
	sessions map[string]*models.LibrarySession
	mu       sync.RWMutex
}

func New() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.LibrarySession),
	}
}

func (s *SessionStore) Get(sessionID string) (*models.LibrarySession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *SessionStore) Set(sessionID string, session *models.LibrarySession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
}

// GetAll returns every session, oldest first.
func (s *SessionStore) GetAll() []*models.LibrarySession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.LibrarySession, 0, len(s.sessions))
	for _, v := range s.sessions {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// Delete removes a session and reports whether it existed.
func (s *SessionStore) Delete(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	return exists
}
