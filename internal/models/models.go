package models

import (
	"sync"
	"time"

	"github.com/lehigh-university-libraries/circulation/internal/library"
)

// LibrarySession is one reader's catalog and loans. It owns its tracker;
// every read or write of the tracker goes through Do.
type LibrarySession struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	tracker *library.Tracker
	// suggestions holds the last lookup so a reader can accept one by
	// index.
	suggestions []library.Book
}

// NewLibrarySession creates a session whose catalog starts as books.
func NewLibrarySession(id string, books []library.Book) *LibrarySession {
	return &LibrarySession{
		ID:        id,
		CreatedAt: time.Now(),
		tracker:   library.NewTracker(books),
	}
}

// Do runs fn with exclusive access to the session's tracker.
func (s *LibrarySession) Do(fn func(t *library.Tracker) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.tracker)
}

// Search runs a catalog search under the session lock.
func (s *LibrarySession) Search(query string, availableOnly bool) []library.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Search(query, availableOnly)
}

// SetSuggestions remembers the latest lookup results.
func (s *LibrarySession) SetSuggestions(books []library.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = append([]library.Book(nil), books...)
}

// Suggestion returns the remembered suggestion at index.
func (s *LibrarySession) Suggestion(index int) (library.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.suggestions) {
		return library.Book{}, false
	}
	return s.suggestions[index], true
}

// SessionView is the JSON shape of a session.
type SessionView struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Books       []library.Entry `json:"books"`
	Loans       []string        `json:"loans"`
	Suggestions []library.Book  `json:"suggestions,omitempty"`
}

// View snapshots the session for rendering.
func (s *LibrarySession) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionView{
		ID:          s.ID,
		CreatedAt:   s.CreatedAt,
		Books:       s.tracker.All(),
		Loans:       s.tracker.Loans(),
		Suggestions: append([]library.Book(nil), s.suggestions...),
	}
}
