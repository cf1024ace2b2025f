// Package library holds the catalog of books and the set of titles
// currently on loan.
//
// A Tracker is not safe for concurrent use. Whoever owns it (a shell
// session, an HTTP session record) serializes access.
package library

import (
	"fmt"
	"strings"
)

// Receipt confirms a successful borrow or return. Title is always the
// canonical catalog title, whatever casing the caller used.
type Receipt struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Entry is a catalog book together with its loan status.
type Entry struct {
	Book
	OnLoan bool `json:"on_loan"`
}

// Tracker owns a catalog and its loan set.
type Tracker struct {
	books []Book
	// loans holds canonical titles in the order they were borrowed.
	loans []string
}

// NewTracker returns a tracker seeded with books. Duplicate titles in the
// seed are dropped the same way Add drops them.
func NewTracker(books []Book) *Tracker {
	t := &Tracker{
		books: make([]Book, 0, len(books)),
	}
	for _, b := range books {
		_, _, _ = t.Add(b)
	}
	return t
}

// Available returns the books not on loan, in catalog order.
func (t *Tracker) Available() []Book {
	available := make([]Book, 0, len(t.books))
	for _, b := range t.books {
		if !t.onLoan(b.Title) {
			available = append(available, b)
		}
	}
	return available
}

// All returns every catalog book with its loan status, in catalog order.
func (t *Tracker) All() []Entry {
	entries := make([]Entry, 0, len(t.books))
	for _, b := range t.books {
		entries = append(entries, Entry{Book: b, OnLoan: t.onLoan(b.Title)})
	}
	return entries
}

// Loans returns the titles currently on loan, oldest first.
func (t *Tracker) Loans() []string {
	loans := make([]string, len(t.loans))
	copy(loans, t.loans)
	return loans
}

// Len returns the number of books in the catalog.
func (t *Tracker) Len() int {
	return len(t.books)
}

// Borrow puts the named book on loan.
func (t *Tracker) Borrow(name string) (Receipt, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Receipt{}, ErrInvalidInput
	}

	book, ok := t.find(name)
	if !ok {
		return Receipt{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if t.onLoan(book.Title) {
		return Receipt{}, fmt.Errorf("%q: %w", book.Title, ErrAlreadyLoaned)
	}

	t.loans = append(t.loans, book.Title)
	return Receipt{
		Title:   book.Title,
		Message: fmt.Sprintf("'%s' has been borrowed successfully.", book.Title),
	}, nil
}

// Return takes the named book off loan.
func (t *Tracker) Return(name string) (Receipt, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Receipt{}, ErrInvalidInput
	}

	for i, title := range t.loans {
		if sameTitle(title, name) {
			t.loans = append(t.loans[:i], t.loans[i+1:]...)
			return Receipt{
				Title:   title,
				Message: fmt.Sprintf("'%s' has been returned successfully.", title),
			}, nil
		}
	}

	return Receipt{}, fmt.Errorf("%q: %w", name, ErrNotLoaned)
}

// Add appends book to the catalog unless a book with the same title is
// already there. It returns the catalog entry for the title, which is the
// existing one on a duplicate, and reports whether the catalog grew.
func (t *Tracker) Add(book Book) (Book, bool, error) {
	book.Title = strings.TrimSpace(book.Title)
	book.Author = strings.TrimSpace(book.Author)
	if book.Title == "" {
		return Book{}, false, ErrInvalidInput
	}
	if book.Year < 0 || book.Year > maxYear {
		book.Year = 0
	}

	if existing, exists := t.find(book.Title); exists {
		return existing, false, nil
	}

	t.books = append(t.books, book)
	return book, true, nil
}

func (t *Tracker) find(name string) (Book, bool) {
	key := fold(name)
	for _, b := range t.books {
		if fold(b.Title) == key {
			return b, true
		}
	}
	return Book{}, false
}

// onLoan compares exactly: loans only ever hold canonical titles.
func (t *Tracker) onLoan(title string) bool {
	for _, loaned := range t.loans {
		if loaned == title {
			return true
		}
	}
	return false
}
