// Package suggest looks up candidate books in external catalog services.
//
// Sources never touch a tracker. Callers decide whether to add what comes
// back, so a failed lookup cannot leave the catalog half-updated.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lehigh-university-libraries/circulation/internal/library"
)

// ErrLookup wraps every failure coming from a suggestion source. It is a
// separate channel from the tracker's errors.
var ErrLookup = errors.New("suggestion lookup failed")

// Source returns up to limit candidate books for a free-text query.
type Source interface {
	Suggest(ctx context.Context, query string, limit int) ([]library.Book, error)
}

const (
	unknownAuthor = "Unknown Author"
	// maxResultsCap is the largest page Google Books will return.
	maxResultsCap = 40
)

func lookupErr(source string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrLookup, source, err)
}

// normalizeQuery trims the query and clamps limit into [1, maxResultsCap].
// ok is false for a blank query, which sources answer with no results.
func normalizeQuery(query string, limit int) (string, int, bool) {
	query = strings.TrimSpace(query)
	limit = min(max(limit, 1), maxResultsCap)
	return query, limit, query != ""
}

// candidate builds a book from loosely typed remote fields. A record
// without a title is dropped, since the title is the catalog key.
func candidate(title string, authors []string, year int) (library.Book, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return library.Book{}, false
	}
	author := unknownAuthor
	if len(authors) > 0 && strings.TrimSpace(authors[0]) != "" {
		author = strings.TrimSpace(authors[0])
	}
	if year < 0 {
		year = 0
	}
	return library.Book{Title: title, Author: author, Year: year}, true
}

// Disabled is the source used when suggestions are turned off.
type Disabled struct{}

// Suggest always fails.
func (Disabled) Suggest(ctx context.Context, query string, limit int) ([]library.Book, error) {
	return nil, lookupErr("none", errors.New("suggestions disabled"))
}
