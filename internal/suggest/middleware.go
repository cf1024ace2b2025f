package suggest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/lehigh-university-libraries/circulation/internal/library"
	"golang.org/x/time/rate"
)

// Limited throttles calls to the wrapped source.
type Limited struct {
	next    Source
	limiter *rate.Limiter
}

// NewLimited allows perSecond calls on average with bursts of burst.
func NewLimited(next Source, perSecond float64, burst int) *Limited {
	return &Limited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Suggest waits for the limiter before calling through.
func (l *Limited) Suggest(ctx context.Context, query string, limit int) ([]library.Book, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, lookupErr("rate limit", err)
	}
	return l.next.Suggest(ctx, query, limit)
}

// Cached remembers successful lookups for the life of the process.
type Cached struct {
	next Source

	mu      sync.RWMutex
	results map[cacheKey][]library.Book
}

type cacheKey struct {
	query string
	limit int
}

// NewCached wraps next with a result cache.
func NewCached(next Source) *Cached {
	return &Cached{
		next:    next,
		results: make(map[cacheKey][]library.Book),
	}
}

// Suggest serves repeated queries from memory. Failures are not cached.
func (c *Cached) Suggest(ctx context.Context, query string, limit int) ([]library.Book, error) {
	key := cacheKey{query: strings.ToLower(strings.TrimSpace(query)), limit: limit}

	c.mu.RLock()
	cached, ok := c.results[key]
	c.mu.RUnlock()
	if ok {
		return append([]library.Book(nil), cached...), nil
	}

	found, err := c.next.Suggest(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.results[key] = append([]library.Book(nil), found...)
	c.mu.Unlock()

	return found, nil
}

// Timeout bounds every call to the wrapped source.
type Timeout struct {
	next    Source
	timeout time.Duration
}

// NewTimeout wraps next so each lookup gets at most d.
func NewTimeout(next Source, d time.Duration) *Timeout {
	return &Timeout{next: next, timeout: d}
}

// Suggest calls through with a deadline.
func (t *Timeout) Suggest(ctx context.Context, query string, limit int) ([]library.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Suggest(ctx, query, limit)
}
