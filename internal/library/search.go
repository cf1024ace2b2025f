package library

import (
	"sort"
	"strings"
)

const (
	fuzzyLimit  = 6
	fuzzyCutoff = 0.4
)

// Search filters the catalog by a free-text query. A book matches when the
// query is a substring of its title or author. When nothing matches, the
// closest titles by edit distance are returned instead, best first.
// A blank query returns the unfiltered list.
func (t *Tracker) Search(query string, availableOnly bool) []Entry {
	candidates := t.All()
	if availableOnly {
		filtered := candidates[:0]
		for _, e := range candidates {
			if !e.OnLoan {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	q := fold(query)
	if q == "" {
		return candidates
	}

	var matches []Entry
	for _, e := range candidates {
		if strings.Contains(fold(e.Title), q) || strings.Contains(fold(e.Author), q) {
			matches = append(matches, e)
		}
	}
	if len(matches) > 0 {
		return matches
	}

	return closeMatches(q, candidates)
}

func closeMatches(q string, candidates []Entry) []Entry {
	type scored struct {
		entry Entry
		score float64
	}

	var hits []scored
	for _, e := range candidates {
		if score := similarity(q, fold(e.Title)); score >= fuzzyCutoff {
			hits = append(hits, scored{entry: e, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	if len(hits) > fuzzyLimit {
		hits = hits[:fuzzyLimit]
	}

	matches := make([]Entry, 0, len(hits))
	for _, h := range hits {
		matches = append(matches, h.entry)
	}
	return matches
}
