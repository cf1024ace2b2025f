package library

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Book is a single catalog record. Title is the identifying key.
type Book struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Year   int    `json:"year,omitempty" yaml:"year,omitempty"`
}

// String renders the book the way listings show it.
func (b Book) String() string {
	year := "—"
	if b.Year != 0 {
		year = strconv.Itoa(b.Year)
	}
	return fmt.Sprintf("%s — %s (%s)", b.Title, b.Author, year)
}

const maxYear = 9999

// YearFromNumber converts a numeric year from JSON. Fractions and values
// outside [0, 9999] are unknown (0).
func YearFromNumber(n float64) int {
	if n != math.Trunc(n) || n < 0 || n > maxYear {
		return 0
	}
	return int(n)
}

// ParseYear extracts a publication year from a published-date string such
// as "1925" or "1925-04-10". Anything without four leading digits is 0.
func ParseYear(published string) int {
	published = strings.TrimSpace(published)
	if len(published) < 4 {
		return 0
	}
	year := 0
	for _, c := range []byte(published[:4]) {
		if c < '0' || c > '9' {
			return 0
		}
		year = year*10 + int(c-'0')
	}
	return year
}
