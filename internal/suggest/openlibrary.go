package suggest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/circulation/internal/library"
)

// OpenLibrary searches the Open Library search API.
type OpenLibrary struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewOpenLibrary creates an Open Library source rooted at baseURL, e.g.
// https://openlibrary.org.
func NewOpenLibrary(baseURL string) *OpenLibrary {
	return &OpenLibrary{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

type openLibraryResponse struct {
	Docs []struct {
		Title            string   `json:"title"`
		AuthorName       []string `json:"author_name"`
		FirstPublishYear int      `json:"first_publish_year"`
	} `json:"docs"`
}

// Suggest returns works matching query.
func (o *OpenLibrary) Suggest(ctx context.Context, query string, limit int) ([]library.Book, error) {
	query, limit, ok := normalizeQuery(query, limit)
	if !ok {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", "title,author_name,first_publish_year")

	var resp openLibraryResponse
	if err := getJSON(ctx, o.HTTPClient, o.BaseURL+"/search.json?"+params.Encode(), &resp); err != nil {
		return nil, lookupErr("openlibrary", err)
	}

	out := make([]library.Book, 0, len(resp.Docs))
	for _, doc := range resp.Docs {
		if b, ok := candidate(doc.Title, doc.AuthorName, doc.FirstPublishYear); ok {
			out = append(out, b)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
