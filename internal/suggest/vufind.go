package suggest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/circulation/internal/library"
)

// VuFind searches a VuFind discovery layer through its REST API.
type VuFind struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewVuFind creates a VuFind source for the instance at baseURL.
func NewVuFind(baseURL string) *VuFind {
	return &VuFind{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

type vufindResponse struct {
	Status  string `json:"status"`
	Records []struct {
		ID               string   `json:"id"`
		Title            string   `json:"title"`
		PrimaryAuthors   []string `json:"primaryAuthors"`
		PublicationDates []string `json:"publicationDates"`
	} `json:"records"`
}

// Suggest returns catalog records matching query.
func (v *VuFind) Suggest(ctx context.Context, query string, limit int) ([]library.Book, error) {
	query, limit, ok := normalizeQuery(query, limit)
	if !ok {
		return nil, nil
	}

	params := url.Values{}
	params.Set("lookfor", query)
	params.Set("type", "AllFields")
	params.Set("limit", strconv.Itoa(limit))
	for _, field := range []string{"id", "title", "primaryAuthors", "publicationDates"} {
		params.Add("field[]", field)
	}

	var resp vufindResponse
	if err := getJSON(ctx, v.HTTPClient, v.BaseURL+"/api/v1/search?"+params.Encode(), &resp); err != nil {
		return nil, lookupErr("vufind", err)
	}
	if resp.Status != "" && resp.Status != "OK" {
		return nil, lookupErr("vufind", errors.New("search returned status "+resp.Status))
	}

	out := make([]library.Book, 0, len(resp.Records))
	for _, rec := range resp.Records {
		year := 0
		if len(rec.PublicationDates) > 0 {
			year = library.ParseYear(rec.PublicationDates[0])
		}
		if b, ok := candidate(rec.Title, rec.PrimaryAuthors, year); ok {
			out = append(out, b)
		}
	}
	return out, nil
}
