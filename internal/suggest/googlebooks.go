package suggest

import (
	"context"
	"fmt"

	"github.com/lehigh-university-libraries/circulation/internal/library"
	"google.golang.org/api/books/v1"
	"google.golang.org/api/option"
)

// GoogleBooks searches the Google Books volumes API.
type GoogleBooks struct {
	svc *books.Service
}

// NewGoogleBooks creates a Google Books source. Without an API key the
// service is called anonymously. endpoint overrides the API base URL.
func NewGoogleBooks(ctx context.Context, apiKey, endpoint string) (*GoogleBooks, error) {
	var opts []option.ClientOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	} else {
		opts = append(opts, option.WithoutAuthentication())
	}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := books.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Books service: %w", err)
	}
	return &GoogleBooks{svc: svc}, nil
}

// Suggest returns volumes matching query. Year comes from the first four
// digits of publishedDate.
func (g *GoogleBooks) Suggest(ctx context.Context, query string, limit int) ([]library.Book, error) {
	query, limit, ok := normalizeQuery(query, limit)
	if !ok {
		return nil, nil
	}

	vols, err := g.svc.Volumes.List(query).MaxResults(int64(limit)).Context(ctx).Do()
	if err != nil {
		return nil, lookupErr("googlebooks", err)
	}

	out := make([]library.Book, 0, len(vols.Items))
	for _, v := range vols.Items {
		if v == nil || v.VolumeInfo == nil {
			continue
		}
		info := v.VolumeInfo
		if b, ok := candidate(info.Title, info.Authors, library.ParseYear(info.PublishedDate)); ok {
			out = append(out, b)
		}
	}
	return out, nil
}
