package anthropic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lehigh-university-libraries/circulation/internal/providers"
)

func TestExtractText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "secret" {
			t.Errorf("missing api key header")
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Errorf("missing anthropic-version header")
		}
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"first "},{"type":"tool_use"},{"type":"text","text":"second"}]}`))
	}))
	defer srv.Close()

	text, err := New("secret", srv.URL).ExtractText(context.Background(), providers.Config{Model: "claude", Prompt: "hi"})
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "first second" {
		t.Errorf("text = %q", text)
	}
}

func TestExtractTextErrors(t *testing.T) {
	if _, err := New("", "").ExtractText(context.Background(), providers.Config{}); !errors.Is(err, providers.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	if _, err := New("k", srv.URL).ExtractText(context.Background(), providers.Config{}); err == nil {
		t.Error("expected error for empty content")
	}
}
