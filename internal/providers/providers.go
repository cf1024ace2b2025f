package providers

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned before any network call when a hosted
// provider has no key configured.
var ErrMissingAPIKey = errors.New("API key not set")

// Config represents the configuration for a single generation request
type Config struct {
	Model       string
	Temperature float64
	Prompt      string
	// JSON asks the provider to constrain its reply to a JSON document
	// where the API supports it.
	JSON bool
}

// Provider defines the interface for an LLM provider
type Provider interface {
	ExtractText(ctx context.Context, config Config) (string, error)
}
