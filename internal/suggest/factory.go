package suggest

import (
	"context"
	"fmt"

	"github.com/lehigh-university-libraries/circulation/internal/anthropic"
	"github.com/lehigh-university-libraries/circulation/internal/config"
	"github.com/lehigh-university-libraries/circulation/internal/gemini"
	"github.com/lehigh-university-libraries/circulation/internal/ollama"
	"github.com/lehigh-university-libraries/circulation/internal/openai"
	"github.com/lehigh-university-libraries/circulation/internal/providers"
)

// New builds the source named by cfg.SuggestSource, cached, rate limited
// and bounded by cfg.SuggestTimeout.
func New(ctx context.Context, cfg config.Config) (Source, error) {
	var src Source

	switch cfg.SuggestSource {
	case "googlebooks":
		gb, err := NewGoogleBooks(ctx, cfg.GoogleBooksAPIKey, cfg.GoogleBooksEndpoint)
		if err != nil {
			return nil, err
		}
		src = gb
	case "openlibrary":
		src = NewOpenLibrary(cfg.OpenLibraryURL)
	case "vufind":
		if cfg.VuFindURL == "" {
			return nil, fmt.Errorf("VUFIND_URL is required for the vufind source")
		}
		src = NewVuFind(cfg.VuFindURL)
	case "llm":
		provider, err := NewProvider(cfg)
		if err != nil {
			return nil, err
		}
		src = NewLLM(provider, cfg.Model())
	case "none", "":
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("unsupported suggestion source: %s", cfg.SuggestSource)
	}

	if cfg.SuggestTimeout > 0 {
		src = NewTimeout(src, cfg.SuggestTimeout)
	}
	if cfg.SuggestRate > 0 {
		src = NewLimited(src, cfg.SuggestRate, 1)
	}
	return NewCached(src), nil
}

// NewProvider returns the LLM provider named by cfg.LLMProvider.
func NewProvider(cfg config.Config) (providers.Provider, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return gemini.New(cfg.GeminiAPIKey), nil
	case "openai":
		return openai.New(cfg.OpenAIAPIKey, cfg.OpenAIURL), nil
	case "ollama":
		return ollama.New(cfg.OllamaURL), nil
	case "anthropic":
		return anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicURL), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.LLMProvider)
	}
}
