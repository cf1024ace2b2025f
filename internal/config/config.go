// Package config reads runtime settings from the environment. The root
// command loads .env first, so values there apply too.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds everything the commands need to build a tracker, a
// suggestion source and the HTTP server.
type Config struct {
	Port     string
	SeedPath string

	SuggestSource     string
	SuggestMaxResults int
	SuggestTimeout    time.Duration
	SuggestRate       float64

	GoogleBooksAPIKey   string
	GoogleBooksEndpoint string
	OpenLibraryURL      string
	VuFindURL           string

	LLMProvider     string
	LLMModel        string
	GeminiAPIKey    string
	OpenAIAPIKey    string
	OpenAIURL       string
	OllamaURL       string
	AnthropicAPIKey string
	AnthropicURL    string
}

// Load reads the environment, applying defaults for anything unset.
func Load() Config {
	return Config{
		Port:     getEnv("CIRCULATION_PORT", "8888"),
		SeedPath: os.Getenv("CATALOG_SEED"),

		SuggestSource:     getEnv("SUGGEST_SOURCE", "googlebooks"),
		SuggestMaxResults: getEnvInt("SUGGEST_MAX_RESULTS", 6),
		SuggestTimeout:    getEnvDuration("SUGGEST_TIMEOUT", 6*time.Second),
		SuggestRate:       getEnvFloat("SUGGEST_RATE_PER_SECOND", 1),

		GoogleBooksAPIKey:   os.Getenv("GOOGLE_BOOKS_API_KEY"),
		GoogleBooksEndpoint: os.Getenv("GOOGLE_BOOKS_ENDPOINT"),
		OpenLibraryURL:      getEnv("OPENLIBRARY_URL", "https://openlibrary.org"),
		VuFindURL:           os.Getenv("VUFIND_URL"),

		LLMProvider:     getEnv("LLM_PROVIDER", "gemini"),
		LLMModel:        os.Getenv("LLM_MODEL"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIURL:       os.Getenv("OPENAI_URL"),
		OllamaURL:       getEnv("OLLAMA_URL", os.Getenv("OLLAMA_HOST")),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicURL:    os.Getenv("ANTHROPIC_URL"),
	}
}

// Model returns the configured LLM model, or the provider's default.
func (c Config) Model() string {
	if c.LLMModel != "" {
		return c.LLMModel
	}
	switch c.LLMProvider {
	case "gemini":
		return "gemini-2.5-flash"
	case "openai":
		return "gpt-4o-mini"
	case "ollama":
		return "mistral-small3.2:24b"
	case "anthropic":
		return "claude-3-5-haiku-latest"
	default:
		return ""
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring invalid integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("Ignoring invalid number setting", "key", key, "value", v)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("Ignoring invalid duration setting", "key", key, "value", v)
		return fallback
	}
	return d
}
