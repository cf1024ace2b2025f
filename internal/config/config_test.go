package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"CIRCULATION_PORT", "CATALOG_SEED", "SUGGEST_SOURCE", "SUGGEST_MAX_RESULTS",
		"SUGGEST_TIMEOUT", "SUGGEST_RATE_PER_SECOND", "OPENLIBRARY_URL", "LLM_PROVIDER",
		"LLM_MODEL", "OLLAMA_URL", "OLLAMA_HOST",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8888" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.SuggestSource != "googlebooks" {
		t.Errorf("SuggestSource = %q", cfg.SuggestSource)
	}
	if cfg.SuggestMaxResults != 6 {
		t.Errorf("SuggestMaxResults = %d", cfg.SuggestMaxResults)
	}
	if cfg.SuggestTimeout != 6*time.Second {
		t.Errorf("SuggestTimeout = %v", cfg.SuggestTimeout)
	}
	if cfg.OpenLibraryURL != "https://openlibrary.org" {
		t.Errorf("OpenLibraryURL = %q", cfg.OpenLibraryURL)
	}
	if cfg.Model() != "gemini-2.5-flash" {
		t.Errorf("Model() = %q", cfg.Model())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CIRCULATION_PORT", "3000")
	t.Setenv("SUGGEST_SOURCE", "openlibrary")
	t.Setenv("SUGGEST_MAX_RESULTS", "3")
	t.Setenv("SUGGEST_TIMEOUT", "250ms")
	t.Setenv("SUGGEST_RATE_PER_SECOND", "0.5")
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("OLLAMA_URL", "")
	t.Setenv("OLLAMA_HOST", "http://ollama:11434")

	cfg := Load()

	if cfg.Port != "3000" || cfg.SuggestSource != "openlibrary" || cfg.SuggestMaxResults != 3 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.SuggestTimeout != 250*time.Millisecond {
		t.Errorf("SuggestTimeout = %v", cfg.SuggestTimeout)
	}
	if cfg.SuggestRate != 0.5 {
		t.Errorf("SuggestRate = %v", cfg.SuggestRate)
	}
	if cfg.OllamaURL != "http://ollama:11434" {
		t.Errorf("OllamaURL = %q, want OLLAMA_HOST fallback", cfg.OllamaURL)
	}
	if cfg.Model() != "mistral-small3.2:24b" {
		t.Errorf("Model() = %q", cfg.Model())
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SUGGEST_MAX_RESULTS", "lots")
	t.Setenv("SUGGEST_TIMEOUT", "soon")

	cfg := Load()

	if cfg.SuggestMaxResults != 6 {
		t.Errorf("SuggestMaxResults = %d, want default", cfg.SuggestMaxResults)
	}
	if cfg.SuggestTimeout != 6*time.Second {
		t.Errorf("SuggestTimeout = %v, want default", cfg.SuggestTimeout)
	}
}
