package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/circulation/internal/library"
	"github.com/lehigh-university-libraries/circulation/internal/providers"
)

// LLM asks a language model for book recommendations.
type LLM struct {
	provider providers.Provider
	model    string
}

// NewLLM creates a source backed by provider using model.
func NewLLM(provider providers.Provider, model string) *LLM {
	return &LLM{provider: provider, model: model}
}

// llmBook accepts year as a number or a string; models emit both.
type llmBook struct {
	Title  string          `json:"title"`
	Author string          `json:"author"`
	Year   json.RawMessage `json:"year"`
}

// Suggest asks the model for books matching query. A reply that does not
// parse gets one more attempt with the parse error fed back.
func (l *LLM) Suggest(ctx context.Context, query string, limit int) ([]library.Book, error) {
	query, limit, ok := normalizeQuery(query, limit)
	if !ok {
		return nil, nil
	}

	prompt := buildSuggestionPrompt(query, limit)
	reply, err := l.ask(ctx, prompt)
	if err != nil {
		return nil, lookupErr("llm", err)
	}

	found, parseErr := parseSuggestions(reply)
	if parseErr != nil {
		slog.Warn("LLM reply rejected, asking again", "model", l.model, "err", parseErr)

		reply, err = l.ask(ctx, buildRetryPrompt(prompt, reply, parseErr))
		if err != nil {
			return nil, lookupErr("llm", err)
		}
		found, parseErr = parseSuggestions(reply)
		if parseErr != nil {
			return nil, lookupErr("llm", parseErr)
		}
	}

	out := make([]library.Book, 0, len(found))
	for _, f := range found {
		if b, ok := candidate(f.Title, []string{f.Author}, parseLLMYear(f.Year)); ok {
			out = append(out, b)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (l *LLM) ask(ctx context.Context, prompt string) (string, error) {
	return l.provider.ExtractText(ctx, providers.Config{
		Model:       l.model,
		Temperature: 0.2,
		Prompt:      prompt,
		JSON:        true,
	})
}

func buildSuggestionPrompt(query string, limit int) string {
	return fmt.Sprintf(`You are a reference librarian helping a reader find books.

Suggest up to %d real, published books that match this request: %q

Rules:
1. Only include books that actually exist. Never invent titles or authors.
2. Use the title and author as printed on the book.
3. Use the year of first publication, or 0 if you are not sure.

Respond ONLY with JSON in exactly this shape, with no other text:
{"books": [{"title": "string", "author": "string", "year": 0}]}`, limit, query)
}

func buildRetryPrompt(original, reply string, parseErr error) string {
	return fmt.Sprintf(`Your previous reply was rejected because it could not be read: %v

Previous reply:
%s

Answer the original request again. Respond ONLY with the JSON document it asks for.

Original request:
%s`, parseErr, reply, original)
}

// parseSuggestions reads either {"books": [...]} or a bare array, with or
// without a markdown code fence around it.
func parseSuggestions(reply string) ([]llmBook, error) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	reply = strings.TrimSpace(reply)

	if strings.HasPrefix(reply, "[") {
		var list []llmBook
		if err := json.Unmarshal([]byte(reply), &list); err != nil {
			return nil, fmt.Errorf("failed to parse suggestion list: %w", err)
		}
		return list, nil
	}

	var doc struct {
		Books *[]llmBook `json:"books"`
	}
	if err := json.Unmarshal([]byte(reply), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion JSON: %w", err)
	}
	if doc.Books == nil {
		return nil, fmt.Errorf("reply has no books field")
	}
	return *doc.Books, nil
}

func parseLLMYear(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return library.YearFromNumber(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return library.ParseYear(s)
	}
	return 0
}
