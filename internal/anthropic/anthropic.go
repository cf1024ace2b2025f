package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lehigh-university-libraries/circulation/internal/providers"
)

const (
	// DefaultBaseURL is the public Anthropic API.
	DefaultBaseURL = "https://api.anthropic.com/v1"
	apiVersion     = "2023-06-01"
	maxTokens      = 1024
)

// Anthropic is a provider for the Anthropic Messages API
type Anthropic struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a new Anthropic provider. An empty baseURL uses DefaultBaseURL.
func New(apiKey, baseURL string) *Anthropic {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Anthropic{
		APIKey:     apiKey,
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// ExtractText sends the prompt as a single user message and joins the text
// blocks of the reply. The Messages API has no JSON mode; config.JSON is
// left to the prompt.
func (a *Anthropic) ExtractText(ctx context.Context, config providers.Config) (string, error) {
	if a.APIKey == "" {
		return "", fmt.Errorf("anthropic: %w", providers.ErrMissingAPIKey)
	}

	requestBody, err := json.Marshal(map[string]any{
		"model":      config.Model,
		"max_tokens": maxTokens,
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": config.Prompt,
			},
		},
		"temperature": config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/messages", bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	var text strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("no text content returned from Anthropic")
	}

	return text.String(), nil
}
