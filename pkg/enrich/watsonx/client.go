// Package watsonx provides a minimal client for the watsonx text-generation
// API. The client is an optional capability: construction fails soft (nil)
// when credentials are incomplete, and callers are expected to treat every
// error as a cue to fall back to their own output.
package watsonx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	generationPath = "/ml/v1/text/generation"
	apiVersion     = "2023-10-31"
	requestTimeout = 20 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
	maxNewTokens   = 400
)

var (
	// ErrUnauthorized indicates the API key is expired or invalid.
	ErrUnauthorized = errors.New("watsonx: unauthorized (API key expired or invalid)")
	// ErrRateLimited indicates the API rate limit was hit.
	ErrRateLimited = errors.New("watsonx: rate limited")
)

// Config carries the four values the API requires. All must be set.
type Config struct {
	URL       string `mapstructure:"url"`
	APIKey    string `mapstructure:"api_key"`
	ModelID   string `mapstructure:"model_id"`
	ProjectID string `mapstructure:"project_id"`
}

// Client calls the watsonx generation endpoint.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a client for the given config.
// Returns nil unless URL, API key, model id, and project id are all present.
func NewClient(cfg Config) *Client {
	cfg.URL = strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.URL == "" || cfg.APIKey == "" || cfg.ModelID == "" || cfg.ProjectID == "" {
		return nil
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
	}
}

// Generate submits the prompt with greedy decoding and returns the first
// generated text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body := GenerationRequest{
		ModelID: c.cfg.ModelID,
		Input:   prompt,
		Parameters: GenerationParameters{
			DecodingMethod: "greedy",
			MaxNewTokens:   maxNewTokens,
		},
		ProjectID: c.cfg.ProjectID,
	}

	respBody, err := c.post(ctx, generationPath, body)
	if err != nil {
		return "", err
	}

	var resp GenerationResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("watsonx: parsing generation response: %w", err)
	}
	if len(resp.Results) == 0 {
		return "", errors.New("watsonx: generation response has no results")
	}
	return resp.Results[0].GeneratedText, nil
}

// post performs an authenticated POST request and returns the response body.
func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("watsonx: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s%s?version=%s", c.cfg.URL, path, apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("watsonx: creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("watsonx: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("watsonx: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("watsonx: reading response: %w", err)
	}
	return body, nil
}
