package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pharmed/clined-api/internal/config"
	"github.com/pharmed/clined-api/internal/generation"
)

// Client implements the generation.Generator interface against a
// Perplexity-compatible chat completions API.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains provider-specific configuration
	config config.ProviderConfig

	// httpClient carries the configured per-call timeout
	httpClient *http.Client
}

// Statically verify the interface contract.
var _ generation.Generator = (*Client)(nil)

// NewClient creates a new Client with the provided dependencies.
//
// Returns a properly initialized Client or an error if the configuration
// is incomplete.
func NewClient(logger *slog.Logger, cfg config.ProviderConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	// A missing API key is not a construction error: the key is checked on
	// every call so a keyless deployment can still serve the endpoints that
	// never reach the provider.
	if cfg.APIKey == "" {
		logger.Warn("Provider API key not configured, generation calls will fail")
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: provider base URL cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if cfg.TimeoutSeconds <= 0 {
		logger.Warn("Invalid provider timeout, using default", "timeout_seconds", 60)
		timeout = 60 * time.Second
	}

	return &Client{
		logger:     logger.With(slog.String("component", "perplexity_client")),
		config:     cfg,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// ChatCompletion sends a single system/user prompt pair to the provider and
// returns the generated content along with its citations.
//
// Every call carries the same tuning parameters and clinical search filters;
// only the messages vary. Any non-2xx provider status is a hard failure:
// there is no retry and no partial result.
func (c *Client) ChatCompletion(
	ctx context.Context,
	systemPrompt, userPrompt string,
) (*generation.Completion, error) {
	if c.config.APIKey == "" {
		return nil, fmt.Errorf("%w: provider API key not configured", generation.ErrInvalidConfig)
	}

	if userPrompt == "" {
		return nil, fmt.Errorf("%w: user prompt cannot be empty", generation.ErrGenerationFailed)
	}

	reqBody := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:           maxTokens,
		Temperature:         temperature,
		TopP:                topP,
		ReturnCitations:     true,
		SearchDomainFilter:  searchDomains,
		SearchRecencyFilter: searchRecencyFilter,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode provider request: %w", err)
	}

	endpoint := strings.TrimSuffix(c.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "Calling completion provider",
		"model", c.config.Model,
		"user_prompt_length", len(userPrompt))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrProviderFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read a bounded chunk of the body for the log line; provider error
		// bodies are short JSON blobs.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.ErrorContext(ctx, "Provider returned non-success status",
			"status", resp.StatusCode,
			"body", string(body))
		return nil, fmt.Errorf("%w: status %d", generation.ErrProviderFailure, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode provider response: %v",
			generation.ErrInvalidResponse, err)
	}

	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in provider response", generation.ErrInvalidResponse)
	}

	content := parsed.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("%w: empty content in provider response", generation.ErrInvalidResponse)
	}

	c.logger.InfoContext(ctx, "Provider call successful",
		"content_length", len(content),
		"citation_count", len(parsed.Citations))

	return &generation.Completion{
		Content:   content,
		Citations: parsed.Citations,
	}, nil
}
