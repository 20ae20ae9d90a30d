package perplexity

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmed/clined-api/internal/config"
	"github.com/pharmed/clined-api/internal/generation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) config.ProviderConfig {
	return config.ProviderConfig{
		APIKey:         "test-key",
		BaseURL:        baseURL,
		Model:          "llama-3.1-sonar-large-128k-online",
		TimeoutSeconds: 5,
	}
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		logger  *slog.Logger
		mutate  func(*config.ProviderConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			logger: testLogger(),
			mutate: func(c *config.ProviderConfig) {},
		},
		{
			name:   "nil logger",
			logger: nil,
			mutate: func(c *config.ProviderConfig) {},
		},
		{
			name:   "missing api key is not a construction error",
			logger: testLogger(),
			mutate: func(c *config.ProviderConfig) { c.APIKey = "" },
		},
		{
			name:    "missing base url",
			logger:  testLogger(),
			mutate:  func(c *config.ProviderConfig) { c.BaseURL = "" },
			wantErr: generation.ErrInvalidConfig,
		},
		{
			name:    "missing model",
			logger:  testLogger(),
			mutate:  func(c *config.ProviderConfig) { c.Model = "" },
			wantErr: generation.ErrInvalidConfig,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig("https://api.perplexity.ai")
			tc.mutate(&cfg)

			client, err := NewClient(tc.logger, cfg)

			switch {
			case tc.logger == nil:
				assert.Error(t, err)
				assert.Nil(t, client)
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, client)
			default:
				require.NoError(t, err)
				require.NotNil(t, client)
			}
		})
	}
}

// TestChatCompletionRequestShape asserts the fixed wire fields on the
// outgoing request: model, tuning parameters, citation flag, and the
// clinical search filters.
func TestChatCompletionRequestShape(t *testing.T) {
	t.Parallel()

	var captured map[string]any
	var authHeader, contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "generated text"}}],
			"citations": ["https://pubmed.ncbi.nlm.nih.gov/1", "https://nejm.org/2"]
		}`))
	}))
	defer server.Close()

	client, err := NewClient(testLogger(), testConfig(server.URL))
	require.NoError(t, err)

	completion, err := client.ChatCompletion(context.Background(), "system role", "user question")
	require.NoError(t, err)

	assert.Equal(t, "generated text", completion.Content)
	assert.Equal(t, []string{"https://pubmed.ncbi.nlm.nih.gov/1", "https://nejm.org/2"}, completion.Citations)

	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "application/json", contentType)

	assert.Equal(t, "llama-3.1-sonar-large-128k-online", captured["model"])
	assert.Equal(t, float64(4000), captured["max_tokens"])
	assert.Equal(t, 0.2, captured["temperature"])
	assert.Equal(t, 0.9, captured["top_p"])
	assert.Equal(t, true, captured["return_citations"])
	assert.Equal(t, "month", captured["search_recency_filter"])

	domains, ok := captured["search_domain_filter"].([]any)
	require.True(t, ok)
	assert.Len(t, domains, 14)
	assert.Contains(t, domains, "pubmed.ncbi.nlm.nih.gov")
	assert.Contains(t, domains, "who.int")

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]any)
	second := messages[1].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "system role", first["content"])
	assert.Equal(t, "user", second["role"])
	assert.Equal(t, "user question", second["content"])
}

// TestChatCompletionWithoutAPIKey verifies a keyless client fails each call
// with ErrInvalidConfig before any network I/O.
func TestChatCompletionWithoutAPIKey(t *testing.T) {
	t.Parallel()

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.APIKey = ""
	client, err := NewClient(testLogger(), cfg)
	require.NoError(t, err)

	completion, err := client.ChatCompletion(context.Background(), "system", "user")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	assert.Nil(t, completion)
	assert.Zero(t, calls)
}

// TestChatCompletionProviderError verifies a non-2xx status maps to
// ErrProviderFailure with no completion.
func TestChatCompletionProviderError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "quota exceeded"}`))
	}))
	defer server.Close()

	client, err := NewClient(testLogger(), testConfig(server.URL))
	require.NoError(t, err)

	completion, err := client.ChatCompletion(context.Background(), "system", "user")
	assert.ErrorIs(t, err, generation.ErrProviderFailure)
	assert.Nil(t, completion)
}

func TestChatCompletionInvalidResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"choices": [`},
		{name: "no choices", body: `{"choices": [], "citations": []}`},
		{name: "empty content", body: `{"choices": [{"message": {"content": ""}}]}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client, err := NewClient(testLogger(), testConfig(server.URL))
			require.NoError(t, err)

			completion, err := client.ChatCompletion(context.Background(), "system", "user")
			assert.ErrorIs(t, err, generation.ErrInvalidResponse)
			assert.Nil(t, completion)
		})
	}
}

// TestChatCompletionNoCitations verifies a missing citations array yields a
// completion with an empty citation list rather than an error.
func TestChatCompletionNoCitations(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "text without sources"}}]}`))
	}))
	defer server.Close()

	client, err := NewClient(testLogger(), testConfig(server.URL))
	require.NoError(t, err)

	completion, err := client.ChatCompletion(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "text without sources", completion.Content)
	assert.Empty(t, completion.Citations)
}
