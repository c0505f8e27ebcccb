package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFlavor(t *testing.T) {
	cases := map[string]Flavor{
		"https://api.anthropic.com/v1":    FlavorAnthropic,
		"https://openrouter.ai/api/v1":    FlavorOpenRouter,
		"https://api.openai.com/v1":       FlavorOpenAI,
		"http://localhost:8080/v1":        FlavorOpenAI,
		"https://my-vllm.example.com/v1":  FlavorOpenAI,
		"https://gateway.ANTHROPIC.io/v1": FlavorAnthropic,
	}
	for url, want := range cases {
		assert.Equal(t, want, DetectFlavor(url), url)
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New("", "key", Options{})
	assert.Error(t, err)
	_, err = New("http://localhost/v1", "", Options{})
	assert.Error(t, err)
	c, err := New("http://localhost/v1/", "key", Options{})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/v1", c.baseURL, "trailing slash must be trimmed")
}

func newClientT(t *testing.T, srv *httptest.Server, flavor Flavor) *Client {
	t.Helper()
	c, err := New(srv.URL, "test-key", Options{
		Timeout:    5 * time.Second,
		MaxRetries: 0,
		RetryDelay: time.Millisecond,
	})
	require.NoError(t, err)
	c.flavor = flavor
	return c
}

func TestGenerateOpenAI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req oaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Nil(t, req.MinP, "plain OpenAI requests must not carry min_p")
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "generated text"}},
			},
		})
	}))
	defer srv.Close()

	c := newClientT(t, srv, FlavorOpenAI)
	out, err := c.Generate(context.Background(), "test-model", "write something", 256)
	require.NoError(t, err)
	assert.Equal(t, "generated text", out)
}

func TestGenerateOpenRouterSendsMinP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req oaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.MinP)
		assert.InDelta(t, 0.1, *req.MinP, 1e-9)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "ok"}},
			},
		})
	}))
	defer srv.Close()

	c := newClientT(t, srv, FlavorOpenRouter)
	_, err := c.Generate(context.Background(), "m", "p", 10)
	require.NoError(t, err)
}

func TestGenerateAnthropic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req anRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, systemPrompt, req.System)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "part one, "},
				{"type": "text", "text": "part two"},
			},
		})
	}))
	defer srv.Close()

	c := newClientT(t, srv, FlavorAnthropic)
	out, err := c.Generate(context.Background(), "m", "p", 10)
	require.NoError(t, err)
	assert.Equal(t, "part one, part two", out)
}

func TestTransientErrorsAreRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "recovered"}},
			},
		})
	}))
	defer srv.Close()

	c := newClientT(t, srv, FlavorOpenAI)
	// Shrink the transient backoff so the test does not sleep for seconds.
	c.backoff = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	out, err := c.Generate(ctx, "m", "p", 10)
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, 3, attempts)
}

func TestNonTransientStatusFailsFast(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newClientT(t, srv, FlavorOpenAI)
	_, err := c.Generate(context.Background(), "m", "p", 10)
	require.Error(t, err)
	assert.Equal(t, 1, attempts, "401 must not be retried")
}
