// Package llm generates completions from OpenAI-compatible, Anthropic, and
// OpenRouter endpoints. The endpoint flavor is detected once from the base
// URL; everything downstream branches on it.
package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Flavor int

const (
	FlavorOpenAI Flavor = iota
	FlavorAnthropic
	FlavorOpenRouter
)

func (f Flavor) String() string {
	switch f {
	case FlavorAnthropic:
		return "anthropic"
	case FlavorOpenRouter:
		return "openrouter"
	default:
		return "openai"
	}
}

// DetectFlavor classifies a base URL by host substring. Anything that is not
// recognizably Anthropic or OpenRouter speaks the OpenAI chat protocol.
func DetectFlavor(baseURL string) Flavor {
	u := strings.ToLower(baseURL)
	switch {
	case strings.Contains(u, "anthropic"):
		return FlavorAnthropic
	case strings.Contains(u, "openrouter"):
		return FlavorOpenRouter
	default:
		return FlavorOpenAI
	}
}

const (
	systemPrompt = "You are an AI assistant"

	defaultTemperature = 0.7
	openRouterMinP     = 0.1

	anthropicVersion = "2023-06-01"

	initialBackoff = 1 * time.Second
	maxBackoff     = 30 * time.Second
	maxTransient   = 6
)

type Options struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

type Client struct {
	baseURL    string
	apiKey     string
	flavor     Flavor
	hc         *http.Client
	maxRetries int
	retryDelay time.Duration
	backoff    time.Duration
}

func New(baseURL, apiKey string, opts Options) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("llm: base URL is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("llm: API key is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 8 * time.Minute
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		flavor:     DetectFlavor(baseURL),
		hc:         &http.Client{Timeout: opts.Timeout},
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		backoff:    initialBackoff,
	}, nil
}

func (c *Client) Flavor() Flavor { return c.flavor }

// Generate requests a completion, retrying the whole call up to MaxRetries
// times with a fixed delay. Each attempt carries its own transient-error
// backoff inside request.
func (c *Client) Generate(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}
		text, err := c.generateOnce(ctx, model, prompt, maxTokens)
		if err == nil {
			if strings.TrimSpace(text) == "" {
				lastErr = errors.New("llm: empty completion")
				continue
			}
			return text, nil
		}
		if ctx.Err() != nil {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("llm: generate failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *Client) generateOnce(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	switch c.flavor {
	case FlavorAnthropic:
		return c.generateAnthropic(ctx, model, prompt, maxTokens)
	default:
		return c.generateOpenAI(ctx, model, prompt, maxTokens)
	}
}

// request posts JSON and retries transient failures: 429, any 5xx, and
// transport errors back off exponentially from 1s up to 30s. Non-transient
// statuses fail immediately.
func (c *Client) request(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
	backoff := c.backoff
	var lastErr error
	for attempt := 0; attempt < maxTransient; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("llm: build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("llm: request: %w", err)
			}
			lastErr = err
		} else {
			raw, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr != nil {
				lastErr = readErr
			} else if resp.StatusCode == http.StatusOK {
				return raw, nil
			} else if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("llm: status %d: %s", resp.StatusCode, truncate(raw, 200))
			} else {
				return nil, fmt.Errorf("llm: status %d: %s", resp.StatusCode, truncate(raw, 200))
			}
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("llm: %w (last error: %v)", ctx.Err(), lastErr)
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
	return nil, fmt.Errorf("llm: transient errors exhausted: %w", lastErr)
}

func truncate(raw []byte, n int) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
