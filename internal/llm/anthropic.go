package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type anMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anRequest struct {
	Model       string      `json:"model"`
	System      string      `json:"system,omitempty"`
	Messages    []anMessage `json:"messages"`
	MaxTokens   int         `json:"max_tokens"`
	Temperature float64     `json:"temperature"`
}

type anResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) generateAnthropic(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	reqBody := anRequest{
		Model:  model,
		System: systemPrompt,
		Messages: []anMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: defaultTemperature,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("llm: marshal request: %w", err)
	}

	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": anthropicVersion,
	}
	raw, err := c.request(ctx, c.baseURL+"/messages", headers, body)
	if err != nil {
		return "", err
	}

	var resp anResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("llm: parse response: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("llm: api error: %s", resp.Error.Message)
	}

	var parts []string
	for _, block := range resp.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", errors.New("llm: response has no text content")
	}
	return strings.Join(parts, ""), nil
}
