package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

type oaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type oaRequest struct {
	Model       string      `json:"model"`
	Messages    []oaMessage `json:"messages"`
	MaxTokens   int         `json:"max_tokens"`
	Temperature float64     `json:"temperature"`
	MinP        *float64    `json:"min_p,omitempty"`
}

type oaResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) generateOpenAI(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	reqBody := oaRequest{
		Model: model,
		Messages: []oaMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: defaultTemperature,
	}
	if c.flavor == FlavorOpenRouter {
		minP := openRouterMinP
		reqBody.MinP = &minP
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("llm: marshal request: %w", err)
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}
	raw, err := c.request(ctx, c.baseURL+"/chat/completions", headers, body)
	if err != nil {
		return "", err
	}

	var resp oaResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("llm: parse response: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("llm: api error: %s", resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
