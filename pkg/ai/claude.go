package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultClaudeModel     = "claude-3-sonnet-20240229"
	anthropicVersion       = "2023-06-01"
	defaultClaudeMaxTokens = 2000
)

// ClaudeClient implements ChatClient against the Anthropic messages endpoint
type ClaudeClient struct {
	apiKey  string
	model   string
	baseURL string
}

// NewClaudeClient creates a new Claude client. An empty model selects the default.
func NewClaudeClient(apiKey, model string) *ClaudeClient {
	if model == "" {
		model = defaultClaudeModel
	}
	return &ClaudeClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://api.anthropic.com",
	}
}

func (c *ClaudeClient) Provider() ProviderType {
	return ProviderClaude
}

func (c *ClaudeClient) Invoke(ctx context.Context, instruction, payload string, opts CallOptions) (string, error) {
	url := c.baseURL + "/v1/messages"

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultClaudeMaxTokens
	}

	reqBody := map[string]interface{}{
		"model":      c.model,
		"max_tokens": maxTokens,
		"system":     instruction,
		"messages": []map[string]string{
			{"role": "user", "content": payload},
		},
		"temperature": opts.Temperature,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{Provider: ProviderClaude, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Content) == 0 {
		return "", fmt.Errorf("claude returned no content")
	}

	return result.Content[0].Text, nil
}
