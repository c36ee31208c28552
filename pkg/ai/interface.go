package ai

import (
	"context"
	"errors"
	"fmt"
)

// ChatClient is the interface for a single LLM provider endpoint.
// Implement this interface to add new providers (OpenAI, Claude, etc.) -
// only the adapter knows the provider's wire shape.
type ChatClient interface {
	// Invoke performs one non-streaming chat call and returns the raw model text.
	Invoke(ctx context.Context, instruction, payload string, opts CallOptions) (string, error)

	// Provider returns the provider name for logging
	Provider() ProviderType
}

// CallOptions holds the per-task generation settings
type CallOptions struct {
	Temperature float64
	MaxTokens   int
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderClaude ProviderType = "claude"
)

// ErrNoProviderConfigured is returned when neither provider has an API key
var ErrNoProviderConfigured = errors.New("no AI API keys configured")

// HTTPError is returned when a provider responds with a non-success status.
// It is surfaced as-is; retry policy belongs to the caller.
type HTTPError struct {
	Provider   ProviderType
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s API error: %d", e.Provider, e.StatusCode)
}
