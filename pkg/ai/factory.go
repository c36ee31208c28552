package ai

// Config holds AI provider credentials and model overrides
type Config struct {
	OpenAIAPIKey string
	ClaudeAPIKey string

	// Optional model overrides, adapters use their defaults when empty
	OpenAIModel string
	ClaudeModel string
}

// NewChatClient selects the provider client from the configured credentials.
// Priority is fixed: OpenAI first, then Claude. Both production entry points
// (categorization and insight generation) share this policy.
func NewChatClient(cfg Config) (ChatClient, error) {
	if cfg.OpenAIAPIKey != "" {
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	}
	if cfg.ClaudeAPIKey != "" {
		return NewClaudeClient(cfg.ClaudeAPIKey, cfg.ClaudeModel), nil
	}
	return nil, ErrNoProviderConfigured
}
