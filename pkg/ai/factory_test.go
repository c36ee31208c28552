package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatClient_PrefersOpenAI(t *testing.T) {
	client, err := NewChatClient(Config{OpenAIAPIKey: "sk-test", ClaudeAPIKey: "ck-test"})

	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, client.Provider())
}

func TestNewChatClient_FallsBackToClaude(t *testing.T) {
	client, err := NewChatClient(Config{ClaudeAPIKey: "ck-test"})

	require.NoError(t, err)
	assert.Equal(t, ProviderClaude, client.Provider())
}

func TestNewChatClient_NoKeys(t *testing.T) {
	client, err := NewChatClient(Config{})

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrNoProviderConfigured)
}

func TestNewChatClient_ModelOverrides(t *testing.T) {
	client, err := NewChatClient(Config{OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", client.(*OpenAIClient).model)

	client, err = NewChatClient(Config{ClaudeAPIKey: "ck-test"})
	require.NoError(t, err)
	assert.Equal(t, defaultClaudeModel, client.(*ClaudeClient).model)
}
