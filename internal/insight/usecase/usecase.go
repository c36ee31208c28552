package usecase

import (
	"context"

	"github.com/whoisanshul/insight-dump/internal/insight/domain"
	"github.com/whoisanshul/insight-dump/pkg/ai"
)

// InsightUsecase defines the interface for insight business logic
type InsightUsecase interface {
	// Generate analyzes the user's recent entries with the AI provider.
	// persist=true uses the legacy contract and stores the results;
	// otherwise the items are returned transiently for the dashboard.
	Generate(ctx context.Context, userID, kind string, persist bool) (*GenerateResult, error)

	// ListInsights returns the user's persisted insights, newest first
	ListInsights(userID string) ([]*domain.Insight, error)

	// DeleteInsight deletes a persisted insight (with ownership check)
	DeleteInsight(userID, insightID string) error

	// SetChatClient sets the AI provider client
	SetChatClient(client ai.ChatClient)

	// SetEntryFetcher sets the source of recent entries for prompts
	SetEntryFetcher(fetcher EntryFetcher)
}

// GenerateResult carries either transient dashboard items or saved records
type GenerateResult struct {
	Generated []domain.GeneratedInsight
	Saved     []*domain.Insight
	Message   string
}

// EntryFetcher defines the interface for loading a user's recent entries
type EntryFetcher interface {
	RecentEntries(userID string, limit int) ([]ai.EntryContext, error)
}
