package usecase

import (
	"context"

	"github.com/whoisanshul/insight-dump/internal/entry/domain"
	"github.com/whoisanshul/insight-dump/pkg/ai"
)

// EntryUsecase defines the interface for entry business logic
type EntryUsecase interface {
	// Categorize runs one AI categorization call without persisting anything
	Categorize(ctx context.Context, content string) (*ai.CategorizationResult, error)

	// CreateEntry categorizes content, resolves the category, then stores the entry
	CreateEntry(ctx context.Context, userID, content string) (*domain.Entry, error)

	// ListEntries returns a user's entries, newest first
	ListEntries(userID string, limit int) ([]*domain.Entry, error)

	// SearchEntries fuzzy-matches a user's entries against a query
	SearchEntries(userID, query string) ([]*domain.Entry, error)

	// RecentEntryContexts renders a user's newest entries for an insight prompt
	RecentEntryContexts(userID string, limit int) ([]ai.EntryContext, error)

	// DeleteEntry deletes an entry (with ownership check)
	DeleteEntry(userID, entryID string) error

	// SetChatClient sets the AI provider client for categorization
	SetChatClient(client ai.ChatClient)
}

// CategoryUsecase defines the interface for category business logic,
// including the find-or-create resolver used by the categorization pipeline
type CategoryUsecase interface {
	// Resolve maps a proposed category name to a stable ID, creating the
	// category on first use. Empty name resolves to no category.
	Resolve(userID, name string) (*string, error)

	// ListCategories returns a user's categories with entry counts
	ListCategories(userID string) ([]*domain.Category, error)

	// CreateCategory creates a category manually
	CreateCategory(userID, name, description, color string) (*domain.Category, error)

	// UpdateCategory updates a category (with ownership check)
	UpdateCategory(userID, categoryID, name, description, color string) (*domain.Category, error)

	// DeleteCategory deletes a category (with ownership check)
	DeleteCategory(userID, categoryID string) error
}
