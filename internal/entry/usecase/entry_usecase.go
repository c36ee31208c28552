package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/whoisanshul/insight-dump/internal/entry/domain"
	"github.com/whoisanshul/insight-dump/internal/entry/repository"
	"github.com/whoisanshul/insight-dump/pkg/ai"
	"github.com/whoisanshul/insight-dump/pkg/fuzzy"
)

// entryUsecase implements EntryUsecase interface
type entryUsecase struct {
	entryRepo    repository.EntryRepository
	categoryRepo repository.CategoryRepository
	resolver     CategoryUsecase
	chatClient   ai.ChatClient
}

// NewEntryUsecase creates a new instance of entryUsecase
func NewEntryUsecase(entryRepo repository.EntryRepository, categoryRepo repository.CategoryRepository, resolver CategoryUsecase) EntryUsecase {
	return &entryUsecase{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		resolver:     resolver,
	}
}

func (u *entryUsecase) SetChatClient(client ai.ChatClient) {
	u.chatClient = client
}

func (u *entryUsecase) Categorize(ctx context.Context, content string) (*ai.CategorizationResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("content is required")
	}
	if u.chatClient == nil {
		return nil, ai.ErrNoProviderConfigured
	}

	log.Printf("[Entry] Using %s for categorization", u.chatClient.Provider())
	raw, err := u.chatClient.Invoke(ctx, ai.CategorizeInstruction(), content, ai.CategorizeOptions())
	if err != nil {
		return nil, err
	}

	result := ai.ParseCategorization(raw)
	return &result, nil
}

// CreateEntry runs the full pipeline: one categorization call, category
// resolution, then the entry insert. A provider failure creates nothing.
func (u *entryUsecase) CreateEntry(ctx context.Context, userID, content string) (*domain.Entry, error) {
	result, err := u.Categorize(ctx, content)
	if err != nil {
		return nil, err
	}

	var categoryID *string
	if result.CategoryName != nil {
		categoryID, err = u.resolver.Resolve(userID, *result.CategoryName)
		if err != nil {
			return nil, err
		}
	}

	entry := &domain.Entry{
		UserID:        userID,
		OriginalInput: content,
		Content:       content,
		CategoryID:    categoryID,
	}
	if result.Reasoning != "" {
		reasoning := result.Reasoning
		entry.AIReasoning = &reasoning
	}

	if err := u.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (u *entryUsecase) ListEntries(userID string, limit int) ([]*domain.Entry, error) {
	return u.entryRepo.FindByUserID(userID, limit)
}

func (u *entryUsecase) SearchEntries(userID, query string) ([]*domain.Entry, error) {
	entries, err := u.entryRepo.FindByUserID(userID, 0)
	if err != nil {
		return nil, err
	}

	categoryNames, err := u.categoryNamesByID(userID)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Entry, 0)
	for _, entry := range entries {
		categoryName := ""
		if entry.CategoryID != nil {
			categoryName = categoryNames[*entry.CategoryID]
		}
		if fuzzy.MatchEntry(query, entry.Content, categoryName) {
			matched = append(matched, entry)
		}
	}

	return matched, nil
}

func (u *entryUsecase) RecentEntryContexts(userID string, limit int) ([]ai.EntryContext, error) {
	entries, err := u.entryRepo.FindByUserID(userID, limit)
	if err != nil {
		return nil, err
	}

	categoryNames, err := u.categoryNamesByID(userID)
	if err != nil {
		return nil, err
	}

	contexts := make([]ai.EntryContext, 0, len(entries))
	for _, entry := range entries {
		categoryName := ""
		if entry.CategoryID != nil {
			categoryName = categoryNames[*entry.CategoryID]
		}
		contexts = append(contexts, ai.EntryContext{
			CreatedAt:    entry.CreatedAt,
			CategoryName: categoryName,
			Content:      entry.Content,
		})
	}

	return contexts, nil
}

func (u *entryUsecase) DeleteEntry(userID, entryID string) error {
	entry, err := u.entryRepo.FindByID(entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return errors.New("entry not found")
	}
	if entry.UserID != userID {
		return errors.New("unauthorized")
	}
	return u.entryRepo.Delete(entry.ID)
}

func (u *entryUsecase) categoryNamesByID(userID string) (map[string]string, error) {
	categories, err := u.categoryRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}
	return names, nil
}
