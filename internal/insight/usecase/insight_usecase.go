package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/whoisanshul/insight-dump/internal/insight/domain"
	"github.com/whoisanshul/insight-dump/internal/insight/repository"
	"github.com/whoisanshul/insight-dump/pkg/ai"
)

const noEntriesMessage = "No entries found to analyze"

// insightUsecase implements InsightUsecase interface
type insightUsecase struct {
	insightRepo  repository.InsightRepository
	chatClient   ai.ChatClient
	entryFetcher EntryFetcher
}

// NewInsightUsecase creates a new instance of insightUsecase
func NewInsightUsecase(insightRepo repository.InsightRepository) InsightUsecase {
	return &insightUsecase{
		insightRepo: insightRepo,
	}
}

func (u *insightUsecase) SetChatClient(client ai.ChatClient) {
	u.chatClient = client
}

func (u *insightUsecase) SetEntryFetcher(fetcher EntryFetcher) {
	u.entryFetcher = fetcher
}

func (u *insightUsecase) Generate(ctx context.Context, userID, kind string, persist bool) (*GenerateResult, error) {
	if u.entryFetcher == nil {
		return nil, errors.New("entry fetcher not configured")
	}

	entries, err := u.entryFetcher.RecentEntries(userID, ai.MaxPromptEntries)
	if err != nil {
		return nil, err
	}

	// Nothing to analyze: report that without spending a provider call
	if len(entries) == 0 {
		return &GenerateResult{
			Generated: []domain.GeneratedInsight{},
			Message:   noEntriesMessage,
		}, nil
	}

	if u.chatClient == nil {
		return nil, ai.ErrNoProviderConfigured
	}

	payload := ai.InsightPayload(ai.RenderEntries(entries))

	if persist {
		return u.generatePersisted(ctx, userID, payload)
	}
	return u.generateTransient(ctx, kind, payload)
}

// generatePersisted runs the legacy contract and saves each item verbatim,
// category_id included, with no resolution.
func (u *insightUsecase) generatePersisted(ctx context.Context, userID, payload string) (*GenerateResult, error) {
	log.Printf("[Insight] Using %s for insights generation", u.chatClient.Provider())
	raw, err := u.chatClient.Invoke(ctx, ai.LegacyInsightInstruction(), payload, ai.InsightOptions())
	if err != nil {
		return nil, err
	}

	items := ai.ParseLegacyInsights(raw)

	saved := make([]*domain.Insight, 0, len(items))
	for _, item := range items {
		insight := &domain.Insight{
			UserID:      userID,
			CategoryID:  item.CategoryID,
			InsightText: item.InsightText,
			ActionPlan:  item.ActionPlan,
		}
		if err := u.insightRepo.Create(insight); err != nil {
			log.Printf("[Insight] Error saving insight: %v", err)
			continue
		}
		saved = append(saved, insight)
	}

	return &GenerateResult{Saved: saved}, nil
}

// generateTransient runs one of the dashboard kinds and returns the items
// without persisting anything.
func (u *insightUsecase) generateTransient(ctx context.Context, rawKind, payload string) (*GenerateResult, error) {
	kind := ai.NormalizeKind(rawKind)

	log.Printf("[Insight] Using %s for %s generation", u.chatClient.Provider(), kind)
	raw, err := u.chatClient.Invoke(ctx, ai.InsightInstruction(kind), payload, ai.InsightOptions())
	if err != nil {
		return nil, err
	}

	items := ai.ParseInsightItems(raw, kind)

	generated := make([]domain.GeneratedInsight, 0, len(items))
	for _, item := range items {
		generated = append(generated, domain.GeneratedInsight{
			Type:     normalizeType(item.Type, kind),
			Title:    item.Title,
			Content:  item.Content,
			Priority: normalizePriority(item.Priority),
		})
	}

	return &GenerateResult{Generated: generated}, nil
}

func (u *insightUsecase) ListInsights(userID string) ([]*domain.Insight, error) {
	return u.insightRepo.FindByUserID(userID)
}

func (u *insightUsecase) DeleteInsight(userID, insightID string) error {
	insight, err := u.insightRepo.FindByID(insightID)
	if err != nil {
		return err
	}
	if insight == nil {
		return errors.New("insight not found")
	}
	if insight.UserID != userID {
		return errors.New("unauthorized")
	}
	return u.insightRepo.Delete(insight.ID)
}

// normalizeType pins the item type to the requested kind. For the general
// kind the model's own type is kept when it is a known one.
func normalizeType(itemType string, kind ai.TaskKind) string {
	if kind != ai.KindGeneral {
		return ai.ItemType(kind)
	}
	switch itemType {
	case "insight", "action", "suggestion", "habit", "pattern":
		return itemType
	default:
		return ai.ItemType(ai.KindGeneral)
	}
}

func normalizePriority(priority string) string {
	switch priority {
	case "high", "medium", "low":
		return priority
	default:
		return ""
	}
}
