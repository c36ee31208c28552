package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/whoisanshul/insight-dump/internal/entry/domain"
	"github.com/whoisanshul/insight-dump/internal/entry/repository"
	"github.com/whoisanshul/insight-dump/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeChatClient records calls and plays back a canned response
type fakeChatClient struct {
	response        string
	err             error
	calls           int
	lastInstruction string
	lastPayload     string
	lastOpts        ai.CallOptions
}

func (f *fakeChatClient) Invoke(_ context.Context, instruction, payload string, opts ai.CallOptions) (string, error) {
	f.calls++
	f.lastInstruction = instruction
	f.lastPayload = payload
	f.lastOpts = opts
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeChatClient) Provider() ai.ProviderType {
	return ai.ProviderType("fake")
}

func setupUsecases(t *testing.T) (*gorm.DB, EntryUsecase, CategoryUsecase) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Category{}, &domain.Entry{}))

	entryRepo := repository.NewEntryRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	categoryUc := NewCategoryUsecase(categoryRepo, entryRepo)
	entryUc := NewEntryUsecase(entryRepo, categoryRepo, categoryUc)

	return db, entryUc, categoryUc
}

func TestCategorize_EmptyContent(t *testing.T) {
	_, entryUc, _ := setupUsecases(t)
	entryUc.SetChatClient(&fakeChatClient{})

	_, err := entryUc.Categorize(context.Background(), "   ")
	assert.Error(t, err)
}

func TestCategorize_NoProviderConfigured(t *testing.T) {
	_, entryUc, _ := setupUsecases(t)

	_, err := entryUc.Categorize(context.Background(), "thinking about lunch")
	assert.ErrorIs(t, err, ai.ErrNoProviderConfigured)
}

func TestCategorize_ParseFallbackNeverErrors(t *testing.T) {
	_, entryUc, _ := setupUsecases(t)
	chat := &fakeChatClient{response: "sorry, I can't produce JSON today"}
	entryUc.SetChatClient(chat)

	result, err := entryUc.Categorize(context.Background(), "a thought")

	require.NoError(t, err)
	assert.Nil(t, result.CategoryName)
	assert.Equal(t, "Could not parse AI response", result.Reasoning)
	assert.Equal(t, 1, chat.calls)
}

func TestCategorize_UsesLowTemperature(t *testing.T) {
	_, entryUc, _ := setupUsecases(t)
	chat := &fakeChatClient{response: `{"categoryName": null, "reasoning": "unclear"}`}
	entryUc.SetChatClient(chat)

	_, err := entryUc.Categorize(context.Background(), "a thought")

	require.NoError(t, err)
	assert.InDelta(t, 0.3, chat.lastOpts.Temperature, 0.001)
	assert.Equal(t, "a thought", chat.lastPayload)
}

func TestCreateEntry_FullPipeline(t *testing.T) {
	db, entryUc, _ := setupUsecases(t)
	chat := &fakeChatClient{response: `{"categoryName": "Fitness", "reasoning": "relates to exercise"}`}
	entryUc.SetChatClient(chat)

	entry, err := entryUc.CreateEntry(context.Background(), "user-1", "Went for a 5k run this morning")
	require.NoError(t, err)

	assert.Equal(t, "Went for a 5k run this morning", entry.Content)
	assert.Equal(t, "Went for a 5k run this morning", entry.OriginalInput)
	require.NotNil(t, entry.AIReasoning)
	assert.Equal(t, "relates to exercise", *entry.AIReasoning)
	require.NotNil(t, entry.CategoryID)

	var category domain.Category
	require.NoError(t, db.Where("id = ?", *entry.CategoryID).First(&category).Error)
	assert.Equal(t, "Fitness", category.Name)
	assert.Equal(t, "user-1", category.UserID)
	assert.Equal(t, "Auto-created category for Fitness", category.Description)
	assert.Equal(t, domain.DefaultCategoryColor, category.Color)
}

func TestCreateEntry_NoProviderCreatesNothing(t *testing.T) {
	db, entryUc, _ := setupUsecases(t)

	_, err := entryUc.CreateEntry(context.Background(), "user-1", "some thought")
	assert.ErrorIs(t, err, ai.ErrNoProviderConfigured)

	var entryCount, categoryCount int64
	require.NoError(t, db.Model(&domain.Entry{}).Count(&entryCount).Error)
	require.NoError(t, db.Model(&domain.Category{}).Count(&categoryCount).Error)
	assert.Zero(t, entryCount)
	assert.Zero(t, categoryCount)
}

func TestCreateEntry_NullCategory(t *testing.T) {
	db, entryUc, _ := setupUsecases(t)
	entryUc.SetChatClient(&fakeChatClient{response: `{"categoryName": null, "reasoning": "no clear theme"}`})

	entry, err := entryUc.CreateEntry(context.Background(), "user-1", "hmm")
	require.NoError(t, err)

	assert.Nil(t, entry.CategoryID)

	var categoryCount int64
	require.NoError(t, db.Model(&domain.Category{}).Count(&categoryCount).Error)
	assert.Zero(t, categoryCount)
}

func TestResolve_FindOrCreateIsIdempotent(t *testing.T) {
	db, _, categoryUc := setupUsecases(t)

	first, err := categoryUc.Resolve("user-1", "Gym")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := categoryUc.Resolve("user-1", "Gym")
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, *first, *second)

	var count int64
	require.NoError(t, db.Model(&domain.Category{}).Where("user_id = ? AND name = ?", "user-1", "Gym").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// racingCategoryRepo simulates a concurrent request winning the insert:
// the lookup misses, Create hits the unique index, and the retry lookup
// finds the winner's row.
type racingCategoryRepo struct {
	winner  *domain.Category
	lookups int
}

func (r *racingCategoryRepo) Create(category *domain.Category) error {
	r.winner = &domain.Category{ID: "winner-id", UserID: category.UserID, Name: category.Name}
	return errors.New("UNIQUE constraint failed: categories.user_id, categories.name")
}

func (r *racingCategoryRepo) FindByUserAndName(userID, name string) (*domain.Category, error) {
	r.lookups++
	return r.winner, nil
}

func (r *racingCategoryRepo) FindByID(id string) (*domain.Category, error) {
	return nil, nil
}

func (r *racingCategoryRepo) FindByUserID(userID string) ([]*domain.Category, error) {
	return nil, nil
}

func (r *racingCategoryRepo) Update(category *domain.Category) error { return nil }

func (r *racingCategoryRepo) Delete(id string) error { return nil }

func TestResolve_DuplicateInsertRaceRetriesLookup(t *testing.T) {
	repo := &racingCategoryRepo{}
	categoryUc := NewCategoryUsecase(repo, nil)

	id, err := categoryUc.Resolve("user-1", "Gym")

	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "winner-id", *id)
	assert.Equal(t, 2, repo.lookups)
}

func TestResolve_EmptyName(t *testing.T) {
	_, _, categoryUc := setupUsecases(t)

	id, err := categoryUc.Resolve("user-1", "")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestResolve_ScopedPerUser(t *testing.T) {
	_, _, categoryUc := setupUsecases(t)

	a, err := categoryUc.Resolve("user-a", "Gym")
	require.NoError(t, err)
	b, err := categoryUc.Resolve("user-b", "Gym")
	require.NoError(t, err)

	assert.NotEqual(t, *a, *b)
}

func TestDeleteCategory_DetachesEntries(t *testing.T) {
	db, _, categoryUc := setupUsecases(t)

	gymID, err := categoryUc.Resolve("user-1", "Gym")
	require.NoError(t, err)

	entryRepo := repository.NewEntryRepository(db)
	entry := &domain.Entry{UserID: "user-1", Content: "Leg day", CategoryID: gymID}
	require.NoError(t, entryRepo.Create(entry))

	require.NoError(t, categoryUc.DeleteCategory("user-1", *gymID))

	reloaded, err := entryRepo.FindByID(entry.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Nil(t, reloaded.CategoryID)
}

func TestSearchEntries(t *testing.T) {
	db, entryUc, categoryUc := setupUsecases(t)

	gymID, err := categoryUc.Resolve("user-1", "Gym")
	require.NoError(t, err)

	entryRepo := repository.NewEntryRepository(db)
	require.NoError(t, entryRepo.Create(&domain.Entry{UserID: "user-1", Content: "Leg day at the gym", CategoryID: gymID}))
	require.NoError(t, entryRepo.Create(&domain.Entry{UserID: "user-1", Content: "Booked flights to Lisbon"}))
	require.NoError(t, entryRepo.Create(&domain.Entry{UserID: "user-2", Content: "gym session"}))

	results, err := entryUc.SearchEntries("user-1", "gym")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Leg day at the gym", results[0].Content)

	// Typos within the tolerance still match
	results, err = entryUc.SearchEntries("user-1", "gim")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestRecentEntryContexts(t *testing.T) {
	db, entryUc, categoryUc := setupUsecases(t)

	gymID, err := categoryUc.Resolve("user-1", "Gym")
	require.NoError(t, err)

	now := time.Now()
	entryRepo := repository.NewEntryRepository(db)
	require.NoError(t, entryRepo.Create(&domain.Entry{UserID: "user-1", Content: "older", CategoryID: gymID, CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, entryRepo.Create(&domain.Entry{UserID: "user-1", Content: "newer", CreatedAt: now}))

	contexts, err := entryUc.RecentEntryContexts("user-1", 50)
	require.NoError(t, err)

	require.Len(t, contexts, 2)
	assert.Equal(t, "newer", contexts[0].Content)
	assert.Equal(t, "Gym", contexts[1].CategoryName)
}

func TestDeleteEntry_OwnershipCheck(t *testing.T) {
	db, entryUc, _ := setupUsecases(t)

	entryRepo := repository.NewEntryRepository(db)
	entry := &domain.Entry{UserID: "user-1", Content: "mine"}
	require.NoError(t, entryRepo.Create(entry))

	err := entryUc.DeleteEntry("user-2", entry.ID)
	assert.EqualError(t, err, "unauthorized")

	require.NoError(t, entryUc.DeleteEntry("user-1", entry.ID))

	var count int64
	require.NoError(t, db.Model(&domain.Entry{}).Count(&count).Error)
	assert.Zero(t, count)
}
