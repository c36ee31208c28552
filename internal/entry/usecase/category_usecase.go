package usecase

import (
	"errors"
	"fmt"

	"github.com/whoisanshul/insight-dump/internal/entry/domain"
	"github.com/whoisanshul/insight-dump/internal/entry/repository"
)

// categoryUsecase implements CategoryUsecase interface
type categoryUsecase struct {
	categoryRepo repository.CategoryRepository
	entryRepo    repository.EntryRepository
}

// NewCategoryUsecase creates a new instance of categoryUsecase
func NewCategoryUsecase(categoryRepo repository.CategoryRepository, entryRepo repository.EntryRepository) CategoryUsecase {
	return &categoryUsecase{
		categoryRepo: categoryRepo,
		entryRepo:    entryRepo,
	}
}

// Resolve performs the find-or-create lookup for a proposed category name.
// The (user_id, name) unique index rejects duplicate creation under race;
// on insert failure the lookup is retried once to pick up the winner's row.
func (u *categoryUsecase) Resolve(userID, name string) (*string, error) {
	if name == "" {
		return nil, nil
	}

	existing, err := u.categoryRepo.FindByUserAndName(userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &existing.ID, nil
	}

	category := &domain.Category{
		UserID:      userID,
		Name:        name,
		Description: fmt.Sprintf("Auto-created category for %s", name),
		Color:       domain.DefaultCategoryColor,
	}
	if err := u.categoryRepo.Create(category); err != nil {
		// A concurrent request may have created the same name first
		existing, lookupErr := u.categoryRepo.FindByUserAndName(userID, name)
		if lookupErr == nil && existing != nil {
			return &existing.ID, nil
		}
		return nil, err
	}

	return &category.ID, nil
}

func (u *categoryUsecase) ListCategories(userID string) ([]*domain.Category, error) {
	categories, err := u.categoryRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	for _, category := range categories {
		count, err := u.entryRepo.CountByCategory(category.ID)
		if err != nil {
			return nil, err
		}
		category.EntryCount = count
	}

	return categories, nil
}

func (u *categoryUsecase) CreateCategory(userID, name, description, color string) (*domain.Category, error) {
	if color == "" {
		color = domain.DefaultCategoryColor
	}
	if !domain.IsValidCategoryColor(color) {
		return nil, errors.New("color is not in the palette")
	}

	existing, err := u.categoryRepo.FindByUserAndName(userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("category already exists")
	}

	category := &domain.Category{
		UserID:      userID,
		Name:        name,
		Description: description,
		Color:       color,
	}
	if err := u.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (u *categoryUsecase) UpdateCategory(userID, categoryID, name, description, color string) (*domain.Category, error) {
	category, err := u.ownedCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if color != "" && !domain.IsValidCategoryColor(color) {
		return nil, errors.New("color is not in the palette")
	}

	if name != "" {
		category.Name = name
	}
	category.Description = description
	if color != "" {
		category.Color = color
	}

	if err := u.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (u *categoryUsecase) DeleteCategory(userID, categoryID string) error {
	category, err := u.ownedCategory(userID, categoryID)
	if err != nil {
		return err
	}

	// Detach entries first so none reference a deleted category
	if err := u.entryRepo.ClearCategory(category.ID); err != nil {
		return err
	}

	return u.categoryRepo.Delete(category.ID)
}

func (u *categoryUsecase) ownedCategory(userID, categoryID string) (*domain.Category, error) {
	category, err := u.categoryRepo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category not found")
	}
	if category.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return category, nil
}
