package repository

import (
	"errors"
	"time"

	"github.com/whoisanshul/insight-dump/internal/entry/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCategoryRepository implements CategoryRepository using GORM
type gormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new GORM-based CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &gormCategoryRepository{db: db}
}

func (r *gormCategoryRepository) Create(category *domain.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	return r.db.Create(category).Error
}

func (r *gormCategoryRepository) FindByID(id string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *gormCategoryRepository) FindByUserAndName(userID, name string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *gormCategoryRepository) FindByUserID(userID string) ([]*domain.Category, error) {
	var categories []*domain.Category
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *gormCategoryRepository) Update(category *domain.Category) error {
	return r.db.Save(category).Error
}

func (r *gormCategoryRepository) Delete(id string) error {
	return r.db.Delete(&domain.Category{}, "id = ?", id).Error
}
