package repository

import (
	"errors"
	"time"

	"github.com/whoisanshul/insight-dump/internal/entry/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormEntryRepository implements EntryRepository using GORM
type gormEntryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new GORM-based EntryRepository
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &gormEntryRepository{db: db}
}

func (r *gormEntryRepository) Create(entry *domain.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	return r.db.Create(entry).Error
}

func (r *gormEntryRepository) FindByID(id string) (*domain.Entry, error) {
	var entry domain.Entry
	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *gormEntryRepository) FindByUserID(userID string, limit int) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entries).Error
	return entries, err
}

func (r *gormEntryRepository) Delete(id string) error {
	return r.db.Delete(&domain.Entry{}, "id = ?", id).Error
}

func (r *gormEntryRepository) CountByCategory(categoryID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Entry{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *gormEntryRepository) ClearCategory(categoryID string) error {
	return r.db.Model(&domain.Entry{}).Where("category_id = ?", categoryID).Update("category_id", nil).Error
}
