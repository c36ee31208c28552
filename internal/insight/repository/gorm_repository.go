package repository

import (
	"errors"
	"time"

	"github.com/whoisanshul/insight-dump/internal/insight/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormInsightRepository implements InsightRepository using GORM
type gormInsightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new GORM-based InsightRepository
func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &gormInsightRepository{db: db}
}

func (r *gormInsightRepository) Create(insight *domain.Insight) error {
	if insight.ID == "" {
		insight.ID = uuid.New().String()
	}
	if insight.GeneratedAt.IsZero() {
		insight.GeneratedAt = time.Now()
	}
	return r.db.Create(insight).Error
}

func (r *gormInsightRepository) FindByID(id string) (*domain.Insight, error) {
	var insight domain.Insight
	err := r.db.Where("id = ?", id).First(&insight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &insight, nil
}

func (r *gormInsightRepository) FindByUserID(userID string) ([]*domain.Insight, error) {
	var insights []*domain.Insight
	err := r.db.Where("user_id = ?", userID).Order("generated_at DESC").Find(&insights).Error
	return insights, err
}

func (r *gormInsightRepository) Delete(id string) error {
	return r.db.Delete(&domain.Insight{}, "id = ?", id).Error
}
