package repository

import (
	"github.com/whoisanshul/insight-dump/internal/insight/domain"
)

// InsightRepository defines the interface for persisted insight access
type InsightRepository interface {
	// Create stores a generated insight record
	Create(insight *domain.Insight) error

	// FindByID finds an insight by its ID
	FindByID(id string) (*domain.Insight, error)

	// FindByUserID lists a user's insights, newest first
	FindByUserID(userID string) ([]*domain.Insight, error)

	// Delete deletes an insight by ID
	Delete(id string) error
}
