package repository

import (
	"github.com/whoisanshul/insight-dump/internal/entry/domain"
)

// EntryRepository defines the interface for entry data access
type EntryRepository interface {
	// Create creates a new entry
	Create(entry *domain.Entry) error

	// FindByID finds an entry by its ID
	FindByID(id string) (*domain.Entry, error)

	// FindByUserID finds entries for a user, newest first, capped at limit
	FindByUserID(userID string, limit int) ([]*domain.Entry, error)

	// Delete deletes an entry by ID
	Delete(id string) error

	// CountByCategory counts entries assigned to a category
	CountByCategory(categoryID string) (int64, error)

	// ClearCategory detaches all entries from a category
	ClearCategory(categoryID string) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// Create creates a new category
	Create(category *domain.Category) error

	// FindByID finds a category by its ID
	FindByID(id string) (*domain.Category, error)

	// FindByUserAndName performs the exact-match lookup the resolver relies on
	FindByUserAndName(userID, name string) (*domain.Category, error)

	// FindByUserID lists a user's categories ordered by name
	FindByUserID(userID string) ([]*domain.Category, error)

	// Update updates an existing category
	Update(category *domain.Category) error

	// Delete deletes a category by ID
	Delete(id string) error
}
