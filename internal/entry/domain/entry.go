package domain

import "time"

// Entry represents one logged thought. Immutable after creation except for
// the category/reasoning backfill applied while creating it.
type Entry struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"index;not null"`
	OriginalInput string    `json:"original_input" gorm:"type:text"`
	Content       string    `json:"content" gorm:"type:text;not null"`
	CategoryID    *string   `json:"category_id,omitempty" gorm:"index"`
	AIReasoning   *string   `json:"ai_reasoning,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Entry) TableName() string {
	return "entries"
}

// Category groups entries under a short name, unique per user.
// The unique index backs the resolver's find-or-create against races.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex:idx_user_category_name;not null"`
	Name        string    `json:"name" gorm:"uniqueIndex:idx_user_category_name;not null"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	EntryCount  int64     `json:"entry_count" gorm:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// DefaultCategoryColor is assigned to auto-created categories
const DefaultCategoryColor = "#3B82F6"

// CategoryColors is the fixed palette selectable in the UI
var CategoryColors = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#F97316", "#06B6D4", "#84CC16", "#EC4899", "#6B7280",
}

// IsValidCategoryColor reports whether color belongs to the palette
func IsValidCategoryColor(color string) bool {
	for _, c := range CategoryColors {
		if c == color {
			return true
		}
	}
	return false
}
