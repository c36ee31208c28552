package domain

import "time"

// Insight is a persisted analysis record. Append-only: never updated,
// deleted only explicitly by the user.
type Insight struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	CategoryID  *string   `json:"category_id,omitempty"`
	InsightText string    `json:"insight_text" gorm:"type:text;not null"`
	ActionPlan  *string   `json:"action_plan,omitempty" gorm:"type:text"`
	GeneratedAt time.Time `json:"generated_at"`
}

// TableName specifies the table name for GORM
func (Insight) TableName() string {
	return "insights"
}

// GeneratedInsight is a transient dashboard item. It lives for one
// request/response cycle and is never stored.
type GeneratedInsight struct {
	Type     string           `json:"type"` // insight | action | suggestion | habit | pattern
	Title    string           `json:"title"`
	Content  string           `json:"content"`
	Priority string           `json:"priority,omitempty"` // high | medium | low
	Category *InsightCategory `json:"category,omitempty"`
}

// InsightCategory is the category badge attached to a generated insight
type InsightCategory struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
