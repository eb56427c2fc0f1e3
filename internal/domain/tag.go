package domain

import "time"

// Tag is a flat editorial label for categorizing content.
// Tags are global; there is no ownership model beyond the creator audit field.
type Tag struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`                  // Display name: "Slow Burn"
	Slug        string    `json:"slug"`                  // URL-safe key: "slow-burn"
	Description string    `json:"description,omitempty"` // Optional description
	Color       string    `json:"color"`                 // Hex color for UI badges
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
	UsageCount  int       `json:"usage_count"` // Denormalized count of assignments referencing this tag
}
