package domain

import "time"

// Category is a hierarchical editorial section.
// Categories form a tree: Esportes -> Futebol -> Brasileirão.
// Content can belong to multiple categories.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`                  // Display name: "Futebol"
	Slug        string    `json:"slug"`                  // URL-safe key: "futebol"
	Description string    `json:"description,omitempty"` // Optional description
	Color       string    `json:"color"`                 // Hex color for UI badges
	Icon        string    `json:"icon,omitempty"`        // Icon identifier
	ParentID    string    `json:"parent_id,omitempty"`   // Parent category ID (empty for root)
	Order       int       `json:"order"`                 // Manual ordering among siblings
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
	UsageCount  int       `json:"usage_count"` // Denormalized count of assignments referencing this category
}

// IsRoot returns true if this category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == ""
}
