package domain

import (
	"slices"
	"time"
)

// ContentType distinguishes the two kinds of editorial content.
type ContentType string

// Content types.
const (
	ContentTypePage    ContentType = "page"
	ContentTypeArticle ContentType = "article"
)

// Assignment links one content item to the tags and categories that apply to it.
// Exactly one assignment exists per content ID; assigning again replaces it wholesale.
//
// Tag and category order is meaningful: the first element of each list is the
// primary label, and the chapeu is derived from it.
type Assignment struct {
	ContentID       string      `json:"content_id"`
	ContentType     ContentType `json:"content_type"`
	Tags            []string    `json:"tags"`       // Ordered tag IDs
	Categories      []string    `json:"categories"` // Ordered category IDs
	PrimaryTag      string      `json:"primary_tag,omitempty"`
	PrimaryCategory string      `json:"primary_category,omitempty"`
	AssignedBy      string      `json:"assigned_by"`
	AssignedAt      time.Time   `json:"assigned_at"`
}

// SyncPrimary re-derives the primary pointers from the first list elements.
// Invariant: PrimaryTag == Tags[0] and PrimaryCategory == Categories[0]
// (or empty when the respective list is empty).
func (a *Assignment) SyncPrimary() {
	a.PrimaryTag = ""
	if len(a.Tags) > 0 {
		a.PrimaryTag = a.Tags[0]
	}
	a.PrimaryCategory = ""
	if len(a.Categories) > 0 {
		a.PrimaryCategory = a.Categories[0]
	}
}

// RemoveTag unlinks a tag ID and re-derives the primary pointers.
// Returns true if the ID was present.
func (a *Assignment) RemoveTag(tagID string) bool {
	n := len(a.Tags)
	a.Tags = slices.DeleteFunc(a.Tags, func(id string) bool { return id == tagID })
	if len(a.Tags) == n {
		return false
	}
	a.SyncPrimary()
	return true
}

// RemoveCategory unlinks a category ID and re-derives the primary pointers.
// Returns true if the ID was present.
func (a *Assignment) RemoveCategory(categoryID string) bool {
	n := len(a.Categories)
	a.Categories = slices.DeleteFunc(a.Categories, func(id string) bool { return id == categoryID })
	if len(a.Categories) == n {
		return false
	}
	a.SyncPrimary()
	return true
}

// SharedCount returns how many tag and category IDs this assignment shares
// with another. Used for related-content ranking.
func (a *Assignment) SharedCount(other *Assignment) int {
	if other == nil {
		return 0
	}
	count := 0
	for _, id := range a.Tags {
		if slices.Contains(other.Tags, id) {
			count++
		}
	}
	for _, id := range a.Categories {
		if slices.Contains(other.Categories, id) {
			count++
		}
	}
	return count
}
