package domain

import "time"

// Content is an externally-sourced content item (a page or an article).
// The taxonomy service never mutates content; it only filters and joins it.
type Content struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Excerpt     string      `json:"excerpt,omitempty"`
	PublishedAt time.Time   `json:"published_at,omitzero"`
	Status      string      `json:"status,omitempty"` // draft, published, archived
	Author      string      `json:"author,omitempty"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	URL         string      `json:"url"`
	Type        ContentType `json:"type"`
}

// PublishedOrEpoch returns the publication time, substituting the Unix epoch
// when the content has no publication date. Content without a date therefore
// sorts last in recency order and is excluded by any date-from filter.
func (c *Content) PublishedOrEpoch() time.Time {
	if c.PublishedAt.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return c.PublishedAt
}
