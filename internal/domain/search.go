package domain

// SearchFilters is the predicate set applied by the query engine.
// Every field is optional; an absent or empty field skips its predicate
// entirely (it never means "match nothing"). ContentType and Status also
// treat the literal "all" as absent.
type SearchFilters struct {
	ContentType string   `json:"content_type,omitempty"` // "page", "article" or "all"
	Status      string   `json:"status,omitempty"`       // Content status, or "all"
	Tags        []string `json:"tags,omitempty"`         // OR-matched against assignment tags
	Categories  []string `json:"categories,omitempty"`   // OR-matched against assignment categories
	DateFrom    string   `json:"date_from,omitempty"`    // Inclusive lower bound on published_at
	DateTo      string   `json:"date_to,omitempty"`      // Inclusive upper bound on published_at
	SearchTerm  string   `json:"search_term,omitempty"`  // Case-insensitive substring on title or excerpt
}

// SearchResult joins a content item with its resolved taxonomy.
// It is a read projection, never stored.
type SearchResult struct {
	Content    Content     `json:"content"`
	Tags       []*Tag      `json:"tags"`
	Categories []*Category `json:"categories"`
	Chapeu     *Chapeu     `json:"chapeu,omitempty"`
}

// GroupedResults is the fan-out view of a result set.
// A result appears once per category/tag it holds (grouping, not partitioning).
type GroupedResults struct {
	ByCategory map[string][]SearchResult `json:"by_category"` // Keyed by category ID
	ByTag      map[string][]SearchResult `json:"by_tag"`      // Keyed by tag ID
	Recent     []SearchResult            `json:"recent"`      // Top 10 by published_at descending
	Popular    []SearchResult            `json:"popular"`     // Top 10 by tag+category count descending
	All        []SearchResult            `json:"all"`
}
