package taxonomy

import (
	"encoding/json/v2"
	"time"

	"github.com/editoria/editoria-server/internal/domain"
)

// searchCache memoizes search results per filter set for a fixed TTL.
// It has no locking of its own; the service mutex guards all access.
type searchCache struct {
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	results  []domain.SearchResult
	storedAt time.Time
}

func newSearchCache(ttl time.Duration) *searchCache {
	return &searchCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *searchCache) get(key string) ([]domain.SearchResult, bool) {
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.results, true
}

func (c *searchCache) put(key string, results []domain.SearchResult) {
	c.entries[key] = cacheEntry{results: results, storedAt: c.now()}
}

func (c *searchCache) invalidateAll() {
	clear(c.entries)
}

// cacheKey serializes filters so two equal filter sets always produce the
// same key regardless of how they were built. JSON keeps the key canonical
// (struct field order is fixed) and unambiguous: list elements are quoted,
// so IDs containing delimiter characters cannot collide with a different
// list shape.
func cacheKey(filters domain.SearchFilters) string {
	b, err := json.Marshal(filters)
	if err != nil {
		// SearchFilters is strings and string slices; marshaling cannot fail.
		panic(err)
	}
	return string(b)
}
