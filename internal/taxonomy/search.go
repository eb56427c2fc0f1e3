package taxonomy

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/editoria/editoria-server/internal/domain"
	"github.com/editoria/editoria-server/internal/errors"
)

// DefaultRelatedLimit caps related-content results when the caller gives no
// limit.
const DefaultRelatedLimit = 5

// Search runs the filter pipeline over the content universe and joins each
// surviving item with its resolved taxonomy. Results are cached per filter
// set until the TTL expires or a taxonomy mutation invalidates the cache.
func (s *Service) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.SearchResult, error) {
	dateFrom, dateTo, err := parseDateRange(filters)
	if err != nil {
		return nil, err
	}

	key := cacheKey(filters)

	s.mu.Lock()
	cached, ok := s.cache.get(key)
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	// Fetch outside the lock so slow source reads never block mutations.
	contents, err := s.fetchContent(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A concurrent search may have filled the entry during the fetch.
	if cached, ok := s.cache.get(key); ok {
		return cached, nil
	}

	results := make([]domain.SearchResult, 0, len(contents))
	for i := range contents {
		c := &contents[i]
		if !s.matches(c, filters, dateFrom, dateTo) {
			continue
		}
		results = append(results, s.joinContent(c))
	}

	s.cache.put(key, results)
	return results, nil
}

func (s *Service) fetchContent(ctx context.Context) ([]domain.Content, error) {
	pages, err := s.source.ListPages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "listing pages")
	}
	articles, err := s.source.ListArticles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "listing articles")
	}
	return append(pages, articles...), nil
}

// matches applies the filter chain. An absent or "all" filter skips its
// predicate. Callers hold s.mu.
func (s *Service) matches(c *domain.Content, filters domain.SearchFilters, dateFrom, dateTo *time.Time) bool {
	if filters.ContentType != "" && filters.ContentType != "all" {
		if string(c.Type) != filters.ContentType {
			return false
		}
	}
	if filters.Status != "" && filters.Status != "all" {
		if c.Status != filters.Status {
			return false
		}
	}

	assignment := s.assignments[c.ID]
	if len(filters.Tags) > 0 {
		if assignment == nil || !intersects(assignment.Tags, filters.Tags) {
			return false
		}
	}
	if len(filters.Categories) > 0 {
		if assignment == nil || !intersects(assignment.Categories, filters.Categories) {
			return false
		}
	}

	if dateFrom != nil && c.PublishedOrEpoch().Before(*dateFrom) {
		return false
	}
	if dateTo != nil && c.PublishedOrEpoch().After(*dateTo) {
		return false
	}

	if filters.SearchTerm != "" {
		needle := strings.ToLower(filters.SearchTerm)
		if !strings.Contains(strings.ToLower(c.Title), needle) &&
			!strings.Contains(strings.ToLower(c.Excerpt), needle) {
			return false
		}
	}
	return true
}

// joinContent builds the read projection for one content item. Tag and
// category IDs that no longer resolve are silently dropped. Callers hold s.mu.
func (s *Service) joinContent(c *domain.Content) domain.SearchResult {
	result := domain.SearchResult{
		Content:    *c,
		Tags:       []*domain.Tag{},
		Categories: []*domain.Category{},
	}
	assignment := s.assignments[c.ID]
	if assignment == nil {
		return result
	}
	for _, tagID := range assignment.Tags {
		if t, ok := s.tags[tagID]; ok {
			result.Tags = append(result.Tags, cloneTag(t))
		}
	}
	for _, categoryID := range assignment.Categories {
		if cat, ok := s.categories[categoryID]; ok {
			result.Categories = append(result.Categories, cloneCategory(cat))
		}
	}
	result.Chapeu = s.resolveChapeu(assignment)
	return result
}

func intersects(have, want []string) bool {
	for _, id := range want {
		if slices.Contains(have, id) {
			return true
		}
	}
	return false
}

// parseDateRange turns the string bounds into instants. Accepted layouts are
// plain dates and RFC 3339 timestamps.
func parseDateRange(filters domain.SearchFilters) (from, to *time.Time, err error) {
	if filters.DateFrom != "" {
		t, err := parseFilterDate(filters.DateFrom)
		if err != nil {
			return nil, nil, errors.Validationf("invalid date_from %q", filters.DateFrom)
		}
		from = &t
	}
	if filters.DateTo != "" {
		t, err := parseFilterDate(filters.DateTo)
		if err != nil {
			return nil, nil, errors.Validationf("invalid date_to %q", filters.DateTo)
		}
		to = &t
	}
	return from, to, nil
}

func parseFilterDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// GroupResults fans a result set out into the grouped view. A result appears
// under every category and tag it holds. Recent and Popular are capped at ten
// entries each; both sorts are stable so equal keys keep their search order.
func (s *Service) GroupResults(results []domain.SearchResult) domain.GroupedResults {
	grouped := domain.GroupedResults{
		ByCategory: make(map[string][]domain.SearchResult),
		ByTag:      make(map[string][]domain.SearchResult),
		All:        results,
	}
	for _, r := range results {
		for _, c := range r.Categories {
			grouped.ByCategory[c.ID] = append(grouped.ByCategory[c.ID], r)
		}
		for _, t := range r.Tags {
			grouped.ByTag[t.ID] = append(grouped.ByTag[t.ID], r)
		}
	}

	recent := slices.Clone(results)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Content.PublishedOrEpoch().After(recent[j].Content.PublishedOrEpoch())
	})
	grouped.Recent = capResults(recent, 10)

	popular := slices.Clone(results)
	sort.SliceStable(popular, func(i, j int) bool {
		return len(popular[i].Tags)+len(popular[i].Categories) >
			len(popular[j].Tags)+len(popular[j].Categories)
	})
	grouped.Popular = capResults(popular, 10)

	return grouped
}

func capResults(results []domain.SearchResult, n int) []domain.SearchResult {
	if len(results) > n {
		return results[:n]
	}
	return results
}

// GetRelatedContent finds content sharing tags or categories with contentID,
// ranked by how many labels each candidate shares with it. The source item is
// excluded. Content without an assignment has no related items. A limit of
// zero or less means DefaultRelatedLimit.
func (s *Service) GetRelatedContent(ctx context.Context, contentID string, limit int) ([]domain.SearchResult, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	s.mu.Lock()
	source := s.assignments[contentID]
	if source != nil {
		source = cloneAssignment(source)
	}
	s.mu.Unlock()

	if source == nil || (len(source.Tags) == 0 && len(source.Categories) == 0) {
		return []domain.SearchResult{}, nil
	}

	results, err := s.Search(ctx, domain.SearchFilters{
		Tags:       source.Tags,
		Categories: source.Categories,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	type scored struct {
		result domain.SearchResult
		shared int
	}
	candidates := make([]scored, 0, len(results))
	for _, r := range results {
		if r.Content.ID == contentID {
			continue
		}
		candidates = append(candidates, scored{
			result: r,
			shared: source.SharedCount(s.assignments[r.Content.ID]),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].shared > candidates[j].shared
	})

	related := make([]domain.SearchResult, 0, min(limit, len(candidates)))
	for _, c := range candidates {
		if len(related) == limit {
			break
		}
		related = append(related, c.result)
	}
	return related, nil
}
