package taxonomy

import (
	"context"
	"sort"

	"github.com/editoria/editoria-server/internal/domain"
)

// Export returns a full snapshot of the taxonomy store. Collections are
// sorted so two exports of the same state are byte-identical.
func (s *Service) Export(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := &domain.Snapshot{
		Tags:        make([]*domain.Tag, 0, len(s.tags)),
		Categories:  make([]*domain.Category, 0, len(s.categories)),
		Assignments: make([]*domain.Assignment, 0, len(s.assignments)),
	}
	for _, t := range s.tags {
		snapshot.Tags = append(snapshot.Tags, cloneTag(t))
	}
	for _, c := range s.categories {
		snapshot.Categories = append(snapshot.Categories, cloneCategory(c))
	}
	for _, a := range s.assignments {
		snapshot.Assignments = append(snapshot.Assignments, cloneAssignment(a))
	}

	sort.Slice(snapshot.Tags, func(i, j int) bool { return snapshot.Tags[i].ID < snapshot.Tags[j].ID })
	sort.Slice(snapshot.Categories, func(i, j int) bool { return snapshot.Categories[i].ID < snapshot.Categories[j].ID })
	sort.Slice(snapshot.Assignments, func(i, j int) bool {
		return snapshot.Assignments[i].ContentID < snapshot.Assignments[j].ContentID
	})
	return snapshot, nil
}

// ImportResult reports how many entities an import merged in.
type ImportResult struct {
	Tags        int `json:"tags"`
	Categories  int `json:"categories"`
	Assignments int `json:"assignments"`
}

// Import merges a snapshot into the store. Entities are matched by ID and the
// imported version wins; entities absent from the snapshot are kept. The
// snapshot is trusted as exported: usage counters and cross-references come
// in as-is, with no recount or referential check.
func (s *Service) Import(ctx context.Context, snapshot *domain.Snapshot) (*ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range snapshot.Tags {
		s.tags[t.ID] = cloneTag(t)
	}
	for _, c := range snapshot.Categories {
		s.categories[c.ID] = cloneCategory(c)
	}
	for _, a := range snapshot.Assignments {
		s.assignments[a.ContentID] = cloneAssignment(a)
	}

	s.persistTags()
	s.persistCategories()
	s.persistAssignments()
	s.cache.invalidateAll()

	result := &ImportResult{
		Tags:        len(snapshot.Tags),
		Categories:  len(snapshot.Categories),
		Assignments: len(snapshot.Assignments),
	}
	s.logger.Info("taxonomy imported",
		"tags", result.Tags,
		"categories", result.Categories,
		"assignments", result.Assignments)
	return result, nil
}
