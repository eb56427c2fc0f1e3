// Package taxonomy implements the editorial taxonomy core: tag and category
// stores, content assignments with denormalized usage counters, chapeu
// resolution, the filtered search engine with its TTL cache, and
// export/import.
//
// The service owns all taxonomy state in memory and persists each collection
// as a full JSON snapshot through a BlobStore. A single mutex serializes every
// operation, so callers get a consistent view without coordinating locks.
package taxonomy

import (
	"log/slog"
	"sync"
	"time"

	"github.com/editoria/editoria-server/internal/content"
	"github.com/editoria/editoria-server/internal/domain"
	"github.com/editoria/editoria-server/internal/store"
	"github.com/editoria/editoria-server/internal/validation"
)

// DefaultCacheTTL is how long search results stay valid without invalidation.
const DefaultCacheTTL = 5 * time.Minute

// Service is the taxonomy core. Create it with New.
type Service struct {
	mu        sync.Mutex
	blobs     store.BlobStore
	source    content.Source
	logger    *slog.Logger
	validator *validation.Validator
	cache     *searchCache

	tags        map[string]*domain.Tag
	categories  map[string]*domain.Category
	assignments map[string]*domain.Assignment
}

// New loads the persisted snapshots and returns a ready service.
//
// Load failures are survivable: a malformed or unreadable blob is logged and
// replaced with an empty collection, so a corrupt snapshot never prevents
// startup. A cacheTTL of zero or less falls back to DefaultCacheTTL.
func New(blobs store.BlobStore, source content.Source, cacheTTL time.Duration, logger *slog.Logger) *Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	s := &Service{
		blobs:       blobs,
		source:      source,
		logger:      logger,
		validator:   validation.New(),
		cache:       newSearchCache(cacheTTL),
		tags:        make(map[string]*domain.Tag),
		categories:  make(map[string]*domain.Category),
		assignments: make(map[string]*domain.Assignment),
	}
	s.loadAll()
	return s
}

func (s *Service) loadAll() {
	var tags []*domain.Tag
	if s.loadBlob(store.KeyTags, &tags) {
		for _, t := range tags {
			s.tags[t.ID] = t
		}
	}

	var categories []*domain.Category
	if s.loadBlob(store.KeyCategories, &categories) {
		for _, c := range categories {
			s.categories[c.ID] = c
		}
	}

	var assignments []*domain.Assignment
	if s.loadBlob(store.KeyAssignments, &assignments) {
		for _, a := range assignments {
			s.assignments[a.ContentID] = a
		}
	}

	s.logger.Info("taxonomy loaded",
		"tags", len(s.tags),
		"categories", len(s.categories),
		"assignments", len(s.assignments))
}

// loadBlob reports whether dest was populated. A decode or read error is
// logged and treated as an absent blob.
func (s *Service) loadBlob(key string, dest any) bool {
	found, err := s.blobs.Load(key, dest)
	if err != nil {
		s.logger.Warn("discarding unreadable taxonomy blob", "key", key, "error", err)
		return false
	}
	return found
}

// Persistence is best-effort: a failed save is logged and the in-memory state
// stands. The next successful save writes the full snapshot anyway.

func (s *Service) persistTags() {
	tags := make([]*domain.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		tags = append(tags, t)
	}
	if err := s.blobs.Save(store.KeyTags, tags); err != nil {
		s.logger.Error("failed to persist tags", "error", err)
	}
}

func (s *Service) persistCategories() {
	categories := make([]*domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	if err := s.blobs.Save(store.KeyCategories, categories); err != nil {
		s.logger.Error("failed to persist categories", "error", err)
	}
}

func (s *Service) persistAssignments() {
	assignments := make([]*domain.Assignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		assignments = append(assignments, a)
	}
	if err := s.blobs.Save(store.KeyAssignments, assignments); err != nil {
		s.logger.Error("failed to persist assignments", "error", err)
	}
}

// cloneTag returns a copy so callers never share the service's backing struct.
func cloneTag(t *domain.Tag) *domain.Tag {
	cp := *t
	return &cp
}

func cloneCategory(c *domain.Category) *domain.Category {
	cp := *c
	return &cp
}

func cloneAssignment(a *domain.Assignment) *domain.Assignment {
	cp := *a
	cp.Tags = append([]string(nil), a.Tags...)
	cp.Categories = append([]string(nil), a.Categories...)
	return &cp
}
