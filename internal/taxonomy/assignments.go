package taxonomy

import (
	"context"
	"time"

	"github.com/editoria/editoria-server/internal/domain"
	"github.com/editoria/editoria-server/internal/errors"
)

// AssignRequest replaces the taxonomy of one content item wholesale.
// List order matters: the first tag and first category become the primaries.
type AssignRequest struct {
	ContentID   string             `json:"content_id" validate:"required"`
	ContentType domain.ContentType `json:"content_type" validate:"required,oneof=page article"`
	Tags        []string           `json:"tags"`
	Categories  []string           `json:"categories"`
	AssignedBy  string             `json:"assigned_by"`
}

// Assign stores the assignment for req.ContentID, replacing any previous one.
// Usage counters move with it: the prior assignment's references are released
// before the new ones are charged, so re-assigning the same content never
// inflates counts. Unknown tag or category IDs are stored but not counted.
func (s *Service) Assign(ctx context.Context, req AssignRequest) (*domain.Assignment, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prior, ok := s.assignments[req.ContentID]; ok {
		s.releaseCounts(prior)
	}

	assignment := &domain.Assignment{
		ContentID:   req.ContentID,
		ContentType: req.ContentType,
		Tags:        append([]string(nil), req.Tags...),
		Categories:  append([]string(nil), req.Categories...),
		AssignedBy:  req.AssignedBy,
		AssignedAt:  time.Now().UTC(),
	}
	assignment.SyncPrimary()
	s.chargeCounts(assignment)
	s.assignments[req.ContentID] = assignment

	s.persistTags()
	s.persistCategories()
	s.persistAssignments()
	s.cache.invalidateAll()

	s.logger.Info("content assigned",
		"content_id", req.ContentID,
		"tags", len(assignment.Tags),
		"categories", len(assignment.Categories))
	return cloneAssignment(assignment), nil
}

// RemoveAssignment deletes the assignment for contentID and releases its
// usage counts. Removing an absent assignment is a not-found error and
// changes nothing, so a double remove never decrements twice.
func (s *Service) RemoveAssignment(ctx context.Context, contentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, ok := s.assignments[contentID]
	if !ok {
		return errors.NotFoundf("no assignment for content %s", contentID)
	}

	s.releaseCounts(assignment)
	delete(s.assignments, contentID)

	s.persistTags()
	s.persistCategories()
	s.persistAssignments()
	s.cache.invalidateAll()

	s.logger.Info("assignment removed", "content_id", contentID)
	return nil
}

// GetAssignment returns the assignment for contentID.
func (s *Service) GetAssignment(ctx context.Context, contentID string) (*domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, ok := s.assignments[contentID]
	if !ok {
		return nil, errors.NotFoundf("no assignment for content %s", contentID)
	}
	return cloneAssignment(assignment), nil
}

// ListAssignments returns every assignment, in no particular order.
func (s *Service) ListAssignments(ctx context.Context) ([]*domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignments := make([]*domain.Assignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		assignments = append(assignments, cloneAssignment(a))
	}
	return assignments, nil
}

// chargeCounts increments the usage counter of every live tag and category
// the assignment references. Callers hold s.mu.
func (s *Service) chargeCounts(a *domain.Assignment) {
	for _, tagID := range a.Tags {
		if t, ok := s.tags[tagID]; ok {
			t.UsageCount++
		}
	}
	for _, categoryID := range a.Categories {
		if c, ok := s.categories[categoryID]; ok {
			c.UsageCount++
		}
	}
}

// releaseCounts decrements counters for the assignment's references,
// flooring at zero. Callers hold s.mu.
func (s *Service) releaseCounts(a *domain.Assignment) {
	for _, tagID := range a.Tags {
		if t, ok := s.tags[tagID]; ok && t.UsageCount > 0 {
			t.UsageCount--
		}
	}
	for _, categoryID := range a.Categories {
		if c, ok := s.categories[categoryID]; ok && c.UsageCount > 0 {
			c.UsageCount--
		}
	}
}
