package taxonomy

import (
	"context"

	"github.com/editoria/editoria-server/internal/domain"
)

// GetChapeu resolves the headline label for a content item. Tags take strict
// precedence: when the assignment names a primary tag, the chapeu comes from
// the tag store or is nil if that tag no longer exists; it never falls back
// to the primary category. A content item with no assignment has no chapeu.
func (s *Service) GetChapeu(ctx context.Context, contentID string) (*domain.Chapeu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resolveChapeu(s.assignments[contentID]), nil
}

// resolveChapeu implements the precedence rule. Callers hold s.mu.
func (s *Service) resolveChapeu(a *domain.Assignment) *domain.Chapeu {
	if a == nil {
		return nil
	}
	if a.PrimaryTag != "" {
		tag, ok := s.tags[a.PrimaryTag]
		if !ok {
			return nil
		}
		return &domain.Chapeu{Kind: domain.ChapeuTag, Tag: cloneTag(tag)}
	}
	if a.PrimaryCategory != "" {
		category, ok := s.categories[a.PrimaryCategory]
		if !ok {
			return nil
		}
		return &domain.Chapeu{Kind: domain.ChapeuCategory, Category: cloneCategory(category)}
	}
	return nil
}
