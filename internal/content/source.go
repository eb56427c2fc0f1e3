// Package content supplies the externally-owned content universe (pages and
// articles) that the taxonomy query engine filters. The taxonomy service
// never mutates content.
package content

import (
	"context"

	"github.com/editoria/editoria-server/internal/domain"
)

// Source is the content-source collaborator contract.
type Source interface {
	ListPages(ctx context.Context) ([]domain.Content, error)
	ListArticles(ctx context.Context) ([]domain.Content, error)
}

// StaticSource serves a fixed content set. Used in tests and seeding.
type StaticSource struct {
	Pages    []domain.Content
	Articles []domain.Content
}

// ListPages implements Source.
func (s *StaticSource) ListPages(context.Context) ([]domain.Content, error) {
	return s.Pages, nil
}

// ListArticles implements Source.
func (s *StaticSource) ListArticles(context.Context) ([]domain.Content, error) {
	return s.Articles, nil
}

// Add appends a content item to the matching list by type.
func (s *StaticSource) Add(c domain.Content) {
	if c.Type == domain.ContentTypePage {
		s.Pages = append(s.Pages, c)
		return
	}
	s.Articles = append(s.Articles, c)
}
