package taxonomy

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/editoria/editoria-server/internal/domain"
	"github.com/editoria/editoria-server/internal/errors"
	"github.com/editoria/editoria-server/internal/id"
	"github.com/editoria/editoria-server/internal/slug"
)

// palette holds the badge colors picked for labels created without an
// explicit color.
var palette = []string{
	"#e11d48", "#f97316", "#f59e0b", "#84cc16", "#10b981",
	"#06b6d4", "#3b82f6", "#8b5cf6", "#d946ef", "#64748b",
}

func pickColor() string {
	return palette[rand.IntN(len(palette))]
}

// CreateTagRequest carries the caller-supplied fields for a new tag.
type CreateTagRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Slug        string `json:"slug" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
	CreatedBy   string `json:"created_by"`
}

// UpdateTagRequest carries a partial update. Nil fields are left untouched.
type UpdateTagRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
}

// CreateTag creates a tag with a fresh ID, a slug derived from the name when
// none is given, and a palette color when none is given. Slugs are unique
// across tags; a taken slug is a conflict.
func (s *Service) CreateTag(ctx context.Context, req CreateTagRequest) (*domain.Tag, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tagSlug := req.Slug
	if tagSlug == "" {
		tagSlug = slug.Make(req.Name)
	}
	if other := s.tagBySlug(tagSlug); other != nil {
		return nil, errors.AlreadyExistsf("tag slug %q already in use by %q", tagSlug, other.Name)
	}

	color := req.Color
	if color == "" {
		color = pickColor()
	}

	tag := &domain.Tag{
		ID:          id.MustGenerate("tag"),
		Name:        req.Name,
		Slug:        tagSlug,
		Description: req.Description,
		Color:       color,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   req.CreatedBy,
		UsageCount:  0,
	}
	s.tags[tag.ID] = tag
	s.persistTags()
	s.cache.invalidateAll()

	s.logger.Info("tag created", "id", tag.ID, "slug", tag.Slug)
	return cloneTag(tag), nil
}

// UpdateTag applies the non-nil fields of req to an existing tag.
func (s *Service) UpdateTag(ctx context.Context, tagID string, req UpdateTagRequest) (*domain.Tag, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tag, ok := s.tags[tagID]
	if !ok {
		return nil, errors.NotFoundf("tag %s not found", tagID)
	}

	if req.Slug != nil && *req.Slug != tag.Slug {
		if other := s.tagBySlug(*req.Slug); other != nil {
			return nil, errors.AlreadyExistsf("tag slug %q already in use by %q", *req.Slug, other.Name)
		}
		tag.Slug = *req.Slug
	}
	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Description != nil {
		tag.Description = *req.Description
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}

	s.persistTags()
	s.cache.invalidateAll()
	return cloneTag(tag), nil
}

// DeleteTag removes a tag and unlinks it from every assignment that
// references it. Primary pointers on touched assignments are re-derived.
func (s *Service) DeleteTag(ctx context.Context, tagID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tags[tagID]; !ok {
		return errors.NotFoundf("tag %s not found", tagID)
	}

	touched := 0
	for _, a := range s.assignments {
		if a.RemoveTag(tagID) {
			touched++
		}
	}
	delete(s.tags, tagID)

	s.persistTags()
	if touched > 0 {
		s.persistAssignments()
	}
	s.cache.invalidateAll()

	s.logger.Info("tag deleted", "id", tagID, "assignments_unlinked", touched)
	return nil
}

// GetTag returns a single tag by ID.
func (s *Service) GetTag(ctx context.Context, tagID string) (*domain.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag, ok := s.tags[tagID]
	if !ok {
		return nil, errors.NotFoundf("tag %s not found", tagID)
	}
	return cloneTag(tag), nil
}

// ListTags returns all tags ordered by usage count descending, ties broken
// by name ascending.
func (s *Service) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := make([]*domain.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		tags = append(tags, cloneTag(t))
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].UsageCount != tags[j].UsageCount {
			return tags[i].UsageCount > tags[j].UsageCount
		}
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}

// SearchTags returns tags whose name or slug contains the term,
// case-insensitively, in ListTags order. An empty term matches everything.
func (s *Service) SearchTags(ctx context.Context, term string) ([]*domain.Tag, error) {
	tags, err := s.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return tags, nil
	}

	needle := strings.ToLower(term)
	matched := make([]*domain.Tag, 0, len(tags))
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.Slug), needle) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// tagBySlug is a linear scan; tag counts stay small enough that an index
// is not worth maintaining. Callers hold s.mu.
func (s *Service) tagBySlug(slug string) *domain.Tag {
	for _, t := range s.tags {
		if t.Slug == slug {
			return t
		}
	}
	return nil
}
