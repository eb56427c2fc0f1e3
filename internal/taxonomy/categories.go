package taxonomy

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/editoria/editoria-server/internal/domain"
	"github.com/editoria/editoria-server/internal/errors"
	"github.com/editoria/editoria-server/internal/id"
	"github.com/editoria/editoria-server/internal/slug"
)

// CreateCategoryRequest carries the caller-supplied fields for a new category.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Slug        string `json:"slug" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
	Icon        string `json:"icon" validate:"omitempty,max=50"`
	ParentID    string `json:"parent_id"`
	Order       *int   `json:"order" validate:"omitempty,min=0"`
	CreatedBy   string `json:"created_by"`
}

// UpdateCategoryRequest carries a partial update. Nil fields are left untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	Icon        *string `json:"icon" validate:"omitempty,max=50"`
	ParentID    *string `json:"parent_id"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
}

// CreateCategory creates a category. A missing slug is derived from the name,
// a missing color comes from the palette, and a missing order defaults to the
// end of the list (store size plus one).
func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catSlug := req.Slug
	if catSlug == "" {
		catSlug = slug.Make(req.Name)
	}
	if other := s.categoryBySlug(catSlug); other != nil {
		return nil, errors.AlreadyExistsf("category slug %q already in use by %q", catSlug, other.Name)
	}

	if req.ParentID != "" {
		if _, ok := s.categories[req.ParentID]; !ok {
			return nil, errors.NotFoundf("parent category %s not found", req.ParentID)
		}
	}

	color := req.Color
	if color == "" {
		color = pickColor()
	}
	order := len(s.categories) + 1
	if req.Order != nil {
		order = *req.Order
	}

	category := &domain.Category{
		ID:          id.MustGenerate("cat"),
		Name:        req.Name,
		Slug:        catSlug,
		Description: req.Description,
		Color:       color,
		Icon:        req.Icon,
		ParentID:    req.ParentID,
		Order:       order,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   req.CreatedBy,
		UsageCount:  0,
	}
	s.categories[category.ID] = category
	s.persistCategories()
	s.cache.invalidateAll()

	s.logger.Info("category created", "id", category.ID, "slug", category.Slug, "parent", category.ParentID)
	return cloneCategory(category), nil
}

// UpdateCategory applies the non-nil fields of req to an existing category.
func (s *Service) UpdateCategory(ctx context.Context, categoryID string, req UpdateCategoryRequest) (*domain.Category, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[categoryID]
	if !ok {
		return nil, errors.NotFoundf("category %s not found", categoryID)
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		if other := s.categoryBySlug(*req.Slug); other != nil {
			return nil, errors.AlreadyExistsf("category slug %q already in use by %q", *req.Slug, other.Name)
		}
		category.Slug = *req.Slug
	}
	if req.ParentID != nil && *req.ParentID != category.ParentID {
		if *req.ParentID != "" {
			if _, ok := s.categories[*req.ParentID]; !ok {
				return nil, errors.NotFoundf("parent category %s not found", *req.ParentID)
			}
			if *req.ParentID == categoryID {
				return nil, errors.Validation("category cannot be its own parent")
			}
		}
		category.ParentID = *req.ParentID
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Order != nil {
		category.Order = *req.Order
	}

	s.persistCategories()
	s.cache.invalidateAll()
	return cloneCategory(category), nil
}

// DeleteCategory removes a category together with its entire descendant
// subtree, unlinking every deleted ID from assignments.
func (s *Service) DeleteCategory(ctx context.Context, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[categoryID]; !ok {
		return errors.NotFoundf("category %s not found", categoryID)
	}

	doomed := s.collectSubtree(categoryID)
	touched := 0
	for _, victim := range doomed {
		for _, a := range s.assignments {
			if a.RemoveCategory(victim) {
				touched++
			}
		}
		delete(s.categories, victim)
	}

	s.persistCategories()
	if touched > 0 {
		s.persistAssignments()
	}
	s.cache.invalidateAll()

	s.logger.Info("category deleted", "id", categoryID, "subtree_size", len(doomed), "assignments_unlinked", touched)
	return nil
}

// collectSubtree returns categoryID and all its descendants, depth first.
// Callers hold s.mu.
func (s *Service) collectSubtree(categoryID string) []string {
	out := []string{categoryID}
	for _, c := range s.categories {
		if c.ParentID == categoryID {
			out = append(out, s.collectSubtree(c.ID)...)
		}
	}
	return out
}

// GetCategory returns a single category by ID.
func (s *Service) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[categoryID]
	if !ok {
		return nil, errors.NotFoundf("category %s not found", categoryID)
	}
	return cloneCategory(category), nil
}

// ListCategories returns all categories ordered by Order ascending, ties
// broken by name ascending.
func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]*domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, cloneCategory(c))
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Order != categories[j].Order {
			return categories[i].Order < categories[j].Order
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// SearchCategories returns categories whose name or slug contains the term,
// case-insensitively, in ListCategories order.
func (s *Service) SearchCategories(ctx context.Context, term string) ([]*domain.Category, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return categories, nil
	}

	needle := strings.ToLower(term)
	matched := make([]*domain.Category, 0, len(categories))
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Slug), needle) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (s *Service) categoryBySlug(slug string) *domain.Category {
	for _, c := range s.categories {
		if c.Slug == slug {
			return c
		}
	}
	return nil
}
