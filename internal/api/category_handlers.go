package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/editoria/editoria-server/internal/domain"
	"github.com/editoria/editoria-server/internal/taxonomy"
)

func (s *Server) registerCategoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns all categories in manual order, optionally filtered by a search term",
		Tags:        []string{"Categories"},
	}, s.handleListCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "createCategory",
		Method:      http.MethodPost,
		Path:        "/api/v1/categories",
		Summary:     "Create category",
		Description: "Creates a new category, optionally under a parent",
		Tags:        []string{"Categories"},
	}, s.handleCreateCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCategory",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/{id}",
		Summary:     "Get category",
		Description: "Returns a category by ID",
		Tags:        []string{"Categories"},
	}, s.handleGetCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCategory",
		Method:      http.MethodPatch,
		Path:        "/api/v1/categories/{id}",
		Summary:     "Update category",
		Description: "Updates a category",
		Tags:        []string{"Categories"},
	}, s.handleUpdateCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteCategory",
		Method:      http.MethodDelete,
		Path:        "/api/v1/categories/{id}",
		Summary:     "Delete category",
		Description: "Deletes a category and its entire subtree, unlinking all of them from assignments",
		Tags:        []string{"Categories"},
	}, s.handleDeleteCategory)
}

// === DTOs ===

// CategoryResponse contains category data in API responses.
type CategoryResponse struct {
	ID          string    `json:"id" doc:"Category ID"`
	Name        string    `json:"name" doc:"Display name"`
	Slug        string    `json:"slug" doc:"URL-safe slug"`
	Description string    `json:"description,omitempty" doc:"Optional description"`
	Color       string    `json:"color" doc:"Hex badge color"`
	Icon        string    `json:"icon,omitempty" doc:"Icon identifier"`
	ParentID    string    `json:"parent_id,omitempty" doc:"Parent category ID (empty for root)"`
	Order       int       `json:"order" doc:"Manual ordering among siblings"`
	CreatedAt   time.Time `json:"created_at" doc:"Creation time"`
	CreatedBy   string    `json:"created_by,omitempty" doc:"Creator"`
	UsageCount  int       `json:"usage_count" doc:"Number of assignments referencing this category"`
}

func toCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
		Icon:        c.Icon,
		ParentID:    c.ParentID,
		Order:       c.Order,
		CreatedAt:   c.CreatedAt,
		CreatedBy:   c.CreatedBy,
		UsageCount:  c.UsageCount,
	}
}

// ListCategoriesInput contains parameters for listing categories.
type ListCategoriesInput struct {
	Query string `query:"q" validate:"omitempty,max=100" doc:"Substring to match against name or slug"`
}

// ListCategoriesResponse contains a list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories" doc:"Categories in manual order"`
}

// ListCategoriesOutput wraps the list categories response for Huma.
type ListCategoriesOutput struct {
	Body ListCategoriesResponse
}

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100" doc:"Display name"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,max=100" doc:"Explicit slug (derived from name when omitted)"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500" doc:"Optional description"`
	Color       string `json:"color,omitempty" validate:"omitempty,hexcolor" doc:"Hex badge color (palette-assigned when omitted)"`
	Icon        string `json:"icon,omitempty" validate:"omitempty,max=50" doc:"Icon identifier"`
	ParentID    string `json:"parent_id,omitempty" doc:"Parent category ID"`
	Order       *int   `json:"order,omitempty" validate:"omitempty,min=0" doc:"Manual order (appended when omitted)"`
	CreatedBy   string `json:"created_by,omitempty" doc:"Creator"`
}

// CreateCategoryInput wraps the create category request for Huma.
type CreateCategoryInput struct {
	Body CreateCategoryRequest
}

// CategoryOutput wraps a single category response for Huma.
type CategoryOutput struct {
	Body CategoryResponse
}

// GetCategoryInput contains parameters for getting a category.
type GetCategoryInput struct {
	ID string `path:"id" doc:"Category ID"`
}

// UpdateCategoryRequest is the request body for updating a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100" doc:"Display name"`
	Slug        *string `json:"slug,omitempty" validate:"omitempty,max=100" doc:"URL-safe slug"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500" doc:"Description"`
	Color       *string `json:"color,omitempty" validate:"omitempty,hexcolor" doc:"Hex badge color"`
	Icon        *string `json:"icon,omitempty" validate:"omitempty,max=50" doc:"Icon identifier"`
	ParentID    *string `json:"parent_id,omitempty" doc:"Parent category ID (empty string moves to root)"`
	Order       *int    `json:"order,omitempty" validate:"omitempty,min=0" doc:"Manual order"`
}

// UpdateCategoryInput wraps the update category request for Huma.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category ID"`
	Body UpdateCategoryRequest
}

// DeleteCategoryInput contains parameters for deleting a category.
type DeleteCategoryInput struct {
	ID string `path:"id" doc:"Category ID"`
}

// === Handlers ===

func (s *Server) handleListCategories(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := s.taxonomy.SearchCategories(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toCategoryResponse(c)
	}
	return &ListCategoriesOutput{Body: ListCategoriesResponse{Categories: resp}}, nil
}

func (s *Server) handleCreateCategory(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	category, err := s.taxonomy.CreateCategory(ctx, taxonomy.CreateCategoryRequest{
		Name:        input.Body.Name,
		Slug:        input.Body.Slug,
		Description: input.Body.Description,
		Color:       input.Body.Color,
		Icon:        input.Body.Icon,
		ParentID:    input.Body.ParentID,
		Order:       input.Body.Order,
		CreatedBy:   input.Body.CreatedBy,
	})
	if err != nil {
		return nil, err
	}
	return &CategoryOutput{Body: toCategoryResponse(category)}, nil
}

func (s *Server) handleGetCategory(ctx context.Context, input *GetCategoryInput) (*CategoryOutput, error) {
	category, err := s.taxonomy.GetCategory(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &CategoryOutput{Body: toCategoryResponse(category)}, nil
}

func (s *Server) handleUpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	category, err := s.taxonomy.UpdateCategory(ctx, input.ID, taxonomy.UpdateCategoryRequest{
		Name:        input.Body.Name,
		Slug:        input.Body.Slug,
		Description: input.Body.Description,
		Color:       input.Body.Color,
		Icon:        input.Body.Icon,
		ParentID:    input.Body.ParentID,
		Order:       input.Body.Order,
	})
	if err != nil {
		return nil, err
	}
	return &CategoryOutput{Body: toCategoryResponse(category)}, nil
}

func (s *Server) handleDeleteCategory(ctx context.Context, input *DeleteCategoryInput) (*MessageOutput, error) {
	if err := s.taxonomy.DeleteCategory(ctx, input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Category deleted"}}, nil
}
