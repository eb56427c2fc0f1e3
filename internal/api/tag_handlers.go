package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/editoria/editoria-server/internal/domain"
	"github.com/editoria/editoria-server/internal/taxonomy"
)

func (s *Server) registerTagRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags",
		Summary:     "List tags",
		Description: "Returns all tags ordered by usage, optionally filtered by a search term",
		Tags:        []string{"Tags"},
	}, s.handleListTags)

	huma.Register(s.api, huma.Operation{
		OperationID: "createTag",
		Method:      http.MethodPost,
		Path:        "/api/v1/tags",
		Summary:     "Create tag",
		Description: "Creates a new tag",
		Tags:        []string{"Tags"},
	}, s.handleCreateTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTag",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags/{id}",
		Summary:     "Get tag",
		Description: "Returns a tag by ID",
		Tags:        []string{"Tags"},
	}, s.handleGetTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateTag",
		Method:      http.MethodPatch,
		Path:        "/api/v1/tags/{id}",
		Summary:     "Update tag",
		Description: "Updates a tag",
		Tags:        []string{"Tags"},
	}, s.handleUpdateTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteTag",
		Method:      http.MethodDelete,
		Path:        "/api/v1/tags/{id}",
		Summary:     "Delete tag",
		Description: "Deletes a tag and unlinks it from all assignments",
		Tags:        []string{"Tags"},
	}, s.handleDeleteTag)
}

// === DTOs ===

// TagResponse contains tag data in API responses.
type TagResponse struct {
	ID          string    `json:"id" doc:"Tag ID"`
	Name        string    `json:"name" doc:"Display name"`
	Slug        string    `json:"slug" doc:"URL-safe slug"`
	Description string    `json:"description,omitempty" doc:"Optional description"`
	Color       string    `json:"color" doc:"Hex badge color"`
	CreatedAt   time.Time `json:"created_at" doc:"Creation time"`
	CreatedBy   string    `json:"created_by,omitempty" doc:"Creator"`
	UsageCount  int       `json:"usage_count" doc:"Number of assignments referencing this tag"`
}

func toTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
		Color:       t.Color,
		CreatedAt:   t.CreatedAt,
		CreatedBy:   t.CreatedBy,
		UsageCount:  t.UsageCount,
	}
}

// ListTagsInput contains parameters for listing tags.
type ListTagsInput struct {
	Query string `query:"q" validate:"omitempty,max=100" doc:"Substring to match against name or slug"`
}

// ListTagsResponse contains a list of tags.
type ListTagsResponse struct {
	Tags []TagResponse `json:"tags" doc:"Tags ordered by usage count, then name"`
}

// ListTagsOutput wraps the list tags response for Huma.
type ListTagsOutput struct {
	Body ListTagsResponse
}

// CreateTagRequest is the request body for creating a tag.
type CreateTagRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100" doc:"Display name"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,max=100" doc:"Explicit slug (derived from name when omitted)"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500" doc:"Optional description"`
	Color       string `json:"color,omitempty" validate:"omitempty,hexcolor" doc:"Hex badge color (palette-assigned when omitted)"`
	CreatedBy   string `json:"created_by,omitempty" doc:"Creator"`
}

// CreateTagInput wraps the create tag request for Huma.
type CreateTagInput struct {
	Body CreateTagRequest
}

// TagOutput wraps a single tag response for Huma.
type TagOutput struct {
	Body TagResponse
}

// GetTagInput contains parameters for getting a tag.
type GetTagInput struct {
	ID string `path:"id" doc:"Tag ID"`
}

// UpdateTagRequest is the request body for updating a tag.
type UpdateTagRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100" doc:"Display name"`
	Slug        *string `json:"slug,omitempty" validate:"omitempty,max=100" doc:"URL-safe slug"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500" doc:"Description"`
	Color       *string `json:"color,omitempty" validate:"omitempty,hexcolor" doc:"Hex badge color"`
}

// UpdateTagInput wraps the update tag request for Huma.
type UpdateTagInput struct {
	ID   string `path:"id" doc:"Tag ID"`
	Body UpdateTagRequest
}

// DeleteTagInput contains parameters for deleting a tag.
type DeleteTagInput struct {
	ID string `path:"id" doc:"Tag ID"`
}

// === Handlers ===

func (s *Server) handleListTags(ctx context.Context, input *ListTagsInput) (*ListTagsOutput, error) {
	tags, err := s.taxonomy.SearchTags(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	resp := make([]TagResponse, len(tags))
	for i, t := range tags {
		resp[i] = toTagResponse(t)
	}
	return &ListTagsOutput{Body: ListTagsResponse{Tags: resp}}, nil
}

func (s *Server) handleCreateTag(ctx context.Context, input *CreateTagInput) (*TagOutput, error) {
	tag, err := s.taxonomy.CreateTag(ctx, taxonomy.CreateTagRequest{
		Name:        input.Body.Name,
		Slug:        input.Body.Slug,
		Description: input.Body.Description,
		Color:       input.Body.Color,
		CreatedBy:   input.Body.CreatedBy,
	})
	if err != nil {
		return nil, err
	}
	return &TagOutput{Body: toTagResponse(tag)}, nil
}

func (s *Server) handleGetTag(ctx context.Context, input *GetTagInput) (*TagOutput, error) {
	tag, err := s.taxonomy.GetTag(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &TagOutput{Body: toTagResponse(tag)}, nil
}

func (s *Server) handleUpdateTag(ctx context.Context, input *UpdateTagInput) (*TagOutput, error) {
	tag, err := s.taxonomy.UpdateTag(ctx, input.ID, taxonomy.UpdateTagRequest{
		Name:        input.Body.Name,
		Slug:        input.Body.Slug,
		Description: input.Body.Description,
		Color:       input.Body.Color,
	})
	if err != nil {
		return nil, err
	}
	return &TagOutput{Body: toTagResponse(tag)}, nil
}

func (s *Server) handleDeleteTag(ctx context.Context, input *DeleteTagInput) (*MessageOutput, error) {
	if err := s.taxonomy.DeleteTag(ctx, input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Tag deleted"}}, nil
}
