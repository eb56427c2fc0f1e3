package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/editoria/editoria-server/internal/domain"
	"github.com/editoria/editoria-server/internal/taxonomy"
)

func (s *Server) registerAssignmentRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listAssignments",
		Method:      http.MethodGet,
		Path:        "/api/v1/assignments",
		Summary:     "List assignments",
		Description: "Returns every content assignment",
		Tags:        []string{"Assignments"},
	}, s.handleListAssignments)

	huma.Register(s.api, huma.Operation{
		OperationID: "assignContent",
		Method:      http.MethodPut,
		Path:        "/api/v1/assignments/{contentId}",
		Summary:     "Assign taxonomy to content",
		Description: "Replaces the tags and categories of a content item wholesale",
		Tags:        []string{"Assignments"},
	}, s.handleAssignContent)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAssignment",
		Method:      http.MethodGet,
		Path:        "/api/v1/assignments/{contentId}",
		Summary:     "Get assignment",
		Description: "Returns the assignment for a content item",
		Tags:        []string{"Assignments"},
	}, s.handleGetAssignment)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeAssignment",
		Method:      http.MethodDelete,
		Path:        "/api/v1/assignments/{contentId}",
		Summary:     "Remove assignment",
		Description: "Removes the assignment for a content item and releases its usage counts",
		Tags:        []string{"Assignments"},
	}, s.handleRemoveAssignment)

	huma.Register(s.api, huma.Operation{
		OperationID: "getChapeu",
		Method:      http.MethodGet,
		Path:        "/api/v1/assignments/{contentId}/chapeu",
		Summary:     "Get chapeu",
		Description: "Resolves the headline label for a content item; tags take precedence over categories",
		Tags:        []string{"Assignments"},
	}, s.handleGetChapeu)
}

// === DTOs ===

// AssignmentResponse contains assignment data in API responses.
type AssignmentResponse struct {
	ContentID       string    `json:"content_id" doc:"Content ID"`
	ContentType     string    `json:"content_type" doc:"page or article"`
	Tags            []string  `json:"tags" doc:"Ordered tag IDs"`
	Categories      []string  `json:"categories" doc:"Ordered category IDs"`
	PrimaryTag      string    `json:"primary_tag,omitempty" doc:"First tag ID"`
	PrimaryCategory string    `json:"primary_category,omitempty" doc:"First category ID"`
	AssignedBy      string    `json:"assigned_by,omitempty" doc:"Editor"`
	AssignedAt      time.Time `json:"assigned_at" doc:"Assignment time"`
}

func toAssignmentResponse(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ContentID:       a.ContentID,
		ContentType:     string(a.ContentType),
		Tags:            a.Tags,
		Categories:      a.Categories,
		PrimaryTag:      a.PrimaryTag,
		PrimaryCategory: a.PrimaryCategory,
		AssignedBy:      a.AssignedBy,
		AssignedAt:      a.AssignedAt,
	}
}

// ListAssignmentsResponse contains all assignments.
type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments" doc:"All content assignments"`
}

// ListAssignmentsOutput wraps the list assignments response for Huma.
type ListAssignmentsOutput struct {
	Body ListAssignmentsResponse
}

// AssignContentRequest is the request body for assigning taxonomy.
type AssignContentRequest struct {
	ContentType string   `json:"content_type" validate:"required,oneof=page article" doc:"page or article"`
	Tags        []string `json:"tags,omitempty" doc:"Ordered tag IDs; the first is the primary"`
	Categories  []string `json:"categories,omitempty" doc:"Ordered category IDs; the first is the primary"`
	AssignedBy  string   `json:"assigned_by,omitempty" doc:"Editor"`
}

// AssignContentInput wraps the assign request for Huma.
type AssignContentInput struct {
	ContentID string `path:"contentId" doc:"Content ID"`
	Body      AssignContentRequest
}

// AssignmentOutput wraps a single assignment response for Huma.
type AssignmentOutput struct {
	Body AssignmentResponse
}

// AssignmentInput contains parameters for fetching or removing an assignment.
type AssignmentInput struct {
	ContentID string `path:"contentId" doc:"Content ID"`
}

// ChapeuResponse contains the resolved headline label, if any.
type ChapeuResponse struct {
	Chapeu *domain.Chapeu `json:"chapeu" doc:"Headline label, null when the content has none"`
}

// ChapeuOutput wraps the chapeu response for Huma.
type ChapeuOutput struct {
	Body ChapeuResponse
}

// === Handlers ===

func (s *Server) handleListAssignments(ctx context.Context, _ *struct{}) (*ListAssignmentsOutput, error) {
	assignments, err := s.taxonomy.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		resp[i] = toAssignmentResponse(a)
	}
	return &ListAssignmentsOutput{Body: ListAssignmentsResponse{Assignments: resp}}, nil
}

func (s *Server) handleAssignContent(ctx context.Context, input *AssignContentInput) (*AssignmentOutput, error) {
	assignment, err := s.taxonomy.Assign(ctx, taxonomy.AssignRequest{
		ContentID:   input.ContentID,
		ContentType: domain.ContentType(input.Body.ContentType),
		Tags:        input.Body.Tags,
		Categories:  input.Body.Categories,
		AssignedBy:  input.Body.AssignedBy,
	})
	if err != nil {
		return nil, err
	}
	return &AssignmentOutput{Body: toAssignmentResponse(assignment)}, nil
}

func (s *Server) handleGetAssignment(ctx context.Context, input *AssignmentInput) (*AssignmentOutput, error) {
	assignment, err := s.taxonomy.GetAssignment(ctx, input.ContentID)
	if err != nil {
		return nil, err
	}
	return &AssignmentOutput{Body: toAssignmentResponse(assignment)}, nil
}

func (s *Server) handleRemoveAssignment(ctx context.Context, input *AssignmentInput) (*MessageOutput, error) {
	if err := s.taxonomy.RemoveAssignment(ctx, input.ContentID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Assignment removed"}}, nil
}

func (s *Server) handleGetChapeu(ctx context.Context, input *AssignmentInput) (*ChapeuOutput, error) {
	chapeu, err := s.taxonomy.GetChapeu(ctx, input.ContentID)
	if err != nil {
		return nil, err
	}
	return &ChapeuOutput{Body: ChapeuResponse{Chapeu: chapeu}}, nil
}
