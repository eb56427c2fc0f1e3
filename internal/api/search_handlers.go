package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/editoria/editoria-server/internal/domain"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchContent",
		Method:      http.MethodPost,
		Path:        "/api/v1/search",
		Summary:     "Search content",
		Description: "Filters the content universe and joins each hit with its resolved taxonomy",
		Tags:        []string{"Search"},
	}, s.handleSearchContent)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchContentGrouped",
		Method:      http.MethodPost,
		Path:        "/api/v1/search/grouped",
		Summary:     "Search content, grouped",
		Description: "Runs a search and fans the results out by category, tag, recency and label count",
		Tags:        []string{"Search"},
	}, s.handleSearchContentGrouped)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRelatedContent",
		Method:      http.MethodGet,
		Path:        "/api/v1/content/{contentId}/related",
		Summary:     "Get related content",
		Description: "Returns content sharing tags or categories with the given item, most-shared first",
		Tags:        []string{"Search"},
	}, s.handleGetRelatedContent)
}

// === DTOs ===

// SearchRequest is the request body for content searches.
// Every filter is optional; an empty filter matches everything.
type SearchRequest struct {
	ContentType string   `json:"content_type,omitempty" validate:"omitempty,oneof=page article all" doc:"page, article or all"`
	Status      string   `json:"status,omitempty" validate:"omitempty,max=50" doc:"Content status, or all"`
	Tags        []string `json:"tags,omitempty" doc:"Tag IDs, OR-matched"`
	Categories  []string `json:"categories,omitempty" doc:"Category IDs, OR-matched"`
	DateFrom    string   `json:"date_from,omitempty" validate:"omitempty,max=35" doc:"Inclusive lower bound (YYYY-MM-DD or RFC 3339)"`
	DateTo      string   `json:"date_to,omitempty" validate:"omitempty,max=35" doc:"Inclusive upper bound (YYYY-MM-DD or RFC 3339)"`
	SearchTerm  string   `json:"search_term,omitempty" validate:"omitempty,max=200" doc:"Case-insensitive substring on title or excerpt"`
}

func (r SearchRequest) toFilters() domain.SearchFilters {
	return domain.SearchFilters{
		ContentType: r.ContentType,
		Status:      r.Status,
		Tags:        r.Tags,
		Categories:  r.Categories,
		DateFrom:    r.DateFrom,
		DateTo:      r.DateTo,
		SearchTerm:  r.SearchTerm,
	}
}

// SearchInput wraps the search request for Huma.
type SearchInput struct {
	Body SearchRequest
}

// SearchResponse contains search hits.
type SearchResponse struct {
	Results []domain.SearchResult `json:"results" doc:"Matching content with resolved taxonomy"`
	Total   int                   `json:"total" doc:"Number of results"`
}

// SearchOutput wraps the search response for Huma.
type SearchOutput struct {
	Body SearchResponse
}

// GroupedSearchOutput wraps the grouped search response for Huma.
type GroupedSearchOutput struct {
	Body domain.GroupedResults
}

// RelatedContentInput contains parameters for fetching related content.
type RelatedContentInput struct {
	ContentID string `path:"contentId" doc:"Content ID"`
	Limit     int    `query:"limit" validate:"omitempty,gte=1,lte=50" doc:"Max results (default 5)"`
}

// RelatedContentResponse contains related content hits.
type RelatedContentResponse struct {
	Related []domain.SearchResult `json:"related" doc:"Related content, most shared labels first"`
}

// RelatedContentOutput wraps the related content response for Huma.
type RelatedContentOutput struct {
	Body RelatedContentResponse
}

// === Handlers ===

func (s *Server) handleSearchContent(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	results, err := s.taxonomy.Search(ctx, input.Body.toFilters())
	if err != nil {
		return nil, err
	}
	return &SearchOutput{Body: SearchResponse{Results: results, Total: len(results)}}, nil
}

func (s *Server) handleSearchContentGrouped(ctx context.Context, input *SearchInput) (*GroupedSearchOutput, error) {
	results, err := s.taxonomy.Search(ctx, input.Body.toFilters())
	if err != nil {
		return nil, err
	}
	return &GroupedSearchOutput{Body: s.taxonomy.GroupResults(results)}, nil
}

func (s *Server) handleGetRelatedContent(ctx context.Context, input *RelatedContentInput) (*RelatedContentOutput, error) {
	related, err := s.taxonomy.GetRelatedContent(ctx, input.ContentID, input.Limit)
	if err != nil {
		return nil, err
	}
	return &RelatedContentOutput{Body: RelatedContentResponse{Related: related}}, nil
}
