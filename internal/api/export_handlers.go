package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/editoria/editoria-server/internal/domain"
)

func (s *Server) registerExportRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "exportTaxonomy",
		Method:      http.MethodGet,
		Path:        "/api/v1/export",
		Summary:     "Export taxonomy",
		Description: "Returns a deterministic snapshot of all tags, categories and assignments",
		Tags:        []string{"ExportImport"},
	}, s.handleExportTaxonomy)

	huma.Register(s.api, huma.Operation{
		OperationID: "importTaxonomy",
		Method:      http.MethodPost,
		Path:        "/api/v1/import",
		Summary:     "Import taxonomy",
		Description: "Merges a snapshot into the store; imported entities win by ID",
		Tags:        []string{"ExportImport"},
	}, s.handleImportTaxonomy)
}

// === DTOs ===

// ExportOutput wraps the export snapshot for Huma.
type ExportOutput struct {
	Body domain.Snapshot
}

// ImportInput wraps the import snapshot for Huma.
type ImportInput struct {
	Body domain.Snapshot
}

// ImportOutput wraps the import result for Huma.
type ImportOutput struct {
	Body taxonomyImportResult
}

type taxonomyImportResult struct {
	Tags        int `json:"tags" doc:"Tags merged"`
	Categories  int `json:"categories" doc:"Categories merged"`
	Assignments int `json:"assignments" doc:"Assignments merged"`
}

// === Handlers ===

func (s *Server) handleExportTaxonomy(ctx context.Context, _ *struct{}) (*ExportOutput, error) {
	snapshot, err := s.taxonomy.Export(ctx)
	if err != nil {
		return nil, err
	}
	return &ExportOutput{Body: *snapshot}, nil
}

func (s *Server) handleImportTaxonomy(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	result, err := s.taxonomy.Import(ctx, &input.Body)
	if err != nil {
		return nil, err
	}
	return &ImportOutput{Body: taxonomyImportResult{
		Tags:        result.Tags,
		Categories:  result.Categories,
		Assignments: result.Assignments,
	}}, nil
}
