package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editoria/editoria-server/internal/domain"
)

func TestSearchEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	tag := ts.createTag(t, "Urgente")
	ts.source.Articles = []domain.Content{
		testArticle("article-1", "Crise econômica", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),
		testArticle("article-2", "Futebol", time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)),
	}
	ts.assign(t, "article-1", []string{tag.ID}, nil)

	resp := ts.api.Post("/api/v1/search", map[string]any{"tags": []string{tag.ID}})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := decodeBody[SearchResponse](t, resp)
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "article-1", body.Results[0].Content.ID)
	require.Len(t, body.Results[0].Tags, 1)
	require.NotNil(t, body.Results[0].Chapeu)

	// Empty filters match everything.
	resp = ts.api.Post("/api/v1/search", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 2, decodeBody[SearchResponse](t, resp).Total)
}

func TestSearchGroupedEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	category := ts.createCategory(t, "Política")
	ts.source.Articles = []domain.Content{
		testArticle("article-1", "Primeiro", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),
		testArticle("article-2", "Segundo", time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)),
	}
	ts.assign(t, "article-1", nil, []string{category.ID})

	resp := ts.api.Post("/api/v1/search/grouped", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)

	grouped := decodeBody[domain.GroupedResults](t, resp)
	assert.Len(t, grouped.All, 2)
	assert.Len(t, grouped.ByCategory[category.ID], 1)
	require.Len(t, grouped.Recent, 2)
	assert.Equal(t, "article-2", grouped.Recent[0].Content.ID)
}

func TestRelatedContentEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	tag := ts.createTag(t, "Urgente")
	ts.source.Articles = []domain.Content{
		testArticle("article-1", "Origem", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),
		testArticle("article-2", "Relacionado", time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)),
	}
	ts.assign(t, "article-1", []string{tag.ID}, nil)
	ts.assign(t, "article-2", []string{tag.ID}, nil)

	resp := ts.api.Get("/api/v1/content/article-1/related")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decodeBody[RelatedContentResponse](t, resp)
	require.Len(t, body.Related, 1)
	assert.Equal(t, "article-2", body.Related[0].Content.ID)
}

func TestSearchRejectsBadDate(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/search", map[string]any{"date_from": "agosto"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestExportImportEndpoints(t *testing.T) {
	ts := setupTestServer(t)

	tag := ts.createTag(t, "Urgente")
	ts.assign(t, "article-1", []string{tag.ID}, nil)

	resp := ts.api.Get("/api/v1/export")
	require.Equal(t, http.StatusOK, resp.Code)
	snapshot := decodeBody[domain.Snapshot](t, resp)
	assert.Len(t, snapshot.Tags, 1)
	assert.Len(t, snapshot.Assignments, 1)

	// Import the snapshot into a fresh server.
	fresh := setupTestServer(t)
	resp = fresh.api.Post("/api/v1/import", map[string]any{
		"tags":        snapshot.Tags,
		"categories":  snapshot.Categories,
		"assignments": snapshot.Assignments,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	result := decodeBody[taxonomyImportResult](t, resp)
	assert.Equal(t, 1, result.Tags)

	resp = fresh.api.Get("/api/v1/tags/" + tag.ID)
	assert.Equal(t, http.StatusOK, resp.Code)
}
