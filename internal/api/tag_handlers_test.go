package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCRUD(t *testing.T) {
	ts := setupTestServer(t)

	created := ts.createTag(t, "Política Nacional")
	assert.Equal(t, "politica-nacional", created.Slug)
	assert.NotEmpty(t, created.Color)
	assert.Zero(t, created.UsageCount)

	// Get.
	resp := ts.api.Get("/api/v1/tags/" + created.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	got := decodeBody[TagResponse](t, resp)
	assert.Equal(t, created.ID, got.ID)

	// Patch only the name; slug stays.
	resp = ts.api.Patch("/api/v1/tags/"+created.ID, map[string]any{"name": "Política"})
	require.Equal(t, http.StatusOK, resp.Code)
	updated := decodeBody[TagResponse](t, resp)
	assert.Equal(t, "Política", updated.Name)
	assert.Equal(t, created.Slug, updated.Slug)

	// Delete, then 404.
	resp = ts.api.Delete("/api/v1/tags/" + created.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/tags/" + created.ID)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListTagsWithQuery(t *testing.T) {
	ts := setupTestServer(t)

	ts.createTag(t, "Economia")
	ts.createTag(t, "Esportes")

	resp := ts.api.Get("/api/v1/tags")
	require.Equal(t, http.StatusOK, resp.Code)
	all := decodeBody[ListTagsResponse](t, resp)
	assert.Len(t, all.Tags, 2)

	resp = ts.api.Get("/api/v1/tags?q=econ")
	require.Equal(t, http.StatusOK, resp.Code)
	filtered := decodeBody[ListTagsResponse](t, resp)
	require.Len(t, filtered.Tags, 1)
	assert.Equal(t, "Economia", filtered.Tags[0].Name)
}

func TestCategoryCRUDAndTree(t *testing.T) {
	ts := setupTestServer(t)

	parent := ts.createCategory(t, "Esportes")

	resp := ts.api.Post("/api/v1/categories", map[string]any{
		"name":      "Futebol",
		"parent_id": parent.ID,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	child := decodeBody[CategoryResponse](t, resp)
	assert.Equal(t, parent.ID, child.ParentID)

	// Deleting the parent cascades to the child.
	resp = ts.api.Delete("/api/v1/categories/" + parent.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/categories/" + child.ID)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
