package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentLifecycle(t *testing.T) {
	ts := setupTestServer(t)

	tag := ts.createTag(t, "Urgente")
	category := ts.createCategory(t, "Política")

	ts.assign(t, "article-1", []string{tag.ID}, []string{category.ID})

	// The assignment is retrievable with derived primaries.
	resp := ts.api.Get("/api/v1/assignments/article-1")
	require.Equal(t, http.StatusOK, resp.Code)
	assignment := decodeBody[AssignmentResponse](t, resp)
	assert.Equal(t, tag.ID, assignment.PrimaryTag)
	assert.Equal(t, category.ID, assignment.PrimaryCategory)

	// Usage counters reflect the assignment.
	resp = ts.api.Get("/api/v1/tags/" + tag.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 1, decodeBody[TagResponse](t, resp).UsageCount)

	// Remove, then 404 and released counters.
	resp = ts.api.Delete("/api/v1/assignments/article-1")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/assignments/article-1")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = ts.api.Get("/api/v1/tags/" + tag.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Zero(t, decodeBody[TagResponse](t, resp).UsageCount)
}

func TestAssignRejectsBadContentType(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Put("/api/v1/assignments/article-1", map[string]any{
		"content_type": "banner",
	})
	assert.True(t, resp.Code == http.StatusBadRequest || resp.Code == http.StatusUnprocessableEntity,
		"expected validation failure, got %d: %s", resp.Code, resp.Body.String())
}

func TestGetChapeuEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	tag := ts.createTag(t, "Urgente")
	ts.assign(t, "article-1", []string{tag.ID}, nil)

	resp := ts.api.Get("/api/v1/assignments/article-1/chapeu")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decodeBody[ChapeuResponse](t, resp)
	require.NotNil(t, body.Chapeu)
	assert.Equal(t, "Urgente", body.Chapeu.Tag.Name)

	// No assignment means a null chapeu, not an error.
	resp = ts.api.Get("/api/v1/assignments/article-2/chapeu")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Nil(t, decodeBody[ChapeuResponse](t, resp).Chapeu)
}

func TestListAssignments(t *testing.T) {
	ts := setupTestServer(t)

	ts.assign(t, "article-1", nil, nil)
	ts.assign(t, "page-1", nil, nil)

	resp := ts.api.Get("/api/v1/assignments")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decodeBody[ListAssignmentsResponse](t, resp).Assignments, 2)
}
