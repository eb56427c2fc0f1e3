package content

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editoria/editoria-server/internal/domain"
)

func openTestSource(t *testing.T) *SQLiteSource {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "content.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSQLiteSource_UpsertAndList(t *testing.T) {
	s := openTestSource(t)
	ctx := context.Background()

	published := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Upsert(ctx, &domain.Content{
		ID:          "art_1",
		Type:        domain.ContentTypeArticle,
		Title:       "Eleições 2026",
		Excerpt:     "Cobertura completa",
		PublishedAt: published,
		Status:      "published",
		Author:      "redacao",
		URL:         "/articles/eleicoes-2026",
	}))
	require.NoError(t, s.Upsert(ctx, &domain.Content{
		ID:    "page_1",
		Type:  domain.ContentTypePage,
		Title: "Sobre nós",
		URL:   "/sobre",
	}))

	articles, err := s.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Eleições 2026", articles[0].Title)
	assert.True(t, articles[0].PublishedAt.Equal(published))
	assert.Equal(t, "published", articles[0].Status)

	pages, err := s.ListPages(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "Sobre nós", pages[0].Title)
	assert.True(t, pages[0].PublishedAt.IsZero())
}

func TestSQLiteSource_UpsertReplaces(t *testing.T) {
	s := openTestSource(t)
	ctx := context.Background()

	c := &domain.Content{ID: "art_1", Type: domain.ContentTypeArticle, Title: "v1", URL: "/a"}
	require.NoError(t, s.Upsert(ctx, c))

	c.Title = "v2"
	require.NoError(t, s.Upsert(ctx, c))

	articles, err := s.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "v2", articles[0].Title)
}

func TestStaticSource(t *testing.T) {
	s := &StaticSource{}
	s.Add(domain.Content{ID: "p1", Type: domain.ContentTypePage})
	s.Add(domain.Content{ID: "a1", Type: domain.ContentTypeArticle})

	pages, _ := s.ListPages(context.Background())
	articles, _ := s.ListArticles(context.Background())
	assert.Len(t, pages, 1)
	assert.Len(t, articles, 1)
}
