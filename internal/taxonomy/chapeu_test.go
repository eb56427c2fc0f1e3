package taxonomy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editoria/editoria-server/internal/domain"
)

func TestChapeuPrefersTag(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	tag := mustCreateTag(t, svc, "Urgente")
	category := mustCreateCategory(t, svc, "Política", "")
	mustAssign(t, svc, "article-1", []string{tag.ID}, []string{category.ID})

	chapeu, err := svc.GetChapeu(ctx, "article-1")
	require.NoError(t, err)
	require.NotNil(t, chapeu)
	assert.Equal(t, domain.ChapeuTag, chapeu.Kind)
	assert.Equal(t, "Urgente", chapeu.Name())
	assert.Nil(t, chapeu.Category)
}

func TestChapeuFallsBackToCategoryOnlyWithoutPrimaryTag(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	category := mustCreateCategory(t, svc, "Política", "")
	mustAssign(t, svc, "article-1", nil, []string{category.ID})

	chapeu, err := svc.GetChapeu(ctx, "article-1")
	require.NoError(t, err)
	require.NotNil(t, chapeu)
	assert.Equal(t, domain.ChapeuCategory, chapeu.Kind)
	assert.Equal(t, "Política", chapeu.Name())
}

func TestChapeuNilWhenPrimaryTagVanished(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	category := mustCreateCategory(t, svc, "Política", "")

	// Assignment references a tag that never existed. Tag precedence is
	// strict: no category fallback.
	mustAssign(t, svc, "article-1", []string{"tag_ghost"}, []string{category.ID})

	chapeu, err := svc.GetChapeu(ctx, "article-1")
	require.NoError(t, err)
	assert.Nil(t, chapeu)
}

func TestChapeuNilCases(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	// No assignment at all.
	chapeu, err := svc.GetChapeu(ctx, "article-missing")
	require.NoError(t, err)
	assert.Nil(t, chapeu)

	// Assignment with no labels.
	mustAssign(t, svc, "article-1", nil, nil)
	chapeu, err = svc.GetChapeu(ctx, "article-1")
	require.NoError(t, err)
	assert.Nil(t, chapeu)
}

func TestChapeuTracksTagDeletion(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	tag := mustCreateTag(t, svc, "Urgente")
	category := mustCreateCategory(t, svc, "Política", "")
	mustAssign(t, svc, "article-1", []string{tag.ID}, []string{category.ID})

	// Deleting the tag unlinks it, so the primary pointer is re-derived and
	// the chapeu falls through to the category.
	require.NoError(t, svc.DeleteTag(ctx, tag.ID))

	chapeu, err := svc.GetChapeu(ctx, "article-1")
	require.NoError(t, err)
	require.NotNil(t, chapeu)
	assert.Equal(t, domain.ChapeuCategory, chapeu.Kind)
	assert.Equal(t, category.ID, chapeu.Category.ID)
}
