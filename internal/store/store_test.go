package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editoria/editoria-server/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_SaveLoad(t *testing.T) {
	s := openTestStore(t)

	tags := map[string]*domain.Tag{
		"tag_1": {ID: "tag_1", Name: "Urgente", Slug: "urgente", UsageCount: 2},
	}
	require.NoError(t, s.Save(KeyTags, tags))

	var loaded map[string]*domain.Tag
	found, err := s.Load(KeyTags, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	require.Contains(t, loaded, "tag_1")
	assert.Equal(t, "Urgente", loaded["tag_1"].Name)
	assert.Equal(t, 2, loaded["tag_1"].UsageCount)
}

func TestStore_LoadAbsent(t *testing.T) {
	s := openTestStore(t)

	var dest map[string]*domain.Tag
	found, err := s.Load(KeyCategories, &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)
}

func TestStore_SaveReplaces(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save(KeyAssignments, map[string]string{"a": "1"}))
	require.NoError(t, s.Save(KeyAssignments, map[string]string{"b": "2"}))

	var dest map[string]string
	found, err := s.Load(KeyAssignments, &dest)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, map[string]string{"b": "2"}, dest)
}

func TestMemoryStore_Corrupt(t *testing.T) {
	m := NewMemoryStore()
	require.NoError(t, m.Save(KeyTags, map[string]string{"a": "1"}))

	m.Corrupt(KeyTags)

	var dest map[string]string
	_, err := m.Load(KeyTags, &dest)
	assert.Error(t, err)
}
