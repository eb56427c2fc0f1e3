package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignment_SyncPrimary(t *testing.T) {
	a := &Assignment{
		Tags:       []string{"t1", "t2"},
		Categories: []string{"c1"},
	}
	a.SyncPrimary()

	assert.Equal(t, "t1", a.PrimaryTag)
	assert.Equal(t, "c1", a.PrimaryCategory)
}

func TestAssignment_SyncPrimary_Empty(t *testing.T) {
	a := &Assignment{}
	a.SyncPrimary()

	assert.Empty(t, a.PrimaryTag)
	assert.Empty(t, a.PrimaryCategory)
}

func TestAssignment_RemoveTag(t *testing.T) {
	a := &Assignment{Tags: []string{"t1", "t2", "t3"}}
	a.SyncPrimary()

	// Removing the primary promotes the next tag.
	assert.True(t, a.RemoveTag("t1"))
	assert.Equal(t, []string{"t2", "t3"}, a.Tags)
	assert.Equal(t, "t2", a.PrimaryTag)

	// Removing an unknown ID is a no-op.
	assert.False(t, a.RemoveTag("missing"))
	assert.Equal(t, "t2", a.PrimaryTag)

	// Draining the list clears the primary.
	assert.True(t, a.RemoveTag("t2"))
	assert.True(t, a.RemoveTag("t3"))
	assert.Empty(t, a.PrimaryTag)
}

func TestAssignment_RemoveCategory(t *testing.T) {
	a := &Assignment{Categories: []string{"c1", "c2"}}
	a.SyncPrimary()

	assert.True(t, a.RemoveCategory("c1"))
	assert.Equal(t, "c2", a.PrimaryCategory)
}

func TestAssignment_SharedCount(t *testing.T) {
	a := &Assignment{Tags: []string{"t1", "t2"}, Categories: []string{"c1"}}
	b := &Assignment{Tags: []string{"t2", "t3"}, Categories: []string{"c1", "c2"}}

	assert.Equal(t, 2, a.SharedCount(b)) // t2 + c1
	assert.Equal(t, 0, a.SharedCount(&Assignment{}))
	assert.Equal(t, 0, a.SharedCount(nil))
}
