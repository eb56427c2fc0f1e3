package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowWithinBurst(t *testing.T) {
	kl := New(1, 3)

	assert.True(t, kl.Allow("10.0.0.1"))
	assert.True(t, kl.Allow("10.0.0.1"))
	assert.True(t, kl.Allow("10.0.0.1"))
	assert.False(t, kl.Allow("10.0.0.1"))
}

func TestKeysAreIndependent(t *testing.T) {
	kl := New(1, 1)

	assert.True(t, kl.Allow("10.0.0.1"))
	assert.False(t, kl.Allow("10.0.0.1"))

	// A different key has its own bucket.
	assert.True(t, kl.Allow("10.0.0.2"))
}

func TestWaitHonorsContext(t *testing.T) {
	kl := New(0.001, 1)
	require.True(t, kl.Allow("slow"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := kl.Wait(ctx, "slow")
	assert.Error(t, err)
}
