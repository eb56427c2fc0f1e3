package id

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Uniqueness(t *testing.T) {
	ids := make(map[string]bool)
	count := 1000

	for range count {
		id, err := Generate("test")
		require.NoError(t, err)
		assert.False(t, ids[id], "ID should be unique: %s", id)
		ids[id] = true
	}

	assert.Len(t, ids, count)
}

func TestGenerate_Format(t *testing.T) {
	for _, prefix := range []string{"tag", "cat", "custom"} {
		t.Run(prefix, func(t *testing.T) {
			id, err := Generate(prefix)
			require.NoError(t, err)

			parts := strings.Split(id, "_")
			require.Len(t, parts, 3)
			assert.Equal(t, prefix, parts[0])

			// Middle part is a millisecond timestamp near now.
			millis, err := strconv.ParseInt(parts[1], 10, 64)
			require.NoError(t, err)
			assert.WithinDuration(t, time.Now(), time.UnixMilli(millis), time.Minute)

			// Suffix is 9 lowercase alphanumerics.
			assert.Len(t, parts[2], randomLength)
			for _, char := range parts[2] {
				assert.True(t,
					(char >= 'a' && char <= 'z') || (char >= '0' && char <= '9'),
					"character %c should be lowercase alphanumeric", char)
			}
		})
	}
}

func TestMustGenerate(t *testing.T) {
	id := MustGenerate("test")
	assert.True(t, strings.HasPrefix(id, "test_"))
}
