// Package id generates prefixed, time-sortable entity IDs.
package id

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// randomLength is the length of the random NanoID suffix.
const randomLength = 9

// alphabet restricts the suffix to lowercase alphanumerics so the full ID
// stays URL-safe without escaping.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Generate creates a prefixed unique ID.
// Format: prefix_unixmilli_random9 (e.g., "tag_1717171717171_k3j9x2m1q").
//
// The millisecond timestamp makes IDs roughly sortable by creation time;
// the NanoID suffix disambiguates IDs minted in the same millisecond.
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate(prefix string) (string, error) {
	suffix, err := gonanoid.Generate(alphabet, randomLength)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix), nil
}

// MustGenerate is like Generate but panics if ID generation fails.
// Use only where failure should crash the program (e.g., during initialization).
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}
