// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Matches any run of non-alphanumeric characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	// Matches multiple hyphens.
	multipleHyphens = regexp.MustCompile(`-+`)
)

// Make converts a display name to a URL-safe slug.
// "Política Nacional" -> "politica-nacional".
// "Últimas Notícias!" -> "ultimas-noticias".
// "Sci-Fi/Fantasy" -> "sci-fi-fantasy".
func Make(s string) string {
	// Normalize unicode (decompose accented characters).
	s = norm.NFKD.String(s)

	// Drop combining marks and anything else outside ASCII.
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || unicode.IsMark(r) {
			return -1
		}
		return r
	}, s)

	// Lowercase.
	s = strings.ToLower(s)

	// Replace non-alphanumeric runs with hyphens.
	s = nonAlphanumeric.ReplaceAllString(s, "-")

	// Collapse multiple hyphens.
	s = multipleHyphens.ReplaceAllString(s, "-")

	// Trim leading/trailing hyphens.
	return strings.Trim(s, "-")
}
