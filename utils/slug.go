// utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe room key from a display name: lowercase, runs of
// anything outside [a-z0-9] collapsed to hyphens, leading/trailing hyphens
// trimmed.
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
