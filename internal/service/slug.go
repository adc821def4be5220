package service

import (
	"regexp"
	"strings"
)

const maxSlugLength = 100

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// slugify derives a URL-safe slug from a title: lowercase, punctuation
// stripped, whitespace/underscore runs collapsed to single hyphens, capped at
// 100 characters.
func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	return slug
}
