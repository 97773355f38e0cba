// Package slugify turns display names into URL slugs.
package slugify

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	apostrophes = regexp.MustCompile("['’`]")
	disallowed  = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace  = regexp.MustCompile(`\s+`)
	hyphenRuns  = regexp.MustCompile(`-+`)
	edgeHyphens = regexp.MustCompile(`^-|-$`)
)

// ErrEmptySlug is returned when a name normalizes to nothing,
// e.g. a name made entirely of punctuation.
var ErrEmptySlug = errors.New("name produces an empty slug")

// Generate normalizes a display name to a URL slug.
// "John O'Brien Jr." → "john-obrien-jr".
func Generate(name string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = apostrophes.ReplaceAllString(s, "")
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = edgeHyphens.ReplaceAllString(s, "")
	if s == "" {
		return "", ErrEmptySlug
	}
	return s, nil
}

// Uniquify appends a numeric suffix for retry attempts past the first.
// Uniquify("john-smith", 1) == "john-smith"; attempt 2 → "john-smith-2".
func Uniquify(base string, attempt int) string {
	if attempt <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, attempt)
}
