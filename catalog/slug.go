package catalog

import (
	"fmt"
	"strings"
)

// Slugify normalizes a display name into a URL-safe identifier:
// lower-case, every maximal run of characters outside [a-z0-9] becomes a
// single "-", leading and trailing "-" stripped. Total and idempotent.
func Slugify(name string) string {
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	lastDash := false
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// UniqueSlug derives a slug from name that does not collide with any slug
// in taken. Two distinct names may normalize to the same slug; the first
// keeps the base form and later ones get a numeric suffix (-2, -3, ...).
func UniqueSlug(name string, taken []string) string {
	base := Slugify(name)
	inUse := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		inUse[s] = struct{}{}
	}

	if _, ok := inUse[base]; !ok {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, ok := inUse[candidate]; !ok {
			return candidate
		}
	}
}
