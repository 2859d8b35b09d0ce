package utils

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ToSlug converts a free-text recipe name into a URL-safe identifier.
// Lowercase latin letters, digits and CJK characters are kept, whitespace
// becomes a hyphen, everything else is stripped. A base36 millisecond
// timestamp suffix keeps generated slugs unique.
func ToSlug(name string) string {
	return toSlugAt(name, time.Now())
}

func toSlugAt(name string, now time.Time) string {
	lowered := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune('-')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r >= 0x4E00 && r <= 0x9FA5:
			b.WriteRune(r)
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "recipe"
	}

	suffix := strconv.FormatInt(now.UnixMilli(), 36)
	return slug + "-" + suffix
}
