package ledger

import "strings"

// MaxSlugLen caps the length of a slug.
const MaxSlugLen = 60

// Slugify lowercases title, turns every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens from both ends. The result is cut to
// MaxSlugLen and re-trimmed, so it never ends in a hyphen. A title without
// any ASCII letters or digits yields "".
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	slug := b.String()
	if len(slug) > MaxSlugLen {
		slug = strings.TrimRight(slug[:MaxSlugLen], "-")
	}
	return slug
}

// Stem joins a date and slug into the shared contract/entry file stem.
func Stem(date, slug string) string {
	return date + "-" + slug
}
