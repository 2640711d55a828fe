package uploads

import "strings"

var separatorReplacer = strings.NewReplacer("/", "-", "\\", "-")

// SanitizeFilename makes a filename safe for use inside an object key: path
// separators become hyphens, anything outside [A-Za-z0-9._-] becomes an
// underscore, and an empty result falls back to a fixed placeholder.
func SanitizeFilename(name string) string {
	name = separatorReplacer.Replace(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := b.String()
	if out == "" {
		return fallbackFilename
	}
	return out
}
