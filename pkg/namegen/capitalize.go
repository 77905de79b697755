package namegen

import (
	"strings"
	"unicode"
)

// Capitalize uppercases the first letter of every space- or
// hyphen-delimited segment. Apostrophes do not start a new segment, so
// Kal'dor keeps its interior lowercase. The transform is idempotent.
func Capitalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	start := true
	for _, r := range name {
		switch {
		case r == ' ' || r == '-':
			b.WriteRune(r)
			start = true
		case start:
			b.WriteRune(unicode.ToUpper(r))
			start = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
