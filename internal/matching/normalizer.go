package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s, strips accents and collapses whitespace.
func Normalize(s string) string {
	// Convert to lowercase
	s = strings.ToLower(s)

	// Remove accents
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	// Remove extra whitespace
	return strings.Join(strings.Fields(s), " ")
}

// ModelKey is the comparison form of a model name: normalized, with every
// character outside [a-z0-9] removed. "CR-V" and "cr v" both become "crv".
func ModelKey(s string) string {
	s = Normalize(s)
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b = append(b, c)
		}
	}
	return string(b)
}

// Hyphenate turns whitespace runs into single hyphens ("land rover" -> "land-rover").
func Hyphenate(s string) string {
	return strings.Join(strings.Fields(s), "-")
}
