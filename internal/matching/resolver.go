package matching

import (
	"strings"

	"vehicle-lookup-api/internal/catalog"
)

// Resolver maps free-text brand fragments to catalog brand keys.
type Resolver struct {
	catalog *catalog.Catalog
}

// NewResolver creates a resolver over c
func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve tries, in order, an exact key match, a match with the key's
// hyphens read as spaces, and finally the first key (in catalog order)
// containing the fragment with its spaces turned into hyphens.
func (r *Resolver) Resolve(fragment string) (string, bool) {
	if key, ok := r.ResolveStrict(fragment); ok {
		return key, true
	}

	needle := Hyphenate(strings.ToLower(fragment))
	if needle == "" {
		return "", false
	}
	for _, b := range r.catalog.Brands() {
		if strings.Contains(b.Key, needle) {
			return b.Key, true
		}
	}

	return "", false
}

// ResolveStrict runs only the exact and hyphen-insensitive steps of Resolve.
func (r *Resolver) ResolveStrict(fragment string) (string, bool) {
	input := strings.ToLower(strings.TrimSpace(fragment))
	if input == "" {
		return "", false
	}

	if _, ok := r.catalog.Brand(input); ok {
		return input, true
	}

	for _, b := range r.catalog.Brands() {
		if strings.ToLower(b.DisplayName()) == input {
			return b.Key, true
		}
	}

	return "", false
}
