package matching

import (
	"strings"

	"vehicle-lookup-api/internal/catalog"
	"vehicle-lookup-api/internal/model"
)

// Matcher filters the catalog. Every method is a pure function of its
// arguments and the catalog, and returns records in catalog order.
type Matcher struct {
	catalog  *catalog.Catalog
	resolver *Resolver
}

// NewMatcher creates a matcher over c
func NewMatcher(c *catalog.Catalog) *Matcher {
	return &Matcher{
		catalog:  c,
		resolver: NewResolver(c),
	}
}

// Resolver returns the brand resolver the matcher uses.
func (m *Matcher) Resolver() *Resolver {
	return m.resolver
}

// FullMatch returns the model of brand whose name equals model and which is
// compatible with year. The record carries only the queried year.
func (m *Matcher) FullMatch(brandInput, modelInput string, year int) []model.MatchRecord {
	brand, ok := m.brand(brandInput)
	if !ok {
		return nil
	}

	key := ModelKey(modelInput)
	var results []model.MatchRecord
	for _, mdl := range brand.Models {
		if ModelKey(mdl.Name) == key && mdl.Years.Covers(year) {
			results = append(results, record(brand.Key, mdl.Name, []int{year}))
		}
	}
	return results
}

// BrandYearMatch returns every model of brand compatible with year.
func (m *Matcher) BrandYearMatch(brandInput string, year int) []model.MatchRecord {
	brand, ok := m.brand(brandInput)
	if !ok {
		return nil
	}

	var results []model.MatchRecord
	for _, mdl := range brand.Models {
		if mdl.Years.Covers(year) {
			results = append(results, record(brand.Key, mdl.Name, []int{year}))
		}
	}
	return results
}

// BrandModelMatch returns every model of brand whose name contains, or is
// contained in, the model fragment.
func (m *Matcher) BrandModelMatch(brandInput, modelInput string) []model.MatchRecord {
	brand, ok := m.brand(brandInput)
	if !ok {
		return nil
	}

	key := ModelKey(modelInput)
	if key == "" {
		return nil
	}

	var results []model.MatchRecord
	for _, mdl := range brand.Models {
		name := ModelKey(mdl.Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, key) || strings.Contains(key, name) {
			results = append(results, record(brand.Key, mdl.Name, mdl.Years.Ints()))
		}
	}
	return results
}

// BrandMatch returns every model of brand.
func (m *Matcher) BrandMatch(brandInput string) []model.MatchRecord {
	brand, ok := m.brand(brandInput)
	if !ok {
		return nil
	}
	return allModels(brand)
}

// ModelMatch returns every model, across all brands, whose name equals modelInput.
func (m *Matcher) ModelMatch(modelInput string) []model.MatchRecord {
	key := ModelKey(modelInput)
	if key == "" {
		return nil
	}

	var results []model.MatchRecord
	for _, brand := range m.catalog.Brands() {
		for _, mdl := range brand.Models {
			if ModelKey(mdl.Name) == key {
				results = append(results, record(brand.Key, mdl.Name, mdl.Years.Ints()))
			}
		}
	}
	return results
}

// FuzzyMatch is the last resort: a brand, then an exact model name, then a
// substring scan. Within the scan a brand whose display name contains text
// yields all its models; other brands yield the models whose name contains it.
func (m *Matcher) FuzzyMatch(text string) []model.MatchRecord {
	if results := m.BrandMatch(text); len(results) > 0 {
		return results
	}
	if results := m.ModelMatch(text); len(results) > 0 {
		return results
	}

	term := strings.ToLower(strings.TrimSpace(text))
	if term == "" {
		return nil
	}

	var results []model.MatchRecord
	for _, brand := range m.catalog.Brands() {
		if strings.Contains(strings.ToLower(brand.DisplayName()), term) {
			results = append(results, allModels(brand)...)
			continue
		}
		for _, mdl := range brand.Models {
			if strings.Contains(strings.ToLower(mdl.Name), term) {
				results = append(results, record(brand.Key, mdl.Name, mdl.Years.Ints()))
			}
		}
	}
	return results
}

func (m *Matcher) brand(input string) (catalog.Brand, bool) {
	key, ok := m.resolver.Resolve(input)
	if !ok {
		return catalog.Brand{}, false
	}
	return m.catalog.Brand(key)
}

func allModels(brand catalog.Brand) []model.MatchRecord {
	results := make([]model.MatchRecord, 0, len(brand.Models))
	for _, mdl := range brand.Models {
		results = append(results, record(brand.Key, mdl.Name, mdl.Years.Ints()))
	}
	return results
}

func record(brand, name string, years []int) model.MatchRecord {
	return model.MatchRecord{Brand: brand, Model: name, Years: years}
}
