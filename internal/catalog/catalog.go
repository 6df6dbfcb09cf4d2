package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyBrandKey  = errors.New("catalog: empty brand key")
	ErrDuplicateBrand = errors.New("catalog: duplicate brand key")
	ErrEmptyModelName = errors.New("catalog: empty model name")
)

// Data is the raw nested form of a catalog: brand -> model -> years.
type Data map[string]map[string][]int

// YearSet holds the years a model is compatible with, sorted ascending and
// without duplicates. An empty set means every year is compatible.
type YearSet []int

// NewYearSet copies, sorts and de-duplicates years.
func NewYearSet(years []int) YearSet {
	set := make(YearSet, 0, len(years))
	seen := make(map[int]bool, len(years))
	for _, y := range years {
		if seen[y] {
			continue
		}
		seen[y] = true
		set = append(set, y)
	}
	sort.Ints(set)
	return set
}

// Covers reports whether year is compatible with the set.
func (s YearSet) Covers(year int) bool {
	if len(s) == 0 {
		return true
	}
	i := sort.SearchInts(s, year)
	return i < len(s) && s[i] == year
}

// Ints returns a fresh copy of the years, never nil.
func (s YearSet) Ints() []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// Model is a vehicle line under a brand.
type Model struct {
	Name  string
	Years YearSet
}

// Brand is a manufacturer with its models in display order.
type Brand struct {
	Key    string
	Models []Model
}

// DisplayName returns the key with hyphens turned into spaces.
func (b Brand) DisplayName() string {
	return DisplayName(b.Key)
}

// DisplayName turns a brand key such as "land-rover" into "land rover".
func DisplayName(key string) string {
	return strings.ReplaceAll(key, "-", " ")
}

// Catalog is the immutable vehicle table. Brands are ordered by key and the
// models of each brand by lowercase name, so every scan is deterministic.
// Values returned by its methods share memory with the catalog and must not
// be modified.
type Catalog struct {
	brands []Brand
	index  map[string]int
}

// New validates data and builds a Catalog. Brand keys are trimmed and
// lowercased; keys that collide after that are rejected.
func New(data Data) (*Catalog, error) {
	c := &Catalog{
		brands: make([]Brand, 0, len(data)),
		index:  make(map[string]int, len(data)),
	}

	seen := make(map[string]string, len(data))
	for rawKey, models := range data {
		key := strings.ToLower(strings.TrimSpace(rawKey))
		if key == "" {
			return nil, ErrEmptyBrandKey
		}
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateBrand, prev, rawKey)
		}
		seen[key] = rawKey

		brand := Brand{Key: key, Models: make([]Model, 0, len(models))}
		for name, years := range models {
			if strings.TrimSpace(name) == "" {
				return nil, fmt.Errorf("%w under brand %q", ErrEmptyModelName, key)
			}
			brand.Models = append(brand.Models, Model{Name: name, Years: NewYearSet(years)})
		}
		sort.Slice(brand.Models, func(i, j int) bool {
			a, b := brand.Models[i].Name, brand.Models[j].Name
			la, lb := strings.ToLower(a), strings.ToLower(b)
			if la != lb {
				return la < lb
			}
			return a < b
		})
		c.brands = append(c.brands, brand)
	}

	sort.Slice(c.brands, func(i, j int) bool {
		return c.brands[i].Key < c.brands[j].Key
	})
	for i, b := range c.brands {
		c.index[b.Key] = i
	}

	return c, nil
}

// Brands returns every brand in key order.
func (c *Catalog) Brands() []Brand {
	return c.brands
}

// Brand looks up a brand by its exact key.
func (c *Catalog) Brand(key string) (Brand, bool) {
	i, ok := c.index[key]
	if !ok {
		return Brand{}, false
	}
	return c.brands[i], true
}

// Len returns the number of brands.
func (c *Catalog) Len() int {
	return len(c.brands)
}

// ModelCount returns the number of models across all brands.
func (c *Catalog) ModelCount() int {
	total := 0
	for _, b := range c.brands {
		total += len(b.Models)
	}
	return total
}

// Data returns the catalog in its raw nested form.
func (c *Catalog) Data() Data {
	out := make(Data, len(c.brands))
	for _, b := range c.brands {
		models := make(map[string][]int, len(b.Models))
		for _, m := range b.Models {
			models[m.Name] = m.Years.Ints()
		}
		out[b.Key] = models
	}
	return out
}
