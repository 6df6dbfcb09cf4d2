package matching

import (
	"sort"
	"strconv"
	"strings"
)

const (
	minYear = 1900
	maxYear = 2100
)

// AllYearsText is shown for models without year restrictions.
const AllYearsText = "All years compatible."

// ParseYear parses a whole token as a model year. Only integers strictly
// between 1900 and 2100 count; anything else is not a year.
func ParseYear(token string) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, false
	}
	if year <= minYear || year >= maxYear {
		return 0, false
	}
	return year, true
}

// FormatYears renders years compactly: a single year as is, a continuous run
// as "2010-2012", anything else as a sorted comma list. years is not modified.
func FormatYears(years []int) string {
	if len(years) == 0 {
		return AllYearsText
	}

	sorted := make([]int, len(years))
	copy(sorted, years)
	sort.Ints(sorted)

	if len(sorted) == 1 {
		return strconv.Itoa(sorted[0])
	}

	continuous := true
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			continuous = false
			break
		}
	}

	if continuous {
		return strconv.Itoa(sorted[0]) + "-" + strconv.Itoa(sorted[len(sorted)-1])
	}

	parts := make([]string, len(sorted))
	for i, y := range sorted {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}
