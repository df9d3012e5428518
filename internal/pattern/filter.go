package pattern

import (
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// Query narrows a list of patterns.
type Query struct {
	Search   string
	Category string
	IDs      []string
}

// Filter returns the patterns whose name or description contains the search
// term (ignoring case) and which belong to the category, if one is set.
func Filter(patterns []Pattern, q Query) []Pattern {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	var result []Pattern

	for i := range patterns {
		p := patterns[i]

		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}

		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}

		if len(q.IDs) > 0 && !slices.Contains(q.IDs, p.ID) {
			continue
		}

		result = append(result, p)
	}

	return result
}

// Categories returns the distinct non-empty categories in natural order.
func Categories(patterns []Pattern) []string {
	var categories []string

	for i := range patterns {
		c := patterns[i].Category
		if c != "" && !slices.Contains(categories, c) {
			categories = append(categories, c)
		}
	}

	slices.SortFunc(categories, compareNatural)

	return categories
}

// SortByName orders patterns by name so that "Preset 2" sorts before
// "Preset 10".
func SortByName(patterns []Pattern) {
	slices.SortStableFunc(patterns, func(a, b Pattern) int {
		return compareNatural(a.Name, b.Name)
	})
}

// Find looks up a pattern by its identifier.
func Find(patterns []Pattern, id string) (Pattern, bool) {
	i := slices.IndexFunc(patterns, func(p Pattern) bool {
		return p.ID == id
	})
	if i < 0 {
		return Pattern{}, false
	}

	return patterns[i], true
}

func compareNatural(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}

	return 0
}
