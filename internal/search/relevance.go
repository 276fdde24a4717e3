package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"banhmai_back_end/internal/models"
)

// Sort modes accepted by FilterAndSort.
const (
	SortRelevance = "relevance"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
)

// Relevance scores a product against an already-normalized query:
// 3 when the name starts with the query, 2 when the name contains it,
// 1 when only the description contains it, 0 otherwise or for an empty query.
func Relevance(name, description, normalizedQuery string) int {
	if normalizedQuery == "" {
		return 0
	}
	n := Normalize(name)
	switch {
	case strings.HasPrefix(n, normalizedQuery):
		return 3
	case strings.Contains(n, normalizedQuery):
		return 2
	case strings.Contains(Normalize(description), normalizedQuery):
		return 1
	}
	return 0
}

// FilterAndSort retains products whose normalized name or description
// contains the normalized query (an empty query retains everything), then
// orders the result by the requested mode. Relevance ordering is stable:
// products with equal scores keep their original relative order.
func FilterAndSort(products []models.Product, rawQuery, sortMode string) []models.Product {
	query := NormalizeStrict(rawQuery)

	var filtered []models.Product
	for _, p := range products {
		if query == "" ||
			strings.Contains(Normalize(p.Name), query) ||
			strings.Contains(Normalize(p.Description), query) {
			filtered = append(filtered, p)
		}
	}

	switch sortMode {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortNameAsc:
		c := collate.New(language.Vietnamese)
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	default: // relevance
		sort.SliceStable(filtered, func(i, j int) bool {
			return Relevance(filtered[i].Name, filtered[i].Description, query) >
				Relevance(filtered[j].Name, filtered[j].Description, query)
		})
	}
	return filtered
}
