package catalog

import "banhmai_back_end/internal/models"

// PageSize is the number of categories shown per horizontal page in the
// storefront browse grid.
const PageSize = 8

// Paginate splits categories into order-preserving pages of at most pageSize
// entries. The last page may be short; zero categories yields zero pages.
func Paginate(categories []models.Category, pageSize int) [][]models.Category {
	if pageSize <= 0 || len(categories) == 0 {
		return nil
	}
	var pages [][]models.Category
	for start := 0; start < len(categories); start += pageSize {
		end := start + pageSize
		if end > len(categories) {
			end = len(categories)
		}
		pages = append(pages, categories[start:end])
	}
	return pages
}
