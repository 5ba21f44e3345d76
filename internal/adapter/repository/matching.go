package repository

import (
	"sort"
	"strings"

	"gomarket/internal/domain/entity"
)

// matchTitle reports whether a product title matches the search term.
// Empty term matches everything.
func matchTitle(title, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(term))
}

// sortByCreation orders products by creation time, ID as tiebreak. Both
// store implementations use this key so pages of one query never skip or
// duplicate items.
func sortByCreation(products []*entity.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].ID < products[j].ID
		}
		return products[i].CreatedAt.Before(products[j].CreatedAt)
	})
}

// paginate returns the [offset, offset+limit) slice; past-the-end offsets
// yield an empty slice, never an error.
func paginate(products []*entity.Product, limit, offset int) []*entity.Product {
	if offset >= len(products) {
		return []*entity.Product{}
	}
	end := offset + limit
	if limit <= 0 || end > len(products) {
		end = len(products)
	}
	return products[offset:end]
}
