// Package catalog selects which products a till shows.
//
// Filter and CategoryCounts are pure functions of their inputs. Browser adds a
// cached snapshot on top of a catalog source.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmynk/kasir/internal/models"
)

// AllCategories is the filter value that matches every product.
const AllCategories = "all"

// Uncategorized labels products without a category.
const Uncategorized = "Uncategorized"

// CategoryFilter is either "all" or a single category id.
type CategoryFilter struct {
	id  int64
	all bool
}

// All matches every product, including uncategorized ones.
func All() CategoryFilter {
	return CategoryFilter{all: true}
}

// OnlyCategory matches products whose category id equals id.
func OnlyCategory(id int64) CategoryFilter {
	return CategoryFilter{id: id}
}

// ParseCategoryFilter accepts "all" (or an empty string) and decimal category ids.
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, AllCategories) {
		return All(), nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return CategoryFilter{}, fmt.Errorf("invalid category filter %q", s)
	}
	return OnlyCategory(id), nil
}

// Matches reports whether p passes the category part of the filter.
func (f CategoryFilter) Matches(p models.Product) bool {
	if f.all {
		return true
	}
	id, ok := p.Category()
	return ok && id == f.id
}

// String returns "all" or the category id.
func (f CategoryFilter) String() string {
	if f.all {
		return AllCategories
	}
	return strconv.FormatInt(f.id, 10)
}

// Filter returns the products that match the category filter and whose name
// contains search, ignoring case. Input order is kept. Out-of-stock products
// are not removed.
func Filter(products []models.Product, filter CategoryFilter, search string) []models.Product {
	needle := strings.ToLower(search)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !filter.Matches(p) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CategoryCount is a category with the number of products assigned to it.
type CategoryCount struct {
	Category models.Category
	Count    int
}

// CategoryCounts counts products per category, in the order categories are given.
// Used for display only.
func CategoryCounts(categories []models.Category, products []models.Product) []CategoryCount {
	byID := make(map[int64]int, len(categories))
	for _, p := range products {
		if id, ok := p.Category(); ok {
			byID[id]++
		}
	}
	out := make([]CategoryCount, len(categories))
	for i, c := range categories {
		out[i] = CategoryCount{Category: c, Count: byID[c.ID]}
	}
	return out
}

// Label returns the display name for a product's category. Unknown ids fall
// back to "Category <id>".
func Label(categories []models.Category, p models.Product) string {
	id, ok := p.Category()
	if !ok {
		return Uncategorized
	}
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return fmt.Sprintf("Category %d", id)
}
