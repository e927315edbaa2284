package models

import "github.com/mmynk/kasir/internal/money"

// Category groups products for browsing.
type Category struct {
	// ID is the unique identifier assigned by the store.
	ID int64

	// Name is the display name (e.g., "Makanan", "Minuman").
	Name string

	// CreatedAt is the Unix timestamp when the category was created.
	CreatedAt int64
}

// Product is a sellable catalog entry.
type Product struct {
	// ID is the unique identifier assigned by the store.
	ID int64

	// Name is the display name; catalog listings are ordered by it.
	Name string

	// Description is optional free text.
	Description string

	// Price is the unit price in minor units. Never negative.
	Price money.Amount

	// CategoryID references a Category. Nil means uncategorized.
	CategoryID *int64

	// ImageURL is an optional picture for the product tile.
	ImageURL string

	// Stock is the units on hand. Nil means availability is not tracked.
	Stock *int64

	// CreatedAt and UpdatedAt are Unix timestamps maintained by the store.
	CreatedAt int64
	UpdatedAt int64
}

// Category returns the category id and whether one is assigned.
func (p Product) Category() (int64, bool) {
	if p.CategoryID == nil {
		return 0, false
	}
	return *p.CategoryID, true
}

// InStock reports whether the product can be added to a cart. Products without
// a stock count are always available; a stock of exactly zero is not.
func (p Product) InStock() bool {
	return p.Stock == nil || *p.Stock > 0
}

// Int64Ptr is a helper for optional Product fields.
func Int64Ptr(v int64) *int64 {
	return &v
}
