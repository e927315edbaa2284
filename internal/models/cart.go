package models

import "github.com/mmynk/kasir/internal/money"

// CartItem is one product's line in a till cart.
type CartItem struct {
	// ID equals the source product's ID. A cart holds at most one line per product.
	ID int64

	// Name is copied from the product when the line is created.
	Name string

	// UnitPrice is the product price at the time the line was created.
	UnitPrice money.Amount

	// Quantity is at least 1 while the line exists.
	Quantity int

	// Category is the display label of the product's category, not a reference.
	Category string
}

// LineTotal returns UnitPrice × Quantity.
func (i CartItem) LineTotal() money.Amount {
	return i.UnitPrice.Mul(i.Quantity)
}
