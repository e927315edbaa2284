// Package calculator derives the amounts shown during checkout.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/kasir/internal/money"
)

// TaxRate is the flat sales tax applied to every sale.
var TaxRate = decimal.RequireFromString("0.10")

// Breakdown is the amount due for a cart subtotal.
type Breakdown struct {
	Subtotal   money.Amount
	Tax        money.Amount
	GrandTotal money.Amount
	// OutOfRange is set when the subtotal or grand total hit the Amount
	// bounds. Such a breakdown must not be settled.
	OutOfRange bool
}

// Compute applies the flat tax to subtotal.
// Tax is rounded half away from zero to a whole minor unit:
// grand_total = subtotal + round(subtotal × 0.10)
func Compute(subtotal money.Amount) Breakdown {
	tax := money.Amount(decimal.NewFromInt(subtotal.Int64()).Mul(TaxRate).Round(0).IntPart())
	grand := subtotal.Add(tax)
	return Breakdown{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: grand,
		OutOfRange: subtotal.Saturated() || grand.Saturated(),
	}
}

// Change returns tendered minus the amount due. A negative result is a
// shortfall.
func Change(tendered, grandTotal money.Amount) money.Amount {
	return tendered - grandTotal
}

// Covers reports whether tendered cash is enough to settle grandTotal.
func Covers(tendered, grandTotal money.Amount) bool {
	return tendered >= grandTotal
}
