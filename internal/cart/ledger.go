// Package cart implements the till's cart ledger.
//
// A Ledger is the only writer of its line items. Callers read copies through
// Items and recompute totals after every mutation; nothing is cached across
// mutations.
package cart

import (
	"math"
	"sync"

	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/money"
)

// Ledger holds cart lines in insertion order.
// It is safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	items   []models.CartItem
	version uint64
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddItem adds one unit of product. An existing line keeps its price and
// category snapshot and only gains quantity. The ledger does not check stock.
func (l *Ledger) AddItem(product models.Product, categoryLabel string) models.CartItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.version++

	if i := l.indexOf(product.ID); i >= 0 {
		l.items[i].Quantity = addQuantity(l.items[i].Quantity, 1)
		return l.items[i]
	}

	item := models.CartItem{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
		Category:  categoryLabel,
	}
	l.items = append(l.items, item)
	return item
}

// UpdateQuantity adjusts a line's quantity by delta. A result of zero or less
// removes the line. Unknown ids are ignored. It reports whether a line was
// found.
func (l *Ledger) UpdateQuantity(id int64, delta int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.version++

	qty := addQuantity(l.items[i].Quantity, delta)
	if qty <= 0 {
		l.removeAt(i)
		return true
	}
	l.items[i].Quantity = qty
	return true
}

// RemoveItem deletes the line for id if present and reports whether it was.
func (l *Ledger) RemoveItem(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.version++
	l.removeAt(i)
	return true
}

// Clear empties the cart.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.version++
	l.items = nil
}

// Subtotal is the exact sum of line totals. Zero for an empty cart.
func (l *Ledger) Subtotal() money.Amount {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total money.Amount
	for _, item := range l.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Items returns a copy of the lines in insertion order.
func (l *Ledger) Items() []models.CartItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.CartItem, len(l.items))
	copy(out, l.items)
	return out
}

// Get returns the line for id.
func (l *Ledger) Get(id int64) (models.CartItem, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.indexOf(id); i >= 0 {
		return l.items[i], true
	}
	return models.CartItem{}, false
}

// ItemCount is the total number of units across all lines (the cart badge).
func (l *Ledger) ItemCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, item := range l.items {
		n += item.Quantity
	}
	return n
}

// Len is the number of distinct lines.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Version increases with every mutation. Views built at an older version are stale.
func (l *Ledger) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}

// addQuantity clamps at math.MaxInt instead of wrapping. Quantities are
// positive, so only the upper bound matters.
func addQuantity(q, delta int) int {
	if delta > 0 && q > math.MaxInt-delta {
		return math.MaxInt
	}
	return q + delta
}

func (l *Ledger) indexOf(id int64) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) removeAt(i int) {
	l.items = append(l.items[:i], l.items[i+1:]...)
}
