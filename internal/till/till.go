// Package till binds one cart ledger to one checkout session.
//
// A Till is the handle a cashier works through: cart edits and checkout
// operations both go through it so the cart cannot change once a payment has
// been submitted.
package till

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mmynk/kasir/internal/cart"
	"github.com/mmynk/kasir/internal/checkout"
	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/money"
)

var (
	// ErrCartLocked is returned for cart edits while a settlement is in flight
	// or being confirmed.
	ErrCartLocked = errors.New("cart is locked during checkout")
	// ErrTillNotFound is returned for unknown till ids.
	ErrTillNotFound = errors.New("till not found")
)

// Till is one open register.
type Till struct {
	ID        string
	CashierID string
	OpenedAt  time.Time

	// mu orders cart edits and Close against Submit.
	mu       sync.Mutex
	closed   bool
	cart     *cart.Ledger
	checkout *checkout.Session

	// lastActive is unix nanoseconds of the last lookup.
	lastActive atomic.Int64
}

// Snapshot is a consistent read of a till.
type Snapshot struct {
	ID        string
	CashierID string
	OpenedAt  time.Time
	Items     []models.CartItem
	Subtotal  money.Amount
	ItemCount int
	Checkout  checkout.View
}

func newTill(id, cashierID string, now time.Time, opts checkout.Options) *Till {
	t := &Till{
		ID:        id,
		CashierID: cashierID,
		OpenedAt:  now,
		cart:      cart.NewLedger(),
	}
	t.touch(now)

	onComplete := opts.Hooks.OnComplete
	opts.Hooks.OnComplete = func(s checkout.Settlement) {
		t.cart.Clear()
		if onComplete != nil {
			onComplete(s)
		}
	}
	t.checkout = checkout.NewSession(t.cart, opts)
	return t
}

func (t *Till) touch(now time.Time) {
	t.lastActive.Store(now.UnixNano())
}

// LastActive is when the till was last looked up through its Registry.
func (t *Till) LastActive() time.Time {
	return time.Unix(0, t.lastActive.Load())
}

// editableLocked reports why the cart cannot change, if it cannot.
func (t *Till) editableLocked() error {
	if t.closed {
		return ErrTillNotFound
	}
	if t.checkout.Locked() {
		return ErrCartLocked
	}
	return nil
}

// AddItem adds one unit of product to the cart.
func (t *Till) AddItem(product models.Product, categoryLabel string) (models.CartItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.editableLocked(); err != nil {
		return models.CartItem{}, err
	}
	return t.cart.AddItem(product, categoryLabel), nil
}

// UpdateQuantity adjusts a line by delta. It reports whether the line existed.
func (t *Till) UpdateQuantity(id int64, delta int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.editableLocked(); err != nil {
		return false, err
	}
	return t.cart.UpdateQuantity(id, delta), nil
}

// RemoveItem deletes a line. It reports whether the line existed.
func (t *Till) RemoveItem(id int64) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.editableLocked(); err != nil {
		return false, err
	}
	return t.cart.RemoveItem(id), nil
}

// ClearCart empties the cart.
func (t *Till) ClearCart() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.editableLocked(); err != nil {
		return err
	}
	t.cart.Clear()
	return nil
}

func (t *Till) OpenCheckout() error {
	return t.checkout.Open()
}

func (t *Till) SelectMethod(m checkout.Method) error {
	return t.checkout.SelectMethod(m)
}

func (t *Till) SetTender(raw string) error {
	return t.checkout.SetTender(raw)
}

func (t *Till) QuickTender(preset checkout.TenderPreset) error {
	return t.checkout.QuickTender(preset)
}

// Submit commits the payment. Cart edits and Close wait for it so the
// submitted totals match the cart and a closed till never settles.
func (t *Till) Submit(ctx context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrTillNotFound
	}
	return t.checkout.Submit(ctx, key)
}

func (t *Till) CancelCheckout() error {
	return t.checkout.Cancel()
}

func (t *Till) RetryPayment() error {
	return t.checkout.Retry()
}

// Snapshot returns the cart and checkout as they should be displayed.
func (t *Till) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	items := t.cart.Items()
	var subtotal money.Amount
	count := 0
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
		count += item.Quantity
	}
	return Snapshot{
		ID:        t.ID,
		CashierID: t.CashierID,
		OpenedAt:  t.OpenedAt,
		Items:     items,
		Subtotal:  subtotal,
		ItemCount: count,
		Checkout:  t.checkout.View(),
	}
}
