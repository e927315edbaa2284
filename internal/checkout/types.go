// Package checkout implements the payment session of a till.
//
// A Session moves through idle → reviewing → processing → succeeded and back
// to idle. The two fixed delays (processing latency and confirmation display)
// are scheduled callbacks, never blocking sleeps; each callback carries the
// epoch it was scheduled in and is ignored if the session has moved on.
//
// Amounts are recomputed from the cart on every read while reviewing, and
// frozen at submission while processing.
package checkout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/kasir/internal/money"
)

// State is the phase of a checkout session.
type State string

const (
	StateIdle       State = "idle"
	StateReviewing  State = "reviewing"
	StateProcessing State = "processing"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Method is how the customer pays.
type Method string

const (
	MethodCash Method = "cash"
	MethodCard Method = "card"
)

// ParseMethod accepts "cash" or "card", case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodCash:
		return MethodCash, nil
	case MethodCard:
		return MethodCard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// TenderPreset is a quick-tender shortcut.
type TenderPreset string

const (
	TenderExact TenderPreset = "exact"
	Tender100K  TenderPreset = "100k"
	Tender200K  TenderPreset = "200k"
)

// presetAmounts are the fixed round tenders.
var presetAmounts = map[TenderPreset]money.Amount{
	Tender100K: 100000,
	Tender200K: 200000,
}

var (
	ErrInvalidTransition  = errors.New("invalid checkout transition")
	ErrInsufficientTender = errors.New("tendered cash does not cover the grand total")
	ErrSettlementInFlight = errors.New("settlement already in progress")
	ErrUnknownMethod      = errors.New("unknown payment method")
	ErrUnknownPreset      = errors.New("unknown tender preset")
	ErrAmountOutOfRange   = errors.New("cart total is too large to settle")
)

// Settlement is the committed payment of one session.
type Settlement struct {
	SessionID  string
	Method     Method
	Subtotal   money.Amount
	Tax        money.Amount
	GrandTotal money.Amount
	// Tendered and Change are zero for card payments.
	Tendered money.Amount
	Change   money.Amount
	// SettledAt is set when the settlement succeeds.
	SettledAt time.Time
}

// View is a read-only picture of a session for display.
type View struct {
	SessionID  string
	State      State
	Method     Method
	RawTender  string
	Tendered   money.Amount
	Subtotal   money.Amount
	Tax        money.Amount
	GrandTotal money.Amount
	Change     money.Amount
	// Shortfall is set for cash when the tender is below the grand total.
	Shortfall bool
	// OutOfRange is set when the totals overflowed; submit is refused.
	OutOfRange bool
	CanSubmit  bool
	Processing bool
	Settled    bool
	// Receipt is the settlement being confirmed while succeeded.
	Receipt *Settlement
	// Failure is the authorizer's error message while failed.
	Failure string
}

// Hooks are notified of session outcomes. Hooks run outside the session lock
// and may call back into the session or the cart.
type Hooks struct {
	// OnSettled runs when a settlement is authorized.
	OnSettled func(Settlement)
	// OnComplete runs after the confirmation delay, or when the confirmation
	// is dismissed early. The till clears its cart here.
	OnComplete func(Settlement)
	// OnFailed runs when the authorizer rejects a settlement.
	OnFailed func(Settlement, error)
}
