package till

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/kasir/internal/checkout"
	"github.com/mmynk/kasir/internal/money"
)

// Observer receives till and settlement events, typically for metrics.
type Observer interface {
	TillsOpen(n int)
	SettlementSucceeded(s checkout.Settlement)
	SettlementFailed(s checkout.Settlement, err error)
}

type nopObserver struct{}

func (nopObserver) TillsOpen(int)                               {}
func (nopObserver) SettlementSucceeded(checkout.Settlement)     {}
func (nopObserver) SettlementFailed(checkout.Settlement, error) {}

// Options configure every till opened by a Registry.
type Options struct {
	ProcessingDelay time.Duration
	SuccessDelay    time.Duration
	Scheduler       checkout.Scheduler
	Authorizer      checkout.Authorizer
	Formatter       *money.Formatter
	Observer        Observer

	// IdleTimeout is how long a till may go without a lookup before Sweep
	// closes it. Zero keeps tills until they are closed explicitly.
	IdleTimeout time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Registry tracks open tills. Tills are independent of each other.
//
// Lock order: Till.mu before Registry.mu.
type Registry struct {
	opts Options

	mu    sync.RWMutex
	tills map[string]*Till
}

// NewRegistry creates an empty registry.
func NewRegistry(opts Options) *Registry {
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{
		opts:  opts,
		tills: make(map[string]*Till),
	}
}

// Open starts a new till for cashierID.
func (r *Registry) Open(cashierID string) *Till {
	id := uuid.New().String()
	obs := r.opts.Observer
	t := newTill(id, cashierID, r.opts.Now(), checkout.Options{
		ProcessingDelay: r.opts.ProcessingDelay,
		SuccessDelay:    r.opts.SuccessDelay,
		Scheduler:       r.opts.Scheduler,
		Authorizer:      r.opts.Authorizer,
		Formatter:       r.opts.Formatter,
		Hooks: checkout.Hooks{
			OnSettled: obs.SettlementSucceeded,
			OnFailed:  obs.SettlementFailed,
		},
	})

	r.mu.Lock()
	r.tills[id] = t
	n := len(r.tills)
	r.mu.Unlock()

	obs.TillsOpen(n)
	slog.Info("Till opened", "till_id", id, "cashier_id", cashierID)
	return t
}

// Get returns an open till and marks it active.
func (r *Registry) Get(id string) (*Till, error) {
	t, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	t.touch(r.opts.Now())
	return t, nil
}

// Close removes a till. A till with a settlement in flight cannot be closed;
// any open review is cancelled.
func (r *Registry) Close(id string) error {
	t, err := r.lookup(id)
	if err != nil {
		return err
	}
	if err := r.close(t); err != nil {
		return err
	}
	slog.Info("Till closed", "till_id", id)
	return nil
}

// Sweep closes tills idle for at least IdleTimeout as of now and returns how
// many it closed. Tills with a settlement in flight are left for a later
// sweep.
func (r *Registry) Sweep(now time.Time) int {
	if r.opts.IdleTimeout <= 0 {
		return 0
	}

	r.mu.RLock()
	var idle []*Till
	for _, t := range r.tills {
		if now.Sub(t.LastActive()) >= r.opts.IdleTimeout {
			idle = append(idle, t)
		}
	}
	r.mu.RUnlock()

	closed := 0
	for _, t := range idle {
		// A lookup may have revived it since the scan.
		if now.Sub(t.LastActive()) < r.opts.IdleTimeout {
			continue
		}
		if err := r.close(t); err != nil {
			if !errors.Is(err, checkout.ErrSettlementInFlight) && !errors.Is(err, ErrTillNotFound) {
				slog.Warn("Failed to close idle till", "till_id", t.ID, "error", err)
			}
			continue
		}
		closed++
		slog.Info("Idle till closed", "till_id", t.ID, "cashier_id", t.CashierID, "idle", now.Sub(t.LastActive()))
	}
	return closed
}

// Run sweeps idle tills every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(r.opts.Now())
		}
	}
}

// Len returns the number of open tills.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tills)
}

func (r *Registry) lookup(id string) (*Till, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tills[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTillNotFound, id)
	}
	return t, nil
}

// close holds t.mu from the lock check to the removal so no Submit can start
// in between.
func (r *Registry) close(t *Till) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("%w: %s", ErrTillNotFound, t.ID)
	}
	if t.checkout.Locked() {
		return checkout.ErrSettlementInFlight
	}
	if err := t.checkout.Cancel(); err != nil {
		return fmt.Errorf("failed to cancel checkout: %w", err)
	}
	t.closed = true

	r.mu.Lock()
	delete(r.tills, t.ID)
	n := len(r.tills)
	r.mu.Unlock()

	r.opts.Observer.TillsOpen(n)
	return nil
}
