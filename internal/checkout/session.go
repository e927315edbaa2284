package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/kasir/internal/calculator"
	"github.com/mmynk/kasir/internal/money"
)

// Default delays.
const (
	DefaultProcessingDelay = 2 * time.Second
	DefaultSuccessDelay    = 2 * time.Second
)

// SubtotalSource supplies the current cart subtotal.
type SubtotalSource interface {
	Subtotal() money.Amount
}

// Options configure a Session. Zero values fall back to defaults.
type Options struct {
	ProcessingDelay time.Duration
	SuccessDelay    time.Duration
	Scheduler       Scheduler
	Authorizer      Authorizer
	// Formatter renders quick-tender text. Without one, presets write plain digits.
	Formatter *money.Formatter
	Hooks     Hooks
}

// Session is the checkout state machine of one till.
// It is safe for concurrent use.
type Session struct {
	source SubtotalSource
	opts   Options

	mu        sync.Mutex
	state     State
	id        string
	method    Method
	rawTender string
	pending   *Settlement
	failure   error
	key       string
	timer     Timer
	epoch     uint64
}

// NewSession creates an idle session reading totals from source.
func NewSession(source SubtotalSource, opts Options) *Session {
	if opts.ProcessingDelay <= 0 {
		opts.ProcessingDelay = DefaultProcessingDelay
	}
	if opts.SuccessDelay <= 0 {
		opts.SuccessDelay = DefaultSuccessDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = SystemScheduler{}
	}
	if opts.Authorizer == nil {
		opts.Authorizer = ApproveAll
	}
	return &Session{
		source: source,
		opts:   opts,
		state:  StateIdle,
		method: MethodCash,
	}
}

// State returns the current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Locked reports whether a settlement is in flight or being confirmed. The
// cart must not change while locked.
func (s *Session) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lockedLocked()
}

// Open starts reviewing with cash selected and no tender. Opening an already
// reviewing session is a no-op.
func (s *Session) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateReviewing:
		return nil
	case StateIdle:
	default:
		return s.transitionErrLocked("open")
	}

	s.state = StateReviewing
	s.id = uuid.New().String()
	s.method = MethodCash
	s.rawTender = ""
	s.epoch++
	slog.Debug("Checkout opened", "session_id", s.id)
	return nil
}

// SelectMethod switches between cash and card while reviewing. The tender
// text is kept.
func (s *Session) SelectMethod(m Method) error {
	if m != MethodCash && m != MethodCard {
		return fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReviewing {
		return s.transitionErrLocked("select method")
	}
	s.method = m
	return nil
}

// SetTender replaces the raw tender text. It is parsed on every read.
func (s *Session) SetTender(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReviewing {
		return s.transitionErrLocked("set tender")
	}
	s.rawTender = raw
	return nil
}

// QuickTender writes a preset into the tender text, exactly as if it had been
// typed.
func (s *Session) QuickTender(preset TenderPreset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReviewing {
		return s.transitionErrLocked("quick tender")
	}

	var amount money.Amount
	switch preset {
	case TenderExact:
		amount = calculator.Compute(s.source.Subtotal()).GrandTotal
	default:
		a, ok := presetAmounts[preset]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
		}
		amount = a
	}
	s.rawTender = s.formatTender(amount)
	return nil
}

// Submit commits the payment. It is rejected without side effects unless the
// session is reviewing and the tender covers the grand total (card always
// qualifies).
//
// A repeated Submit carrying the same non-empty key as the settlement in
// flight is acknowledged without starting another one.
func (s *Session) Submit(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lockedLocked() {
		if key != "" && key == s.key {
			return nil
		}
		return ErrSettlementInFlight
	}
	if s.state != StateReviewing {
		return s.transitionErrLocked("submit")
	}

	v := s.viewLocked()
	if v.OutOfRange {
		return fmt.Errorf("%w: subtotal %d", ErrAmountOutOfRange, v.Subtotal)
	}
	if !v.CanSubmit {
		return fmt.Errorf("%w: tendered %d, due %d", ErrInsufficientTender, v.Tendered, v.GrandTotal)
	}

	s.pending = &Settlement{
		SessionID:  s.id,
		Method:     v.Method,
		Subtotal:   v.Subtotal,
		Tax:        v.Tax,
		GrandTotal: v.GrandTotal,
		Tendered:   v.Tendered,
		Change:     v.Change,
	}
	s.state = StateProcessing
	s.key = key
	s.failure = nil
	s.epoch++
	epoch := s.epoch
	authCtx := context.WithoutCancel(ctx)
	s.timer = s.opts.Scheduler.AfterFunc(s.opts.ProcessingDelay, func() {
		s.processingElapsed(authCtx, epoch)
	})

	slog.Info("Settlement submitted",
		"session_id", s.id,
		"method", v.Method,
		"grand_total", v.GrandTotal,
	)
	return nil
}

// Cancel closes the checkout. Reviewing and failed sessions return to idle
// and discard the tender. A succeeded session is dismissed early, which runs
// the completion hook immediately. Processing cannot be cancelled.
func (s *Session) Cancel() error {
	s.mu.Lock()
	switch s.state {
	case StateIdle:
		s.mu.Unlock()
		return nil
	case StateProcessing:
		s.mu.Unlock()
		return ErrSettlementInFlight
	case StateSucceeded:
		settled := *s.pending
		s.resetLocked()
		s.mu.Unlock()
		slog.Info("Settlement confirmation dismissed", "session_id", settled.SessionID)
		s.complete(settled)
		return nil
	default:
		id := s.id
		s.resetLocked()
		s.mu.Unlock()
		slog.Debug("Checkout cancelled", "session_id", id)
		return nil
	}
}

// Retry returns a failed session to reviewing with its method and tender kept.
func (s *Session) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateFailed {
		return s.transitionErrLocked("retry")
	}
	s.state = StateReviewing
	s.pending = nil
	s.failure = nil
	s.key = ""
	s.epoch++
	return nil
}

// View returns the session as it should be displayed.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) processingElapsed(ctx context.Context, epoch uint64) {
	s.mu.Lock()
	if s.epoch != epoch || s.state != StateProcessing {
		s.mu.Unlock()
		return
	}
	settlement := *s.pending
	s.mu.Unlock()

	// Other operations are rejected while processing, so the lock can be
	// released during authorization.
	err := s.opts.Authorizer.Authorize(ctx, settlement)

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.state = StateFailed
		s.failure = err
		s.epoch++
		s.timer = nil
		s.mu.Unlock()

		slog.Warn("Settlement failed", "session_id", settlement.SessionID, "error", err)
		if s.opts.Hooks.OnFailed != nil {
			s.opts.Hooks.OnFailed(settlement, err)
		}
		return
	}

	settlement.SettledAt = time.Now()
	s.pending = &settlement
	s.state = StateSucceeded
	s.epoch++
	next := s.epoch
	s.timer = s.opts.Scheduler.AfterFunc(s.opts.SuccessDelay, func() {
		s.successElapsed(next)
	})
	s.mu.Unlock()

	slog.Info("Settlement succeeded",
		"session_id", settlement.SessionID,
		"method", settlement.Method,
		"grand_total", settlement.GrandTotal,
		"change", settlement.Change,
	)
	if s.opts.Hooks.OnSettled != nil {
		s.opts.Hooks.OnSettled(settlement)
	}
}

func (s *Session) successElapsed(epoch uint64) {
	s.mu.Lock()
	if s.epoch != epoch || s.state != StateSucceeded {
		s.mu.Unlock()
		return
	}
	settled := *s.pending
	s.resetLocked()
	s.mu.Unlock()

	s.complete(settled)
}

func (s *Session) complete(settled Settlement) {
	slog.Debug("Checkout completed", "session_id", settled.SessionID)
	if s.opts.Hooks.OnComplete != nil {
		s.opts.Hooks.OnComplete(settled)
	}
}

func (s *Session) viewLocked() View {
	v := View{
		SessionID:  s.id,
		State:      s.state,
		Method:     s.method,
		RawTender:  s.rawTender,
		Processing: s.state == StateProcessing,
		Settled:    s.state == StateSucceeded,
	}
	if s.failure != nil {
		v.Failure = s.failure.Error()
	}

	if s.lockedLocked() {
		p := *s.pending
		v.Method = p.Method
		v.Subtotal, v.Tax, v.GrandTotal = p.Subtotal, p.Tax, p.GrandTotal
		v.Tendered, v.Change = p.Tendered, p.Change
		if s.state == StateSucceeded {
			v.Receipt = &p
		}
		return v
	}

	b := calculator.Compute(s.source.Subtotal())
	v.Subtotal, v.Tax, v.GrandTotal = b.Subtotal, b.Tax, b.GrandTotal
	v.OutOfRange = b.OutOfRange
	switch s.method {
	case MethodCash:
		v.Tendered = money.ParseTender(s.rawTender)
		v.Change = calculator.Change(v.Tendered, v.GrandTotal)
		v.Shortfall = !calculator.Covers(v.Tendered, v.GrandTotal)
		v.CanSubmit = s.state == StateReviewing && !v.Shortfall && !v.OutOfRange
	case MethodCard:
		v.CanSubmit = s.state == StateReviewing && !v.OutOfRange
	}
	return v
}

func (s *Session) lockedLocked() bool {
	return s.state == StateProcessing || s.state == StateSucceeded
}

func (s *Session) resetLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = StateIdle
	s.id = ""
	s.method = MethodCash
	s.rawTender = ""
	s.pending = nil
	s.failure = nil
	s.key = ""
	s.epoch++
}

func (s *Session) transitionErrLocked(op string) error {
	if s.lockedLocked() {
		return ErrSettlementInFlight
	}
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, op, s.state)
}

func (s *Session) formatTender(a money.Amount) string {
	if s.opts.Formatter == nil {
		return strconv.FormatInt(a.Int64(), 10)
	}
	return s.opts.Formatter.Format(a)
}
