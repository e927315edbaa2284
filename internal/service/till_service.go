package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/kasir/internal/catalog"
	"github.com/mmynk/kasir/internal/checkout"
	"github.com/mmynk/kasir/internal/middleware"
	"github.com/mmynk/kasir/internal/money"
	"github.com/mmynk/kasir/internal/storage"
	"github.com/mmynk/kasir/internal/till"
	"github.com/mmynk/kasir/pkg/api"
	"github.com/mmynk/kasir/pkg/api/apiconnect"
)

var _ apiconnect.TillServiceHandler = (*TillService)(nil)

// TillService implements the Connect TillService. Every call that leaves the
// till open answers with the full till view.
type TillService struct {
	tills   *till.Registry
	store   storage.CatalogStore
	present presenter
}

// NewTillService creates a TillService. Products are resolved from store.
func NewTillService(tills *till.Registry, store storage.CatalogStore, formatter *money.Formatter) *TillService {
	return &TillService{
		tills:   tills,
		store:   store,
		present: presenter{formatter: formatter},
	}
}

// OpenTill starts a till for the calling cashier.
func (s *TillService) OpenTill(ctx context.Context, req *connect.Request[api.OpenTillRequest]) (*connect.Response[api.TillResponse], error) {
	t := s.tills.Open(middleware.GetCashierID(ctx))
	return s.respond(t), nil
}

func (s *TillService) GetTill(ctx context.Context, req *connect.Request[api.GetTillRequest]) (*connect.Response[api.TillResponse], error) {
	t, err := s.lookup(ctx, req.Msg.TillID)
	if err != nil {
		return nil, err
	}
	return s.respond(t), nil
}

// CloseTill discards a till and its cart.
func (s *TillService) CloseTill(ctx context.Context, req *connect.Request[api.CloseTillRequest]) (*connect.Response[api.CloseTillResponse], error) {
	if _, err := s.lookup(ctx, req.Msg.TillID); err != nil {
		return nil, err
	}
	if err := s.tills.Close(req.Msg.TillID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.CloseTillResponse{}), nil
}

// AddItem adds one unit of a catalog product. Products with a stock count of
// zero are refused.
func (s *TillService) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.TillResponse], error) {
	t, err := s.lookup(ctx, req.Msg.TillID)
	if err != nil {
		return nil, err
	}

	product, err := s.store.GetProduct(ctx, req.Msg.ProductID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if !product.InStock() {
		return nil, toConnectError(fmt.Errorf("%w: %s", errOutOfStock, product.Name))
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, toConnectError(fmt.Errorf("%w: %v", catalog.ErrUnavailable, err))
	}

	item, err := t.AddItem(*product, catalog.Label(categories, *product))
	if err != nil {
		return nil, toConnectError(err)
	}
	slog.Debug("Item added", "till_id", t.ID, "product_id", item.ID, "quantity", item.Quantity)
	return s.respond(t), nil
}

// UpdateQuantity adjusts a line by delta; lines reaching zero are removed.
// Unknown products are ignored.
func (s *TillService) UpdateQuantity(ctx context.Context, req *connect.Request[api.UpdateQuantityRequest]) (*connect.Response[api.TillResponse], error) {
	t, err := s.lookup(ctx, req.Msg.TillID)
	if err != nil {
		return nil, err
	}
	if _, err := t.UpdateQuantity(req.Msg.ProductID, req.Msg.Delta); err != nil {
		return nil, toConnectError(err)
	}
	return s.respond(t), nil
}

func (s *TillService) RemoveItem(ctx context.Context, req *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.TillResponse], error) {
	t, err := s.lookup(ctx, req.Msg.TillID)
	if err != nil {
		return nil, err
	}
	if _, err := t.RemoveItem(req.Msg.ProductID); err != nil {
		return nil, toConnectError(err)
	}
	return s.respond(t), nil
}

func (s *TillService) ClearCart(ctx context.Context, req *connect.Request[api.ClearCartRequest]) (*connect.Response[api.TillResponse], error) {
	t, err := s.lookup(ctx, req.Msg.TillID)
	if err != nil {
		return nil, err
	}
	if err := t.ClearCart(); err != nil {
		return nil, toConnectError(err)
	}
	return s.respond(t), nil
}

func (s *TillService) OpenCheckout(ctx context.Context, req *connect.Request[api.OpenCheckoutRequest]) (*connect.Response[api.TillResponse], error) {
	return s.apply(ctx, req.Msg.TillID, (*till.Till).OpenCheckout)
}

func (s *TillService) SelectPaymentMethod(ctx context.Context, req *connect.Request[api.SelectPaymentMethodRequest]) (*connect.Response[api.TillResponse], error) {
	method, err := checkout.ParseMethod(req.Msg.Method)
	if err != nil {
		return nil, toConnectError(err)
	}
	return s.apply(ctx, req.Msg.TillID, func(t *till.Till) error {
		return t.SelectMethod(method)
	})
}

func (s *TillService) SetTender(ctx context.Context, req *connect.Request[api.SetTenderRequest]) (*connect.Response[api.TillResponse], error) {
	return s.apply(ctx, req.Msg.TillID, func(t *till.Till) error {
		return t.SetTender(req.Msg.Tender)
	})
}

func (s *TillService) QuickTender(ctx context.Context, req *connect.Request[api.QuickTenderRequest]) (*connect.Response[api.TillResponse], error) {
	return s.apply(ctx, req.Msg.TillID, func(t *till.Till) error {
		return t.QuickTender(checkout.TenderPreset(req.Msg.Preset))
	})
}

// SubmitPayment commits the checkout. The response shows the processing
// state; clients poll GetTill for the outcome.
func (s *TillService) SubmitPayment(ctx context.Context, req *connect.Request[api.SubmitPaymentRequest]) (*connect.Response[api.TillResponse], error) {
	key := req.Msg.IdempotencyKey
	if key == "" {
		key = req.Header().Get("Idempotency-Key")
	}
	return s.apply(ctx, req.Msg.TillID, func(t *till.Till) error {
		return t.Submit(ctx, key)
	})
}

func (s *TillService) CancelCheckout(ctx context.Context, req *connect.Request[api.CancelCheckoutRequest]) (*connect.Response[api.TillResponse], error) {
	return s.apply(ctx, req.Msg.TillID, (*till.Till).CancelCheckout)
}

func (s *TillService) RetryPayment(ctx context.Context, req *connect.Request[api.RetryPaymentRequest]) (*connect.Response[api.TillResponse], error) {
	return s.apply(ctx, req.Msg.TillID, (*till.Till).RetryPayment)
}

func (s *TillService) apply(ctx context.Context, tillID string, op func(*till.Till) error) (*connect.Response[api.TillResponse], error) {
	t, err := s.lookup(ctx, tillID)
	if err != nil {
		return nil, err
	}
	if err := op(t); err != nil {
		return nil, toConnectError(err)
	}
	return s.respond(t), nil
}

// lookup returns the till only to the cashier who opened it.
func (s *TillService) lookup(ctx context.Context, tillID string) (*till.Till, error) {
	if tillID == "" {
		return nil, toConnectError(errMissingTill)
	}
	t, err := s.tills.Get(tillID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if cashierID := middleware.GetCashierID(ctx); t.CashierID != cashierID {
		slog.Warn("Till access denied", "till_id", tillID, "owner", t.CashierID, "cashier_id", cashierID)
		return nil, toConnectError(fmt.Errorf("%w: %s", errNotTillOwner, tillID))
	}
	return t, nil
}

func (s *TillService) respond(t *till.Till) *connect.Response[api.TillResponse] {
	return connect.NewResponse(&api.TillResponse{Till: s.present.till(t.Snapshot())})
}
