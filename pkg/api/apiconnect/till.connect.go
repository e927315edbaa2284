package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kasir/pkg/api"
)

// TillServiceName is the fully-qualified name of the TillService service.
const TillServiceName = "kasir.v1.TillService"

const (
	TillServiceOpenTillProcedure            = "/kasir.v1.TillService/OpenTill"
	TillServiceGetTillProcedure             = "/kasir.v1.TillService/GetTill"
	TillServiceCloseTillProcedure           = "/kasir.v1.TillService/CloseTill"
	TillServiceAddItemProcedure             = "/kasir.v1.TillService/AddItem"
	TillServiceUpdateQuantityProcedure      = "/kasir.v1.TillService/UpdateQuantity"
	TillServiceRemoveItemProcedure          = "/kasir.v1.TillService/RemoveItem"
	TillServiceClearCartProcedure           = "/kasir.v1.TillService/ClearCart"
	TillServiceOpenCheckoutProcedure        = "/kasir.v1.TillService/OpenCheckout"
	TillServiceSelectPaymentMethodProcedure = "/kasir.v1.TillService/SelectPaymentMethod"
	TillServiceSetTenderProcedure           = "/kasir.v1.TillService/SetTender"
	TillServiceQuickTenderProcedure         = "/kasir.v1.TillService/QuickTender"
	TillServiceSubmitPaymentProcedure       = "/kasir.v1.TillService/SubmitPayment"
	TillServiceCancelCheckoutProcedure      = "/kasir.v1.TillService/CancelCheckout"
	TillServiceRetryPaymentProcedure        = "/kasir.v1.TillService/RetryPayment"
)

// TillServiceClient is a client for the kasir.v1.TillService service.
type TillServiceClient interface {
	OpenTill(context.Context, *connect.Request[api.OpenTillRequest]) (*connect.Response[api.TillResponse], error)
	GetTill(context.Context, *connect.Request[api.GetTillRequest]) (*connect.Response[api.TillResponse], error)
	CloseTill(context.Context, *connect.Request[api.CloseTillRequest]) (*connect.Response[api.CloseTillResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.TillResponse], error)
	UpdateQuantity(context.Context, *connect.Request[api.UpdateQuantityRequest]) (*connect.Response[api.TillResponse], error)
	RemoveItem(context.Context, *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.TillResponse], error)
	ClearCart(context.Context, *connect.Request[api.ClearCartRequest]) (*connect.Response[api.TillResponse], error)
	OpenCheckout(context.Context, *connect.Request[api.OpenCheckoutRequest]) (*connect.Response[api.TillResponse], error)
	SelectPaymentMethod(context.Context, *connect.Request[api.SelectPaymentMethodRequest]) (*connect.Response[api.TillResponse], error)
	SetTender(context.Context, *connect.Request[api.SetTenderRequest]) (*connect.Response[api.TillResponse], error)
	QuickTender(context.Context, *connect.Request[api.QuickTenderRequest]) (*connect.Response[api.TillResponse], error)
	SubmitPayment(context.Context, *connect.Request[api.SubmitPaymentRequest]) (*connect.Response[api.TillResponse], error)
	CancelCheckout(context.Context, *connect.Request[api.CancelCheckoutRequest]) (*connect.Response[api.TillResponse], error)
	RetryPayment(context.Context, *connect.Request[api.RetryPaymentRequest]) (*connect.Response[api.TillResponse], error)
}

// NewTillServiceClient constructs a client for the kasir.v1.TillService service.
func NewTillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TillServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opt := clientOptions(opts)
	return &tillServiceClient{
		openTill:            connect.NewClient[api.OpenTillRequest, api.TillResponse](httpClient, baseURL+TillServiceOpenTillProcedure, opt),
		getTill:             connect.NewClient[api.GetTillRequest, api.TillResponse](httpClient, baseURL+TillServiceGetTillProcedure, opt),
		closeTill:           connect.NewClient[api.CloseTillRequest, api.CloseTillResponse](httpClient, baseURL+TillServiceCloseTillProcedure, opt),
		addItem:             connect.NewClient[api.AddItemRequest, api.TillResponse](httpClient, baseURL+TillServiceAddItemProcedure, opt),
		updateQuantity:      connect.NewClient[api.UpdateQuantityRequest, api.TillResponse](httpClient, baseURL+TillServiceUpdateQuantityProcedure, opt),
		removeItem:          connect.NewClient[api.RemoveItemRequest, api.TillResponse](httpClient, baseURL+TillServiceRemoveItemProcedure, opt),
		clearCart:           connect.NewClient[api.ClearCartRequest, api.TillResponse](httpClient, baseURL+TillServiceClearCartProcedure, opt),
		openCheckout:        connect.NewClient[api.OpenCheckoutRequest, api.TillResponse](httpClient, baseURL+TillServiceOpenCheckoutProcedure, opt),
		selectPaymentMethod: connect.NewClient[api.SelectPaymentMethodRequest, api.TillResponse](httpClient, baseURL+TillServiceSelectPaymentMethodProcedure, opt),
		setTender:           connect.NewClient[api.SetTenderRequest, api.TillResponse](httpClient, baseURL+TillServiceSetTenderProcedure, opt),
		quickTender:         connect.NewClient[api.QuickTenderRequest, api.TillResponse](httpClient, baseURL+TillServiceQuickTenderProcedure, opt),
		submitPayment:       connect.NewClient[api.SubmitPaymentRequest, api.TillResponse](httpClient, baseURL+TillServiceSubmitPaymentProcedure, opt),
		cancelCheckout:      connect.NewClient[api.CancelCheckoutRequest, api.TillResponse](httpClient, baseURL+TillServiceCancelCheckoutProcedure, opt),
		retryPayment:        connect.NewClient[api.RetryPaymentRequest, api.TillResponse](httpClient, baseURL+TillServiceRetryPaymentProcedure, opt),
	}
}

type tillServiceClient struct {
	openTill            *connect.Client[api.OpenTillRequest, api.TillResponse]
	getTill             *connect.Client[api.GetTillRequest, api.TillResponse]
	closeTill           *connect.Client[api.CloseTillRequest, api.CloseTillResponse]
	addItem             *connect.Client[api.AddItemRequest, api.TillResponse]
	updateQuantity      *connect.Client[api.UpdateQuantityRequest, api.TillResponse]
	removeItem          *connect.Client[api.RemoveItemRequest, api.TillResponse]
	clearCart           *connect.Client[api.ClearCartRequest, api.TillResponse]
	openCheckout        *connect.Client[api.OpenCheckoutRequest, api.TillResponse]
	selectPaymentMethod *connect.Client[api.SelectPaymentMethodRequest, api.TillResponse]
	setTender           *connect.Client[api.SetTenderRequest, api.TillResponse]
	quickTender         *connect.Client[api.QuickTenderRequest, api.TillResponse]
	submitPayment       *connect.Client[api.SubmitPaymentRequest, api.TillResponse]
	cancelCheckout      *connect.Client[api.CancelCheckoutRequest, api.TillResponse]
	retryPayment        *connect.Client[api.RetryPaymentRequest, api.TillResponse]
}

func (c *tillServiceClient) OpenTill(ctx context.Context, req *connect.Request[api.OpenTillRequest]) (*connect.Response[api.TillResponse], error) {
	return c.openTill.CallUnary(ctx, req)
}

func (c *tillServiceClient) GetTill(ctx context.Context, req *connect.Request[api.GetTillRequest]) (*connect.Response[api.TillResponse], error) {
	return c.getTill.CallUnary(ctx, req)
}

func (c *tillServiceClient) CloseTill(ctx context.Context, req *connect.Request[api.CloseTillRequest]) (*connect.Response[api.CloseTillResponse], error) {
	return c.closeTill.CallUnary(ctx, req)
}

func (c *tillServiceClient) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.TillResponse], error) {
	return c.addItem.CallUnary(ctx, req)
}

func (c *tillServiceClient) UpdateQuantity(ctx context.Context, req *connect.Request[api.UpdateQuantityRequest]) (*connect.Response[api.TillResponse], error) {
	return c.updateQuantity.CallUnary(ctx, req)
}

func (c *tillServiceClient) RemoveItem(ctx context.Context, req *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.TillResponse], error) {
	return c.removeItem.CallUnary(ctx, req)
}

func (c *tillServiceClient) ClearCart(ctx context.Context, req *connect.Request[api.ClearCartRequest]) (*connect.Response[api.TillResponse], error) {
	return c.clearCart.CallUnary(ctx, req)
}

func (c *tillServiceClient) OpenCheckout(ctx context.Context, req *connect.Request[api.OpenCheckoutRequest]) (*connect.Response[api.TillResponse], error) {
	return c.openCheckout.CallUnary(ctx, req)
}

func (c *tillServiceClient) SelectPaymentMethod(ctx context.Context, req *connect.Request[api.SelectPaymentMethodRequest]) (*connect.Response[api.TillResponse], error) {
	return c.selectPaymentMethod.CallUnary(ctx, req)
}

func (c *tillServiceClient) SetTender(ctx context.Context, req *connect.Request[api.SetTenderRequest]) (*connect.Response[api.TillResponse], error) {
	return c.setTender.CallUnary(ctx, req)
}

func (c *tillServiceClient) QuickTender(ctx context.Context, req *connect.Request[api.QuickTenderRequest]) (*connect.Response[api.TillResponse], error) {
	return c.quickTender.CallUnary(ctx, req)
}

func (c *tillServiceClient) SubmitPayment(ctx context.Context, req *connect.Request[api.SubmitPaymentRequest]) (*connect.Response[api.TillResponse], error) {
	return c.submitPayment.CallUnary(ctx, req)
}

func (c *tillServiceClient) CancelCheckout(ctx context.Context, req *connect.Request[api.CancelCheckoutRequest]) (*connect.Response[api.TillResponse], error) {
	return c.cancelCheckout.CallUnary(ctx, req)
}

func (c *tillServiceClient) RetryPayment(ctx context.Context, req *connect.Request[api.RetryPaymentRequest]) (*connect.Response[api.TillResponse], error) {
	return c.retryPayment.CallUnary(ctx, req)
}

// TillServiceHandler is implemented by the kasir.v1.TillService server.
type TillServiceHandler interface {
	OpenTill(context.Context, *connect.Request[api.OpenTillRequest]) (*connect.Response[api.TillResponse], error)
	GetTill(context.Context, *connect.Request[api.GetTillRequest]) (*connect.Response[api.TillResponse], error)
	CloseTill(context.Context, *connect.Request[api.CloseTillRequest]) (*connect.Response[api.CloseTillResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.TillResponse], error)
	UpdateQuantity(context.Context, *connect.Request[api.UpdateQuantityRequest]) (*connect.Response[api.TillResponse], error)
	RemoveItem(context.Context, *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.TillResponse], error)
	ClearCart(context.Context, *connect.Request[api.ClearCartRequest]) (*connect.Response[api.TillResponse], error)
	OpenCheckout(context.Context, *connect.Request[api.OpenCheckoutRequest]) (*connect.Response[api.TillResponse], error)
	SelectPaymentMethod(context.Context, *connect.Request[api.SelectPaymentMethodRequest]) (*connect.Response[api.TillResponse], error)
	SetTender(context.Context, *connect.Request[api.SetTenderRequest]) (*connect.Response[api.TillResponse], error)
	QuickTender(context.Context, *connect.Request[api.QuickTenderRequest]) (*connect.Response[api.TillResponse], error)
	SubmitPayment(context.Context, *connect.Request[api.SubmitPaymentRequest]) (*connect.Response[api.TillResponse], error)
	CancelCheckout(context.Context, *connect.Request[api.CancelCheckoutRequest]) (*connect.Response[api.TillResponse], error)
	RetryPayment(context.Context, *connect.Request[api.RetryPaymentRequest]) (*connect.Response[api.TillResponse], error)
}

// NewTillServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTillServiceHandler(svc TillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	openTillHandler := connect.NewUnaryHandler(TillServiceOpenTillProcedure, svc.OpenTill, opt)
	getTillHandler := connect.NewUnaryHandler(TillServiceGetTillProcedure, svc.GetTill, opt)
	closeTillHandler := connect.NewUnaryHandler(TillServiceCloseTillProcedure, svc.CloseTill, opt)
	addItemHandler := connect.NewUnaryHandler(TillServiceAddItemProcedure, svc.AddItem, opt)
	updateQuantityHandler := connect.NewUnaryHandler(TillServiceUpdateQuantityProcedure, svc.UpdateQuantity, opt)
	removeItemHandler := connect.NewUnaryHandler(TillServiceRemoveItemProcedure, svc.RemoveItem, opt)
	clearCartHandler := connect.NewUnaryHandler(TillServiceClearCartProcedure, svc.ClearCart, opt)
	openCheckoutHandler := connect.NewUnaryHandler(TillServiceOpenCheckoutProcedure, svc.OpenCheckout, opt)
	selectPaymentMethodHandler := connect.NewUnaryHandler(TillServiceSelectPaymentMethodProcedure, svc.SelectPaymentMethod, opt)
	setTenderHandler := connect.NewUnaryHandler(TillServiceSetTenderProcedure, svc.SetTender, opt)
	quickTenderHandler := connect.NewUnaryHandler(TillServiceQuickTenderProcedure, svc.QuickTender, opt)
	submitPaymentHandler := connect.NewUnaryHandler(TillServiceSubmitPaymentProcedure, svc.SubmitPayment, opt)
	cancelCheckoutHandler := connect.NewUnaryHandler(TillServiceCancelCheckoutProcedure, svc.CancelCheckout, opt)
	retryPaymentHandler := connect.NewUnaryHandler(TillServiceRetryPaymentProcedure, svc.RetryPayment, opt)
	return "/" + TillServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TillServiceOpenTillProcedure:
			openTillHandler.ServeHTTP(w, r)
		case TillServiceGetTillProcedure:
			getTillHandler.ServeHTTP(w, r)
		case TillServiceCloseTillProcedure:
			closeTillHandler.ServeHTTP(w, r)
		case TillServiceAddItemProcedure:
			addItemHandler.ServeHTTP(w, r)
		case TillServiceUpdateQuantityProcedure:
			updateQuantityHandler.ServeHTTP(w, r)
		case TillServiceRemoveItemProcedure:
			removeItemHandler.ServeHTTP(w, r)
		case TillServiceClearCartProcedure:
			clearCartHandler.ServeHTTP(w, r)
		case TillServiceOpenCheckoutProcedure:
			openCheckoutHandler.ServeHTTP(w, r)
		case TillServiceSelectPaymentMethodProcedure:
			selectPaymentMethodHandler.ServeHTTP(w, r)
		case TillServiceSetTenderProcedure:
			setTenderHandler.ServeHTTP(w, r)
		case TillServiceQuickTenderProcedure:
			quickTenderHandler.ServeHTTP(w, r)
		case TillServiceSubmitPaymentProcedure:
			submitPaymentHandler.ServeHTTP(w, r)
		case TillServiceCancelCheckoutProcedure:
			cancelCheckoutHandler.ServeHTTP(w, r)
		case TillServiceRetryPaymentProcedure:
			retryPaymentHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTillServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTillServiceHandler struct{}

func (UnimplementedTillServiceHandler) OpenTill(context.Context, *connect.Request[api.OpenTillRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.OpenTill is not implemented"))
}

func (UnimplementedTillServiceHandler) GetTill(context.Context, *connect.Request[api.GetTillRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.GetTill is not implemented"))
}

func (UnimplementedTillServiceHandler) CloseTill(context.Context, *connect.Request[api.CloseTillRequest]) (*connect.Response[api.CloseTillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.CloseTill is not implemented"))
}

func (UnimplementedTillServiceHandler) AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.AddItem is not implemented"))
}

func (UnimplementedTillServiceHandler) UpdateQuantity(context.Context, *connect.Request[api.UpdateQuantityRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.UpdateQuantity is not implemented"))
}

func (UnimplementedTillServiceHandler) RemoveItem(context.Context, *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.RemoveItem is not implemented"))
}

func (UnimplementedTillServiceHandler) ClearCart(context.Context, *connect.Request[api.ClearCartRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.ClearCart is not implemented"))
}

func (UnimplementedTillServiceHandler) OpenCheckout(context.Context, *connect.Request[api.OpenCheckoutRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.OpenCheckout is not implemented"))
}

func (UnimplementedTillServiceHandler) SelectPaymentMethod(context.Context, *connect.Request[api.SelectPaymentMethodRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.SelectPaymentMethod is not implemented"))
}

func (UnimplementedTillServiceHandler) SetTender(context.Context, *connect.Request[api.SetTenderRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.SetTender is not implemented"))
}

func (UnimplementedTillServiceHandler) QuickTender(context.Context, *connect.Request[api.QuickTenderRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.QuickTender is not implemented"))
}

func (UnimplementedTillServiceHandler) SubmitPayment(context.Context, *connect.Request[api.SubmitPaymentRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.SubmitPayment is not implemented"))
}

func (UnimplementedTillServiceHandler) CancelCheckout(context.Context, *connect.Request[api.CancelCheckoutRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.CancelCheckout is not implemented"))
}

func (UnimplementedTillServiceHandler) RetryPayment(context.Context, *connect.Request[api.RetryPaymentRequest]) (*connect.Response[api.TillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.TillService.RetryPayment is not implemented"))
}
