package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/kasir/internal/auth"
	"github.com/mmynk/kasir/internal/catalog"
	"github.com/mmynk/kasir/internal/checkout"
	"github.com/mmynk/kasir/internal/storage"
	"github.com/mmynk/kasir/internal/till"
)

var (
	errOutOfStock    = errors.New("product is out of stock")
	errEmptyName     = errors.New("name is required")
	errNegativePrice = errors.New("price must not be negative")
	errPriceTooHigh  = errors.New("price exceeds the maximum")
	errNegativeStock = errors.New("stock must not be negative")
	errMissingTill   = errors.New("till id is required")
	errNotTillOwner  = errors.New("till belongs to another cashier")
)

// toConnectError maps domain errors to Connect codes. Anything unrecognized
// is internal.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	code := connect.CodeInternal
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, till.ErrTillNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, checkout.ErrInsufficientTender),
		errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, checkout.ErrSettlementInFlight),
		errors.Is(err, checkout.ErrAmountOutOfRange),
		errors.Is(err, till.ErrCartLocked),
		errors.Is(err, errOutOfStock):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, checkout.ErrUnknownMethod),
		errors.Is(err, checkout.ErrUnknownPreset),
		errors.Is(err, storage.ErrInvalidReference),
		errors.Is(err, errEmptyName),
		errors.Is(err, errNegativePrice),
		errors.Is(err, errPriceTooHigh),
		errors.Is(err, errNegativeStock),
		errors.Is(err, errMissingTill):
		code = connect.CodeInvalidArgument
	case errors.Is(err, errNotTillOwner):
		code = connect.CodePermissionDenied
	case errors.Is(err, catalog.ErrUnavailable):
		code = connect.CodeUnavailable
	case errors.Is(err, auth.ErrEmailExists),
		errors.Is(err, storage.ErrConflict):
		code = connect.CodeAlreadyExists
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		code = connect.CodeUnauthenticated
	case errors.Is(err, auth.ErrWeakPassword):
		code = connect.CodeInvalidArgument
	}
	return connect.NewError(code, err)
}
