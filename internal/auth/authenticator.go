// Package auth authenticates cashiers and issues session tokens.
package auth

import (
	"context"

	"github.com/mmynk/kasir/internal/models"
)

// Authenticator verifies cashier credentials. Password is the only
// implementation; a PIN or badge reader would satisfy the same interface.
type Authenticator interface {
	// Register creates a cashier account. The credential format depends on
	// the implementation.
	Register(ctx context.Context, email, displayName, credential string) (*models.Cashier, error)

	// Authenticate returns the cashier if the credential matches.
	Authenticate(ctx context.Context, email, credential string) (*models.Cashier, error)

	// ValidateCredential checks the credential against the implementation's
	// requirements before anything is stored.
	ValidateCredential(credential string) error
}
