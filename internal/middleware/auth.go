package middleware

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kasir/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// CashierIDKey is the context key for the authenticated cashier ID.
	CashierIDKey contextKey = "cashier_id"
	// EmailKey is the context key for the authenticated cashier's email.
	EmailKey contextKey = "email"
)

// GetCashierID returns the authenticated cashier, or "" before auth.
func GetCashierID(ctx context.Context) string {
	id, _ := ctx.Value(CashierIDKey).(string)
	return id
}

// GetEmail returns the authenticated cashier's email, or "" before auth.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// WithCashier stores a cashier identity in ctx.
func WithCashier(ctx context.Context, cashierID, email string) context.Context {
	ctx = context.WithValue(ctx, CashierIDKey, cashierID)
	return context.WithValue(ctx, EmailKey, email)
}

// RequireAuth rejects calls without a valid "Bearer" token and adds the
// cashier to the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				slog.Warn("Missing token", "procedure", req.Spec().Procedure)
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || scheme != "Bearer" || token == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(token)
			if err != nil {
				slog.Warn("Token rejected", "procedure", req.Spec().Procedure, "error", err)
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithCashier(ctx, claims.CashierID, claims.Email), req)
		}
	}
}
