package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor writes one record per RPC. Install it inside RequireAuth
// so the cashier is known.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"cashier_id", GetCashierID(ctx),
				"peer", req.Peer().Addr,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			level := slog.LevelDebug
			msg := "RPC ok"
			if err != nil {
				code := connect.CodeOf(err)
				msg = "RPC error"
				level = rpcErrorLevel(code)
				attrs = append(attrs, "code", code.String(), "error", err)
			}
			slog.Log(ctx, level, msg, attrs...)
			return resp, err
		}
	}
}

// rpcErrorLevel keeps client mistakes out of the error log.
func rpcErrorLevel(code connect.Code) slog.Level {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
