package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/kasir/internal/auth"
	"github.com/mmynk/kasir/internal/metrics"
	"github.com/mmynk/kasir/internal/models"
)

type ping struct{}

// capture records the context the inner handler ran with.
func capture(got *context.Context) connect.UnaryFunc {
	return func(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
		*got = ctx
		return connect.NewResponse(&ping{}), nil
	}
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	cashier := models.NewCashier("sari@warung.id", "Sari", "hash")
	token, err := jwtManager.Generate(cashier)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name   string
		header string
		ok     bool
	}{
		{name: "valid", header: "Bearer " + token, ok: true},
		{name: "missing", header: ""},
		{name: "wrong scheme", header: "Basic " + token},
		{name: "no token", header: "Bearer "},
		{name: "garbage", header: "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inner context.Context
			handler := RequireAuth(jwtManager)(capture(&inner))

			req := connect.NewRequest(&ping{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}
			_, err := handler(context.Background(), req)

			if !tt.ok {
				if connect.CodeOf(err) != connect.CodeUnauthenticated {
					t.Errorf("expected unauthenticated, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if GetCashierID(inner) != cashier.ID || GetEmail(inner) != cashier.Email {
				t.Errorf("cashier not in context: %q %q", GetCashierID(inner), GetEmail(inner))
			}
		})
	}
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New()
	failing := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("no such till"))
	}

	var inner context.Context
	MetricsInterceptor(m)(capture(&inner))(context.Background(), connect.NewRequest(&ping{}))
	MetricsInterceptor(m)(failing)(context.Background(), connect.NewRequest(&ping{}))

	if got := testutil.ToFloat64(m.Requests.WithLabelValues("", "ok")); got != 1 {
		t.Errorf("ok calls: expected 1, got %v", got)
	}
	if got := testutil.ToFloat64(m.Requests.WithLabelValues("", "not_found")); got != 1 {
		t.Errorf("not_found calls: expected 1, got %v", got)
	}
}

func TestRPCErrorLevel(t *testing.T) {
	tests := []struct {
		code connect.Code
		want slog.Level
	}{
		{connect.CodeInternal, slog.LevelError},
		{connect.CodeUnavailable, slog.LevelError},
		{connect.CodeNotFound, slog.LevelWarn},
		{connect.CodeFailedPrecondition, slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := rpcErrorLevel(tt.code); got != tt.want {
				t.Errorf("rpcErrorLevel(%v) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/kasir.v1.TillService/OpenTill", nil))
	if called || rec.Code != http.StatusOK {
		t.Errorf("preflight should stop at CORS: called=%v status=%d", called, rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/kasir.v1.TillService/OpenTill", nil))
	if !called || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("POST should pass through with CORS headers: called=%v", called)
	}
}
