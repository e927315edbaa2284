package main

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-chi/chi"
	chimw "github.com/go-chi/chi/middleware"

	"github.com/mmynk/kasir/internal/auth"
	"github.com/mmynk/kasir/internal/metrics"
	"github.com/mmynk/kasir/internal/middleware"
	"github.com/mmynk/kasir/internal/money"
	"github.com/mmynk/kasir/internal/service"
	"github.com/mmynk/kasir/internal/storage"
	"github.com/mmynk/kasir/internal/till"
	"github.com/mmynk/kasir/pkg/api/apiconnect"
)

// deps are the long-lived components the router serves.
type deps struct {
	store         storage.Store
	registry      *till.Registry
	authenticator auth.Authenticator
	jwt           *auth.JWTManager
	metrics       *metrics.Metrics
	formatter     *money.Formatter
	logger        *slog.Logger
}

// newRouter mounts the Connect services behind the HTTP middleware stack.
// AuthService is public; every other service requires a cashier token.
func newRouter(d deps) http.Handler {
	public := connect.WithInterceptors(
		middleware.MetricsInterceptor(d.metrics),
		middleware.LoggingInterceptor(),
	)
	protected := connect.WithInterceptors(
		middleware.MetricsInterceptor(d.metrics),
		middleware.RequireAuth(d.jwt),
		middleware.LoggingInterceptor(),
	)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", d.metrics.Handler())

	mount := func(path string, h http.Handler) {
		r.Handle(path+"*", h)
		slog.Debug("Service mounted", "path", path)
	}
	mount(apiconnect.NewAuthServiceHandler(service.NewAuthService(d.authenticator, d.jwt, d.logger), public))
	mount(apiconnect.NewCatalogServiceHandler(service.NewCatalogService(d.store, d.formatter), protected))
	mount(apiconnect.NewTillServiceHandler(service.NewTillService(d.registry, d.store, d.formatter), protected))

	return r
}
