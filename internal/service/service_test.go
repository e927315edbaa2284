package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/kasir/internal/auth"
	"github.com/mmynk/kasir/internal/checkout"
	"github.com/mmynk/kasir/internal/metrics"
	"github.com/mmynk/kasir/internal/middleware"
	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/money"
	"github.com/mmynk/kasir/internal/storage/sqlite"
	"github.com/mmynk/kasir/internal/till"
	"github.com/mmynk/kasir/pkg/api/apiconnect"
)

// queueScheduler holds callbacks until the test runs them.
type queueScheduler struct {
	mu  sync.Mutex
	fns []func()
}

type queuedTimer struct{}

func (queuedTimer) Stop() bool { return true }

func (q *queueScheduler) AfterFunc(_ time.Duration, f func()) checkout.Timer {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.fns = append(q.fns, f)
	return queuedTimer{}
}

func (q *queueScheduler) runNext(t *testing.T) {
	t.Helper()
	q.mu.Lock()
	if len(q.fns) == 0 {
		q.mu.Unlock()
		t.Fatal("no timer queued")
	}
	f := q.fns[0]
	q.fns = q.fns[1:]
	q.mu.Unlock()
	f()
}

type testEnv struct {
	store   *sqlite.SQLiteStore
	sched   *queueScheduler
	metrics *metrics.Metrics
	jwt     *auth.JWTManager
	server  *httptest.Server

	auth    apiconnect.AuthServiceClient
	catalog apiconnect.CatalogServiceClient
	tills   apiconnect.TillServiceClient
}

type envOptions struct {
	authorizer checkout.Authorizer
}

// setupTestServer wires every service the way cmd/server does, on a temp
// SQLite database, with clients that send a valid cashier token.
func setupTestServer(t *testing.T, opts envOptions) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "kasir.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	formatter, err := money.NewFormatter("id-ID", "Rp")
	if err != nil {
		t.Fatalf("failed to create formatter: %v", err)
	}

	env := &testEnv{
		store:   store,
		sched:   &queueScheduler{},
		metrics: metrics.New(),
		jwt:     auth.NewJWTManager("test-secret", time.Hour),
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	registry := till.NewRegistry(till.Options{
		Scheduler:  env.sched,
		Authorizer: opts.authorizer,
		Formatter:  formatter,
		Observer:   env.metrics,
	})
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	public := connect.WithInterceptors(
		middleware.MetricsInterceptor(env.metrics),
		middleware.LoggingInterceptor(),
	)
	protected := connect.WithInterceptors(
		middleware.MetricsInterceptor(env.metrics),
		middleware.RequireAuth(env.jwt),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(authenticator, env.jwt, logger), public))
	mux.Handle(apiconnect.NewCatalogServiceHandler(NewCatalogService(store, formatter), protected))
	mux.Handle(apiconnect.NewTillServiceHandler(NewTillService(registry, store, formatter), protected))

	env.server = httptest.NewServer(mux)
	t.Cleanup(env.server.Close)

	cashier := models.NewCashier("test@warung.id", "Test", "x")
	if err := store.CreateCashier(context.Background(), cashier); err != nil {
		t.Fatalf("failed to seed cashier: %v", err)
	}
	token, err := env.jwt.Generate(cashier)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	withToken := connect.WithInterceptors(bearer(token))

	env.auth = apiconnect.NewAuthServiceClient(http.DefaultClient, env.server.URL)
	env.catalog = apiconnect.NewCatalogServiceClient(http.DefaultClient, env.server.URL, withToken)
	env.tills = apiconnect.NewTillServiceClient(http.DefaultClient, env.server.URL, withToken)
	return env
}

// bearer attaches a token to every outgoing request.
func bearer(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set("Authorization", "Bearer "+token)
			return next(ctx, req)
		}
	}
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got success", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}
