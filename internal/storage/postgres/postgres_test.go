package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/storage"
)

// Set KASIR_TEST_DATABASE_URL to run against a disposable database.
func newTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	dsn := os.Getenv("KASIR_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("KASIR_TEST_DATABASE_URL not set")
	}
	store, err := New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPostgresStore_Catalog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	category := &models.Category{Name: "Minuman " + uuid.NewString()}
	if err := store.CreateCategory(ctx, category); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	product := &models.Product{
		Name:       "Es Jeruk " + uuid.NewString(),
		Price:      7000,
		CategoryID: models.Int64Ptr(category.ID),
		Stock:      models.Int64Ptr(0),
	}
	if err := store.CreateProduct(ctx, product); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	t.Cleanup(func() { store.DeleteProduct(context.Background(), product.ID) })

	got, err := store.GetProduct(ctx, product.ID)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if got.Price != 7000 || got.Stock == nil || *got.Stock != 0 {
		t.Errorf("unexpected product: %+v", got)
	}
	if id, ok := got.Category(); !ok || id != category.ID {
		t.Errorf("category: expected %d, got %d", category.ID, id)
	}

	got.Stock = nil
	got.CategoryID = nil
	if err := store.UpdateProduct(ctx, got); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}
	if got.CreatedAt != product.CreatedAt {
		t.Errorf("CreatedAt changed: %d -> %d", product.CreatedAt, got.CreatedAt)
	}

	orphan := &models.Product{Name: "Orphan", CategoryID: models.Int64Ptr(-1)}
	if err := store.CreateProduct(ctx, orphan); !errors.Is(err, storage.ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference, got %v", err)
	}

	if err := store.DeleteProduct(ctx, product.ID); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if _, err := store.GetProduct(ctx, product.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresStore_Cashiers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	email := uuid.NewString() + "@warung.id"
	cashier := models.NewCashier(email, "Budi", "hash")
	if err := store.CreateCashier(ctx, cashier); err != nil {
		t.Fatalf("CreateCashier failed: %v", err)
	}
	if err := store.CreateCashier(ctx, models.NewCashier(email, "Budi 2", "hash")); !errors.Is(err, storage.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	got, err := store.GetCashierByEmail(ctx, email)
	if err != nil || got.ID != cashier.ID {
		t.Fatalf("GetCashierByEmail: %+v, %v", got, err)
	}
	if _, err := store.GetCashierByID(ctx, uuid.NewString()); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
