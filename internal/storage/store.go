// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/kasir/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique constraint would be violated.
	ErrConflict = errors.New("already exists")
	// ErrInvalidReference is returned when a record points at a missing parent,
	// such as a product with an unknown category.
	ErrInvalidReference = errors.New("invalid reference")
)

// CatalogStore holds products and categories.
// Completed sales are never written here.
type CatalogStore interface {
	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// CreateCategory persists a category. ID and CreatedAt are set by the store.
	CreateCategory(ctx context.Context, category *models.Category) error

	// ListProducts returns all products ordered by name.
	ListProducts(ctx context.Context) ([]models.Product, error)

	// GetProduct returns ErrNotFound for unknown ids.
	GetProduct(ctx context.Context, id int64) (*models.Product, error)

	// CreateProduct persists a product. ID and timestamps are set by the store.
	CreateProduct(ctx context.Context, product *models.Product) error

	// UpdateProduct replaces every editable field. Returns ErrNotFound for
	// unknown ids.
	UpdateProduct(ctx context.Context, product *models.Product) error

	// DeleteProduct returns ErrNotFound for unknown ids.
	DeleteProduct(ctx context.Context, id int64) error
}

// CashierStore holds staff accounts.
type CashierStore interface {
	// CreateCashier returns ErrConflict if the email is taken.
	CreateCashier(ctx context.Context, cashier *models.Cashier) error

	// GetCashierByEmail returns ErrNotFound for unknown emails.
	GetCashierByEmail(ctx context.Context, email string) (*models.Cashier, error)

	// GetCashierByID returns ErrNotFound for unknown ids.
	GetCashierByID(ctx context.Context, id string) (*models.Cashier, error)
}

// Store is implemented by each backend (SQLite, PostgreSQL).
type Store interface {
	CatalogStore
	CashierStore

	// Close releases any resources held by the store.
	Close() error
}
