package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/storage"
)

const cashierColumns = `id, email, display_name, password_hash, created_at, updated_at`

// CreateCashier inserts a new cashier into the database.
func (s *SQLiteStore) CreateCashier(ctx context.Context, cashier *models.Cashier) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cashiers (`+cashierColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		cashier.ID,
		cashier.Email,
		cashier.DisplayName,
		cashier.PasswordHash,
		cashier.CreatedAt,
		cashier.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: cashier %s", storage.ErrConflict, cashier.Email)
	}
	if err != nil {
		return fmt.Errorf("failed to create cashier: %w", err)
	}
	return nil
}

// GetCashierByEmail retrieves a cashier by their email address.
func (s *SQLiteStore) GetCashierByEmail(ctx context.Context, email string) (*models.Cashier, error) {
	return s.getCashier(ctx, "email", email)
}

// GetCashierByID retrieves a cashier by their ID.
func (s *SQLiteStore) GetCashierByID(ctx context.Context, id string) (*models.Cashier, error) {
	return s.getCashier(ctx, "id", id)
}

// column is never user input.
func (s *SQLiteStore) getCashier(ctx context.Context, column, value string) (*models.Cashier, error) {
	cashier := &models.Cashier{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+cashierColumns+" FROM cashiers WHERE "+column+" = ?", value,
	).Scan(
		&cashier.ID,
		&cashier.Email,
		&cashier.DisplayName,
		&cashier.PasswordHash,
		&cashier.CreatedAt,
		&cashier.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "cashier", value)
	}
	return cashier, nil
}
