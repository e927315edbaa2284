package postgres

import (
	"context"
	"fmt"

	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/storage"
)

const cashierColumns = `id, email, display_name, password_hash, created_at, updated_at`

func (s *PostgresStore) CreateCashier(ctx context.Context, cashier *models.Cashier) error {
	_, err := s.pool.Exec(ctx,
		"INSERT INTO cashiers ("+cashierColumns+") VALUES ($1, $2, $3, $4, $5, $6)",
		cashier.ID,
		cashier.Email,
		cashier.DisplayName,
		cashier.PasswordHash,
		cashier.CreatedAt,
		cashier.UpdatedAt,
	)
	if hasCode(err, uniqueViolation) {
		return fmt.Errorf("%w: cashier %s", storage.ErrConflict, cashier.Email)
	}
	if err != nil {
		return fmt.Errorf("failed to create cashier: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetCashierByEmail(ctx context.Context, email string) (*models.Cashier, error) {
	return s.getCashier(ctx, "email", email)
}

func (s *PostgresStore) GetCashierByID(ctx context.Context, id string) (*models.Cashier, error) {
	return s.getCashier(ctx, "id", id)
}

func (s *PostgresStore) getCashier(ctx context.Context, column, value string) (*models.Cashier, error) {
	cashier := &models.Cashier{}
	err := s.pool.QueryRow(ctx,
		"SELECT "+cashierColumns+" FROM cashiers WHERE "+column+" = $1", value,
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
