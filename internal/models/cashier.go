package models

import (
	"time"

	"github.com/google/uuid"
)

// Cashier is a staff account allowed to operate tills.
type Cashier struct {
	// ID is the unique identifier for the cashier (UUID format).
	ID string

	// Email is used to log in and is unique across cashiers.
	Email string

	// DisplayName is shown on till sessions and logs.
	DisplayName string

	// PasswordHash is the bcrypt hash of the cashier's password.
	PasswordHash string

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// NewCashier creates a Cashier with a fresh ID and timestamps.
func NewCashier(email, displayName, passwordHash string) *Cashier {
	now := time.Now().Unix()
	return &Cashier{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
