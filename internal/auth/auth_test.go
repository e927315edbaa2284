package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/storage"
)

type memCashiers struct {
	mu      sync.Mutex
	byEmail map[string]*models.Cashier
}

func newMemCashiers() *memCashiers {
	return &memCashiers{byEmail: make(map[string]*models.Cashier)}
}

func (m *memCashiers) CreateCashier(_ context.Context, c *models.Cashier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[c.Email]; ok {
		return fmt.Errorf("%w: %s", storage.ErrConflict, c.Email)
	}
	m.byEmail[c.Email] = c
	return nil
}

func (m *memCashiers) GetCashierByEmail(_ context.Context, email string) (*models.Cashier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byEmail[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return c, nil
}

func (m *memCashiers) GetCashierByID(_ context.Context, id string) (*models.Cashier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemCashiers()).WithCost(bcrypt.MinCost)

	cashier, err := a.Register(ctx, " Sari@Warung.ID ", "Sari", "rahasia123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if cashier.Email != "sari@warung.id" {
		t.Errorf("email not normalized: %q", cashier.Email)
	}
	if cashier.PasswordHash == "rahasia123" || cashier.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: "sari@warung.id", password: "rahasia123"},
		{name: "case-insensitive email", email: "SARI@warung.id", password: "rahasia123"},
		{name: "wrong password", email: "sari@warung.id", password: "salah", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "budi@warung.id", password: "rahasia123", wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate failed: %v", err)
			}
			if got.ID != cashier.ID {
				t.Errorf("expected cashier %s, got %s", cashier.ID, got.ID)
			}
		})
	}

	if _, err := a.Register(ctx, "sari@warung.id", "Sari", "rahasia123"); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate: expected ErrEmailExists, got %v", err)
	}
	if _, err := a.Register(ctx, "budi@warung.id", "Budi", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("weak: expected ErrWeakPassword, got %v", err)
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	cashier := models.NewCashier("sari@warung.id", "Sari", "hash")

	token, err := m.Generate(cashier)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.CashierID != cashier.ID || claims.Email != cashier.Email || claims.DisplayName != "Sari" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		stale, err := expired.Generate(cashier)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(stale); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("foreign issuer", func(t *testing.T) {
		foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			CashierID: cashier.ID,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("failed to sign: %v", err)
		}
		if _, err := m.Validate(foreign); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
