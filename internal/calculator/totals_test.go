package calculator

import (
	"testing"

	"github.com/mmynk/kasir/internal/money"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		subtotal money.Amount
		want     Breakdown
	}{
		{
			name:     "two nasi goreng and a drink",
			subtotal: 27000,
			want:     Breakdown{Subtotal: 27000, Tax: 2700, GrandTotal: 29700},
		},
		{
			name:     "single item",
			subtotal: 15000,
			want:     Breakdown{Subtotal: 15000, Tax: 1500, GrandTotal: 16500},
		},
		{
			name:     "empty cart",
			subtotal: 0,
			want:     Breakdown{},
		},
		{
			name:     "half rounds up",
			subtotal: 15,
			want:     Breakdown{Subtotal: 15, Tax: 2, GrandTotal: 17},
		},
		{
			name:     "below half rounds down",
			subtotal: 14,
			want:     Breakdown{Subtotal: 14, Tax: 1, GrandTotal: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.subtotal)
			if got != tt.want {
				t.Errorf("Compute(%d) = %+v, want %+v", tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestChangeAndCovers(t *testing.T) {
	const due = money.Amount(29700)

	tests := []struct {
		tendered   money.Amount
		wantChange money.Amount
		wantCovers bool
	}{
		{tendered: 29700, wantChange: 0, wantCovers: true},
		{tendered: 20000, wantChange: -9700, wantCovers: false},
		{tendered: 50000, wantChange: 20300, wantCovers: true},
	}

	for _, tt := range tests {
		if got := Change(tt.tendered, due); got != tt.wantChange {
			t.Errorf("Change(%d) = %d, want %d", tt.tendered, got, tt.wantChange)
		}
		if got := Covers(tt.tendered, due); got != tt.wantCovers {
			t.Errorf("Covers(%d) = %v, want %v", tt.tendered, got, tt.wantCovers)
		}
	}
}

func TestCompute_OutOfRange(t *testing.T) {
	ok := Compute(money.MaxPrice)
	if ok.OutOfRange || ok.GrandTotal != money.MaxPrice+money.MaxPrice/10 {
		t.Errorf("ceiling price should compute exactly, got %+v", ok)
	}

	// Tax pushes the sum past the bound even though the subtotal fits.
	b := Compute(8_500_000_000_000_000_000)
	if !b.OutOfRange || b.GrandTotal != money.MaxAmount {
		t.Errorf("expected saturated grand total, got %+v", b)
	}
	if Covers(0, b.GrandTotal) {
		t.Error("a zero tender must never cover a saturated total")
	}

	if b := Compute(money.MaxAmount); !b.OutOfRange {
		t.Errorf("saturated subtotal must be out of range, got %+v", b)
	}
}
