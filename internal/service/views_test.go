package service

import (
	"testing"

	"github.com/mmynk/kasir/internal/checkout"
	"github.com/mmynk/kasir/internal/money"
)

func TestPresenter_WithoutFormatter(t *testing.T) {
	var p presenter

	if got := p.format(29700); got != "29700" {
		t.Errorf("format(29700) = %q, want %q", got, "29700")
	}
	v := p.checkout(checkout.View{State: checkout.StateReviewing, GrandTotal: 29700, Tendered: 50000, Change: 20300})
	if v.GrandTotalText != "29700" || v.ChangeText != "20300" {
		t.Errorf("unexpected texts: %+v", v)
	}

	f, err := money.NewFormatter("en", "Rp")
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}
	if got := (presenter{formatter: f}).format(29700); got != "Rp 29,700" {
		t.Errorf("format(29700) = %q, want %q", got, "Rp 29,700")
	}
}
