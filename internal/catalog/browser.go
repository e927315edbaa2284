package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/kasir/internal/models"
)

// ErrUnavailable wraps catalog fetch failures. Callers may retry.
var ErrUnavailable = errors.New("catalog unavailable")

// Source supplies catalog rows ordered by name.
type Source interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// Snapshot is one consistent read of the catalog.
type Snapshot struct {
	Categories []models.Category
	Products   []models.Product
	FetchedAt  time.Time
}

// Result is what a till shows after filtering.
type Result struct {
	Products   []models.Product
	Categories []CategoryCount
	// Total is the number of products before filtering.
	Total int
}

// Browser keeps the last successfully fetched catalog snapshot.
type Browser struct {
	source Source

	mu   sync.RWMutex
	snap Snapshot
	err  error
}

// NewBrowser creates a Browser over source. Nothing is fetched until Refresh.
func NewBrowser(source Source) *Browser {
	return &Browser{source: source}
}

// Refresh re-reads categories and products. On failure the cached snapshot is
// discarded, so no partial catalog survives a failed fetch.
func (b *Browser) Refresh(ctx context.Context) (Snapshot, error) {
	snap, err := b.fetch(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.snap = Snapshot{}
		b.err = err
		slog.Warn("Catalog refresh failed", "error", err)
		return Snapshot{}, err
	}
	b.snap = snap
	b.err = nil
	slog.Debug("Catalog refreshed",
		"categories", len(snap.Categories),
		"products", len(snap.Products),
	)
	return snap, nil
}

// Snapshot returns the cached snapshot and the error of the last refresh, if any.
func (b *Browser) Snapshot() (Snapshot, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap, b.err
}

// Browse refreshes the catalog and applies the filter.
func (b *Browser) Browse(ctx context.Context, filter CategoryFilter, search string) (*Result, error) {
	snap, err := b.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{
		Products:   Filter(snap.Products, filter, search),
		Categories: CategoryCounts(snap.Categories, snap.Products),
		Total:      len(snap.Products),
	}, nil
}

func (b *Browser) fetch(ctx context.Context) (Snapshot, error) {
	categories, err := b.source.ListCategories(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: failed to load categories: %v", ErrUnavailable, err)
	}
	products, err := b.source.ListProducts(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: failed to load products: %v", ErrUnavailable, err)
	}
	return Snapshot{
		Categories: categories,
		Products:   products,
		FetchedAt:  time.Now(),
	}, nil
}
