package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kasir/internal/catalog"
	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/money"
	"github.com/mmynk/kasir/internal/storage"
	"github.com/mmynk/kasir/pkg/api"
	"github.com/mmynk/kasir/pkg/api/apiconnect"
)

var _ apiconnect.CatalogServiceHandler = (*CatalogService)(nil)

// CatalogService implements the Connect CatalogService.
type CatalogService struct {
	store   storage.CatalogStore
	browser *catalog.Browser
	present presenter
}

// NewCatalogService creates a CatalogService over store.
func NewCatalogService(store storage.CatalogStore, formatter *money.Formatter) *CatalogService {
	return &CatalogService{
		store:   store,
		browser: catalog.NewBrowser(store),
		present: presenter{formatter: formatter},
	}
}

// BrowseCatalog returns the products matching a category filter and search
// text, plus per-category counts.
func (s *CatalogService) BrowseCatalog(ctx context.Context, req *connect.Request[api.BrowseCatalogRequest]) (*connect.Response[api.BrowseCatalogResponse], error) {
	slog.Debug("BrowseCatalog request received", "category", req.Msg.Category, "search", req.Msg.Search)

	filter, err := catalog.ParseCategoryFilter(req.Msg.Category)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	result, err := s.browser.Browse(ctx, filter, req.Msg.Search)
	if err != nil {
		slog.Error("BrowseCatalog failed", "error", err)
		return nil, toConnectError(err)
	}
	categories := make([]models.Category, len(result.Categories))
	for i, c := range result.Categories {
		categories[i] = c.Category
	}

	products := make([]*api.Product, len(result.Products))
	for i, p := range result.Products {
		products[i] = s.present.product(categories, p)
	}

	return connect.NewResponse(&api.BrowseCatalogResponse{
		Products:   products,
		Categories: categoryChips(result.Categories, result.Total),
		Total:      result.Total,
	}), nil
}

// ListCategories returns every category ordered by name.
func (s *CatalogService) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		slog.Error("ListCategories failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Category, len(categories))
	for i, c := range categories {
		out[i] = toAPICategory(c)
	}
	return connect.NewResponse(&api.ListCategoriesResponse{Categories: out}), nil
}

// CreateCategory adds a category.
func (s *CatalogService) CreateCategory(ctx context.Context, req *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	slog.Info("CreateCategory request received", "name", req.Msg.Name)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, toConnectError(errEmptyName)
	}

	category := &models.Category{Name: name}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		slog.Error("CreateCategory failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Category created", "category_id", category.ID)
	return connect.NewResponse(&api.CreateCategoryResponse{Category: toAPICategory(*category)}), nil
}

// CreateProduct adds a product to the catalog.
func (s *CatalogService) CreateProduct(ctx context.Context, req *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error) {
	slog.Info("CreateProduct request received", "name", req.Msg.Name, "price", req.Msg.Price)

	product := &models.Product{
		Name:        strings.TrimSpace(req.Msg.Name),
		Description: req.Msg.Description,
		Price:       money.Amount(req.Msg.Price),
		CategoryID:  req.Msg.CategoryID,
		ImageURL:    req.Msg.ImageURL,
		Stock:       req.Msg.Stock,
	}
	if err := validateProduct(product); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateProduct(ctx, product); err != nil {
		slog.Error("CreateProduct failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Product created", "product_id", product.ID)
	return connect.NewResponse(&api.CreateProductResponse{
		Product: s.present.product(s.categories(ctx), *product),
	}), nil
}

// UpdateProduct replaces a product's editable fields.
func (s *CatalogService) UpdateProduct(ctx context.Context, req *connect.Request[api.UpdateProductRequest]) (*connect.Response[api.UpdateProductResponse], error) {
	slog.Info("UpdateProduct request received", "product_id", req.Msg.ID)

	product := &models.Product{
		ID:          req.Msg.ID,
		Name:        strings.TrimSpace(req.Msg.Name),
		Description: req.Msg.Description,
		Price:       money.Amount(req.Msg.Price),
		CategoryID:  req.Msg.CategoryID,
		ImageURL:    req.Msg.ImageURL,
		Stock:       req.Msg.Stock,
	}
	if err := validateProduct(product); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.UpdateProduct(ctx, product); err != nil {
		slog.Error("UpdateProduct failed", "product_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Product updated", "product_id", product.ID)
	return connect.NewResponse(&api.UpdateProductResponse{
		Product: s.present.product(s.categories(ctx), *product),
	}), nil
}

// DeleteProduct removes a product. Carts that already hold it keep their
// snapshot.
func (s *CatalogService) DeleteProduct(ctx context.Context, req *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	slog.Info("DeleteProduct request received", "product_id", req.Msg.ID)

	if err := s.store.DeleteProduct(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteProduct failed", "product_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Product deleted", "product_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteProductResponse{}), nil
}

// categories is best effort; labels fall back to "Category N".
func (s *CatalogService) categories(ctx context.Context) []models.Category {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		slog.Warn("Failed to load categories for labels", "error", err)
		return nil
	}
	return categories
}

func validateProduct(p *models.Product) error {
	if p.Name == "" {
		return errEmptyName
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: %d", errNegativePrice, p.Price)
	}
	if p.Price > money.MaxPrice {
		return fmt.Errorf("%w: %d > %d", errPriceTooHigh, p.Price, money.MaxPrice)
	}
	if p.Stock != nil && *p.Stock < 0 {
		return fmt.Errorf("%w: %d", errNegativeStock, *p.Stock)
	}
	return nil
}
