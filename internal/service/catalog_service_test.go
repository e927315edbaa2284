package service

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/money"
	"github.com/mmynk/kasir/pkg/api"
)

// seedCatalog creates two categories and three products through the API.
func seedCatalog(t *testing.T, env *testEnv) (food, drinks *api.Category, nasi, teh, kerupuk *api.Product) {
	t.Helper()
	ctx := context.Background()

	createCategory := func(name string) *api.Category {
		resp, err := env.catalog.CreateCategory(ctx, connect.NewRequest(&api.CreateCategoryRequest{Name: name}))
		if err != nil {
			t.Fatalf("CreateCategory(%s) failed: %v", name, err)
		}
		return resp.Msg.Category
	}
	createProduct := func(req *api.CreateProductRequest) *api.Product {
		resp, err := env.catalog.CreateProduct(ctx, connect.NewRequest(req))
		if err != nil {
			t.Fatalf("CreateProduct(%s) failed: %v", req.Name, err)
		}
		return resp.Msg.Product
	}

	food = createCategory("Makanan")
	drinks = createCategory("Minuman")
	nasi = createProduct(&api.CreateProductRequest{Name: "Nasi Goreng", Price: 15000, CategoryID: models.Int64Ptr(food.ID)})
	teh = createProduct(&api.CreateProductRequest{Name: "Es Teh Manis", Price: 5000, CategoryID: models.Int64Ptr(drinks.ID), Stock: models.Int64Ptr(20)})
	kerupuk = createProduct(&api.CreateProductRequest{Name: "Kerupuk", Price: 2000})
	return food, drinks, nasi, teh, kerupuk
}

func TestCatalogService_CreateProduct(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	food, _, nasi, _, kerupuk := seedCatalog(t, env)

	if nasi.ID == 0 || nasi.Price != 15000 || !nasi.InStock {
		t.Errorf("unexpected product: %+v", nasi)
	}
	if nasi.CategoryLabel != food.Name {
		t.Errorf("category label: expected %q, got %q", food.Name, nasi.CategoryLabel)
	}
	if !strings.HasPrefix(nasi.PriceText, "Rp ") {
		t.Errorf("expected formatted price, got %q", nasi.PriceText)
	}
	if kerupuk.CategoryLabel != "Uncategorized" || kerupuk.CategoryID != nil {
		t.Errorf("expected uncategorized product, got %+v", kerupuk)
	}
}

func TestCatalogService_Validation(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	ctx := context.Background()

	tests := []struct {
		name string
		req  *api.CreateProductRequest
		want connect.Code
	}{
		{name: "empty name", req: &api.CreateProductRequest{Name: "  ", Price: 100}, want: connect.CodeInvalidArgument},
		{name: "negative price", req: &api.CreateProductRequest{Name: "Tahu", Price: -1}, want: connect.CodeInvalidArgument},
		{name: "price above ceiling", req: &api.CreateProductRequest{Name: "Emas", Price: int64(money.MaxPrice) + 1}, want: connect.CodeInvalidArgument},
		{name: "near max int64", req: &api.CreateProductRequest{Name: "Emas", Price: 8_500_000_000_000_000_000}, want: connect.CodeInvalidArgument},
		{name: "negative stock", req: &api.CreateProductRequest{Name: "Tahu", Price: 100, Stock: models.Int64Ptr(-3)}, want: connect.CodeInvalidArgument},
		{name: "unknown category", req: &api.CreateProductRequest{Name: "Tahu", Price: 100, CategoryID: models.Int64Ptr(777)}, want: connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.catalog.CreateProduct(ctx, connect.NewRequest(tt.req))
			expectCode(t, err, tt.want)
		})
	}

	_, err := env.catalog.CreateCategory(ctx, connect.NewRequest(&api.CreateCategoryRequest{Name: ""}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestCatalogService_BrowseCatalog(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	ctx := context.Background()
	food, drinks, _, _, _ := seedCatalog(t, env)

	browse := func(t *testing.T, category, search string) *api.BrowseCatalogResponse {
		t.Helper()
		resp, err := env.catalog.BrowseCatalog(ctx, connect.NewRequest(&api.BrowseCatalogRequest{Category: category, Search: search}))
		if err != nil {
			t.Fatalf("BrowseCatalog failed: %v", err)
		}
		return resp.Msg
	}
	names := func(products []*api.Product) []string {
		out := make([]string, len(products))
		for i, p := range products {
			out[i] = p.Name
		}
		return out
	}

	tests := []struct {
		name     string
		category string
		search   string
		want     []string
	}{
		{name: "everything", category: "", want: []string{"Es Teh Manis", "Kerupuk", "Nasi Goreng"}},
		{name: "all keyword", category: "all", want: []string{"Es Teh Manis", "Kerupuk", "Nasi Goreng"}},
		{name: "one category", category: itoa(food.ID), want: []string{"Nasi Goreng"}},
		{name: "search ignores case", category: "all", search: "TEH", want: []string{"Es Teh Manis"}},
		{name: "search within category", category: itoa(drinks.ID), search: "nasi", want: []string{}},
		{name: "empty category", category: "999", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := browse(t, tt.category, tt.search)
			got := names(resp.Products)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if resp.Total != 3 {
				t.Errorf("total: expected 3, got %d", resp.Total)
			}
		})
	}

	t.Run("category chips", func(t *testing.T) {
		chips := browse(t, "all", "").Categories
		if len(chips) != 3 {
			t.Fatalf("expected 3 chips, got %d", len(chips))
		}
		want := []api.CategoryCount{
			{Filter: "all", Name: "All", Count: 3},
			{Filter: itoa(food.ID), Name: "Makanan", Count: 1},
			{Filter: itoa(drinks.ID), Name: "Minuman", Count: 1},
		}
		for i, w := range want {
			if *chips[i] != w {
				t.Errorf("chip %d: expected %+v, got %+v", i, w, *chips[i])
			}
		}
	})

	t.Run("invalid filter", func(t *testing.T) {
		_, err := env.catalog.BrowseCatalog(ctx, connect.NewRequest(&api.BrowseCatalogRequest{Category: "drinks"}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestCatalogService_UpdateAndDelete(t *testing.T) {
	env := setupTestServer(t, envOptions{})
	ctx := context.Background()
	_, drinks, _, teh, _ := seedCatalog(t, env)

	resp, err := env.catalog.UpdateProduct(ctx, connect.NewRequest(&api.UpdateProductRequest{
		ID:         teh.ID,
		Name:       "Es Teh Tawar",
		Price:      4000,
		CategoryID: models.Int64Ptr(drinks.ID),
		Stock:      models.Int64Ptr(0),
	}))
	if err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}
	if got := resp.Msg.Product; got.Name != "Es Teh Tawar" || got.Price != 4000 || got.InStock {
		t.Errorf("unexpected update result: %+v", got)
	}

	_, err = env.catalog.UpdateProduct(ctx, connect.NewRequest(&api.UpdateProductRequest{ID: 4242, Name: "Ghost", Price: 1}))
	expectCode(t, err, connect.CodeNotFound)

	if _, err := env.catalog.DeleteProduct(ctx, connect.NewRequest(&api.DeleteProductRequest{ID: teh.ID})); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	_, err = env.catalog.DeleteProduct(ctx, connect.NewRequest(&api.DeleteProductRequest{ID: teh.ID}))
	expectCode(t, err, connect.CodeNotFound)

	list, err := env.catalog.ListCategories(ctx, connect.NewRequest(&api.ListCategoriesRequest{}))
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(list.Msg.Categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(list.Msg.Categories))
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
