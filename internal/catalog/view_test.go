package catalog

import (
	"reflect"
	"testing"

	"github.com/mmynk/kasir/internal/models"
)

var (
	testCategories = []models.Category{
		{ID: 1, Name: "Makanan"},
		{ID: 2, Name: "Minuman"},
		{ID: 3, Name: "Snack"},
	}
	testProducts = []models.Product{
		{ID: 3, Name: "Ayam Bakar", Price: 18000, CategoryID: models.Int64Ptr(1)},
		{ID: 8, Name: "Biskuit", Price: 7000, CategoryID: models.Int64Ptr(3)},
		{ID: 4, Name: "Es Teh", Price: 5000, CategoryID: models.Int64Ptr(2), Stock: models.Int64Ptr(0)},
		{ID: 6, Name: "Jus Jeruk", Price: 10000, CategoryID: models.Int64Ptr(2)},
		{ID: 5, Name: "Kopi", Price: 8000, CategoryID: models.Int64Ptr(2)},
		{ID: 2, Name: "Mie Ayam", Price: 12000, CategoryID: models.Int64Ptr(1)},
		{ID: 1, Name: "Nasi Goreng", Price: 15000, CategoryID: models.Int64Ptr(1)},
		{ID: 10, Name: "Air Mineral", Price: 3000},
	}
)

func ids(products []models.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter CategoryFilter
		search string
		want   []int64
	}{
		{name: "all with empty search", filter: All(), search: "", want: []int64{3, 8, 4, 6, 5, 2, 1, 10}},
		{name: "single category", filter: OnlyCategory(2), search: "", want: []int64{4, 6, 5}},
		{name: "case-insensitive search", filter: All(), search: "AYAM", want: []int64{3, 2}},
		{name: "category and search", filter: OnlyCategory(1), search: "ayam", want: []int64{3, 2}},
		{name: "substring in the middle", filter: All(), search: "go", want: []int64{1}},
		{name: "no match", filter: All(), search: "pizza", want: []int64{}},
		{name: "unknown category", filter: OnlyCategory(99), search: "", want: []int64{}},
		{name: "out of stock is kept", filter: OnlyCategory(2), search: "teh", want: []int64{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(testProducts, tt.filter, tt.search))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_IsPure(t *testing.T) {
	input := make([]models.Product, len(testProducts))
	copy(input, testProducts)

	first := Filter(input, OnlyCategory(1), "a")
	second := Filter(input, OnlyCategory(1), "a")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Filter differs: %v vs %v", ids(first), ids(second))
	}
	if !reflect.DeepEqual(input, testProducts) {
		t.Error("Filter modified its input")
	}
}

func TestParseCategoryFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "all", want: "all"},
		{in: "ALL", want: "all"},
		{in: "", want: "all"},
		{in: "2", want: "2"},
		{in: " 7 ", want: "7"},
		{in: "drinks", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseCategoryFilter(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategoryFilter(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got.String() != tt.want {
			t.Errorf("ParseCategoryFilter(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCategoryCounts(t *testing.T) {
	counts := CategoryCounts(testCategories, testProducts)

	want := map[string]int{"Makanan": 3, "Minuman": 3, "Snack": 1}
	if len(counts) != len(testCategories) {
		t.Fatalf("expected %d counts, got %d", len(testCategories), len(counts))
	}
	for i, c := range counts {
		if c.Category.ID != testCategories[i].ID {
			t.Errorf("order: position %d has category %d", i, c.Category.ID)
		}
		if c.Count != want[c.Category.Name] {
			t.Errorf("%s: expected %d, got %d", c.Category.Name, want[c.Category.Name], c.Count)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		want    string
	}{
		{name: "known category", product: testProducts[0], want: "Makanan"},
		{name: "unknown category", product: models.Product{CategoryID: models.Int64Ptr(42)}, want: "Category 42"},
		{name: "no category", product: models.Product{}, want: Uncategorized},
	}
	for _, tt := range tests {
		if got := Label(testCategories, tt.product); got != tt.want {
			t.Errorf("%s: Label() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
