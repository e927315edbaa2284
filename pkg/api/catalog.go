package api

type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// CategoryCount is one category chip. Filter is the value to send back as
// BrowseCatalogRequest.Category.
type CategoryCount struct {
	Filter string `json:"filter"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

type Product struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Price         int64  `json:"price"`
	PriceText     string `json:"priceText"`
	CategoryID    *int64 `json:"categoryId,omitempty"`
	CategoryLabel string `json:"categoryLabel"`
	ImageURL      string `json:"imageUrl,omitempty"`
	Stock         *int64 `json:"stock,omitempty"`
	InStock       bool   `json:"inStock"`
	CreatedAt     int64  `json:"createdAt,omitempty"`
	UpdatedAt     int64  `json:"updatedAt,omitempty"`
}

type BrowseCatalogRequest struct {
	// Category is "all" (or empty) or a category id.
	Category string `json:"category"`
	Search   string `json:"search"`
}

type BrowseCatalogResponse struct {
	Products   []*Product       `json:"products"`
	Categories []*CategoryCount `json:"categories"`
	Total      int              `json:"total"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type CreateCategoryResponse struct {
	Category *Category `json:"category"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	CategoryID  *int64 `json:"categoryId,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Stock       *int64 `json:"stock,omitempty"`
}

type CreateProductResponse struct {
	Product *Product `json:"product"`
}

type UpdateProductRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	CategoryID  *int64 `json:"categoryId,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Stock       *int64 `json:"stock,omitempty"`
}

type UpdateProductResponse struct {
	Product *Product `json:"product"`
}

type DeleteProductRequest struct {
	ID int64 `json:"id"`
}

type DeleteProductResponse struct{}
