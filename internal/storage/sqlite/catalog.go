package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/money"
	"github.com/mmynk/kasir/internal/storage"
)

const productColumns = `id, name, description, price, category_id, image_url, stock, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p          models.Product
		price      int64
		categoryID sql.NullInt64
		stock      sql.NullInt64
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &categoryID, &p.ImageURL, &stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Product{}, err
	}
	p.Price = money.Amount(price)
	p.CategoryID = int64Ptr(categoryID)
	p.Stock = int64Ptr(stock)
	return p, nil
}

// ListCategories returns all categories ordered by name.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM categories ORDER BY name, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a category and sets its ID.
func (s *SQLiteStore) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.CreatedAt == 0 {
		category.CreatedAt = time.Now().Unix()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (name, created_at) VALUES (?, ?)",
		category.Name, category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read category id: %w", err)
	}
	category.ID = id
	return nil
}

// ListProducts returns all products ordered by name.
func (s *SQLiteStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY name, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a product by ID.
func (s *SQLiteStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	p, err := scanProduct(s.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = ?", id,
	))
	if err != nil {
		return nil, notFound(err, "product", id)
	}
	return &p, nil
}

// CreateProduct inserts a product and sets its ID and timestamps.
func (s *SQLiteStore) CreateProduct(ctx context.Context, product *models.Product) error {
	now := time.Now().Unix()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO products (name, description, price, category_id, image_url, stock, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		product.Name,
		product.Description,
		product.Price.Int64(),
		nullInt64(product.CategoryID),
		product.ImageURL,
		nullInt64(product.Stock),
		product.CreatedAt,
		product.UpdatedAt,
	)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: category %d", storage.ErrInvalidReference, *product.CategoryID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read product id: %w", err)
	}
	product.ID = id
	return nil
}

// UpdateProduct overwrites the editable fields of an existing product.
func (s *SQLiteStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, description = ?, price = ?, category_id = ?, image_url = ?, stock = ?, updated_at = ?
		WHERE id = ?`,
		product.Name,
		product.Description,
		product.Price.Int64(),
		nullInt64(product.CategoryID),
		product.ImageURL,
		nullInt64(product.Stock),
		product.UpdatedAt,
		product.ID,
	)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: category %d", storage.ErrInvalidReference, *product.CategoryID)
	}
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if err := requireRow(res, "product", product.ID); err != nil {
		return err
	}

	return s.db.QueryRowContext(ctx,
		"SELECT created_at FROM products WHERE id = ?", product.ID,
	).Scan(&product.CreatedAt)
}

// DeleteProduct removes a product.
func (s *SQLiteStore) DeleteProduct(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return requireRow(res, "product", id)
}

func requireRow(res sql.Result, what string, id any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %v", storage.ErrNotFound, what, id)
	}
	return nil
}
