package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/money"
	"github.com/mmynk/kasir/internal/storage"
)

const productColumns = `id, name, description, price, category_id, image_url, stock, created_at, updated_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var (
		p     models.Product
		price int64
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.CategoryID, &p.ImageURL, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Product{}, err
	}
	p.Price = money.Amount(price)
	return p, nil
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name, created_at FROM categories ORDER BY name, id")
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

func (s *PostgresStore) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.CreatedAt == 0 {
		category.CreatedAt = time.Now().Unix()
	}
	err := s.pool.QueryRow(ctx,
		"INSERT INTO categories (name, created_at) VALUES ($1, $2) RETURNING id",
		category.Name, category.CreatedAt,
	).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+productColumns+" FROM products ORDER BY name, id")
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

func (s *PostgresStore) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	p, err := scanProduct(s.pool.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "product", id)
	}
	return &p, nil
}

func (s *PostgresStore) CreateProduct(ctx context.Context, product *models.Product) error {
	now := time.Now().Unix()
	product.CreatedAt = now
	product.UpdatedAt = now

	err := s.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, price, category_id, image_url, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		product.Name,
		product.Description,
		product.Price.Int64(),
		product.CategoryID,
		product.ImageURL,
		product.Stock,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)
	if hasCode(err, foreignKeyViolation) {
		return fmt.Errorf("%w: category %d", storage.ErrInvalidReference, *product.CategoryID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now().Unix()

	err := s.pool.QueryRow(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, category_id = $4, image_url = $5, stock = $6, updated_at = $7
		WHERE id = $8
		RETURNING created_at`,
		product.Name,
		product.Description,
		product.Price.Int64(),
		product.CategoryID,
		product.ImageURL,
		product.Stock,
		product.UpdatedAt,
		product.ID,
	).Scan(&product.CreatedAt)
	if hasCode(err, foreignKeyViolation) {
		return fmt.Errorf("%w: category %d", storage.ErrInvalidReference, *product.CategoryID)
	}
	if err != nil {
		return notFound(err, "product", product.ID)
	}
	return nil
}

func (s *PostgresStore) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", storage.ErrNotFound, id)
	}
	return nil
}
