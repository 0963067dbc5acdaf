package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/catalog/domain"
	"github.com/Santosha2001/ecommerce/internal/database"

	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
)

// PostgreSQLProductRepository handles product persistence for PostgreSQL
type PostgreSQLProductRepository struct {
	db *sql.DB
}

// NewPostgreSQLProductRepository creates a new PostgreSQLProductRepository
func NewPostgreSQLProductRepository(db *sql.DB) *PostgreSQLProductRepository {
	return &PostgreSQLProductRepository{
		db: db,
	}
}

const postgresProductColumns = `id, category_id, name, description, image_url, price_cents, created_at, updated_at`

// Create inserts a new product
func (r *PostgreSQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products (id, category_id, name, description, image_url, price_cents, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		product.ID, product.CategoryID, product.Name, product.Description,
		product.ImageURL, product.PriceCents)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Update replaces the stored fields of an existing product
func (r *PostgreSQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE products SET category_id = $1, name = $2, description = $3,
			  image_url = $4, price_cents = $5, updated_at = NOW() WHERE id = $6`

	result, err := querier.ExecContext(ctx, query,
		product.CategoryID, product.Name, product.Description,
		product.ImageURL, product.PriceCents, product.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update product")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete removes a product
func (r *PostgreSQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// GetByID retrieves a product by ID
func (r *PostgreSQLProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresProductColumns + ` FROM products WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.CategoryID, &product.Name, &product.Description,
		&product.ImageURL, &product.PriceCents, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product by id")
	}

	return &product, nil
}

// List retrieves products ordered by creation time, newest first
func (r *PostgreSQLProductRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresProductColumns + ` FROM products
			  ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer rows.Close()

	return collectProducts(rows)
}

// ListByCategory retrieves products belonging to a category
func (r *PostgreSQLProductRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresProductColumns + ` FROM products
			  WHERE category_id = $1 ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products by category")
	}
	defer rows.Close()

	return collectProducts(rows)
}

// Search retrieves products whose name or description matches the value,
// case-insensitively.
func (r *PostgreSQLProductRepository) Search(ctx context.Context, value string) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresProductColumns + ` FROM products
			  WHERE name ILIKE $1 OR description ILIKE $1 ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, "%"+value+"%")
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search products")
	}
	defer rows.Close()

	return collectProducts(rows)
}

// collectProducts scans all rows into products.
func collectProducts(rows *sql.Rows) ([]*domain.Product, error) {
	var products []*domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID, &product.CategoryID, &product.Name, &product.Description,
			&product.ImageURL, &product.PriceCents, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		products = append(products, &product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}
	return products, nil
}
