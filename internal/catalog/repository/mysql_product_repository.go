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

// MySQLProductRepository handles product persistence for MySQL
type MySQLProductRepository struct {
	db *sql.DB
}

// NewMySQLProductRepository creates a new MySQLProductRepository
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{
		db: db,
	}
}

const mysqlProductColumns = `id, category_id, name, description, image_url, price_cents, created_at, updated_at`

// Create inserts a new product
func (r *MySQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products (id, category_id, name, description, image_url, price_cents, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`

	idBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	categoryIDBytes, err := product.CategoryID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		idBytes, categoryIDBytes, product.Name, product.Description,
		product.ImageURL, product.PriceCents)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Update replaces the stored fields of an existing product
func (r *MySQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE products SET category_id = ?, name = ?, description = ?,
			  image_url = ?, price_cents = ?, updated_at = NOW() WHERE id = ?`

	idBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	categoryIDBytes, err := product.CategoryID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query,
		categoryIDBytes, product.Name, product.Description,
		product.ImageURL, product.PriceCents, idBytes)
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
func (r *MySQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, idBytes)
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
func (r *MySQLProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlProductColumns + ` FROM products WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	product, err := scanMySQLProduct(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product by id")
	}

	return product, nil
}

// List retrieves products ordered by creation time, newest first
func (r *MySQLProductRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlProductColumns + ` FROM products
			  ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer rows.Close()

	return collectMySQLProducts(rows)
}

// ListByCategory retrieves products belonging to a category
func (r *MySQLProductRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlProductColumns + ` FROM products
			  WHERE category_id = ? ORDER BY created_at DESC`

	categoryIDBytes, err := categoryID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	rows, err := querier.QueryContext(ctx, query, categoryIDBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products by category")
	}
	defer rows.Close()

	return collectMySQLProducts(rows)
}

// Search retrieves products whose name or description matches the value,
// case-insensitively.
func (r *MySQLProductRepository) Search(ctx context.Context, value string) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlProductColumns + ` FROM products
			  WHERE LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)
			  ORDER BY created_at DESC`

	pattern := "%" + value + "%"
	rows, err := querier.QueryContext(ctx, query, pattern, pattern)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search products")
	}
	defer rows.Close()

	return collectMySQLProducts(rows)
}

// scanMySQLProduct scans a product row, converting BINARY(16) ids back to UUIDs.
func scanMySQLProduct(row interface{ Scan(dest ...any) error }) (*domain.Product, error) {
	var product domain.Product
	var idBytes, categoryIDBytes []byte

	err := row.Scan(
		&idBytes, &categoryIDBytes, &product.Name, &product.Description,
		&product.ImageURL, &product.PriceCents, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := product.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	if err := product.CategoryID.UnmarshalBinary(categoryIDBytes); err != nil {
		return nil, err
	}

	return &product, nil
}

func collectMySQLProducts(rows *sql.Rows) ([]*domain.Product, error) {
	var products []*domain.Product
	for rows.Next() {
		product, err := scanMySQLProduct(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}
	return products, nil
}
