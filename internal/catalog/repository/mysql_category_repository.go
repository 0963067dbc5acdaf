package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/catalog/domain"
	"github.com/Santosha2001/ecommerce/internal/database"

	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
)

// MySQLCategoryRepository handles category persistence for MySQL
type MySQLCategoryRepository struct {
	db *sql.DB
}

// NewMySQLCategoryRepository creates a new MySQLCategoryRepository
func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{
		db: db,
	}
}

// Create inserts a new category
func (r *MySQLCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO categories (id, name, created_at, updated_at)
			  VALUES (?, ?, NOW(), NOW())`

	idBytes, err := category.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query, idBytes, category.Name)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create category")
	}
	return nil
}

// Update renames an existing category
func (r *MySQLCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE categories SET name = ?, updated_at = NOW() WHERE id = ?`

	idBytes, err := category.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, category.Name, idBytes)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update category")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category
func (r *MySQLCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *MySQLCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var category domain.Category
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var scannedID []byte
	err = querier.QueryRowContext(ctx, query, idBytes).Scan(
		&scannedID, &category.Name, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category by id")
	}

	if err := category.ID.UnmarshalBinary(scannedID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &category, nil
}

// List retrieves all categories ordered by name
func (r *MySQLCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM categories ORDER BY name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category
		var idBytes []byte
		if err := rows.Scan(
			&idBytes, &category.Name, &category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		if err := category.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
