// Package repository provides data persistence implementations for delivery addresses.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/address/domain"
	"github.com/Santosha2001/ecommerce/internal/database"

	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
)

// PostgreSQLAddressRepository handles address persistence for PostgreSQL
type PostgreSQLAddressRepository struct {
	db *sql.DB
}

// NewPostgreSQLAddressRepository creates a new PostgreSQLAddressRepository
func NewPostgreSQLAddressRepository(db *sql.DB) *PostgreSQLAddressRepository {
	return &PostgreSQLAddressRepository{
		db: db,
	}
}

// Create inserts a new address
func (r *PostgreSQLAddressRepository) Create(ctx context.Context, address *domain.Address) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO addresses (id, user_id, street, city, state, zip_code, country, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		address.ID, address.UserID, address.Street, address.City,
		address.State, address.ZipCode, address.Country)
	if err != nil {
		return apperrors.Wrap(err, "failed to create address")
	}
	return nil
}

// Update replaces the stored fields of an existing address
func (r *PostgreSQLAddressRepository) Update(ctx context.Context, address *domain.Address) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE addresses SET street = $1, city = $2, state = $3, zip_code = $4,
			  country = $5, updated_at = NOW() WHERE id = $6`

	result, err := querier.ExecContext(ctx, query,
		address.Street, address.City, address.State, address.ZipCode,
		address.Country, address.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update address")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

// GetByUserID retrieves the address belonging to a user
func (r *PostgreSQLAddressRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Address, error) {
	var address domain.Address
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, street, city, state, zip_code, country, created_at, updated_at
			  FROM addresses WHERE user_id = $1`

	err := querier.QueryRowContext(ctx, query, userID).Scan(
		&address.ID, &address.UserID, &address.Street, &address.City,
		&address.State, &address.ZipCode, &address.Country,
		&address.CreatedAt, &address.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get address by user id")
	}

	return &address, nil
}
