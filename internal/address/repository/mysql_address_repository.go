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

// MySQLAddressRepository handles address persistence for MySQL
type MySQLAddressRepository struct {
	db *sql.DB
}

// NewMySQLAddressRepository creates a new MySQLAddressRepository
func NewMySQLAddressRepository(db *sql.DB) *MySQLAddressRepository {
	return &MySQLAddressRepository{
		db: db,
	}
}

// Create inserts a new address
func (r *MySQLAddressRepository) Create(ctx context.Context, address *domain.Address) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO addresses (id, user_id, street, city, state, zip_code, country, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	idBytes, err := address.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	userIDBytes, err := address.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		idBytes, userIDBytes, address.Street, address.City,
		address.State, address.ZipCode, address.Country)
	if err != nil {
		return apperrors.Wrap(err, "failed to create address")
	}
	return nil
}

// Update replaces the stored fields of an existing address
func (r *MySQLAddressRepository) Update(ctx context.Context, address *domain.Address) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE addresses SET street = ?, city = ?, state = ?, zip_code = ?,
			  country = ?, updated_at = NOW() WHERE id = ?`

	idBytes, err := address.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query,
		address.Street, address.City, address.State, address.ZipCode,
		address.Country, idBytes)
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
func (r *MySQLAddressRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Address, error) {
	var address domain.Address
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, street, city, state, zip_code, country, created_at, updated_at
			  FROM addresses WHERE user_id = ?`

	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var idBytes, userBytes []byte
	err = querier.QueryRowContext(ctx, query, userIDBytes).Scan(
		&idBytes, &userBytes, &address.Street, &address.City,
		&address.State, &address.ZipCode, &address.Country,
		&address.CreatedAt, &address.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get address by user id")
	}

	if err := address.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := address.UserID.UnmarshalBinary(userBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &address, nil
}
