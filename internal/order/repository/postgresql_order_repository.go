// Package repository provides data persistence implementations for orders.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/database"
	"github.com/Santosha2001/ecommerce/internal/order/domain"

	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
)

// PostgreSQLOrderRepository handles order persistence for PostgreSQL
type PostgreSQLOrderRepository struct {
	db *sql.DB
}

// NewPostgreSQLOrderRepository creates a new PostgreSQLOrderRepository
func NewPostgreSQLOrderRepository(db *sql.DB) *PostgreSQLOrderRepository {
	return &PostgreSQLOrderRepository{
		db: db,
	}
}

const postgresItemColumns = `id, order_id, user_id, product_id, quantity, price_cents, status, created_at, updated_at`

// CreateOrder inserts an order row
func (r *PostgreSQLOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO orders (id, total_cents, created_at) VALUES ($1, $2, NOW())`

	_, err := querier.ExecContext(ctx, query, order.ID, order.TotalCents)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}
	return nil
}

// CreateItem inserts a single order item row
func (r *PostgreSQLOrderRepository) CreateItem(ctx context.Context, item *domain.OrderItem) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO order_items (id, order_id, user_id, product_id, quantity, price_cents, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		item.ID, item.OrderID, item.UserID, item.ProductID,
		item.Quantity, item.PriceCents, item.Status)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order item")
	}
	return nil
}

// GetItemByID retrieves an order item by ID
func (r *PostgreSQLOrderRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*domain.OrderItem, error) {
	var item domain.OrderItem
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresItemColumns + ` FROM order_items WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.OrderID, &item.UserID, &item.ProductID,
		&item.Quantity, &item.PriceCents, &item.Status, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderItemNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get order item by id")
	}

	return &item, nil
}

// UpdateItemStatus changes the fulfillment status of an order item
func (r *PostgreSQLOrderRepository) UpdateItemStatus(ctx context.Context, id uuid.UUID, status domain.OrderItemStatus) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE order_items SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, status, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update order item status")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrOrderItemNotFound
	}
	return nil
}

// ListItemsByUserID retrieves all items ever ordered by a user, newest first
func (r *PostgreSQLOrderRepository) ListItemsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.OrderItem, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresItemColumns + ` FROM order_items
			  WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list order items by user")
	}
	defer rows.Close()

	return collectItems(rows)
}

// FilterItems retrieves order items matching the filter with pagination,
// along with the total match count.
func (r *PostgreSQLOrderRepository) FilterItems(ctx context.Context, filter domain.ItemFilter, offset, limit int) ([]*domain.OrderItem, int64, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildPostgresItemFilter(filter)

	countQuery := `SELECT COUNT(*) FROM order_items` + where
	var total int64
	if err := querier.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count order items")
	}

	query := fmt.Sprintf(`SELECT `+postgresItemColumns+` FROM order_items%s
			  ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to filter order items")
	}
	defer rows.Close()

	items, err := collectItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// buildPostgresItemFilter builds the WHERE clause and arguments for a filter.
func buildPostgresItemFilter(filter domain.ItemFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if filter.ItemID != uuid.Nil {
		args = append(args, filter.ItemID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// collectItems scans all rows into order items.
func collectItems(rows *sql.Rows) ([]*domain.OrderItem, error) {
	var items []*domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.UserID, &item.ProductID,
			&item.Quantity, &item.PriceCents, &item.Status, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan order item")
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate order items")
	}
	return items, nil
}
