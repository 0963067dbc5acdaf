package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/database"
	"github.com/Santosha2001/ecommerce/internal/order/domain"

	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
)

// MySQLOrderRepository handles order persistence for MySQL
type MySQLOrderRepository struct {
	db *sql.DB
}

// NewMySQLOrderRepository creates a new MySQLOrderRepository
func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{
		db: db,
	}
}

const mysqlItemColumns = `id, order_id, user_id, product_id, quantity, price_cents, status, created_at, updated_at`

// CreateOrder inserts an order row
func (r *MySQLOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO orders (id, total_cents, created_at) VALUES (?, ?, NOW())`

	idBytes, err := order.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query, idBytes, order.TotalCents)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}
	return nil
}

// CreateItem inserts a single order item row
func (r *MySQLOrderRepository) CreateItem(ctx context.Context, item *domain.OrderItem) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO order_items (id, order_id, user_id, product_id, quantity, price_cents, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	ids := make([][]byte, 4)
	for i, id := range []uuid.UUID{item.ID, item.OrderID, item.UserID, item.ProductID} {
		bytes, err := id.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal UUID")
		}
		ids[i] = bytes
	}

	_, err := querier.ExecContext(ctx, query,
		ids[0], ids[1], ids[2], ids[3],
		item.Quantity, item.PriceCents, item.Status)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order item")
	}
	return nil
}

// GetItemByID retrieves an order item by ID
func (r *MySQLOrderRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*domain.OrderItem, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlItemColumns + ` FROM order_items WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	item, err := scanMySQLItem(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderItemNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get order item by id")
	}

	return item, nil
}

// UpdateItemStatus changes the fulfillment status of an order item
func (r *MySQLOrderRepository) UpdateItemStatus(ctx context.Context, id uuid.UUID, status domain.OrderItemStatus) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE order_items SET status = ?, updated_at = NOW() WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, status, idBytes)
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
func (r *MySQLOrderRepository) ListItemsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.OrderItem, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlItemColumns + ` FROM order_items
			  WHERE user_id = ? ORDER BY created_at DESC`

	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	rows, err := querier.QueryContext(ctx, query, userIDBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list order items by user")
	}
	defer rows.Close()

	return collectMySQLItems(rows)
}

// FilterItems retrieves order items matching the filter with pagination,
// along with the total match count.
func (r *MySQLOrderRepository) FilterItems(ctx context.Context, filter domain.ItemFilter, offset, limit int) ([]*domain.OrderItem, int64, error) {
	querier := database.GetTx(ctx, r.db)

	where, args, err := buildMySQLItemFilter(filter)
	if err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) FROM order_items` + where
	var total int64
	if err := querier.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count order items")
	}

	query := `SELECT ` + mysqlItemColumns + ` FROM order_items` + where +
		` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to filter order items")
	}
	defer rows.Close()

	items, err := collectMySQLItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// buildMySQLItemFilter builds the WHERE clause and arguments for a filter.
func buildMySQLItemFilter(filter domain.ItemFilter) (string, []any, error) {
	var conditions []string
	var args []any

	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.ItemID != uuid.Nil {
		idBytes, err := filter.ItemID.MarshalBinary()
		if err != nil {
			return "", nil, apperrors.Wrap(err, "failed to marshal UUID")
		}
		conditions = append(conditions, "id = ?")
		args = append(args, idBytes)
	}

	if len(conditions) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}

// scanMySQLItem scans an order item row, converting BINARY(16) ids back to UUIDs.
func scanMySQLItem(row interface{ Scan(dest ...any) error }) (*domain.OrderItem, error) {
	var item domain.OrderItem
	var idBytes, orderIDBytes, userIDBytes, productIDBytes []byte

	err := row.Scan(
		&idBytes, &orderIDBytes, &userIDBytes, &productIDBytes,
		&item.Quantity, &item.PriceCents, &item.Status, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, pair := range []struct {
		dst *uuid.UUID
		src []byte
	}{
		{&item.ID, idBytes},
		{&item.OrderID, orderIDBytes},
		{&item.UserID, userIDBytes},
		{&item.ProductID, productIDBytes},
	} {
		if err := pair.dst.UnmarshalBinary(pair.src); err != nil {
			return nil, err
		}
	}

	return &item, nil
}

func collectMySQLItems(rows *sql.Rows) ([]*domain.OrderItem, error) {
	var items []*domain.OrderItem
	for rows.Next() {
		item, err := scanMySQLItem(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan order item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate order items")
	}
	return items, nil
}
