package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosha2001/ecommerce/internal/order/domain"
)

func newMockOrderRepo(t *testing.T) (*PostgreSQLOrderRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgreSQLOrderRepository(db), mock
}

func itemColumns() []string {
	return []string{"id", "order_id", "user_id", "product_id", "quantity", "price_cents", "status", "created_at", "updated_at"}
}

func TestBuildPostgresItemFilter(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	itemID := uuid.Must(uuid.NewV7())

	tests := []struct {
		name      string
		filter    domain.ItemFilter
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "empty filter",
			filter:    domain.ItemFilter{},
			wantWhere: "",
			wantArgs:  0,
		},
		{
			name:      "status only",
			filter:    domain.ItemFilter{Status: domain.StatusPending},
			wantWhere: " WHERE status = $1",
			wantArgs:  1,
		},
		{
			name:      "date range",
			filter:    domain.ItemFilter{StartDate: &start, EndDate: &end},
			wantWhere: " WHERE created_at >= $1 AND created_at <= $2",
			wantArgs:  2,
		},
		{
			name:      "all dimensions",
			filter:    domain.ItemFilter{Status: domain.StatusShipped, StartDate: &start, EndDate: &end, ItemID: itemID},
			wantWhere: " WHERE status = $1 AND created_at >= $2 AND created_at <= $3 AND id = $4",
			wantArgs:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildPostgresItemFilter(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func TestPostgreSQLOrderRepository_FilterItems(t *testing.T) {
	repo, mock := newMockOrderRepo(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM order_items WHERE status = $1")).
		WithArgs(domain.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	rows := sqlmock.NewRows(itemColumns()).
		AddRow(
			uuid.Must(uuid.NewV7()).String(), uuid.Must(uuid.NewV7()).String(),
			uuid.Must(uuid.NewV7()).String(), uuid.Must(uuid.NewV7()).String(),
			2, int64(1998), "PENDING", now, now,
		)
	mock.ExpectQuery(regexp.QuoteMeta("FROM order_items WHERE status = $1")).
		WithArgs(domain.StatusPending, 50, 0).
		WillReturnRows(rows)

	items, total, err := repo.FilterItems(context.Background(), domain.ItemFilter{Status: domain.StatusPending}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, items, 1)
	assert.Equal(t, domain.StatusPending, items[0].Status)
	assert.Equal(t, int64(1998), items[0].PriceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLOrderRepository_UpdateItemStatus_NotFound(t *testing.T) {
	repo, mock := newMockOrderRepo(t)

	id := uuid.Must(uuid.NewV7())
	mock.ExpectExec(regexp.QuoteMeta("UPDATE order_items SET status =")).
		WithArgs(domain.StatusConfirmed, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateItemStatus(context.Background(), id, domain.StatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrOrderItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLOrderRepository_CreateOrderAndItem(t *testing.T) {
	repo, mock := newMockOrderRepo(t)

	order := &domain.Order{ID: uuid.Must(uuid.NewV7()), TotalCents: 4500}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(order.ID, order.TotalCents).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateOrder(context.Background(), order))

	item := &domain.OrderItem{
		ID:         uuid.Must(uuid.NewV7()),
		OrderID:    order.ID,
		UserID:     uuid.Must(uuid.NewV7()),
		ProductID:  uuid.Must(uuid.NewV7()),
		Quantity:   3,
		PriceCents: 1500,
		Status:     domain.StatusPending,
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).
		WithArgs(item.ID, item.OrderID, item.UserID, item.ProductID, item.Quantity, item.PriceCents, item.Status).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateItem(context.Background(), item))
	assert.NoError(t, mock.ExpectationsWereMet())
}
