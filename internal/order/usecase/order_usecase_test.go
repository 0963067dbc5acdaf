package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/Santosha2001/ecommerce/internal/auth/domain"
	catalogDomain "github.com/Santosha2001/ecommerce/internal/catalog/domain"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
	"github.com/Santosha2001/ecommerce/internal/order/domain"
)

type fakeTxManager struct{}

func (fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeOrderRepo struct {
	orders []*domain.Order
	items  map[uuid.UUID]*domain.OrderItem

	filterResult []*domain.OrderItem
	filterTotal  int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{items: make(map[uuid.UUID]*domain.OrderItem)}
}

func (r *fakeOrderRepo) CreateOrder(_ context.Context, order *domain.Order) error {
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeOrderRepo) CreateItem(_ context.Context, item *domain.OrderItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeOrderRepo) GetItemByID(_ context.Context, id uuid.UUID) (*domain.OrderItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrOrderItemNotFound
	}
	return item, nil
}

func (r *fakeOrderRepo) UpdateItemStatus(_ context.Context, id uuid.UUID, status domain.OrderItemStatus) error {
	item, ok := r.items[id]
	if !ok {
		return domain.ErrOrderItemNotFound
	}
	item.Status = status
	return nil
}

func (r *fakeOrderRepo) ListItemsByUserID(_ context.Context, userID uuid.UUID) ([]*domain.OrderItem, error) {
	var items []*domain.OrderItem
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeOrderRepo) FilterItems(_ context.Context, _ domain.ItemFilter, _, _ int) ([]*domain.OrderItem, int64, error) {
	return r.filterResult, r.filterTotal, nil
}

type fakeProductReader struct {
	products map[uuid.UUID]*catalogDomain.Product
}

func (r *fakeProductReader) GetByID(_ context.Context, id uuid.UUID) (*catalogDomain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, catalogDomain.ErrProductNotFound
	}
	return product, nil
}

func setupOrderUseCase(prices ...int64) (OrderUseCase, *fakeOrderRepo, []uuid.UUID) {
	repo := newFakeOrderRepo()
	reader := &fakeProductReader{products: make(map[uuid.UUID]*catalogDomain.Product)}

	var productIDs []uuid.UUID
	for _, price := range prices {
		id := uuid.Must(uuid.NewV7())
		reader.products[id] = &catalogDomain.Product{ID: id, PriceCents: price}
		productIDs = append(productIDs, id)
	}

	return NewOrderUseCase(fakeTxManager{}, repo, reader, nil), repo, productIDs
}

func buyer() *authDomain.Principal {
	return &authDomain.Principal{ID: uuid.Must(uuid.NewV7()), Email: "buyer@example.com", Role: authDomain.RoleUser}
}

func TestPlaceOrderComputesTotalFromItems(t *testing.T) {
	uc, repo, productIDs := setupOrderUseCase(1000, 250)

	order, err := uc.PlaceOrder(context.Background(), buyer(), PlaceOrderInput{
		Items: []PlaceOrderItemInput{
			{ProductID: productIDs[0], Quantity: 2},
			{ProductID: productIDs[1], Quantity: 4},
		},
	})
	require.NoError(t, err)

	// 2*1000 + 4*250
	assert.Equal(t, int64(3000), order.TotalCents)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(2000), order.Items[0].PriceCents)
	assert.Equal(t, int64(1000), order.Items[1].PriceCents)
	assert.Equal(t, domain.StatusPending, order.Items[0].Status)
	assert.Len(t, repo.orders, 1)
	assert.Len(t, repo.items, 2)
}

func TestPlaceOrderKeepsDeclaredTotal(t *testing.T) {
	uc, _, productIDs := setupOrderUseCase(1000)

	order, err := uc.PlaceOrder(context.Background(), buyer(), PlaceOrderInput{
		TotalCents: 999,
		Items:      []PlaceOrderItemInput{{ProductID: productIDs[0], Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(999), order.TotalCents)
}

func TestPlaceOrderRequiresPrincipal(t *testing.T) {
	uc, _, productIDs := setupOrderUseCase(1000)

	order, err := uc.PlaceOrder(context.Background(), nil, PlaceOrderInput{
		Items: []PlaceOrderItemInput{{ProductID: productIDs[0], Quantity: 1}},
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestPlaceOrderRejectsEmptyAndInvalidLines(t *testing.T) {
	uc, _, productIDs := setupOrderUseCase(1000)

	_, err := uc.PlaceOrder(context.Background(), buyer(), PlaceOrderInput{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = uc.PlaceOrder(context.Background(), buyer(), PlaceOrderInput{
		Items: []PlaceOrderItemInput{{ProductID: productIDs[0], Quantity: 0}},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	uc, repo, _ := setupOrderUseCase()

	order, err := uc.PlaceOrder(context.Background(), buyer(), PlaceOrderInput{
		Items: []PlaceOrderItemInput{{ProductID: uuid.Must(uuid.NewV7()), Quantity: 1}},
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, catalogDomain.ErrProductNotFound)
	assert.Empty(t, repo.orders)
}

func TestUpdateItemStatus(t *testing.T) {
	uc, repo, _ := setupOrderUseCase()

	itemID := uuid.Must(uuid.NewV7())
	repo.items[itemID] = &domain.OrderItem{ID: itemID, Status: domain.StatusPending}

	item, err := uc.UpdateItemStatus(context.Background(), itemID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, item.Status)
}

func TestUpdateItemStatusInvalidValue(t *testing.T) {
	uc, _, _ := setupOrderUseCase()

	item, err := uc.UpdateItemStatus(context.Background(), uuid.Must(uuid.NewV7()), "TELEPORTED")
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestFilterItemsEmptyPageIsNotFound(t *testing.T) {
	uc, _, _ := setupOrderUseCase()

	items, total, err := uc.FilterItems(context.Background(), domain.ItemFilter{}, 0, 50)
	assert.Nil(t, items)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, domain.ErrOrderItemNotFound)
}

func TestFilterItems(t *testing.T) {
	uc, repo, _ := setupOrderUseCase()
	repo.filterResult = []*domain.OrderItem{{ID: uuid.Must(uuid.NewV7()), Status: domain.StatusPending}}
	repo.filterTotal = 12

	items, total, err := uc.FilterItems(context.Background(), domain.ItemFilter{Status: domain.StatusPending}, 0, 50)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(12), total)
}
