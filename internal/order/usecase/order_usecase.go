// Package usecase implements the order business logic: placement, status
// transitions and back-office filtering.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/Santosha2001/ecommerce/internal/auth/domain"
	catalogDomain "github.com/Santosha2001/ecommerce/internal/catalog/domain"
	"github.com/Santosha2001/ecommerce/internal/database"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
	"github.com/Santosha2001/ecommerce/internal/metrics"
	"github.com/Santosha2001/ecommerce/internal/order/domain"
)

// PlaceOrderItemInput is one product line of an order request.
type PlaceOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PlaceOrderInput contains the input data for placing an order. TotalCents
// is the client-declared total; when zero or negative the total is computed
// from the item prices instead.
type PlaceOrderInput struct {
	TotalCents int64
	Items      []PlaceOrderItemInput
}

// OrderUseCase defines the interface for order business logic operations
type OrderUseCase interface {
	PlaceOrder(ctx context.Context, principal *authDomain.Principal, input PlaceOrderInput) (*domain.Order, error)
	UpdateItemStatus(ctx context.Context, itemID uuid.UUID, status string) (*domain.OrderItem, error)
	FilterItems(ctx context.Context, filter domain.ItemFilter, offset, limit int) ([]*domain.OrderItem, int64, error)
}

// OrderRepository interface defines order repository operations
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	CreateItem(ctx context.Context, item *domain.OrderItem) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*domain.OrderItem, error)
	UpdateItemStatus(ctx context.Context, id uuid.UUID, status domain.OrderItemStatus) error
	ListItemsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.OrderItem, error)
	FilterItems(ctx context.Context, filter domain.ItemFilter, offset, limit int) ([]*domain.OrderItem, int64, error)
}

// ProductReader is the catalog lookup needed to price order lines.
type ProductReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*catalogDomain.Product, error)
}

// orderUseCase handles order-related business logic
type orderUseCase struct {
	txManager       database.TxManager
	orderRepo       OrderRepository
	productReader   ProductReader
	businessMetrics *metrics.BusinessMetrics
}

// NewOrderUseCase creates a new OrderUseCase. businessMetrics may be nil.
func NewOrderUseCase(
	txManager database.TxManager,
	orderRepo OrderRepository,
	productReader ProductReader,
	businessMetrics *metrics.BusinessMetrics,
) OrderUseCase {
	return &orderUseCase{
		txManager:       txManager,
		orderRepo:       orderRepo,
		productReader:   productReader,
		businessMetrics: businessMetrics,
	}
}

// PlaceOrder creates an order with its items in a single transaction. The
// route is publicly reachable, but placement still requires a resolved
// principal because every item is attributed to the buying account.
func (uc *orderUseCase) PlaceOrder(ctx context.Context, principal *authDomain.Principal, input PlaceOrderInput) (*domain.Order, error) {
	if principal == nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "authentication required to place an order")
	}
	if len(input.Items) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "order must contain at least one item")
	}

	order := &domain.Order{
		ID: uuid.Must(uuid.NewV7()),
	}

	var computedTotal int64
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "item quantity must be at least 1")
		}

		product, err := uc.productReader.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		// Items are priced from the catalog at placement time; the client
		// never dictates per-line prices.
		price := product.PriceCents * int64(line.Quantity)
		computedTotal += price

		order.Items = append(order.Items, &domain.OrderItem{
			ID:         uuid.Must(uuid.NewV7()),
			OrderID:    order.ID,
			UserID:     principal.ID,
			ProductID:  product.ID,
			Quantity:   line.Quantity,
			PriceCents: price,
			Status:     domain.StatusPending,
		})
	}

	order.TotalCents = computedTotal
	if input.TotalCents > 0 {
		order.TotalCents = input.TotalCents
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.orderRepo.CreateOrder(ctx, order); err != nil {
			return err
		}
		for _, item := range order.Items {
			if err := uc.orderRepo.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.businessMetrics.RecordOrderPlaced(ctx)

	return order, nil
}

// UpdateItemStatus changes the fulfillment status of an order item and
// returns the updated item.
func (uc *orderUseCase) UpdateItemStatus(ctx context.Context, itemID uuid.UUID, status string) (*domain.OrderItem, error) {
	parsed, err := domain.ParseOrderItemStatus(status)
	if err != nil {
		return nil, err
	}

	if err := uc.orderRepo.UpdateItemStatus(ctx, itemID, parsed); err != nil {
		return nil, err
	}

	return uc.orderRepo.GetItemByID(ctx, itemID)
}

// FilterItems retrieves order items matching the filter with pagination.
// An empty page is reported as not found.
func (uc *orderUseCase) FilterItems(ctx context.Context, filter domain.ItemFilter, offset, limit int) ([]*domain.OrderItem, int64, error) {
	items, total, err := uc.orderRepo.FilterItems(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	if len(items) == 0 {
		return nil, 0, domain.ErrOrderItemNotFound
	}
	return items, total, nil
}
