package dto

import "github.com/Santosha2001/ecommerce/internal/order/domain"

// ToOrderItemResponse converts a domain order item to its response representation.
func ToOrderItemResponse(item *domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:         item.ID.String(),
		OrderID:    item.OrderID.String(),
		UserID:     item.UserID.String(),
		ProductID:  item.ProductID.String(),
		Quantity:   item.Quantity,
		PriceCents: item.PriceCents,
		Status:     string(item.Status),
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

// ToOrderResponse converts a placed order to its response representation.
func ToOrderResponse(order *domain.Order) OrderResponse {
	response := OrderResponse{
		ID:         order.ID.String(),
		TotalCents: order.TotalCents,
		CreatedAt:  order.CreatedAt,
		Items:      make([]OrderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		response.Items = append(response.Items, ToOrderItemResponse(item))
	}
	return response
}

// ToFilterItemsResponse converts order items to a paginated listing response.
func ToFilterItemsResponse(items []*domain.OrderItem, total int64, offset, limit int) FilterItemsResponse {
	response := FilterItemsResponse{
		Items:  make([]OrderItemResponse, 0, len(items)),
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}
	for _, item := range items {
		response.Items = append(response.Items, ToOrderItemResponse(item))
	}
	return response
}
