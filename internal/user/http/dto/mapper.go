package dto

import (
	"github.com/Santosha2001/ecommerce/internal/user/domain"
	"github.com/Santosha2001/ecommerce/internal/user/usecase"
)

// ToUserResponse converts a domain user to its response representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        string(user.Role),
		CreatedAt:   user.CreatedAt,
	}
}

// ToProfileResponse converts a profile to its response representation.
func ToProfileResponse(profile *usecase.Profile) ProfileResponse {
	response := ProfileResponse{
		User:   ToUserResponse(profile.User),
		Orders: make([]OrderHistoryItemResponse, 0, len(profile.Orders)),
	}

	if profile.Address != nil {
		response.Address = &AddressResponse{
			Street:  profile.Address.Street,
			City:    profile.Address.City,
			State:   profile.Address.State,
			ZipCode: profile.Address.ZipCode,
			Country: profile.Address.Country,
		}
	}

	for _, item := range profile.Orders {
		response.Orders = append(response.Orders, OrderHistoryItemResponse{
			ID:         item.ID.String(),
			ProductID:  item.ProductID.String(),
			Quantity:   item.Quantity,
			PriceCents: item.PriceCents,
			Status:     string(item.Status),
			CreatedAt:  item.CreatedAt,
		})
	}

	return response
}

// ToListUsersResponse converts users to a paginated listing response.
func ToListUsersResponse(users []*domain.User, offset, limit int) ListUsersResponse {
	response := ListUsersResponse{
		Users:  make([]UserResponse, 0, len(users)),
		Offset: offset,
		Limit:  limit,
	}
	for _, user := range users {
		response.Users = append(response.Users, ToUserResponse(user))
	}
	return response
}
