// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/Santosha2001/ecommerce/internal/validation"
)

// CategoryRequest represents a category create or rename payload.
type CategoryRequest struct {
	Name string `json:"name"`
}

// Validate validates the category request.
func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			customValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
	)
}
