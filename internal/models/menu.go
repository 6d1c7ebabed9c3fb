package models

import (
	"time"

	"food-order-system/internal/apperrors"
)

var errNameAndPriceRequired = apperrors.NewValidationMessage("Name and price are required")

// MenuItem represents one orderable catalog entry
type MenuItem struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateMenuItemRequest represents the request to add a menu item
type CreateMenuItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Validate checks that name and price are present. The check is deliberately
// loose: a zero price is rejected as missing, nothing more is enforced.
func (req *CreateMenuItemRequest) Validate() error {
	if req.Name == "" || req.Price == 0 {
		return errNameAndPriceRequired
	}
	return nil
}
