package models

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"food-order-system/internal/apperrors"
)

// OrderStatus represents the fulfillment status of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
)

// PaymentMode represents how an order was paid
type PaymentMode string

const (
	PaymentCash PaymentMode = "cash"
	PaymentUPI  PaymentMode = "upi"
)

// Order represents a persisted order header
type Order struct {
	ID           int       `json:"id"`
	CustomerName string    `json:"customerName"`
	PhoneNumber  *string   `json:"phoneNumber,omitempty"`
	Status       string    `json:"status"`
	Paid         bool      `json:"paid"`
	PaymentMode  *string   `json:"paymentMode,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OrderLine represents one (menu item, quantity) entry within an order,
// joined with its catalog data at read time
type OrderLine struct {
	ID       int
	OrderID  int
	Quantity int

	// Joined menu columns. Nil pointers mean the referenced menu item no
	// longer resolves, which is an invariant violation.
	MenuItemID    *int
	MenuItemName  *string
	MenuItemPrice *float64
}

// MenuItemRef is the catalog slice embedded in an order view line
type MenuItemRef struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderViewItem is one presented order line with its derived subtotal
type OrderViewItem struct {
	ID       int         `json:"id"`
	MenuItem MenuItemRef `json:"menuItem"`
	Quantity int         `json:"quantity"`
	Subtotal float64     `json:"subtotal"`
}

// OrderView is the response shape consumers see: header fields plus lines
// and derived totals. Totals are recomputed from the current catalog price
// on every read and never stored.
type OrderView struct {
	ID           int             `json:"id"`
	CustomerName string          `json:"customerName"`
	PhoneNumber  *string         `json:"phoneNumber,omitempty"`
	Status       string          `json:"status"`
	Paid         bool            `json:"paid"`
	PaymentMode  *string         `json:"paymentMode,omitempty"`
	TotalCost    float64         `json:"totalCost"`
	Items        []OrderViewItem `json:"items"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// OrderItemRequest is one submitted line item
type OrderItemRequest struct {
	MenuItemID int `json:"menuItemId"`
	Quantity   int `json:"quantity"`
}

// CreateOrderRequest represents the request to create a new order. Paid is
// a pointer so a missing field is distinguishable from an explicit false.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	PhoneNumber  *string            `json:"phoneNumber,omitempty"`
	Items        []OrderItemRequest `json:"items"`
	Paid         *bool              `json:"paid"`
	PaymentMode  *string            `json:"paymentMode,omitempty"`
}

// UpdateStatusRequest represents the request to change an order's status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePaymentRequest represents the request to change an order's payment
// information. Paid is a pointer so a missing field is distinguishable from
// an explicit false.
type UpdatePaymentRequest struct {
	Paid        *bool   `json:"paid"`
	PaymentMode *string `json:"paymentMode,omitempty"`
}

// StatusUpdateResponse is returned after a status transition
type StatusUpdateResponse struct {
	ID      int    `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PaymentUpdateResponse is returned after a payment update
type PaymentUpdateResponse struct {
	ID          int     `json:"id"`
	Paid        bool    `json:"paid"`
	PaymentMode *string `json:"paymentMode,omitempty"`
	Message     string  `json:"message"`
}

// Matches 7-15 digits with an optional leading plus; first digit non-zero.
var phoneNumberPattern = regexp.MustCompile(`^\+?[1-9][0-9]{6,14}$`)

// Validate checks the whole request and returns every field problem found,
// not just the first one
func (req *CreateOrderRequest) Validate() []apperrors.FieldError {
	var problems []apperrors.FieldError

	// Length limits count characters, not bytes, so multibyte names behave
	// the same as ASCII ones.
	if utf8.RuneCountInString(req.CustomerName) < 2 {
		problems = append(problems, apperrors.FieldError{
			Field:   "customerName",
			Message: "Customer name must be at least 2 characters long",
		})
	} else if utf8.RuneCountInString(req.CustomerName) > 100 {
		problems = append(problems, apperrors.FieldError{
			Field:   "customerName",
			Message: "Customer name cannot exceed 100 characters",
		})
	}

	if req.PhoneNumber != nil && !phoneNumberPattern.MatchString(*req.PhoneNumber) {
		problems = append(problems, apperrors.FieldError{
			Field:   "phoneNumber",
			Message: "Phone number must be a valid format (7-15 digits, can start with +)",
		})
	}

	if len(req.Items) == 0 {
		problems = append(problems, apperrors.FieldError{
			Field:   "items",
			Message: "Items must be a non-empty array",
		})
	}

	for i, item := range req.Items {
		if item.MenuItemID < 1 {
			problems = append(problems, apperrors.FieldError{
				Field:   fmt.Sprintf("items[%d].menuItemId", i),
				Message: "Menu item ID must be greater than 0",
			})
		}
		if item.Quantity < 1 {
			problems = append(problems, apperrors.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "Quantity must be at least 1",
			})
		} else if item.Quantity > 100 {
			problems = append(problems, apperrors.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "Quantity cannot exceed 100",
			})
		}
	}

	if req.Paid == nil {
		problems = append(problems, apperrors.FieldError{
			Field:   "paid",
			Message: "Paid status must be a boolean",
		})
	}

	if req.PaymentMode != nil {
		if err := validatePaymentMode(*req.PaymentMode); err != nil {
			problems = append(problems, *err)
		}
	}

	return problems
}

// Validate checks that status is one of the two allowed values
func (req *UpdateStatusRequest) Validate() []apperrors.FieldError {
	switch OrderStatus(req.Status) {
	case StatusPending, StatusCompleted:
		return nil
	default:
		return []apperrors.FieldError{{
			Field:   "status",
			Message: `Status must be either "pending" or "completed"`,
		}}
	}
}

// Validate checks that paid is present and paymentMode, if supplied, is valid
func (req *UpdatePaymentRequest) Validate() []apperrors.FieldError {
	var problems []apperrors.FieldError

	if req.Paid == nil {
		problems = append(problems, apperrors.FieldError{
			Field:   "paid",
			Message: "Paid status must be a boolean",
		})
	}

	if req.PaymentMode != nil {
		if err := validatePaymentMode(*req.PaymentMode); err != nil {
			problems = append(problems, *err)
		}
	}

	return problems
}

func validatePaymentMode(mode string) *apperrors.FieldError {
	switch PaymentMode(mode) {
	case PaymentCash, PaymentUPI:
		return nil
	default:
		return &apperrors.FieldError{
			Field:   "paymentMode",
			Message: `Payment mode must be either "cash" or "upi"`,
		}
	}
}

// StoredPaymentMode applies the payment invariant: the mode is kept only
// when the order is paid, and cleared otherwise no matter what was supplied
func StoredPaymentMode(paid bool, mode *string) *string {
	if paid {
		return mode
	}
	return nil
}
