package models

import "time"

// Order event types published to the notifications exchange
const (
	EventOrderCreated   = "order_created"
	EventStatusUpdated  = "status_updated"
	EventPaymentUpdated = "payment_updated"
)

// OrderEventMessage is the notification published whenever an order is
// created or one of its lifecycle fields changes. It is informational only:
// the HTTP response never depends on it.
type OrderEventMessage struct {
	Event        string    `json:"event"`
	OrderID      int       `json:"order_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Status       string    `json:"status,omitempty"`
	Paid         *bool     `json:"paid,omitempty"`
	PaymentMode  *string   `json:"payment_mode,omitempty"`
	TotalCost    float64   `json:"total_cost,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewOrderCreatedMessage builds the notification for a freshly created order
func NewOrderCreatedMessage(view *OrderView) *OrderEventMessage {
	return &OrderEventMessage{
		Event:        EventOrderCreated,
		OrderID:      view.ID,
		CustomerName: view.CustomerName,
		Status:       view.Status,
		Paid:         &view.Paid,
		PaymentMode:  view.PaymentMode,
		TotalCost:    view.TotalCost,
		Timestamp:    time.Now().UTC(),
	}
}

// NewStatusUpdatedMessage builds the notification for a status transition
func NewStatusUpdatedMessage(orderID int, status string) *OrderEventMessage {
	return &OrderEventMessage{
		Event:     EventStatusUpdated,
		OrderID:   orderID,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
}

// NewPaymentUpdatedMessage builds the notification for a payment change
func NewPaymentUpdatedMessage(orderID int, paid bool, mode *string) *OrderEventMessage {
	return &OrderEventMessage{
		Event:       EventPaymentUpdated,
		OrderID:     orderID,
		Paid:        &paid,
		PaymentMode: mode,
		Timestamp:   time.Now().UTC(),
	}
}
