package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"food-order-system/internal/logger"
	"food-order-system/internal/messaging"
	"food-order-system/internal/models"
)

// Subscriber consumes order event notifications and prints them for staff
type Subscriber struct {
	consumer *messaging.Consumer
	logger   *logger.Logger
}

// NewSubscriber creates a new notification subscriber
func NewSubscriber(consumer *messaging.Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   log,
	}
}

// Start consumes notifications until the context is cancelled
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()
	s.logger.Info("service_started", "Notification subscriber started", requestID, nil)

	err := s.consumer.StartConsuming(ctx, s.handleEvent)
	if err != nil && ctx.Err() != nil {
		// Context cancellation is a normal shutdown.
		return nil
	}
	return err
}

// handleEvent parses and displays one order event
func (s *Subscriber) handleEvent(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var event models.OrderEventMessage
	if err := json.Unmarshal(body, &event); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse order event", requestID, err, nil)
		return fmt.Errorf("failed to parse order event: %w", err)
	}

	fmt.Println(formatEvent(&event))

	s.logger.Debug("notification_displayed", "Order event displayed", requestID, map[string]interface{}{
		"event":    event.Event,
		"order_id": event.OrderID,
	})

	return nil
}

// formatEvent renders a human-readable line for one order event
func formatEvent(event *models.OrderEventMessage) string {
	timestamp := event.Timestamp.Format("2006-01-02 15:04:05")

	switch event.Event {
	case models.EventOrderCreated:
		return fmt.Sprintf("[%s] New order #%d from %s, total %.2f",
			timestamp, event.OrderID, event.CustomerName, event.TotalCost)
	case models.EventStatusUpdated:
		return fmt.Sprintf("[%s] Order #%d is now %s",
			timestamp, event.OrderID, event.Status)
	case models.EventPaymentUpdated:
		paid := event.Paid != nil && *event.Paid
		if paid && event.PaymentMode != nil {
			return fmt.Sprintf("[%s] Order #%d marked paid (%s)",
				timestamp, event.OrderID, *event.PaymentMode)
		}
		if paid {
			return fmt.Sprintf("[%s] Order #%d marked paid", timestamp, event.OrderID)
		}
		return fmt.Sprintf("[%s] Order #%d marked unpaid", timestamp, event.OrderID)
	default:
		return fmt.Sprintf("[%s] Order #%d: %s", timestamp, event.OrderID, event.Event)
	}
}
