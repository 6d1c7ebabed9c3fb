package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/semaphore"

	"food-order-system/internal/apperrors"
	"food-order-system/internal/database"
	"food-order-system/internal/logger"
	"food-order-system/internal/messaging"
	"food-order-system/internal/models"
)

// Service implements order creation, listing and lifecycle transitions
type Service struct {
	db        *database.DB
	publisher *messaging.Publisher
	logger    *logger.Logger
	sem       *semaphore.Weighted
}

// NewService creates a new order service. The publisher may be nil, in which
// case order event notifications are skipped. maxConcurrent bounds how many
// order creations run at once.
func NewService(db *database.DB, publisher *messaging.Publisher, log *logger.Logger, maxConcurrent int) *Service {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Service{
		db:        db,
		publisher: publisher,
		logger:    log,
		sem:       semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// CreateOrder validates the request, checks every referenced menu item
// exists, persists the header and lines in one transaction, then re-reads
// the order with joined menu data and presents it. On any failure inside the
// transaction nothing is persisted.
func (s *Service) CreateOrder(ctx context.Context, req *models.CreateOrderRequest, requestID string) (*models.OrderView, error) {
	if problems := req.Validate(); len(problems) > 0 {
		return nil, apperrors.NewValidationError(problems)
	}

	distinct := distinctMenuItemIDs(req.Items)

	var found int
	if err := s.db.QueryRow(ctx, database.CountMenuItemsByIDSQL, distinct).Scan(&found); err != nil {
		return nil, fmt.Errorf("failed to look up menu items: %w", err)
	}
	// Cardinality comparison only: it cannot report which id is missing.
	if found != len(distinct) {
		return nil, apperrors.NewValidationMessage("One or more menu items do not exist")
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to acquire creation slot: %w", err)
	}
	defer s.sem.Release(1)

	orderID, err := s.insertOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	view, err := s.getOrderView(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, models.NewOrderCreatedMessage(view), requestID)

	return view, nil
}

// insertOrder persists the order header and all its lines atomically
func (s *Service) insertOrder(ctx context.Context, req *models.CreateOrderRequest) (int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	mode := models.StoredPaymentMode(*req.Paid, req.PaymentMode)

	var orderID int
	err = tx.QueryRow(ctx, database.InsertOrderSQL,
		req.CustomerName, req.PhoneNumber, string(models.StatusPending), *req.Paid, mode).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range req.Items {
		if _, err := tx.Exec(ctx, database.InsertOrderItemSQL, orderID, item.MenuItemID, item.Quantity); err != nil {
			return 0, fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit order transaction: %w", err)
	}

	return orderID, nil
}

// ListOrders returns every order oldest first, with lines and totals
func (s *Service) ListOrders(ctx context.Context, requestID string) ([]*models.OrderView, error) {
	rows, err := s.db.Query(ctx, database.ListOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var headers []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.PhoneNumber, &o.Status, &o.Paid, &o.PaymentMode, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		headers = append(headers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order rows: %w", err)
	}

	views := make([]*models.OrderView, 0, len(headers))
	if len(headers) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(headers))
	for _, h := range headers {
		ids = append(ids, int64(h.ID))
	}

	linesByOrder, err := s.getOrderLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, h := range headers {
		view, err := PresentOrder(h, linesByOrder[h.ID])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// UpdateStatus sets an order's status. There is deliberately no transition
// guard: completed orders may go back to pending and setting the current
// value is an allowed no-op.
func (s *Service) UpdateStatus(ctx context.Context, orderID int, req *models.UpdateStatusRequest, requestID string) (*models.StatusUpdateResponse, error) {
	if problems := req.Validate(); len(problems) > 0 {
		return nil, apperrors.NewValidationError(problems)
	}

	var (
		id     int
		status string
	)
	err := s.db.QueryRow(ctx, database.UpdateOrderStatusSQL, req.Status, orderID).Scan(&id, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.publishEvent(ctx, models.NewStatusUpdatedMessage(id, status), requestID)

	return &models.StatusUpdateResponse{
		ID:      id,
		Status:  status,
		Message: "Order status updated successfully",
	}, nil
}

// UpdatePayment sets an order's paid flag and payment mode. The stored mode
// is cleared whenever paid is false, regardless of what was supplied.
func (s *Service) UpdatePayment(ctx context.Context, orderID int, req *models.UpdatePaymentRequest, requestID string) (*models.PaymentUpdateResponse, error) {
	if problems := req.Validate(); len(problems) > 0 {
		return nil, apperrors.NewValidationError(problems)
	}

	mode := models.StoredPaymentMode(*req.Paid, req.PaymentMode)

	var (
		id         int
		paid       bool
		storedMode *string
	)
	err := s.db.QueryRow(ctx, database.UpdateOrderPaymentSQL, *req.Paid, mode, orderID).Scan(&id, &paid, &storedMode)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order payment: %w", err)
	}

	s.publishEvent(ctx, models.NewPaymentUpdatedMessage(id, paid, storedMode), requestID)

	return &models.PaymentUpdateResponse{
		ID:          id,
		Paid:        paid,
		PaymentMode: storedMode,
		Message:     "Order payment information updated successfully",
	}, nil
}

// HealthCheck reports whether the database is reachable
func (s *Service) HealthCheck(ctx context.Context) bool {
	if err := s.db.Ping(ctx); err != nil {
		s.logger.Error("health_check_failed", "Database ping failed", "", err, nil)
		return false
	}
	return true
}

// getOrderView re-reads a single order with joined menu data and presents it
func (s *Service) getOrderView(ctx context.Context, orderID int) (*models.OrderView, error) {
	var h models.Order
	err := s.db.QueryRow(ctx, database.GetOrderSQL, orderID).Scan(
		&h.ID, &h.CustomerName, &h.PhoneNumber, &h.Status, &h.Paid, &h.PaymentMode, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read order %d: %w", orderID, err)
	}

	linesByOrder, err := s.getOrderLines(ctx, []int64{int64(orderID)})
	if err != nil {
		return nil, err
	}

	return PresentOrder(h, linesByOrder[orderID])
}

// getOrderLines loads the joined lines for a set of orders in one read
func (s *Service) getOrderLines(ctx context.Context, orderIDs []int64) (map[int][]models.OrderLine, error) {
	rows, err := s.db.Query(ctx, database.GetOrderLinesSQL, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	linesByOrder := make(map[int][]models.OrderLine)
	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.Quantity, &line.MenuItemID, &line.MenuItemName, &line.MenuItemPrice); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		linesByOrder[line.OrderID] = append(linesByOrder[line.OrderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order lines: %w", err)
	}

	return linesByOrder, nil
}

// publishEvent publishes an order notification on a best-effort basis: the
// order is already persisted, so a broker failure only gets logged
func (s *Service) publishEvent(ctx context.Context, msg *models.OrderEventMessage, requestID string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, msg); err != nil {
		s.logger.Error("notification_publish_failed", "Failed to publish order event", requestID, err, map[string]interface{}{
			"event":    msg.Event,
			"order_id": msg.OrderID,
		})
	}
}

// distinctMenuItemIDs collapses duplicate ids while preserving first-seen order
func distinctMenuItemIDs(items []models.OrderItemRequest) []int64 {
	seen := make(map[int]bool, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if !seen[item.MenuItemID] {
			seen[item.MenuItemID] = true
			ids = append(ids, int64(item.MenuItemID))
		}
	}
	return ids
}
