package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"food-order-system/internal/apperrors"
	"food-order-system/internal/models"
)

// PresentOrder maps a persisted order header and its joined lines into the
// response shape consumers see.
//
// Rounding policy: every subtotal is price * quantity rounded half away from
// zero to exactly 2 decimal places, and the total is the sum of those
// already-rounded subtotals, rounded again to 2 places. The ordering
// (sum-of-rounded, not round-of-sum) is load-bearing for existing consumers
// and must not change.
//
// A line whose menu item does not resolve is a data-integrity violation and
// fails the whole presentation rather than being dropped.
func PresentOrder(header models.Order, lines []models.OrderLine) (*models.OrderView, error) {
	items := make([]models.OrderViewItem, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		if line.MenuItemID == nil || line.MenuItemName == nil || line.MenuItemPrice == nil {
			return nil, fmt.Errorf("order %d line %d: %w", header.ID, line.ID, apperrors.ErrDanglingOrderLine)
		}

		subtotal := decimal.NewFromFloat(*line.MenuItemPrice).
			Mul(decimal.NewFromInt(int64(line.Quantity))).
			Round(2)
		total = total.Add(subtotal)

		items = append(items, models.OrderViewItem{
			ID: line.ID,
			MenuItem: models.MenuItemRef{
				ID:    *line.MenuItemID,
				Name:  *line.MenuItemName,
				Price: *line.MenuItemPrice,
			},
			Quantity: line.Quantity,
			Subtotal: subtotal.InexactFloat64(),
		})
	}

	return &models.OrderView{
		ID:           header.ID,
		CustomerName: header.CustomerName,
		PhoneNumber:  header.PhoneNumber,
		Status:       header.Status,
		Paid:         header.Paid,
		PaymentMode:  header.PaymentMode,
		TotalCost:    total.Round(2).InexactFloat64(),
		Items:        items,
		CreatedAt:    header.CreatedAt,
		UpdatedAt:    header.UpdatedAt,
	}, nil
}
