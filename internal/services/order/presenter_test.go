package order

import (
	"errors"
	"testing"
	"time"

	"food-order-system/internal/apperrors"
	"food-order-system/internal/models"
)

func intPtr(v int) *int         { return &v }
func strPtr(s string) *string   { return &s }
func fltPtr(v float64) *float64 { return &v }

func testHeader() models.Order {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return models.Order{
		ID:           1,
		CustomerName: "Asha",
		Status:       string(models.StatusPending),
		Paid:         true,
		PaymentMode:  strPtr("cash"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func line(id int, menuID int, name string, price float64, quantity int) models.OrderLine {
	return models.OrderLine{
		ID:            id,
		OrderID:       1,
		Quantity:      quantity,
		MenuItemID:    intPtr(menuID),
		MenuItemName:  strPtr(name),
		MenuItemPrice: fltPtr(price),
	}
}

func TestPresentOrder_Totals(t *testing.T) {
	view, err := PresentOrder(testHeader(), []models.OrderLine{
		line(10, 1, "Tea", 30.00, 2),
		line(11, 2, "Samosa", 25.00, 1),
	})
	if err != nil {
		t.Fatalf("PresentOrder returned error: %v", err)
	}

	if len(view.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(view.Items))
	}
	if view.Items[0].Subtotal != 60.00 {
		t.Errorf("first subtotal = %v, want 60.00", view.Items[0].Subtotal)
	}
	if view.Items[1].Subtotal != 25.00 {
		t.Errorf("second subtotal = %v, want 25.00", view.Items[1].Subtotal)
	}
	if view.TotalCost != 85.00 {
		t.Errorf("totalCost = %v, want 85.00", view.TotalCost)
	}
	if view.Status != "pending" {
		t.Errorf("status = %q, want %q", view.Status, "pending")
	}
}

func TestPresentOrder_RoundsHalfAwayFromZero(t *testing.T) {
	// 1.115 rounds up to 1.12, not down to 1.11.
	view, err := PresentOrder(testHeader(), []models.OrderLine{
		line(10, 1, "Special", 1.115, 1),
	})
	if err != nil {
		t.Fatalf("PresentOrder returned error: %v", err)
	}
	if view.Items[0].Subtotal != 1.12 {
		t.Errorf("subtotal = %v, want 1.12", view.Items[0].Subtotal)
	}
}

func TestPresentOrder_SumsRoundedSubtotals(t *testing.T) {
	// Each 0.014 subtotal rounds to 0.01 before summing, so the total is
	// 0.02. Rounding the raw sum (0.028) would give 0.03 instead.
	view, err := PresentOrder(testHeader(), []models.OrderLine{
		line(10, 1, "A", 0.014, 1),
		line(11, 2, "B", 0.014, 1),
	})
	if err != nil {
		t.Fatalf("PresentOrder returned error: %v", err)
	}
	if view.TotalCost != 0.02 {
		t.Errorf("totalCost = %v, want 0.02 (sum of rounded subtotals)", view.TotalCost)
	}
}

func TestPresentOrder_QuantityMultiplication(t *testing.T) {
	// 3 x 0.335 = 1.005 which rounds up to 1.01.
	view, err := PresentOrder(testHeader(), []models.OrderLine{
		line(10, 1, "C", 0.335, 3),
	})
	if err != nil {
		t.Fatalf("PresentOrder returned error: %v", err)
	}
	if view.Items[0].Subtotal != 1.01 {
		t.Errorf("subtotal = %v, want 1.01", view.Items[0].Subtotal)
	}
	if view.TotalCost != 1.01 {
		t.Errorf("totalCost = %v, want 1.01", view.TotalCost)
	}
}

func TestPresentOrder_EmptyLines(t *testing.T) {
	view, err := PresentOrder(testHeader(), nil)
	if err != nil {
		t.Fatalf("PresentOrder returned error: %v", err)
	}
	if view.TotalCost != 0 {
		t.Errorf("totalCost = %v, want 0", view.TotalCost)
	}
	if view.Items == nil {
		t.Errorf("items should be an empty slice, not nil")
	}
}

func TestPresentOrder_DanglingLineFails(t *testing.T) {
	dangling := models.OrderLine{ID: 10, OrderID: 1, Quantity: 1}

	_, err := PresentOrder(testHeader(), []models.OrderLine{dangling})
	if !errors.Is(err, apperrors.ErrDanglingOrderLine) {
		t.Fatalf("expected ErrDanglingOrderLine, got %v", err)
	}
}
