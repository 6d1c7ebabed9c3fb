package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func validOrderRequest() *CreateOrderRequest {
	return &CreateOrderRequest{
		CustomerName: "Asha",
		Items: []OrderItemRequest{
			{MenuItemID: 1, Quantity: 2},
		},
		Paid: boolPtr(false),
	}
}

func TestCreateOrderRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(req *CreateOrderRequest)
		wantErrs int
	}{
		{
			name:     "valid request",
			mutate:   func(req *CreateOrderRequest) {},
			wantErrs: 0,
		},
		{
			name: "customer name too short",
			mutate: func(req *CreateOrderRequest) {
				req.CustomerName = "A"
			},
			wantErrs: 1,
		},
		{
			name: "customer name exactly 2 characters",
			mutate: func(req *CreateOrderRequest) {
				req.CustomerName = "Jo"
			},
			wantErrs: 0,
		},
		{
			name: "single multibyte character name",
			mutate: func(req *CreateOrderRequest) {
				req.CustomerName = "é"
			},
			wantErrs: 1,
		},
		{
			name: "two multibyte character name",
			mutate: func(req *CreateOrderRequest) {
				req.CustomerName = "éé"
			},
			wantErrs: 0,
		},
		{
			name: "hundred multibyte character name",
			mutate: func(req *CreateOrderRequest) {
				req.CustomerName = strings.Repeat("é", 100)
			},
			wantErrs: 0,
		},
		{
			name: "customer name exactly 100 characters",
			mutate: func(req *CreateOrderRequest) {
				req.CustomerName = strings.Repeat("a", 100)
			},
			wantErrs: 0,
		},
		{
			name: "customer name 101 characters",
			mutate: func(req *CreateOrderRequest) {
				req.CustomerName = strings.Repeat("a", 101)
			},
			wantErrs: 1,
		},
		{
			name: "phone number with leading plus",
			mutate: func(req *CreateOrderRequest) {
				req.PhoneNumber = strPtr("+919876543210")
			},
			wantErrs: 0,
		},
		{
			name: "phone number exactly 7 digits",
			mutate: func(req *CreateOrderRequest) {
				req.PhoneNumber = strPtr("1234567")
			},
			wantErrs: 0,
		},
		{
			name: "phone number too short",
			mutate: func(req *CreateOrderRequest) {
				req.PhoneNumber = strPtr("123456")
			},
			wantErrs: 1,
		},
		{
			name: "phone number with letters",
			mutate: func(req *CreateOrderRequest) {
				req.PhoneNumber = strPtr("12345abc")
			},
			wantErrs: 1,
		},
		{
			name: "phone number starting with zero",
			mutate: func(req *CreateOrderRequest) {
				req.PhoneNumber = strPtr("0123456789")
			},
			wantErrs: 1,
		},
		{
			name: "empty items",
			mutate: func(req *CreateOrderRequest) {
				req.Items = nil
			},
			wantErrs: 1,
		},
		{
			name: "quantity zero",
			mutate: func(req *CreateOrderRequest) {
				req.Items[0].Quantity = 0
			},
			wantErrs: 1,
		},
		{
			name: "quantity one",
			mutate: func(req *CreateOrderRequest) {
				req.Items[0].Quantity = 1
			},
			wantErrs: 0,
		},
		{
			name: "quantity one hundred",
			mutate: func(req *CreateOrderRequest) {
				req.Items[0].Quantity = 100
			},
			wantErrs: 0,
		},
		{
			name: "quantity above one hundred",
			mutate: func(req *CreateOrderRequest) {
				req.Items[0].Quantity = 101
			},
			wantErrs: 1,
		},
		{
			name: "menu item id zero",
			mutate: func(req *CreateOrderRequest) {
				req.Items[0].MenuItemID = 0
			},
			wantErrs: 1,
		},
		{
			name: "missing paid field",
			mutate: func(req *CreateOrderRequest) {
				req.Paid = nil
			},
			wantErrs: 1,
		},
		{
			name: "invalid payment mode",
			mutate: func(req *CreateOrderRequest) {
				req.Paid = boolPtr(true)
				req.PaymentMode = strPtr("card")
			},
			wantErrs: 1,
		},
		{
			name: "cash payment mode",
			mutate: func(req *CreateOrderRequest) {
				req.Paid = boolPtr(true)
				req.PaymentMode = strPtr("cash")
			},
			wantErrs: 0,
		},
		{
			name: "upi payment mode",
			mutate: func(req *CreateOrderRequest) {
				req.Paid = boolPtr(true)
				req.PaymentMode = strPtr("upi")
			},
			wantErrs: 0,
		},
		{
			name: "multiple problems reported together",
			mutate: func(req *CreateOrderRequest) {
				req.CustomerName = "A"
				req.Items[0].Quantity = 0
				req.PaymentMode = strPtr("card")
			},
			wantErrs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(req)

			problems := req.Validate()
			if len(problems) != tt.wantErrs {
				t.Errorf("Validate() returned %d problems (%v), want %d", len(problems), problems, tt.wantErrs)
			}
		})
	}
}

func TestCreateOrderRequestValidate_FieldNames(t *testing.T) {
	req := validOrderRequest()
	req.Items = append(req.Items, OrderItemRequest{MenuItemID: 2, Quantity: 0})

	problems := req.Validate()
	if len(problems) != 1 {
		t.Fatalf("expected 1 problem, got %d: %v", len(problems), problems)
	}
	if problems[0].Field != "items[1].quantity" {
		t.Errorf("Field = %q, want %q", problems[0].Field, "items[1].quantity")
	}
}

func TestCreateOrderRequestValidate_PaidOmittedFromJSON(t *testing.T) {
	body := `{"customerName":"Asha","items":[{"menuItemId":1,"quantity":2}],"paymentMode":"cash"}`

	var req CreateOrderRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	problems := req.Validate()
	if len(problems) != 1 {
		t.Fatalf("expected 1 problem, got %d: %v", len(problems), problems)
	}
	if problems[0].Field != "paid" {
		t.Errorf("Field = %q, want %q", problems[0].Field, "paid")
	}
}

func TestUpdateStatusRequestValidate(t *testing.T) {
	tests := []struct {
		status  string
		wantErr bool
	}{
		{"pending", false},
		{"completed", false},
		{"cancelled", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			req := &UpdateStatusRequest{Status: tt.status}
			problems := req.Validate()
			if (len(problems) > 0) != tt.wantErr {
				t.Errorf("Validate() problems = %v, wantErr %v", problems, tt.wantErr)
			}
		})
	}
}

func TestUpdatePaymentRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     *UpdatePaymentRequest
		wantErr bool
	}{
		{
			name:    "paid with cash",
			req:     &UpdatePaymentRequest{Paid: boolPtr(true), PaymentMode: strPtr("cash")},
			wantErr: false,
		},
		{
			name:    "unpaid without mode",
			req:     &UpdatePaymentRequest{Paid: boolPtr(false)},
			wantErr: false,
		},
		{
			name:    "missing paid",
			req:     &UpdatePaymentRequest{PaymentMode: strPtr("cash")},
			wantErr: true,
		},
		{
			name:    "invalid mode",
			req:     &UpdatePaymentRequest{Paid: boolPtr(true), PaymentMode: strPtr("cheque")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.req.Validate()
			if (len(problems) > 0) != tt.wantErr {
				t.Errorf("Validate() problems = %v, wantErr %v", problems, tt.wantErr)
			}
		})
	}
}

func TestStoredPaymentMode(t *testing.T) {
	mode := strPtr("upi")

	if got := StoredPaymentMode(true, mode); got != mode {
		t.Errorf("StoredPaymentMode(true, upi) = %v, want the supplied mode", got)
	}
	if got := StoredPaymentMode(false, mode); got != nil {
		t.Errorf("StoredPaymentMode(false, upi) = %v, want nil", got)
	}
	if got := StoredPaymentMode(true, nil); got != nil {
		t.Errorf("StoredPaymentMode(true, nil) = %v, want nil", got)
	}
}
