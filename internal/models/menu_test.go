package models

import "testing"

func TestCreateMenuItemRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateMenuItemRequest
		wantErr bool
	}{
		{
			name:    "valid item",
			req:     CreateMenuItemRequest{Name: "Tea", Price: 30.00},
			wantErr: false,
		},
		{
			name:    "missing name",
			req:     CreateMenuItemRequest{Price: 30.00},
			wantErr: true,
		},
		{
			name:    "zero price rejected as missing",
			req:     CreateMenuItemRequest{Name: "Tea"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
