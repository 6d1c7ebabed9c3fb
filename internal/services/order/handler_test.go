package order

import "testing"

func TestParseOrderPath(t *testing.T) {
	tests := []struct {
		path       string
		wantID     int
		wantAction string
		wantErr    bool
	}{
		{"/api/orders/1/status", 1, "status", false},
		{"/api/orders/42/payment", 42, "payment", false},
		{"/api/orders/1/status/", 1, "status", false},
		{"/api/orders/abc/status", 0, "", true},
		{"/api/orders/0/status", 0, "", true},
		{"/api/orders/-5/payment", 0, "", true},
		{"/api/orders/1/refund", 0, "", true},
		{"/api/orders/1", 0, "", true},
		{"/api/orders/1/status/extra", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			id, action, err := parseOrderPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseOrderPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if id != tt.wantID || action != tt.wantAction {
				t.Errorf("parseOrderPath(%q) = (%d, %q), want (%d, %q)", tt.path, id, action, tt.wantID, tt.wantAction)
			}
		})
	}
}
