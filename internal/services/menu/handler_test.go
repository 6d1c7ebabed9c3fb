package menu

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"food-order-system/internal/logger"
)

func TestWithLoggingInjectsRequestID(t *testing.T) {
	h := NewHandler(nil, logger.New("test"))

	var seen string
	wrapped := h.withLogging(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFrom(r)
		w.WriteHeader(http.StatusOK)
	})

	wrapped(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/menu", nil))

	if seen == "" {
		t.Fatal("handler did not receive the request id generated by the middleware")
	}
}

func TestRequestIDFromWithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	if got := requestIDFrom(r); got != "" {
		t.Errorf("requestIDFrom() = %q, want empty string", got)
	}
}
