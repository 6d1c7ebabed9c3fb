package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"food-order-system/internal/apperrors"
	"food-order-system/internal/logger"
	"food-order-system/internal/models"
)

// Handler handles HTTP requests for orders and the health endpoint
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new order handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// RegisterRoutes registers the order and health routes on the given mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/orders", h.withLogging(h.handleOrders))
	mux.HandleFunc("/api/orders/", h.withLogging(h.handleOrderUpdate))
	mux.HandleFunc("/health", h.withLogging(h.healthCheck))
}

// handleOrders dispatches GET (list) and POST (create) on /api/orders
func (h *Handler) handleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listOrders(w, r)
	case http.MethodPost:
		h.createOrder(w, r)
	default:
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	}
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	views, err := h.service.ListOrders(ctx, requestID)
	if err != nil {
		h.logger.Error("order_list_failed", "Failed to fetch orders", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch orders", nil)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, views)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	// Unknown fields are ignored, same as on the update endpoints.
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	view, err := h.service.CreateOrder(ctx, &req, requestID)
	if err != nil {
		h.handleServiceError(w, err, requestID, "Failed to create order")
		return
	}

	h.logger.Debug("order_created", "Order created successfully", requestID, map[string]interface{}{
		"order_id":   view.ID,
		"total_cost": view.TotalCost,
	})

	h.writeJSONResponse(w, http.StatusCreated, view)
}

// handleOrderUpdate dispatches PUT /api/orders/{id}/status and
// PUT /api/orders/{id}/payment
func (h *Handler) handleOrderUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	if r.Method != http.MethodPut {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	orderID, action, err := parseOrderPath(r.URL.Path)
	if err != nil {
		h.writeErrorResponse(w, http.StatusNotFound, "Not found", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	switch action {
	case "status":
		var req models.UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", nil)
			return
		}
		resp, err := h.service.UpdateStatus(ctx, orderID, &req, requestID)
		if err != nil {
			h.handleServiceError(w, err, requestID, "Failed to update order status")
			return
		}
		h.writeJSONResponse(w, http.StatusOK, resp)
	case "payment":
		var req models.UpdatePaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", nil)
			return
		}
		resp, err := h.service.UpdatePayment(ctx, orderID, &req, requestID)
		if err != nil {
			h.handleServiceError(w, err, requestID, "Failed to update order payment information")
			return
		}
		h.writeJSONResponse(w, http.StatusOK, resp)
	}
}

// healthCheck handles GET /health
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if !h.service.HealthCheck(ctx) {
		h.logger.Warn("health_degraded", "Health check found the database unreachable", requestIDFrom(r), nil)
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Food Order API is running",
	})
}

// parseOrderPath extracts the order id and action from
// /api/orders/{id}/status or /api/orders/{id}/payment
func parseOrderPath(path string) (int, string, error) {
	rest := strings.TrimPrefix(path, "/api/orders/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("unexpected path %q", path)
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil || id < 1 {
		return 0, "", fmt.Errorf("invalid order id %q", parts[0])
	}

	action := parts[1]
	if action != "status" && action != "payment" {
		return 0, "", fmt.Errorf("unknown action %q", action)
	}

	return id, action, nil
}

// handleServiceError maps domain errors onto HTTP responses. Raw errors
// become responses only here; persistence details are logged, not exposed.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error, requestID, fallback string) {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		h.writeErrorResponse(w, http.StatusBadRequest, vErr.Message, vErr.Details)
		return
	}

	if errors.Is(err, apperrors.ErrOrderNotFound) {
		h.writeErrorResponse(w, http.StatusNotFound, "Order not found", nil)
		return
	}

	h.logger.Error("request_failed", fallback, requestID, err, nil)
	h.writeErrorResponse(w, http.StatusInternalServerError, fallback, nil)
}

// writeJSONResponse writes a JSON body with the given status code
func (h *Handler) writeJSONResponse(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", "", err, nil)
	}
}

// writeErrorResponse writes an error response in JSON format. Details are
// included only when present (creation validation failures).
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string, details []apperrors.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	body := map[string]interface{}{
		"error": message,
	}
	if len(details) > 0 {
		body["details"] = details
	}

	json.NewEncoder(w).Encode(body)
}

// withLogging adds request logging middleware
func (h *Handler) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logger.GenerateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(rw, r)

		duration := time.Since(start)
		h.logger.Debug("request_completed",
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": duration.Milliseconds(),
			})
	}
}

type requestIDKey struct{}

// requestIDFrom returns the request id injected by the logging middleware
func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
