package handlers

import (
	"net/http"
	"sync/atomic"
	"time"

	"bank-statement-generator/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	startedAt time.Time
	draining  atomic.Bool
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler() *HealthCheckHandler {
	return &HealthCheckHandler{startedAt: time.Now()}
}

// Drain marks the service as shutting down so load balancers stop routing to it
func (h *HealthCheckHandler) Drain() {
	h.draining.Store(true)
}

// HealthCheck reports liveness
//
// Method: GET /health
//
// Success Response: 200 OK
//   - status: "healthy"
//   - time: RFC 3339 timestamp
//   - uptime: Go duration string
//
// Error Responses:
//   - 503: SYSTEM_002 while the server is draining
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.draining.Load() {
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceIDFromContext(c),
			errors.WithDetails("Server is shutting down"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	now := time.Now().UTC()
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   now.Format(time.RFC3339),
		"uptime": now.Sub(h.startedAt).Round(time.Second).String(),
	})
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		traceID = getTraceID(c)
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
