package handlers

import (
	"log/slog"

	apierrors "bank-statement-generator/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (known codes) or SendSystemError
// (anything else, details hidden). Validator errors are returned unchanged so
// the HTTP error handler can list the failing fields.

// TraceIDContextKey is where the request id middleware stores the trace id
const TraceIDContextKey = "trace_id"

// SuccessResponse wraps every successful payload
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the envelope for code with the status the code maps to
func SendError(c echo.Context, code apierrors.ErrorCode, opts ...apierrors.ErrorOption) error {
	response := apierrors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError logs err and answers with a generic SYSTEM_001
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	response, internal := apierrors.WrapSystemError(err, traceID)
	slog.Error("request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"error", internal,
	)
	return c.JSON(response.GetHTTPStatus(), response)
}
