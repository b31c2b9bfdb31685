package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"bank-statement-generator/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoStatusCodes maps statuses raised by echo itself (routing, binding) to API codes
var echoStatusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusUnsupportedMediaType:  errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationGeneral,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusNotFound:              errors.SystemNotFound,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// CustomHTTPErrorHandler writes every error that reaches echo in the standard envelope.
// Validator errors become VALIDATION_001 with one detail per field.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := errorResponseFor(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "request error",
		"trace_id", traceID,
		"code", response.Error.Code,
		"status", status,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, response); sendErr != nil {
		slog.Error("failed to write error response", "trace_id", traceID, "error", sendErr)
	}
}

func errorResponseFor(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		code, ok := echoStatusCodes[httpErr.Code]
		if !ok {
			code = errors.SystemUnexpectedError
		}
		return errors.NewErrorResponse(code, traceID, errors.WithMessage(fmt.Sprint(httpErr.Message))), httpErr.Code
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		messages := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			messages[fieldPath(fe)] = fieldMessage(fe)
		}
		return errors.NewValidationError(messages, traceID), http.StatusBadRequest
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

// fieldPath drops the root struct name, e.g. accounts[0].type
func fieldPath(fe validator.FieldError) string {
	if _, path, found := strings.Cut(fe.Namespace(), "."); found {
		return path
	}
	return fe.Field()
}

var customTagMessages = map[string]string{
	"required":           "is required",
	"account_number":     "must be a valid account number (digits separated by dashes or spaces)",
	"account_type":       "must be a valid account type (checking, savings, credit)",
	"transfer_frequency": "must be a valid transfer frequency (none, low, medium, high)",
}

func fieldMessage(fe validator.FieldError) string {
	if message, ok := customTagMessages[fe.Tag()]; ok {
		return message
	}

	switch fe.Tag() {
	case "min":
		return boundMessage("at least", fe)
	case "max":
		return boundMessage("at most", fe)
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return fmt.Sprintf("failed validation for '%s'", fe.Tag())
}

func boundMessage(bound string, fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters long", bound, fe.Param())
	case reflect.Slice:
		return fmt.Sprintf("must contain %s %s items", bound, fe.Param())
	}
	return fmt.Sprintf("must be %s %s", bound, fe.Param())
}
