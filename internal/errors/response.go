package errors

import (
	"fmt"
	"sort"
)

// ErrorResponse is the envelope every API error is returned in
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorDetail)

func WithDetails(details ...string) ErrorOption {
	return func(d *ErrorDetail) {
		d.Details = details
	}
}

// WithMessage replaces the code's default message
func WithMessage(message string) ErrorOption {
	return func(d *ErrorDetail) {
		d.Message = message
	}
}

// NewErrorResponse builds the envelope for a code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	detail := ErrorDetail{
		Code:    string(code),
		Message: GetErrorMessage(code),
		TraceID: traceID,
	}
	for _, opt := range opts {
		opt(&detail)
	}
	return &ErrorResponse{Error: detail}
}

// NewValidationError reports one "field: message" detail per field, sorted by field path
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, len(fields))
	for i, field := range fields {
		details[i] = fmt.Sprintf("%s: %s", field, fieldErrors[field])
	}

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001 and hands it back for server-side logging
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
