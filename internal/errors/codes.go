package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Generation error codes (GENERATION_*)
const (
	GenerationNoAccounts         ErrorCode = "GENERATION_001"
	GenerationInvalidAccountType ErrorCode = "GENERATION_002"
	GenerationInvalidFrequency   ErrorCode = "GENERATION_003"
	GenerationInvalidPeriod      ErrorCode = "GENERATION_004"
	GenerationCancelled          ErrorCode = "GENERATION_005"
	GenerationUnsupportedExport  ErrorCode = "GENERATION_006"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	SystemNotFound           ErrorCode = "SYSTEM_006"
)

type codeInfo struct {
	status  int
	message string
}

// codeTable holds the HTTP status and default message of every code
var codeTable = map[ErrorCode]codeInfo{
	ValidationGeneral:       {http.StatusBadRequest, "Validation failed"},
	ValidationRequiredField: {http.StatusBadRequest, "Required field is missing"},
	ValidationInvalidFormat: {http.StatusBadRequest, "Invalid field format"},
	ValidationOutOfRange:    {http.StatusBadRequest, "Field value is out of allowed range"},
	ValidationInvalidDate:   {http.StatusBadRequest, "Invalid date format or range"},

	// requests that bind and validate but cannot produce statements
	GenerationNoAccounts:         {http.StatusUnprocessableEntity, "At least one account must be configured"},
	GenerationInvalidAccountType: {http.StatusUnprocessableEntity, "Account type must be checking, savings or credit"},
	GenerationInvalidFrequency:   {http.StatusUnprocessableEntity, "Transfer frequency must be none, low, medium or high"},
	GenerationInvalidPeriod:      {http.StatusUnprocessableEntity, "Statement month or year is out of range"},
	GenerationCancelled:          {http.StatusServiceUnavailable, "Statement generation was cancelled"},
	GenerationUnsupportedExport:  {http.StatusBadRequest, "Unsupported export format"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemConfigurationError: {http.StatusInternalServerError, "System configuration error"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
	SystemNotFound:           {http.StatusNotFound, "Resource not found"},
}

// GetErrorMessage returns the default message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if info, ok := codeTable[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the HTTP status for a code; unknown codes are 500
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := codeTable[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := codeTable[code]
	return ok
}
