package dto

import "time"

// StructuredResponse provides the base structured API response of the portal
// gateway.
type StructuredResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-02-11T12:01:05.123Z"`
}

// ErrorDetail carries a machine-readable code plus a human message
type ErrorDetail struct {
	Code    string `json:"code" example:"VALIDATION_ERROR"`
	Message string `json:"message" example:"title: is required"`
	Details string `json:"details,omitempty"`
}

// Error codes used by the gateway surface
const (
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeUnauthorized = "UNAUTHORIZED"
	ErrorCodeForbidden    = "FORBIDDEN"
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeBackend      = "BACKEND_ERROR"
	ErrorCodeNetwork      = "NETWORK_ERROR"
	ErrorCodeConflict     = "CONFLICT"
)

// NewStructuredResponse creates a success response wrapping data
func NewStructuredResponse(data interface{}, message string) StructuredResponse {
	return StructuredResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorDetail creates an ErrorDetail
func NewErrorDetail(code, message string) *ErrorDetail {
	return &ErrorDetail{Code: code, Message: message}
}

// WithDetails adds extra context to an ErrorDetail
func (e *ErrorDetail) WithDetails(details string) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a failure response carrying an ErrorDetail
func NewErrorResponse(detail *ErrorDetail) StructuredResponse {
	return StructuredResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	}
}
