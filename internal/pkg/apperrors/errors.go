package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Authentication / session errors
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrAccountBanned      = errors.New("account is banned")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Submission errors
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrConfirmationRequired = errors.New("destructive action requires confirmation")

	// Lookup errors
	ErrNotFound = errors.New("not found")
)

// Marketplace errors
var (
	ErrItemSold   = errors.New("item has already been sold")
	ErrOwnListing = errors.New("sellers cannot purchase their own listing")
)

// Event errors
var (
	ErrRegistrationClosed = errors.New("registrations are closed for this event")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
)

// NetworkError indicates the request never produced an HTTP response.
type NetworkError struct {
	Err error
}

// Error implements error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps a transport-level failure
func NewNetworkError(err error) *NetworkError {
	return &NetworkError{Err: err}
}

// HTTPError indicates a non-2xx response from the backend. Message is the
// parsed JSON error body when one exists, otherwise a synthesized
// "HTTP <status>" string.
type HTTPError struct {
	Status  int
	Message string
}

// Error implements error interface
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// NewHTTPError creates an HTTPError for a response status and message
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// ValidationError indicates a client-side required-field or format check
// failed before any network call was made.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for a field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NewRequiredFieldError creates a ValidationError for a missing mandatory field
func NewRequiredFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}

// LoadError wraps the first failing critical sub-fetch of a full refresh.
type LoadError struct {
	Fetch string
	Err   error
}

// Error implements error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Fetch, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a LoadError for a named sub-fetch
func NewLoadError(fetch string, err error) *LoadError {
	return &LoadError{Fetch: fetch, Err: err}
}

// IsValidation reports whether err is a client-side validation failure,
// which must be surfaced without any network call having happened.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// HTTPStatus extracts the status code from an HTTPError, or 0.
func HTTPStatus(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	return 0
}
