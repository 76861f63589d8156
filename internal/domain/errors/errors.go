package errors

import (
	"net/http"

	"crave/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to do that",
		"",
	)

	// Cart-related errors
	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Your cart is empty",
		"",
	)

	ErrCouponAlreadyApplied = NewBaseError(
		http.StatusConflict,
		"COUPON_ALREADY_APPLIED",
		"A coupon is already applied. Remove it before applying another one",
		"",
	)

	// Checkout-related errors
	ErrCheckoutBusy = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_BUSY",
		"A payment is already being processed",
		"",
	)

	ErrNoCheckoutSession = NewBaseError(
		http.StatusConflict,
		"NO_CHECKOUT_SESSION",
		"There is no checkout in progress",
		"",
	)

	// Queue-related errors
	ErrInvalidTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRANSITION",
		"The order cannot move to that status",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong on our side",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The resource could not be found",
		"",
	)
)

// BackendError represents an error reported by the remote ordering
// backend, implementing the AppError interface. The backend's message is
// surfaced to the user verbatim, matching how the web client renders it.
type BackendError struct {
	httpCode int
	message  string
}

// NewBackendError creates an error carrying the backend's status and message.
func NewBackendError(httpCode int, message string) AppError {
	if message == "" {
		message = http.StatusText(httpCode)
	}

	return &BackendError{httpCode: httpCode, message: message}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code reported by the backend
func (e *BackendError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return "BACKEND_ERROR"
}

// Message returns the backend's user-facing message
func (e *BackendError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return ""
}
