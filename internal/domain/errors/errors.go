package errors

import (
	"net/http"

	"recyclemart/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors carrying the same business code, so WithDetails copies
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// Message returns the user-friendly error message
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
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet strength requirements",
		"",
	)

	ErrIndexOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"INDEX_OUT_OF_RANGE",
		"Index is out of range",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Cart is empty",
		"",
	)

	// Lookup errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"Recycle request not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Inventory device not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Market product not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// Conflict errors
	ErrDuplicateEmail = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_EMAIL",
		"This email is already registered",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"Status change is not allowed",
		"",
	)

	ErrDeviceUnavailable = NewBaseError(
		http.StatusConflict,
		"DEVICE_UNAVAILABLE",
		"Device is no longer available",
		"",
	)

	ErrInsufficientPoints = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_POINTS",
		"Not enough points to redeem this voucher",
		"",
	)

	// Session errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please log in first",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Infrastructure errors
	ErrStorage = NewBaseError(
		http.StatusInsufficientStorage,
		"STORAGE_ERROR",
		"Local storage is unavailable or full",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Store transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// StorageExecuteError represents a persistence adapter failure, implementing the AppError interface
type StorageExecuteError struct {
	err     error
	details string
}

// NewStorageExecuteError creates a storage-related error
func NewStorageExecuteError(err error, details string) AppError {
	return &StorageExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageExecuteError) Error() string {
	return errors.Wrap(e.err, "storage execution failed").Error()
}

// Unwrap exposes the adapter error
func (e *StorageExecuteError) Unwrap() error {
	return e.err
}

// Is lets errors.Is(err, ErrStorage) match adapter failures
func (e *StorageExecuteError) Is(target error) bool {
	return target == error(ErrStorage)
}

// HTTPCode returns the HTTP status code
func (e *StorageExecuteError) HTTPCode() int {
	return http.StatusInsufficientStorage
}

// ErrorCode returns the business error code
func (e *StorageExecuteError) ErrorCode() string {
	return ErrStorage.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StorageExecuteError) Message() string {
	return ErrStorage.Message()
}

// Details returns detailed error information
func (e *StorageExecuteError) Details() string {
	return e.details
}
