// Package errors defines the closed set of business failures the admin
// backend exposes, each carrying an HTTP status, a business code and a
// user-facing message.
package errors

import (
	"net/http"

	"brigade/internal/errors"
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

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Login failures.
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account does not exist",
		"",
	)

	ErrPasswordError = NewBaseError(
		http.StatusUnauthorized,
		"PASSWORD_ERROR",
		"incorrect password",
		"",
	)

	ErrAccountLocked = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_LOCKED",
		"account is locked",
		"",
	)

	// Password edit failures.
	ErrOldPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_EDIT_FAILED",
		"old password does not match",
		"",
	)

	ErrEmptyNewPassword = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_EDIT_FAILED",
		"password edit failed",
		"",
	)

	// Account management failures surfaced from the store boundary.
	ErrEmployeeAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMPLOYEE_ALREADY_EXISTS",
		"username or ID number already registered",
		"",
	)

	ErrEmployeeCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"EMPLOYEE_CREATION_FAILED",
		"failed to create employee",
		"",
	)

	ErrEmployeeUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"EMPLOYEE_UPDATE_FAILED",
		"failed to update employee",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
