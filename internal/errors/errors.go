package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user id has no row.
	ErrUserNotFound = errors.New("user not found")
	// ErrExpenseNotFound is returned when an expense id has no row.
	ErrExpenseNotFound = errors.New("expense not found")
	// ErrEmailTaken is returned when an email collides with an existing user.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrUserReferenced is returned when deleting a user that still owns expenses.
	ErrUserReferenced = errors.New("user still has expenses and cannot be deleted")
	// ErrConstraint is returned when the store rejects a write with a
	// constraint violation that is not one of the cases above.
	ErrConstraint = errors.New("constraint violation")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "User not found", "USER_NOT_FOUND")
	case errors.Is(err, ErrExpenseNotFound):
		return NewHTTPError(http.StatusNotFound, "Expense not found", "EXPENSE_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUserReferenced):
		return NewHTTPError(http.StatusConflict, ErrUserReferenced.Error(), "USER_REFERENCED")
	case errors.Is(err, ErrConstraint):
		// Surface the underlying message so the caller sees which
		// constraint was violated.
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONSTRAINT_VIOLATION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
