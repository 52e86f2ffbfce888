package errors

import (
	"fmt"
	"net/http"
)

// NotFoundMessage is returned whenever a car id does not resolve
const NotFoundMessage = "Could not find the car you requested."

// AppError represents an application error
type AppError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewCarNotFoundError creates the not found error for an unknown car id
func NewCarNotFoundError() *AppError {
	return NewNotFoundError(NotFoundMessage)
}

// NewInternalError creates an internal server error
func NewInternalError(err error) *AppError {
	return &AppError{
		Message:    "Internal server error",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewJSONError creates a JSON parsing error
func NewJSONError(err error) *AppError {
	return &AppError{
		Message:    "Invalid JSON",
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}
