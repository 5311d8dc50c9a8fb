// Package apperrors defines the typed application errors surfaced at the
// HTTP boundary. Inner layers wrap causes with fmt.Errorf("%w"); handlers
// convert anything reaching them into an AppError response.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies an application error.
type Type string

const (
	TypeValidation Type = "VALIDATION_ERROR"
	TypeNotFound   Type = "NOT_FOUND"
	TypeAuth       Type = "AUTHENTICATION_ERROR"
	TypeStorage    Type = "STORAGE_ERROR"
	TypeInternal   Type = "SERVER_ERROR"
)

// AppError is a structured application error with an HTTP mapping.
type AppError struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError of the given type.
func New(errType Type, message, detail string) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Detail:  detail,
		Status:  statusFor(errType),
	}
}

// Wrap attaches AppError context to a raw error.
func Wrap(err error, errType Type, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Detail:  err.Error(),
		Status:  statusFor(errType),
		Err:     err,
	}
}

// NotFound reports a missing entity.
func NotFound(entity, id string) *AppError {
	return &AppError{
		Type:    TypeNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Detail:  fmt.Sprintf("id: %s", id),
		Status:  http.StatusNotFound,
	}
}

// ValidationFailed reports input rejected at the boundary.
func ValidationFailed(message, detail string) *AppError {
	return &AppError{
		Type:    TypeValidation,
		Message: message,
		Detail:  detail,
		Status:  http.StatusBadRequest,
	}
}

// Unauthenticated reports a missing or invalid credential.
func Unauthenticated(message string) *AppError {
	return &AppError{
		Type:    TypeAuth,
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

// Storage wraps a read/write failure from the persistence layer.
func Storage(err error, message string) *AppError {
	return Wrap(err, TypeStorage, message)
}

// From extracts the AppError from err, or folds err into a generic
// internal error so handlers always have a status to write.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Type:    TypeInternal,
		Message: "internal server error",
		Detail:  err.Error(),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func statusFor(errType Type) int {
	switch errType {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
