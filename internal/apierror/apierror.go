// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// FieldErrors wraps multiple field-level validation failures.
type FieldErrors struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewFields(fields map[string]string) *FieldErrors {
	return &FieldErrors{Detail: "Erro de validação", Fields: fields}
}

// Error is a domain error carrying the HTTP status it maps to.
// Services return these; handlers translate them via StatusOf.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string { return e.Detail }

// Validation: malformed or out-of-range input (negative amounts, missing fields).
func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Detail: msg}
}

// NotFound: a referenced product, session or category does not exist.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Detail: msg}
}

// Conflict: the operation collides with current state (caixa already open,
// duplicate category).
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Detail: msg}
}

// InsufficientStock: a sale requested more units than are available.
func InsufficientStock(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Detail: msg}
}

// StatusOf extracts the HTTP status of a domain error, or 500 for anything
// unexpected (persistence failures, bugs).
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// IsDomain reports whether err is a typed domain error safe to show to clients.
func IsDomain(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
