// Package errs defines the application error taxonomy and its HTTP mapping.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError signals a malformed request that was rejected before any
// store mutation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError from a format string.
func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError signals that a referenced entity does not exist (or is
// soft-deleted).
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// InsufficientStockError signals that an order asked for more units than the
// inventory currently holds.
type InsufficientStockError struct {
	ProductID uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product ID %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// ConcurrencyError signals that the optimistic-concurrency retry budget was
// exhausted. It is an infrastructure condition, not a caller error.
type ConcurrencyError struct {
	ProductID uint
	Attempts  int
}

func (e *ConcurrencyError) Error() string {
	return fmt.Sprintf("concurrency conflict: unable to update stock for product ID %d after %d attempts",
		e.ProductID, e.Attempts)
}

// Status maps an application error to an HTTP status code.
func Status(err error) int {
	var (
		validation   *ValidationError
		notFound     *NotFoundError
		insufficient *InsufficientStockError
		concurrency  *ConcurrencyError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &insufficient):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &concurrency):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WorkflowStatus is like Status but maps NotFoundError to 400: an unknown
// product referenced mid-workflow is a caller error, not a missing resource.
func WorkflowStatus(err error) int {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusBadRequest
	}
	return Status(err)
}
