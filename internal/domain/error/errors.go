package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest = 4000
	CodeInvalidAmount  = 4002
	CodeInvalidUserID  = 4003
	CodeBelowMinimum   = 4007
	CodeNotFound       = 4040

	// 5xxx - Server errors
	CodeUnexpected            = 5000
	CodeClassificationBackend = 5021
	CodeGenerationBackend     = 5022
	CodePersistenceBackend    = 5031
)

// Base error types
var (
	// ErrInvalidAmount is returned when the resolved purchase amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrBelowMinimum is returned when the resolved purchase amount is under the configured minimum
	ErrBelowMinimum = errors.New("amount is below the minimum purchase threshold")

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when no records exist for the requested user
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrClassificationBackend marks a failed delegated classification call
	ErrClassificationBackend = errors.New("classification backend error")

	// ErrGenerationBackend marks a failed delegated generation call
	ErrGenerationBackend = errors.New("generation backend error")

	// ErrPersistenceBackend marks a durable store that is unreachable or rejected a write
	ErrPersistenceBackend = errors.New("persistence backend error")

	// ErrUnexpected is returned for anything else that breaks a purchase
	ErrUnexpected = errors.New("unexpected error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrBelowMinimum):
		return CodeBelowMinimum
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrClassificationBackend):
		return CodeClassificationBackend
	case errors.Is(err, ErrGenerationBackend):
		return CodeGenerationBackend
	case errors.Is(err, ErrPersistenceBackend):
		return CodePersistenceBackend
	default:
		return CodeUnexpected
	}
}

// PurchaseError represents a rejected or failed purchase
type PurchaseError struct {
	UserID      string
	AmountLocal string
	Minimum     string
	Err         error
}

// Error implements the error interface for PurchaseError
func (e *PurchaseError) Error() string {
	if e.Minimum != "" {
		return fmt.Sprintf("purchase rejected for user %s (amount: %s, minimum: %s): %v",
			e.UserID, e.AmountLocal, e.Minimum, e.Err)
	}
	return fmt.Sprintf("purchase rejected for user %s (amount: %s): %v", e.UserID, e.AmountLocal, e.Err)
}

// Unwrap returns the underlying error
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PurchaseError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "purchase_error",
		"user_id":      e.UserID,
		"amount_local": e.AmountLocal,
		"minimum":      e.Minimum,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewPurchaseError creates a detailed purchase error
func NewPurchaseError(userID, amountLocal, minimum string, err error) error {
	return &PurchaseError{
		UserID:      userID,
		AmountLocal: amountLocal,
		Minimum:     minimum,
		Err:         err,
	}
}

// BackendError describes a failed call to an external collaborator
type BackendError struct {
	Backend   string
	Operation string
	Kind      error
	Cause     error
}

// Error implements the error interface for BackendError
func (e *BackendError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", e.Kind, e.Backend, e.Operation, e.Cause)
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is
func (e *BackendError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}

// LogFields returns a map of fields for structured logging
func (e *BackendError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "backend_error",
		"backend":    e.Backend,
		"operation":  e.Operation,
		"error":      e.Cause.Error(),
		"error_code": ErrorCode(e.Kind),
	}
}

// NewBackendError wraps cause with one of the backend error kinds
func NewBackendError(kind error, backend, operation string, cause error) error {
	if cause == nil {
		cause = errors.New("no detail")
	}
	return &BackendError{
		Backend:   backend,
		Operation: operation,
		Kind:      kind,
		Cause:     cause,
	}
}

// IsValidationError reports whether err is one of the caller-visible purchase rejections
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrBelowMinimum) ||
		errors.Is(err, ErrInvalidUserID) || errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPersistenceError checks if the error came from the durable store
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrPersistenceBackend)
}
