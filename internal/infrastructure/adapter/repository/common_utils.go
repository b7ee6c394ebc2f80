package repository

import (
	"errors"
	"strings"

	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
)

// ErrorClassifier provides methods to classify store errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "ConditionalCheckFailed")
}

// IsConnectionError checks if the error is related to backend connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "eof")
}

// Wrap turns a raw backend failure into a persistence error that keeps the cause
func (c *ErrorClassifier) Wrap(backend, operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrNotFound) || errs.IsPersistenceError(err) {
		return err
	}
	return errs.NewBackendError(errs.ErrPersistenceBackend, backend, operation, err)
}
