package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state
// of the resource, such as reversing an already reversed journal.
var ErrConflict = errors.New("operation conflicts with resource state")

// ErrUnsupportedTransactionType indicates the posting rule resolver has no
// rule for the submitted business-event type.
var ErrUnsupportedTransactionType = errors.New("unsupported transaction type")

// ErrAccountNotFound indicates a posting referenced a chart-of-accounts code
// that has not been seeded. This is a setup fault, not a retryable condition.
var ErrAccountNotFound = errors.New("account not found")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries a status code and a message alongside the wrapped cause.
// Store-level failures surface as code 500.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
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
