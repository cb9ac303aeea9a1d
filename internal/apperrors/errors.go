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

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated caller may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is in a state that conflicts with the request.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrInvalidTransition indicates a request is not in the expected workflow state
// for the attempted stage decision (e.g. HR acting before supervisor approval,
// or re-deciding an already-terminal request).
var ErrInvalidTransition = errors.New("invalid workflow transition")

// ErrInsufficientCredits indicates a ledger debit would exceed the employee's
// remaining entitlement balance. Callers surface this distinctly so the UI can
// explain the shortfall instead of retrying.
var ErrInsufficientCredits = errors.New("insufficient entitlement credits")

// AppError wraps a lower-level error with an HTTP-ish code and a message.
// Repositories use it to annotate infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that also matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
