package apperrors

import (
	"errors"
	"fmt"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrUnauthorized indicates that the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller's role may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition indicates the entity's current status does not permit
// the requested move. Losers of a racing decision get this too.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrInvalidState indicates a referenced entity is in a status that does not
// allow it to be used, e.g. planning a transfer against an uncleared receipt.
var ErrInvalidState = errors.New("invalid state")

// ErrConflict indicates a duplicate pending request or a reused idempotency key.
var ErrConflict = errors.New("conflict")

// ErrInsufficientFunds indicates the receipt allocation invariant would break.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrStoreUnavailable indicates the ledger store timed out or is unreachable.
// It is the only error kind callers may retry with the same idempotency key.
var ErrStoreUnavailable = errors.New("store unavailable")

// AppError carries a status-like code and a message around an underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether a caller may retry the failed call.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// Kind returns the taxonomy name for err, or "INTERNAL" when it matches none.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, ErrInvalidState):
		return "INVALID_STATE"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrInsufficientFunds):
		return "INSUFFICIENT_FUNDS"
	case errors.Is(err, ErrStoreUnavailable):
		return "STORE_UNAVAILABLE"
	}
	return "INTERNAL"
}
