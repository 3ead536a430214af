// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for domain layer.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError carries the status and the client-facing message of a
// domain error. Use Errorf to build one around a sentinel.
type StatusError struct {
	Status  int
	Message string
	Err     error
}

func (e *StatusError) Error() string { return e.Message }

func (e *StatusError) Unwrap() error { return e.Err }

// Errorf wraps sentinel with the message shown to the client.
func Errorf(sentinel error, message string) error {
	return &StatusError{Status: statusOf(sentinel), Message: message, Err: sentinel}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RespondError maps domain errors to failure envelopes. Errors without a
// known status become a 500 with a generic message.
func RespondError(w http.ResponseWriter, err error) {
	var se *StatusError
	if errors.As(err, &se) {
		Fail(w, se.Status, se.Message)
		return
	}
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		Fail(w, status, "Internal server error")
		return
	}
	Fail(w, status, http.StatusText(status))
}
