package services

import (
	"errors"

	"boxful-client/internal/validation"
)

var (
	ErrSubmitInFlight   = errors.New("services: order submission already in flight")
	ErrNotAuthenticated = errors.New("services: not signed in")
	ErrNoToken          = errors.New("services: login response carried no token")
)

// PreflightError is a local check that failed before any request was sent.
type PreflightError struct {
	Message string
	Fields  validation.FieldErrors
}

func (e *PreflightError) Error() string {
	return "services: preflight: " + e.Message
}

// FilterError rejects a history date range.
type FilterError struct {
	Errors validation.FieldErrors
}

func (e FilterError) Error() string {
	return "services: invalid date range: " + e.Errors.Error()
}
