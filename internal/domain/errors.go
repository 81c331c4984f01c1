package domain

import (
	"errors"
	"fmt"
)

// ValidationError means the caller sent a malformed simulation config.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// QuoteUnavailableError is recorded per symbol when the price source
// cannot price it. It degrades the position, it never fails a simulation.
type QuoteUnavailableError struct {
	Symbol string
	Reason string
	Err    error
}

func (e *QuoteUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("quote unavailable for %s: %s: %s", e.Symbol, e.Reason, e.Err.Error())
	}
	return fmt.Sprintf("quote unavailable for %s: %s", e.Symbol, e.Reason)
}

func (e *QuoteUnavailableError) Unwrap() error {
	return e.Err
}

var (
	ErrUnknownBenchmarkYear = errors.New("no benchmark data for year")
	ErrSymbolNotFound       = errors.New("symbol not found")
)

func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
