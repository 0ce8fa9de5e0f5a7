package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by services when the requested record does not exist.
// Handlers map it to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is the sentinel every *ValidationError unwraps to.
// Handlers map it to HTTP 400.
var ErrValidation = errors.New("validation error")

// ValidationError carries the first rule an input violated. Msg is safe to
// show to API clients as-is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid returns a *ValidationError with the given message.
func Invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

// Invalidf is Invalid with fmt.Sprintf formatting.
func Invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationMessage extracts the client-facing message from err, which may be
// wrapped. ok is false when err carries no *ValidationError.
func ValidationMessage(err error) (msg string, ok bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Msg, true
	}
	return "", false
}
