package domain

import (
	"errors"
	"fmt"
)

// Error is a domain error identified by a stable code. The code doubles as
// the message key suffix used by the adapters ("errors.<code>").
type Error struct {
	code string
	msg  string
}

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable identifier of the error.
func (e *Error) Code() string { return e.code }

// Domain errors.
var (
	ErrEventNotFound      = newError("event_not_found", "event not found")
	ErrDuplicateEventName = newError("duplicate_event_name", "an event with this name already exists")
	ErrNoVenueAvailable   = newError("no_venue_available", "no suitable room available for the given date and time")
	ErrAlreadyRegistered  = newError("already_registered", "participant already registered for this event")
	ErrEventFull          = newError("event_full", "all seats of the event are taken")
)

// ValidationError reports malformed or out-of-range input. Callers recover
// from it by asking for the field again.
type ValidationError struct {
	Field string
	Code  string
}

// Invalid builds a ValidationError for field.
func Invalid(field, code string) *ValidationError {
	return &ValidationError{Field: field, Code: code}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Code)
}

// StoreError wraps an I/O failure of a record store. It is fatal for the
// operation that hit it.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Code extracts the domain code carried by err, or "" when err is not a
// domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	var se *StoreError
	if errors.As(err, &se) {
		return "store_io"
	}
	return ""
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
