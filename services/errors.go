package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies service failures for the HTTP layer.
type ErrorKind int

const (
	KindInvalidArgument ErrorKind = iota + 1 // malformed or missing input
	KindNotFound                             // missing cart, item or product
	KindUnexpected                           // store or internal failure
)

// Error carries the failure kind, a caller-facing message and an optional
// underlying cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func invalidf(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func unexpected(message string, err error) error {
	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}

// KindOf extracts the kind from a service error; anything unrecognized is
// treated as unexpected.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnexpected
}

// MessageOf returns the caller-facing message of a service error.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	return "internal server error"
}
