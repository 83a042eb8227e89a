// Package apperrors classifies failures crossing the HTTP boundary.
//
// The taxonomy is deliberately small: the handlers render
// InvalidArgument/NotFound/Unauthorized/Conflict with their specific
// user-facing messages, while anything classified StoreFailure renders
// generically so internal error text never reaches a response body on
// the authentication paths.
package apperrors

import "errors"

// Kind labels a failure for boundary rendering.
type Kind int

const (
	// StoreFailure covers any underlying persistence error, not
	// classified further.
	StoreFailure Kind = iota
	// InvalidArgument is missing or malformed caller input, detected
	// before any I/O.
	InvalidArgument
	// NotFound is a lookup miss.
	NotFound
	// Unauthorized is a credential mismatch.
	Unauthorized
	// Conflict is a duplicate registration.
	Conflict
)

// Error pairs a Kind with the message shown to the caller.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an Error with the given kind and caller-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a classified error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from err, defaulting to StoreFailure for
// anything unclassified.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return StoreFailure
}

// MessageOf returns the caller-facing message for classified errors
// and the fallback for everything else.
func MessageOf(err error, fallback string) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return fallback
}
