// Package apperr defines the error taxonomy shared by the pipeline layers.
// Handlers translate these into HTTP status codes; nothing below the handler
// layer knows about HTTP.
package apperr

import (
	"errors"
	"fmt"
)

// Kind discriminates error categories without string matching.
type Kind int

const (
	// KindValidation marks a document that failed the validity predicate.
	// No side effects have occurred when this is returned.
	KindValidation Kind = iota + 1
	// KindNotFound marks a missing record for an ISBN.
	KindNotFound
	// KindCommunication marks an unreachable store/blob service or an
	// unexpected response shape. Retryable by the caller's infrastructure.
	KindCommunication
	// KindConflict marks a late-stage failure after earlier stages already
	// mutated state (e.g. write succeeded, confirmation read failed).
	KindConflict
	// KindSerialization marks a stored payload that could not be parsed back
	// into a document; indicates store/schema drift.
	KindSerialization
)

// Error carries a kind, a safe message, an optional detail blob (e.g. the
// serialized offending document for validation errors) and the wrapped cause.
type Error struct {
	Kind   Kind
	Msg    string
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets errors.Is match on kind sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == "" && t.Detail == "" && t.Cause == nil
}

// Kind sentinels for errors.Is checks.
var (
	ErrValidation    = &Error{Kind: KindValidation}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrCommunication = &Error{Kind: KindCommunication}
	ErrConflict      = &Error{Kind: KindConflict}
	ErrSerialization = &Error{Kind: KindSerialization}
)

// Validation builds a validation error carrying the offending document's
// serialized form as detail for debugging.
func Validation(msg, detail string) *Error {
	return &Error{Kind: KindValidation, Msg: msg, Detail: detail}
}

// NotFound builds a not-found error for the given ISBN.
func NotFound(isbn string) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("no contents record for isbn %s", isbn)}
}

// Communication wraps a store/blob transport failure or unexpected response.
func Communication(msg string, cause error) *Error {
	return &Error{Kind: KindCommunication, Msg: msg, Cause: cause}
}

// Conflict wraps a post-write failure.
func Conflict(msg string, cause error) *Error {
	return &Error{Kind: KindConflict, Msg: msg, Cause: cause}
}

// Serialization wraps a payload that could not be decoded into a document.
func Serialization(msg string, cause error) *Error {
	return &Error{Kind: KindSerialization, Msg: msg, Cause: cause}
}

// KindOf returns the Kind of err if it is (or wraps) an *Error, else 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
