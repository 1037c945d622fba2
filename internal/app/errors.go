// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
)

// Kind classifies an [Error] by the kind of failure it represents. The HTTP
// layer maps every Kind to exactly one status code.
type Kind int

const (
	// KindInternal is an unexpected failure the client cannot resolve.
	KindInternal Kind = iota
	// KindBadRequest is malformed or forbidden query or body input.
	KindBadRequest
	// KindUnauthorized is a missing, invalid or expired credential, or an
	// incorrect login.
	KindUnauthorized
	// KindForbidden is an authenticated caller acting on a resource it does
	// not own.
	KindForbidden
	// KindNotFound is a lookup with no matching record.
	KindNotFound
	// KindConflict is a duplicate registration.
	KindConflict
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	default:
		return "Internal"
	}
}

// Error is a client-visible failure: a kind plus the message written into the
// response envelope. Err optionally carries the underlying cause for logging
// and is never shown to the client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns a copy of e carrying err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Err: err}
}

// BadRequest builds a [KindBadRequest] error.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Unauthorized builds a [KindUnauthorized] error.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden builds a [KindForbidden] error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound builds a [KindNotFound] error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a [KindConflict] error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal builds a [KindInternal] error wrapping cause.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternalServerError, Err: cause}
}

// AsError reports whether err is or wraps an *Error and returns it.
func AsError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain, or
// [KindInternal] when there is none.
func KindOf(err error) Kind {
	if appErr, ok := AsError(err); ok {
		return appErr.Kind
	}
	return KindInternal
}
