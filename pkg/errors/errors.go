// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
)

// Error is a status-coded error. The code identifies the failure class and the
// message identifies the failing field or condition.
type Error struct {
	Code    Status
	Message string
	Cause   error
}

// Error implements error.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Code.String()
}

// Unwrap returns the cause, if there is one.
func (e *Error) Unwrap() error { return e.Cause }

// Is returns true if target is a Status matching the error's code, or an
// *Error with the same code.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Status:
		return e.Code == t
	case *Error:
		return e.Code == t.Code
	}
	return false
}

// With constructs an error from the status with the given message values.
func (s Status) With(v ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprint(v...)}
}

// WithFormat constructs an error from the status with a formatted message. If
// the format wraps an error, the wrapped error is recorded as the cause.
func (s Status) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	e := &Error{Code: s, Message: err.Error()}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		e.Cause = u.Unwrap()
	}
	return e
}

// Wrap wraps an error with the status. Wrapping nil returns nil, and wrapping
// an error that already carries a known status returns it unchanged.
func (s Status) Wrap(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) && e.Code.IsKnownError() {
		return err
	}
	return &Error{Code: s, Message: err.Error(), Cause: err}
}

// Code returns the status carried by the error, or UnknownError if it carries
// none.
func Code(err error) Status {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	if s, ok := err.(Status); ok {
		return s
	}
	return UnknownError
}

// Is calls the standard library's errors.Is.
func Is(err, target error) bool { return errors.Is(err, target) }

// As calls the standard library's errors.As.
func As(err error, target interface{}) bool { return errors.As(err, target) }
