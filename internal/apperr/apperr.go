// Package apperr defines the error taxonomy surfaced to tool callers.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	KindInvalidArgument   Kind = "InvalidArgument"
	KindInvalidRepository Kind = "InvalidRepository"
	KindToolUnavailable   Kind = "ToolUnavailable"
	KindCommandTimeout    Kind = "CommandTimeout"
	KindCommandFailed     Kind = "CommandFailed"
	KindUnknownOperation  Kind = "UnknownOperation"
)

// Error is a classified error. It supports wrapping via Unwrap so errors.Is/As
// reach the underlying cause.
type Error struct {
	Kind Kind
	Op   string // operation or subsystem that failed, optional
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind. A target with an
// empty Msg matches on kind alone, so errors.Is(err, apperr.InvalidArgument)
// works against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

// Sentinels for errors.Is checks.
var (
	InvalidArgument   = &Error{Kind: KindInvalidArgument}
	InvalidRepository = &Error{Kind: KindInvalidRepository}
	ToolUnavailable   = &Error{Kind: KindToolUnavailable}
	CommandTimeout    = &Error{Kind: KindCommandTimeout}
	CommandFailed     = &Error{Kind: KindCommandFailed}
	UnknownOperation  = &Error{Kind: KindUnknownOperation}
)

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a classified error around cause.
func Wrap(kind Kind, cause error, msg string) error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// WithOp names the operation on a classified error that does not name one
// yet. Other errors are returned unchanged.
func WithOp(err error, op string) error {
	e, ok := err.(*Error)
	if !ok || e.Op != "" {
		return err
	}
	named := *e
	named.Op = op
	return &named
}

// Invalidf reports a malformed or missing argument.
func Invalidf(format string, args ...any) error {
	return Newf(KindInvalidArgument, format, args...)
}

// KindOf extracts the Kind from any error in the chain. Unclassified errors
// report an empty Kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
