// Package serrors defines semantic error kinds shared by every unit.
//
// A kind is a sentinel; concrete errors carry a kind plus a human message and
// an optional cause. errors.Is matches either the kind or the cause.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is implemented by every sentinel created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ name string }

func (k kind) Error() string { return k.name }
func (kind) isKind()         {}

// NewKind creates a semantic error kind.
func NewKind(name string) Kind { return kind{name: name} }

var (
	// ErrInvalidArgument marks a caller-supplied value that violates an invariant.
	ErrInvalidArgument = NewKind("INVALID_ARGUMENT")
	// ErrNotFound marks a lookup that found nothing.
	ErrNotFound = NewKind("NOT_FOUND")
)

// Error is a semantic error: a kind, a message and an optional cause.
//
// Error() returns the message alone when there is no cause, so callers can
// print it verbatim ("Cannot divide by zero").
type Error struct {
	kind Kind
	msg  string
	err  error
}

// With builds an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds an error of kind k around cause.
func Wrap(k Kind, cause error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: cause, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds an error that carries nothing but its kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches the kind or anything in the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As extracts the kind or a typed cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the sentinel kind.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the human message without the cause.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, if any.
func (e *Error) Cause() error { return e.err }

// IsInvalidArgument reports whether err is an invariant violation.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// Message returns the message carried by the first *Error in err's chain,
// falling back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	return err.Error()
}
