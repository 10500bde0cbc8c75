package di

import (
	"errors"
	"strconv"

	"github.com/sghaida/oofix/serrors"
)

// ErrorReason says which wiring rule was broken.
type ErrorReason int

const (
	ReasonNilTarget ErrorReason = iota + 1
	ReasonNilDependency
	ReasonNilBind
	ReasonDuplicateKey
	ReasonMissing
	ReasonWrongType
)

func (r ErrorReason) String() string {
	switch r {
	case ReasonNilTarget:
		return "nil target service"
	case ReasonNilDependency:
		return "nil dependency service"
	case ReasonNilBind:
		return "nil bind function"
	case ReasonDuplicateKey:
		return "duplicate dependency key"
	case ReasonMissing:
		return "dependency missing"
	case ReasonWrongType:
		return "dependency has wrong type"
	default:
		return "unknown wiring error"
	}
}

// Error is returned for every wiring failure.
type Error struct {
	Reason ErrorReason
	Key    DependencyKey
	// GotType is set for ReasonWrongType.
	GotType string
}

func (e *Error) Error() string {
	msg := "di: " + e.Reason.String()
	if e.Key != "" {
		msg += " " + strconv.Quote(string(e.Key))
	}
	if e.GotType != "" {
		msg += " (" + e.GotType + ")"
	}

	return msg
}

// Is lets callers match wiring failures as invalid arguments, or match a
// specific reason with a template: errors.Is(err, &di.Error{Reason: di.ReasonMissing}).
func (e *Error) Is(target error) bool {
	if target == serrors.ErrInvalidArgument {
		return true
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Reason == e.Reason && (t.Key == "" || t.Key == e.Key)
}

// IsReason reports whether err is a wiring error with reason r.
func IsReason(err error, r ErrorReason) bool {
	return err != nil && errors.Is(err, &Error{Reason: r})
}
