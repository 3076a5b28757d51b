// Package apperrors defines the error taxonomy shared by services and the
// HTTP layer. Services fail with the most specific Kind; the HTTP layer maps
// the Kind to a status code and only ever shows Message to the client.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindForbidden
	KindNotFound
	KindUpstream
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Error carries a client-safe Message and an optional wrapped cause that is
// only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }

func Conflict(msg string) error { return &Error{Kind: KindConflict, Message: msg} }

func Auth(msg string) error { return &Error{Kind: KindAuth, Message: msg} }

func Forbidden(msg string) error { return &Error{Kind: KindForbidden, Message: msg} }

func NotFound(msg string) error { return &Error{Kind: KindNotFound, Message: msg} }

func Unavailable(msg string) error { return &Error{Kind: KindUnavailable, Message: msg} }

func Upstream(msg string, cause error) error {
	return &Error{Kind: KindUpstream, Message: msg, Err: cause}
}

func Internal(msg string, cause error) error {
	return &Error{Kind: KindInternal, Message: msg, Err: cause}
}

// KindOf reports the Kind of err. Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// PublicMessage returns the message that may be shown to a client.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Internal server error"
}

// Is reports whether err belongs to kind k.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
