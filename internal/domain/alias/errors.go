package alias

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the closed set of failures the HTTP layer knows how to expose.
type Kind uint8

const (
	KindInternal Kind = iota
	KindValidationFailed
	KindNoSuchAlias
)

func (k Kind) String() string {
	switch k {
	case KindValidationFailed:
		return "validation failed"
	case KindNoSuchAlias:
		return "no such alias"
	default:
		return "internal"
	}
}

// Error is a domain failure tagged with its Kind. Message is safe to show to clients
// for every kind except KindInternal.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ValidationFailed builds the error for a rejected shorten request; the message is the
// reasons joined with ", ".
func ValidationFailed(reasons []string) *Error {
	return &Error{
		Kind:    KindValidationFailed,
		Message: strings.Join(reasons, ", "),
	}
}

// NoSuchAlias builds the error for an operation on an alias that is not stored.
func NoSuchAlias(alias string) *Error {
	return &Error{
		Kind:    KindNoSuchAlias,
		Message: fmt.Sprintf("the alias %s does not exist", alias),
	}
}

// Internal tags err as a failure whose details must not reach clients.
func Internal(message string, err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: message,
		Err:     err,
	}
}

// KindOf reports the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindInternal
}

// MessageOf returns the client-facing message of the first *Error in err's chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}

	return ""
}
