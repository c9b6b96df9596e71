// Package apperr defines the error taxonomy shared by the auth, cipher, store
// and profile layers. Handlers map a Kind to an HTTP status and only ever show
// the Message, never the Cause.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindInternal   Kind = "INTERNAL"
	KindValidation Kind = "VALIDATION"
	KindAuth       Kind = "AUTH"
	KindDecryption Kind = "DECRYPTION"
	KindStorage    Kind = "STORAGE"
	KindConfig     Kind = "CONFIG"
)

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches another *Error of the same kind. A target with a message also
// has to carry the same message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func Validation(msg string) error { return New(KindValidation, msg) }

func Auth(msg string) error { return New(KindAuth, msg) }

func Decryption(cause error) error {
	return Wrap(KindDecryption, "decryption failed", cause)
}

func Storage(cause error) error {
	return Wrap(KindStorage, "storage failure", cause)
}

func Config(msg string, cause error) error {
	return Wrap(KindConfig, msg, cause)
}

func Internal(msg string, cause error) error {
	return Wrap(KindInternal, msg, cause)
}

// KindOf reports the kind of the first *Error in err's chain, KindInternal
// when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the public message of the first *Error in err's chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
