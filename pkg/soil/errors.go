package soil

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorKind classifies core failures so the transport layer can map them to
// status codes without inspecting message text.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindAuthorization
	KindStorage
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "soil: unknown error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewAuthorizationError(msg string) *Error {
	return &Error{Kind: KindAuthorization, Message: msg}
}

func NewStorageError(err error) *Error {
	return &Error{Kind: KindStorage, Err: err}
}

// KindOf extracts the kind of a core error. Anything that is not a *Error is
// treated as a storage failure.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// isUniqueViolation reports whether err is a unique-constraint violation from
// the storage layer. Concurrent find-or-create races resolve through this: the
// losing writer retries the lookup instead of surfacing the error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
