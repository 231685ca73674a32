package apperr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Error kinds. Every error returned by a service unwraps to exactly one of them.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage error")
)

// Error is a failure with a kind and a caller-facing message.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// New returns an error of the given kind. Packages use it to declare sentinels:
//
//	var ErrActivityNotFound = apperr.New(apperr.ErrNotFound, "activity not found")
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(format string, args ...any) error {
	return New(ErrValidation, fmt.Sprintf(format, args...))
}

// Storage classifies a driver error. Unique violations become conflicts,
// everything else (including other integrity violations) stays a storage error
// with the driver message preserved.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		if pgErr.Field('C') == "23505" {
			return &Error{Kind: ErrConflict, Message: "duplicate entry", Err: err}
		}
		if pgErr.IntegrityViolation() {
			return &Error{Kind: ErrStorage, Message: "constraint violation", Err: err}
		}
	}
	return &Error{Kind: ErrStorage, Message: "storage error", Err: err}
}

// NotFoundOr maps sql.ErrNoRows to notFound and everything else through Storage.
func NotFoundOr(err error, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return Storage(err)
}

// Message returns the caller-facing message of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
