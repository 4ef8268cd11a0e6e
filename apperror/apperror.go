// Package apperror carries the typed error taxonomy used across services.
// Handlers map kinds to HTTP statuses; repositories wrap driver errors and
// services promote them to a kind at the point where the rule is enforced.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindSeatLimit
	KindInsufficientStock
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error

	// CurrentLimit is set only for KindSeatLimit so the caller can offer
	// the upgrade path with the limit that was hit.
	CurrentLimit int
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func SeatLimit(limit int) *Error {
	return &Error{Kind: KindSeatLimit, Msg: "limit_reached", CurrentLimit: limit}
}

func InsufficientStock(msg string) *Error {
	return &Error{Kind: KindInsufficientStock, Msg: msg}
}

// From extracts the typed error from a wrapped chain, defaulting to internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Kind: KindInternal, Msg: "internal server error", Err: err}
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// HTTPStatus maps a kind to the status the handler responds with.
// KindSeatLimit is not here on purpose: the seat-limit outcome is a 200
// with a limit_reached body, not an error status.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
