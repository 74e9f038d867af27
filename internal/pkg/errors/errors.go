package errors

import (
	"errors"
	"net/http"
)

// Kind is the stable, client-facing classification of an error.
type Kind string

const (
	KindNotFound          Kind = "NotFound"
	KindForbidden         Kind = "Forbidden"
	KindInvalidTransition Kind = "InvalidTransition"
	KindConflict          Kind = "Conflict"
	KindSlotTaken         Kind = "SlotTaken"
	KindInsufficientFunds Kind = "InsufficientFunds"
	KindValidation        Kind = "ValidationError"
	KindBadRequest        Kind = "BadRequest"
	KindUnauthorized      Kind = "Unauthorized"
	KindInternal          Kind = "InternalServerError"
)

type ErrorString struct {
	code    int
	kind    Kind
	message string
}

func (e ErrorString) Code() int {
	return e.code
}

func (e ErrorString) Kind() Kind {
	return e.kind
}

func (e ErrorString) Message() string {
	return e.message
}

func (e ErrorString) Error() string {
	return e.message
}

func newError(code int, kind Kind, msg string) error {
	return &ErrorString{
		code:    code,
		kind:    kind,
		message: msg,
	}
}

func NotFound(msg string) error {
	return newError(http.StatusNotFound, KindNotFound, msg)
}

func Forbidden(msg string) error {
	return newError(http.StatusForbidden, KindForbidden, msg)
}

func InvalidTransition(msg string) error {
	return newError(http.StatusConflict, KindInvalidTransition, msg)
}

func Conflict(msg string) error {
	return newError(http.StatusConflict, KindConflict, msg)
}

func SlotTaken(msg string) error {
	return newError(http.StatusConflict, KindSlotTaken, msg)
}

func InsufficientFunds(msg string) error {
	return newError(http.StatusUnprocessableEntity, KindInsufficientFunds, msg)
}

func ValidationError(msg string) error {
	return newError(http.StatusUnprocessableEntity, KindValidation, msg)
}

func BadRequest(msg string) error {
	return newError(http.StatusBadRequest, KindBadRequest, msg)
}

func UnauthorizedError(msg string) error {
	return newError(http.StatusUnauthorized, KindUnauthorized, msg)
}

func InternalServerError(msg string) error {
	return newError(http.StatusInternalServerError, KindInternal, msg)
}

// KindOf reports the kind of err. Errors that did not come from this package
// are treated as internal faults.
func KindOf(err error) Kind {
	var e *ErrorString
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// HTTPStatus returns the response code for err, 500 for foreign errors.
func HTTPStatus(err error) int {
	var e *ErrorString
	if errors.As(err, &e) {
		return e.code
	}
	return http.StatusInternalServerError
}
