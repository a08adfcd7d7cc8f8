package domain

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so transport layers can pick a status code
// without knowing every individual error.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindValidation
	KindConflict
)

// HTTPStatus returns the status code for the kind. Always non-2xx.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is the single failure type crossing the service boundary.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewError builds an ad-hoc error of the given kind.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

var (
	ErrUserNotFound       = NewError(KindNotFound, "There are no professional users registered with that id")
	ErrNoUsers            = NewError(KindNotFound, "There are no registered users")
	ErrNoUsersInCategory  = NewError(KindNotFound, "There are no professional users registered with that category")
	ErrEmailNotFound      = NewError(KindNotFound, "Email not found")
	ErrUserExists         = NewError(KindConflict, "user already exists")
	ErrInvalidCredentials = NewError(KindUnauthorized, "invalid credentials")
	ErrMissingToken       = NewError(KindUnauthorized, "missing authentication token")
	ErrInvalidToken       = NewError(KindUnauthorized, "invalid token")
	ErrUserGone           = NewError(KindUnauthorized, "user no longer exists")
	ErrAccountDisabled    = NewError(KindForbidden, "account disabled")
	ErrForbidden          = NewError(KindForbidden, "access forbidden")
	ErrInvalidCategory    = NewError(KindValidation, "category_id must be a positive integer")
	ErrPasswordTooLong    = NewError(KindValidation, "password must be at most 72 bytes")
)

// KindOf reports the kind of err. Errors that are not *Error are internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
