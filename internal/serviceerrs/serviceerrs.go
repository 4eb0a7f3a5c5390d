package serviceerrs

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies an error for callers of the service layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Status returns the HTTP status code the kind is presented with.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindConflict, KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

type CodedError struct {
	Kind    Kind
	Message string
}

func New(kind Kind, message string) *CodedError {
	return &CodedError{
		Kind:    kind,
		Message: message,
	}
}

// Validation wraps a validation failure, joined errors included, into a
// single-line client message.
func Validation(err error) *CodedError {
	return New(KindValidation, strings.ReplaceAll(err.Error(), "\n", "; "))
}

func (e *CodedError) Error() string {
	return e.Kind.String() + ": " + e.Message
}

const msgWrongCredentials = "wrong username or password"

var (
	ErrUsernameTaken = New(KindConflict, "username already exists")
	ErrUserNotFound  = New(KindNotFound, "user not found")
	// ErrUnknownUsername and ErrWrongPassword are presented identically.
	ErrUnknownUsername = New(KindUnauthorized, msgWrongCredentials)
	ErrWrongPassword   = New(KindUnauthorized, msgWrongCredentials)

	ErrSelfLike          = New(KindForbidden, "self liking not allowed")
	ErrAlreadyLiked      = New(KindForbidden, "already liked")
	ErrLikedUserNotFound = New(KindNotFound, "liked user not found")
	ErrLikeNotFound      = New(KindUnauthorized, "like does not exist")
)

// Storage level errors. Repositories wrap them, the service layer translates them.
var (
	ErrNotFound            = errors.New("not found")
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrCheckViolation      = errors.New("check constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

var (
	ErrTokenExpired           = errors.New("token expired")
	ErrInvalidToken           = errors.New("invalid token")
	ErrSemaphoreAcquire       = errors.New("failed to acquire semaphore")
	ErrPasswordMismatch       = errors.New("password does not match")
	ErrDockerUnavailable      = errors.New("docker is unavailable")
	ErrDBNotConnected         = errors.New("DB is not connected")
	ErrBadAuthorizationHeader = errors.New("bad authorization header")
)

// KindOf reports the kind of err, KindInternal for anything
// that is not a *CodedError.
func KindOf(err error) Kind {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}
