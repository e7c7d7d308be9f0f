package errors

import "errors"

// Error kinds. Every error returned by a service wraps exactly one of these.
var (
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("resource already exists")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("resource not found")
	ErrRequestInvalid  = errors.New("invalid request")
)

// Error carries a user-facing message alongside its kind and an optional cause.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// New returns an error of the given kind with a user-facing message.
func New(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap is New with an underlying cause kept for logging.
func Wrap(kind error, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf reports which kind err belongs to. Unknown errors are ErrRequestInvalid.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrValidation,
		ErrConflict,
		ErrUnauthenticated,
		ErrForbidden,
		ErrNotFound,
		ErrRequestInvalid,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrRequestInvalid
}

// Message returns the message safe to show to a client.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Invalid request"
}
