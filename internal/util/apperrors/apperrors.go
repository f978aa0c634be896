package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Services wrap these with context via the
// constructors below; controllers map them to HTTP statuses with Respond.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthenticated  = errors.New("unauthenticated")
)

func NotFound(format string, args ...any) error {
	return wrap(ErrNotFound, format, args...)
}

func PermissionDenied(format string, args ...any) error {
	return wrap(ErrPermissionDenied, format, args...)
}

func Conflict(format string, args ...any) error {
	return wrap(ErrConflict, format, args...)
}

func InvalidInput(format string, args ...any) error {
	return wrap(ErrInvalidInput, format, args...)
}

func Unauthenticated(format string, args ...any) error {
	return wrap(ErrUnauthenticated, format, args...)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Message strips the sentinel prefix so HTTP responses carry only the
// human-readable part.
func Message(err error) string {
	for _, kind := range []error{
		ErrNotFound,
		ErrPermissionDenied,
		ErrConflict,
		ErrInvalidInput,
		ErrUnauthenticated,
	} {
		if errors.Is(err, kind) {
			prefix := kind.Error() + ": "
			message := err.Error()
			if len(message) > len(prefix) && message[:len(prefix)] == prefix {
				return message[len(prefix):]
			}

			return message
		}
	}

	return err.Error()
}
