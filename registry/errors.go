package registry

import "errors"

// Validation failure classes. Every error returned by a mutating
// operation unwraps to exactly one of these, so callers can branch with
// errors.Is while still surfacing the localized message to the user.
var (
	ErrMissingField      = errors.New("registry: missing field")
	ErrInvalidFormat     = errors.New("registry: invalid format")
	ErrDuplicateValue    = errors.New("registry: duplicate value")
	ErrNotFound          = errors.New("registry: not found")
	ErrDanglingReference = errors.New("registry: dangling reference")
)

// ValidationError is a recoverable, user-facing validation failure.
// Error() is the exact localized message shown in the UI; Unwrap links
// it to one of the failure-class sentinels above.
type ValidationError struct {
	kind error
	msg  string
}

func failed(kind error, msg string) *ValidationError {
	return &ValidationError{kind: kind, msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }
func (e *ValidationError) Unwrap() error { return e.kind }
