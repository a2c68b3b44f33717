package core

// Error taxonomy for the whole backend. Handlers translate these to
// status codes at the request boundary; everything else just wraps and
// returns them.

// ValidationError marks a missing or malformed required field.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError from a message.
func Validation(msg string) error { return &ValidationError{Msg: msg} }

// ConflictError marks an attempt to create something that already exists.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// Conflict builds a ConflictError from a message.
func Conflict(msg string) error { return &ConflictError{Msg: msg} }

// AuthError marks a failed credential check.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

// Unauthorized builds an AuthError from a message.
func Unauthorized(msg string) error { return &AuthError{Msg: msg} }
