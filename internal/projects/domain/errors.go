package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned on direct lookup of a missing project.
	ErrNotFound = errors.New("project not found")

	// ErrAuthRequired is returned when a mutating operation has no owner.
	ErrAuthRequired = errors.New("authentication required")
)

// ValidationError reports a rejected input before any network call was made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UploadError reports a failed object storage write. Remaining steps of the
// operation are aborted; already-uploaded objects are not rolled back.
type UploadError struct {
	Object string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s failed: %v", e.Object, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// PersistenceError reports a failed document store read or write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
