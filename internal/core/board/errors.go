package board

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates an import payload whose shape is
// neither a single document nor the legacy multi-project format.
var ErrUnsupportedFormat = errors.New("unsupported import format")

// ValidationError reports a required field that was empty or missing
// after normalization. Always recoverable.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q must not be empty", e.Field)
}

// NotFoundError reports a referenced record id that does not exist.
type NotFoundError struct {
	Kind string // "project", "list", or "item"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// StorageError wraps an underlying read/write failure. File absence
// during a first read is not a StorageError; it means "empty store".
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
