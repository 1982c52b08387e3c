package recordstore

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrStorageFault matches every error caused by opening, reading, writing
	// or renaming a store's backing file.
	ErrStorageFault = errors.New("storage fault")

	// ErrValidation matches caller-side field validation failures.
	ErrValidation = errors.New("validation failed")
)

// StorageError records the file operation that failed.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	var pe *fs.PathError
	if errors.As(e.Err, &pe) && pe.Path == e.Path {
		return fmt.Sprintf("recordstore: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("recordstore: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorageFault }

func storageFault(op, path string, err error) error {
	return &StorageError{Op: op, Path: path, Err: err}
}

// ValidationError describes a field a caller supplied in an unusable shape.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid is shorthand for building a *ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
