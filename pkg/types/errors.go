package types

import "fmt"

// StorageError wraps a failure of the underlying persistence engine.
// It is always surfaced to the caller and never swallowed; the core does
// not retry. Use errors.As to detect it and Unwrap to reach the cause.
type StorageError struct {
	Op  string // the storage operation that failed, e.g. "insert question"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError for the given operation.
// Returns nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
