package usecase

import "errors"

var (
	ErrInvalidLimit     = errors.New("invalid limit")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrStoreOperation   = errors.New("store operation failed")
)

// StoreError wraps a failed document store call. It matches ErrStoreOperation
// with errors.Is and exposes the backend error through Unwrap.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreOperation
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
