// Package error defines domain-specific errors for the sync agent.
package error

import "errors"

// Storage domain errors.
var (
	// ErrStorageInit is returned when the local database cannot be opened.
	// Callers are expected to continue in degraded, memory-only mode.
	ErrStorageInit = errors.New("local storage unavailable")

	// ErrRecordWriteFailed is returned when persisting a single record fails.
	ErrRecordWriteFailed = errors.New("record write failed")

	// ErrDuplicateRecordID is returned when a record id already exists in
	// its collection.
	ErrDuplicateRecordID = errors.New("duplicate record id")

	// ErrRecordNotFound is returned when an update or delete targets a
	// record that is not in the collection.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnknownCollection is returned when an operation names a
	// collection the store does not manage.
	ErrUnknownCollection = errors.New("unknown collection")
)

// StorageErrorCode defines error codes for storage errors.
// Format: STO-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	// Initialization errors (01XXXX)
	ErrCodeStorageInit StorageErrorCode = "STO-010001"

	// Persistence errors (02XXXX)
	ErrCodeRecordWriteFailed StorageErrorCode = "STO-020001"
	ErrCodeDuplicateRecordID StorageErrorCode = "STO-020002"
	ErrCodeRecordNotFound    StorageErrorCode = "STO-020003"
	ErrCodeUnknownCollection StorageErrorCode = "STO-020004"
)

// StorageError represents a storage error with code and message.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
