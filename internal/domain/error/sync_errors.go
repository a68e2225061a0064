package error

import "errors"

// Sync domain errors.
var (
	// ErrDrainInProgress is returned when a drain is requested while a
	// previous drain has not finished. The queue is untouched.
	ErrDrainInProgress = errors.New("drain already in progress")

	// ErrNoEndpoint is returned when a queued item's collection has no
	// known remote endpoint.
	ErrNoEndpoint = errors.New("no remote endpoint for collection")

	// ErrDelivery is returned when replaying a queued item fails; the
	// item stays queued for the next drain cycle.
	ErrDelivery = errors.New("sync delivery failed")

	// ErrQueueWrite is returned when the durable queue itself cannot be
	// written.
	ErrQueueWrite = errors.New("sync queue write failed")
)

// SyncErrorCode defines error codes for sync errors.
// Format: SYN-XXYYYY where XX is category and YYYY is specific error.
type SyncErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeQueueWrite SyncErrorCode = "SYN-010001"

	// Delivery errors (02XXXX)
	ErrCodeDelivery        SyncErrorCode = "SYN-020001"
	ErrCodeNoEndpoint      SyncErrorCode = "SYN-020002"
	ErrCodeDrainInProgress SyncErrorCode = "SYN-020003"
)

// SyncError represents a sync error with code and message.
type SyncError struct {
	Code    SyncErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError with the given code and message.
func NewSyncError(code SyncErrorCode, message string, err error) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
