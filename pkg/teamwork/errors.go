package teamwork

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIKeyRequired      = errors.New("an API key must be provided, see https://teamwork.tf/api")
	ErrUnparseableResponse = errors.New("unparseable response")
)

// UnparseableResponseError is returned when a successful response body could
// not be mapped onto the requested result shape at all.
type UnparseableResponseError struct {
	Descriptor string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *UnparseableResponseError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d): %v", ErrUnparseableResponse, e.Descriptor, e.StatusCode, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *UnparseableResponseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrUnparseableResponse.
func (e *UnparseableResponseError) Is(target error) bool {
	return target == ErrUnparseableResponse
}

// IsUnparseable checks if the error is an unparseable response error.
func IsUnparseable(err error) bool {
	return errors.Is(err, ErrUnparseableResponse)
}
