package api

import (
	"errors"
	"fmt"
)

// Common errors returned by the port server client. These are transport
// failures: the server never produced a usable response. Application-level
// failures (the server answered with success=false) are not errors; they
// come back as a CommandResult carrying the server's message.
var (
	// ErrUnavailable is returned when the port server is not reachable.
	ErrUnavailable = errors.New("port server unavailable")

	// ErrTimeout is returned when a request times out.
	ErrTimeout = errors.New("request timed out")

	// ErrBadResponse is returned when the server answered with a body
	// this client cannot parse.
	ErrBadResponse = errors.New("unparseable server response")
)

// APIError wraps errors from the port server with request context.
type APIError struct {
	Operation  string // the operation that failed (e.g. "configure")
	StatusCode int    // HTTP status code (0 if the request never completed)
	Err        error  // underlying error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("api: %s failed (HTTP %d): %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("api: %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new APIError.
func NewAPIError(operation string, statusCode int, err error) *APIError {
	return &APIError{
		Operation:  operation,
		StatusCode: statusCode,
		Err:        err,
	}
}

// IsUnavailable returns true if the error indicates the server could not
// be reached at all.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsTimeout returns true if the error indicates a request timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsBadResponse returns true if the server responded with something this
// client could not parse.
func IsBadResponse(err error) bool {
	return errors.Is(err, ErrBadResponse)
}
