package domain

import "fmt"

// APIError is returned when the backend answers with a non-2xx status.
// It unwraps to ErrBackend, or to ErrNotFound for 404 responses.
type APIError struct {
	// Operation names the client call, e.g. "process meeting".
	Operation string

	// StatusCode is the HTTP status returned by the backend.
	StatusCode int

	// Detail is the backend's error message, when it sent one.
	Detail string
}

// Error implements error.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: backend returned %d: %s", e.Operation, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: backend returned %d", e.Operation, e.StatusCode)
}

// Unwrap allows errors.Is against ErrBackend and ErrNotFound.
func (e *APIError) Unwrap() []error {
	if e.StatusCode == 404 {
		return []error{ErrBackend, ErrNotFound}
	}
	return []error{ErrBackend}
}
