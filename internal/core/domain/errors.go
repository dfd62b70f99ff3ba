package domain

import "errors"

// Domain errors represent client-side failures.
// Transport and backend failures wrap ErrTransport, ErrBackend or
// ErrMalformedResponse so callers can tell the causes apart.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoFileSelected indicates an upload was submitted without a file.
	ErrNoFileSelected = errors.New("no file selected")

	// ErrNoMeeting indicates an export was requested before any meeting
	// was processed or restored.
	ErrNoMeeting = errors.New("no meeting available")

	// ErrUploadInProgress indicates an upload is already in flight.
	ErrUploadInProgress = errors.New("upload in progress")

	// ErrStaleResponse indicates a response arrived after a newer request
	// was issued and was discarded.
	ErrStaleResponse = errors.New("stale response discarded")

	// Backend Errors.

	// ErrTransport indicates the backend could not be reached.
	ErrTransport = errors.New("backend unreachable")

	// ErrBackend indicates the backend answered with a non-2xx status.
	ErrBackend = errors.New("backend error")

	// ErrMalformedResponse indicates the backend answered 2xx with a body
	// that could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)
