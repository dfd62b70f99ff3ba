package domain

import (
	"context"
	"errors"
	"fmt"
)

// Describe turns an error into the one-line notice shown to the user.
// Each failure cause gets its own wording; nil yields "".
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	switch {
	case errors.Is(err, ErrNoFileSelected):
		return "Please select a file to upload"
	case errors.Is(err, ErrNoMeeting):
		return "Upload a meeting first"
	case errors.Is(err, ErrUploadInProgress):
		return "An upload is already in progress"
	case errors.Is(err, ErrStaleResponse):
		return ""
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"
	case errors.As(err, &apiErr):
		if apiErr.Detail != "" {
			return fmt.Sprintf("Server error (%d): %s", apiErr.StatusCode, apiErr.Detail)
		}
		return fmt.Sprintf("Server error (%d)", apiErr.StatusCode)
	case errors.Is(err, ErrTransport):
		return "Cannot reach the meeting service"
	case errors.Is(err, ErrMalformedResponse):
		return "The meeting service sent an unreadable response"
	case errors.Is(err, ErrInvalidInput):
		return err.Error()
	default:
		return "Error: " + err.Error()
	}
}
