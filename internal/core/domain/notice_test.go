package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"no file", ErrNoFileSelected, "Please select a file to upload"},
		{"no meeting", fmt.Errorf("export: %w", ErrNoMeeting), "Upload a meeting first"},
		{"in progress", ErrUploadInProgress, "An upload is already in progress"},
		{"stale", ErrStaleResponse, ""},
		{"cancelled", context.Canceled, "Request cancelled"},
		{"timeout", fmt.Errorf("search: %w", context.DeadlineExceeded), "Request timed out"},
		{"transport", fmt.Errorf("search: %w: dial tcp", ErrTransport), "Cannot reach the meeting service"},
		{"malformed", fmt.Errorf("search: %w", ErrMalformedResponse), "The meeting service sent an unreadable response"},
		{
			"api with detail",
			&APIError{Operation: "process meeting", StatusCode: 500, Detail: "Processing failed"},
			"Server error (500): Processing failed",
		},
		{"api without detail", &APIError{Operation: "search", StatusCode: 503}, "Server error (503)"},
		{"other", errors.New("boom"), "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Describe(tt.err))
		})
	}
}

func TestDescribe_TransportAndEmptyResultsDiffer(t *testing.T) {
	// Failures must never read like an empty result set.
	assert.NotContains(t, Describe(ErrTransport), "No results")
	assert.NotContains(t, Describe(&APIError{StatusCode: 500}), "No results")
}
