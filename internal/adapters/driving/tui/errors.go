package tui

import "errors"

// ErrMissingController is returned when the meeting controller is not provided.
var ErrMissingController = errors.New("tui: meeting controller is required")

// ErrMissingMeetingService is returned when the meeting service is not provided.
var ErrMissingMeetingService = errors.New("tui: meeting service is required")

// ErrInvalidPorts is returned when no ports are given.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
