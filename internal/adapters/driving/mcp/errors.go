// Package mcp provides an MCP (Model Context Protocol) server adapter for minutes.
// It lets AI assistants process, search and export meetings.
package mcp

import "errors"

// ErrMissingMeetingService is returned when the meeting service is not provided.
var ErrMissingMeetingService = errors.New("mcp: meeting service is required")
