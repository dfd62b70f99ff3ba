// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/minutes/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewUpload picks a recording and uploads it.
	ViewUpload
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewMeeting shows one meeting's summary and transcript.
	ViewMeeting
	// ViewHistory lists meetings processed on this machine.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewUpload:
		return "upload"
	case ViewSearch:
		return "search"
	case ViewMeeting:
		return "meeting"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// QueryChanged is sent when the search query input changes.
type QueryChanged struct {
	Query string
}

// UploadCompleted carries the result of an upload.
type UploadCompleted struct {
	Meeting *domain.Meeting
	Err     error
}

// SearchCompleted carries search results back to the model.
// Stale responses are dropped before this message is sent.
type SearchCompleted struct {
	Results []domain.SearchResult
	Err     error
}

// MeetingSelected asks the app to show a meeting.
// Preview, when set, supplies text the local history may lack.
type MeetingSelected struct {
	ID      domain.MeetingID
	Preview *domain.Meeting
}

// MeetingLoaded carries the meeting to display.
type MeetingLoaded struct {
	Meeting *domain.Meeting
	Err     error
}

// HistoryLoaded carries recently processed meetings.
type HistoryLoaded struct {
	Meetings []domain.Meeting
	Err      error
}

// ExportCompleted signals an export finished.
type ExportCompleted struct {
	Target *domain.ExportTarget
	Err    error
}

// Copied signals the clipboard copy finished.
type Copied struct {
	What string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
