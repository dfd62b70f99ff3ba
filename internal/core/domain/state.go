package domain

// ViewState is the transient state owned by the controller.
// It is never persisted; a snapshot is a copy.
type ViewState struct {
	// Selection is the file chosen for the next upload.
	Selection UploadSelection

	// Meeting is the last successfully processed (or restored) meeting.
	// Nil until one exists.
	Meeting *Meeting

	// Query is the current search text.
	Query string

	// Results holds the results of the latest issued search.
	// Nil until a search completes; empty after a search with no matches.
	Results []SearchResult

	// Uploading is true while an upload is in flight.
	Uploading bool

	// Searching is true while the latest issued search is in flight.
	Searching bool

	// Notice is the last user-facing message, empty when none.
	Notice string
}

// MeetingID returns the current meeting identifier, or "" when none.
func (s ViewState) MeetingID() MeetingID {
	if s.Meeting == nil {
		return ""
	}
	return s.Meeting.ID
}

// HasResults reports whether a completed search is on display.
func (s ViewState) HasResults() bool {
	return s.Results != nil
}
