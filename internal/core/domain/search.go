package domain

// SearchResult represents a single meeting matching a keyword search.
type SearchResult struct {
	// ID is the matching meeting's identifier.
	ID MeetingID

	// Summary is the meeting summary.
	Summary string

	// Transcript is the meeting transcript, when the backend includes it.
	Transcript string

	// ActionItems and Decisions are filled only by backends that return
	// full meeting rows.
	ActionItems string
	Decisions   string
}

// previewEllipsis is appended to truncated previews.
const previewEllipsis = "..."

// Preview returns the first n runes of the summary followed by an ellipsis
// when the summary is longer than n.
func (r SearchResult) Preview(n int) string {
	return Truncate(r.Summary, n)
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + previewEllipsis
}
