package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

// MeetingAPI is the meeting-notes backend.
// Implementations own the endpoint paths; callers never build URLs.
type MeetingAPI interface {
	// ProcessMeeting uploads an audio file and returns the transcript,
	// summary and assigned meeting identifier.
	ProcessMeeting(ctx context.Context, file domain.UploadSelection) (*domain.Meeting, error)

	// Transcribe uploads an audio file and returns only its transcript.
	Transcribe(ctx context.Context, file domain.UploadSelection) (string, error)

	// Summarize returns a summary for the given transcript.
	Summarize(ctx context.Context, transcript string) (string, error)

	// Search returns meetings matching query. The query is sent as-is.
	// No matches is an empty slice and a nil error.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)

	// ExportURL returns the absolute URL of the static PDF for id.
	ExportURL(id domain.MeetingID) string

	// DownloadExport writes the PDF export of id to w.
	DownloadExport(ctx context.Context, id domain.MeetingID, w io.Writer) error
}
