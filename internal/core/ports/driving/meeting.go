package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

// MeetingService provides stateless meeting operations to external actors.
type MeetingService interface {
	// Process uploads a file, records the result in history and returns it.
	Process(ctx context.Context, file domain.UploadSelection) (*domain.Meeting, error)

	// Transcribe returns the transcript of a file without summarising it.
	Transcribe(ctx context.Context, file domain.UploadSelection) (string, error)

	// Summarize returns a summary of a transcript.
	Summarize(ctx context.Context, transcript string) (string, error)

	// Search returns meetings matching query.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)

	// ExportLink returns the absolute URL of the static PDF for id.
	ExportLink(id domain.MeetingID) (string, error)

	// DownloadExport writes the PDF of id to w.
	DownloadExport(ctx context.Context, id domain.MeetingID, w io.Writer) error

	// Get returns a meeting from history.
	Get(ctx context.Context, id domain.MeetingID) (*domain.Meeting, error)

	// Latest returns the most recent meeting from history.
	Latest(ctx context.Context) (*domain.Meeting, error)

	// History returns up to limit meetings from history, newest first.
	History(ctx context.Context, limit int) ([]domain.Meeting, error)
}
