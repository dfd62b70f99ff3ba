package driving

import (
	"context"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

// MeetingController owns the client's view state and orchestrates the
// upload, search and export actions a user can take.
type MeetingController interface {
	// SelectFile replaces the upload selection with the file at path.
	SelectFile(path string) error

	// SetQuery replaces the current search text.
	SetQuery(query string)

	// SubmitUpload processes the selected file. It returns
	// domain.ErrNoFileSelected without any network call when nothing is
	// selected, and domain.ErrUploadInProgress while another upload runs.
	SubmitUpload(ctx context.Context) (*domain.Meeting, error)

	// SubmitSearch searches with the current query. A response that
	// arrives after a newer search was issued is discarded and reported
	// as domain.ErrStaleResponse.
	SubmitSearch(ctx context.Context) ([]domain.SearchResult, error)

	// RequestExport opens the static PDF of the current meeting.
	// It returns domain.ErrNoMeeting without navigating when none exists.
	RequestExport(ctx context.Context) (*domain.ExportTarget, error)

	// DownloadExport saves the PDF of the current meeting into dir.
	DownloadExport(ctx context.Context, dir string) (*domain.ExportTarget, error)

	// SelectMeeting makes id the current meeting. The history entry is
	// used when one exists; otherwise only the identifier is known.
	SelectMeeting(ctx context.Context, id domain.MeetingID) error

	// Restore loads the most recent meeting from history into view state.
	Restore(ctx context.Context) error

	// State returns a copy of the current view state.
	State() domain.ViewState
}
