package domain

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// MeetingID is the opaque identifier the backend assigns to a processed upload.
type MeetingID string

// String returns the identifier as a string.
func (id MeetingID) String() string {
	return string(id)
}

// IsZero reports whether no identifier is set.
func (id MeetingID) IsZero() bool {
	return id == ""
}

// Meeting is the result of processing one uploaded recording.
type Meeting struct {
	// ID is the backend-assigned meeting identifier.
	ID MeetingID

	// Summary is the generated summary text.
	Summary string

	// Transcript is the generated transcript text.
	Transcript string

	// PDFLink is the backend-relative path to the static PDF, when reported.
	PDFLink string

	// FileName is the name of the uploaded file.
	FileName string

	// ProcessedAt is when the client received the result.
	ProcessedAt time.Time
}

// StaticPDFPath returns the backend path of the static PDF summary for id.
// The id is escaped as a single path segment.
func StaticPDFPath(id MeetingID) string {
	return fmt.Sprintf("/static/meeting_%s_summary.pdf", url.PathEscape(id.String()))
}

// PDFFileName returns the file name used when saving the export locally.
// It is not a single path element when id contains a separator; see
// ExportFileName.
func PDFFileName(id MeetingID) string {
	return fmt.Sprintf("meeting_%s_summary.pdf", id)
}

// ExportFileName returns PDFFileName(id), or ErrInvalidInput when that
// name would resolve outside the directory it is joined to.
func ExportFileName(id MeetingID) (string, error) {
	name := PDFFileName(id)
	if filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: meeting id %q is not a valid file name", ErrInvalidInput, id.String())
	}
	return name, nil
}
