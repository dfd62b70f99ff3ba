package domain

// ExportMode selects how a PDF export is delivered.
type ExportMode string

// Available export modes.
const (
	// ExportModeOpen opens the static PDF URL with the system handler.
	ExportModeOpen ExportMode = "open"

	// ExportModeDownload fetches the PDF and writes it to disk.
	ExportModeDownload ExportMode = "download"
)

// IsValid returns true if the export mode is recognised.
func (m ExportMode) IsValid() bool {
	switch m {
	case ExportModeOpen, ExportModeDownload:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ExportMode) String() string {
	return string(m)
}

// ExportTarget describes where a meeting's PDF export was delivered.
type ExportTarget struct {
	// MeetingID is the exported meeting.
	MeetingID MeetingID

	// URL is the absolute URL of the PDF.
	URL string

	// Path is the local file written in download mode.
	Path string

	// Mode is how the export was delivered.
	Mode ExportMode
}
