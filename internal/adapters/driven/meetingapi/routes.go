package meetingapi

import (
	"net/url"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

// Backend endpoint paths.
const (
	pathProcessMeeting = "/process_meeting"
	pathTranscribe     = "/transcribe"
	pathSummarize      = "/summarize"
	pathSearch         = "/search"
	pathExport         = "/export/"
)

// uploadField is the multipart field name the backend reads the file from.
const uploadField = "file"

// exportPath returns the path of the export endpoint for id.
func exportPath(id domain.MeetingID) string {
	return pathExport + url.PathEscape(id.String())
}
