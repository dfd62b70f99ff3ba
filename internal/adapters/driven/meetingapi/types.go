package meetingapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

// flexID decodes an identifier sent as either a JSON number or string.
type flexID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("meeting id must be a number or string: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

// processResponse is the body of POST /process_meeting.
type processResponse struct {
	MeetingID  flexID `json:"meeting_id"`
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
	PDFLink    string `json:"pdf_link"`
}

func (r processResponse) toDomain() *domain.Meeting {
	return &domain.Meeting{
		ID:         domain.MeetingID(r.MeetingID),
		Summary:    r.Summary,
		Transcript: r.Transcript,
		PDFLink:    r.PDFLink,
	}
}

// transcribeResponse is the body of POST /transcribe.
type transcribeResponse struct {
	Transcript *string `json:"transcript"`
}

// summarizeRequest is the body sent to POST /summarize.
type summarizeRequest struct {
	Transcript string `json:"transcript"`
}

// summarizeResponse is the body of POST /summarize.
type summarizeResponse struct {
	Summary *string `json:"summary"`
}

// searchRequest is the body sent to POST /search.
type searchRequest struct {
	Query string `json:"query"`
}

// searchResponse is the body of POST /search. Backends that return full
// meeting rows also fill the optional fields.
type searchResponse struct {
	Results []struct {
		ID          flexID `json:"id"`
		Summary     string `json:"summary"`
		Transcript  string `json:"transcript"`
		ActionItems string `json:"action_items"`
		Decisions   string `json:"decisions"`
	} `json:"results"`
}

func (r searchResponse) toDomain() []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(r.Results))
	for _, row := range r.Results {
		results = append(results, domain.SearchResult{
			ID:          domain.MeetingID(row.ID),
			Summary:     row.Summary,
			Transcript:  row.Transcript,
			ActionItems: row.ActionItems,
			Decisions:   row.Decisions,
		})
	}
	return results
}

// exportResponse is the JSON variant of GET /export/{id}.
type exportResponse struct {
	Message string `json:"message"`
	PDFLink string `json:"pdf_link"`
}
