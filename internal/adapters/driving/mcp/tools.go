package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

// ProcessInput is the input schema for the process_meeting tool.
type ProcessInput struct {
	Path string `json:"path" jsonschema:"absolute path to an audio recording on this machine"`
}

// MeetingOutput describes one processed meeting.
type MeetingOutput struct {
	MeetingID  string `json:"meeting_id"`
	Summary    string `json:"summary"`
	Transcript string `json:"transcript"`
	PDFLink    string `json:"pdf_link,omitempty"`
}

// SearchInput is the input schema for the search_meetings tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"keywords to match against meeting summaries and transcripts"`
}

// SearchOutput is the output schema for the search_meetings tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	MeetingID string `json:"meeting_id"`
	Summary   string `json:"summary"`
}

// ExportInput is the input schema for the export_link tool.
type ExportInput struct {
	MeetingID string `json:"meeting_id,omitempty" jsonschema:"meeting to export (default: most recent)"`
}

// ExportOutput is the output schema for the export_link tool.
type ExportOutput struct {
	MeetingID string `json:"meeting_id"`
	URL       string `json:"url"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "process_meeting",
		Description: "Upload a recording to be transcribed and summarised",
	}, s.handleProcess)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_meetings",
		Description: "Search processed meetings by keyword",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_link",
		Description: "Get the PDF summary URL of a meeting",
	}, s.handleExportLink)
}

func (s *Server) handleProcess(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProcessInput,
) (*mcp.CallToolResult, MeetingOutput, error) {
	selection, err := domain.NewUploadSelection(input.Path)
	if err != nil {
		return nil, MeetingOutput{}, err
	}

	meeting, err := s.ports.Meetings.Process(ctx, selection)
	if err != nil {
		return nil, MeetingOutput{}, err
	}

	return nil, toMeetingOutput(meeting), nil
}

// handleSearch sends the query as given; an empty result set is not an error.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Meetings.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			MeetingID: results[i].ID.String(),
			Summary:   results[i].Summary,
		}
	}

	return nil, output, nil
}

func (s *Server) handleExportLink(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	id := domain.MeetingID(input.MeetingID)
	if id.IsZero() {
		latest, err := s.ports.Meetings.Latest(ctx)
		if err != nil {
			return nil, ExportOutput{}, fmt.Errorf("%w: no meeting id given and no history", domain.ErrNoMeeting)
		}
		id = latest.ID
	}

	url, err := s.ports.Meetings.ExportLink(id)
	if err != nil {
		return nil, ExportOutput{}, err
	}

	return nil, ExportOutput{MeetingID: id.String(), URL: url}, nil
}

func toMeetingOutput(m *domain.Meeting) MeetingOutput {
	return MeetingOutput{
		MeetingID:  m.ID.String(),
		Summary:    m.Summary,
		Transcript: m.Transcript,
		PDFLink:    m.PDFLink,
	}
}
