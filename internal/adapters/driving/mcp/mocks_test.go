package mcp

import (
	"context"
	"io"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

// mockMeetingService implements driving.MeetingService for testing.
type mockMeetingService struct {
	processed *domain.Meeting
	results   []domain.SearchResult
	meetings  map[domain.MeetingID]*domain.Meeting
	latest    *domain.Meeting
	err       error

	processCalls int
	lastQuery    string
}

func (m *mockMeetingService) Process(_ context.Context, file domain.UploadSelection) (*domain.Meeting, error) {
	m.processCalls++
	if m.err != nil {
		return nil, m.err
	}
	out := *m.processed
	out.FileName = file.Name
	return &out, nil
}

func (m *mockMeetingService) Transcribe(context.Context, domain.UploadSelection) (string, error) {
	return "", m.err
}

func (m *mockMeetingService) Summarize(context.Context, string) (string, error) {
	return "", m.err
}

func (m *mockMeetingService) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	if m.results == nil {
		return []domain.SearchResult{}, nil
	}
	return m.results, nil
}

func (m *mockMeetingService) ExportLink(id domain.MeetingID) (string, error) {
	if id.IsZero() {
		return "", domain.ErrNoMeeting
	}
	return "http://127.0.0.1:8000" + domain.StaticPDFPath(id), nil
}

func (m *mockMeetingService) DownloadExport(context.Context, domain.MeetingID, io.Writer) error {
	return m.err
}

func (m *mockMeetingService) Get(_ context.Context, id domain.MeetingID) (*domain.Meeting, error) {
	if m.err != nil {
		return nil, m.err
	}
	if meeting, ok := m.meetings[id]; ok {
		return meeting, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockMeetingService) Latest(context.Context) (*domain.Meeting, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.latest == nil {
		return nil, domain.ErrNotFound
	}
	return m.latest, nil
}

func (m *mockMeetingService) History(context.Context, int) ([]domain.Meeting, error) {
	return nil, m.err
}
