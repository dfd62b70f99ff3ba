package services

import (
	"context"
	"io"
	"sync"

	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockMeetingAPI implements driven.MeetingAPI for testing.
// Unset funcs return zero values.
type mockMeetingAPI struct {
	mu           sync.Mutex
	processCalls int
	searchCalls  int

	processFn    func(ctx context.Context, file domain.UploadSelection) (*domain.Meeting, error)
	transcribeFn func(ctx context.Context, file domain.UploadSelection) (string, error)
	summarizeFn  func(ctx context.Context, transcript string) (string, error)
	searchFn     func(ctx context.Context, query string) ([]domain.SearchResult, error)
	downloadFn   func(ctx context.Context, id domain.MeetingID, w io.Writer) error
}

var _ driven.MeetingAPI = (*mockMeetingAPI)(nil)

func (m *mockMeetingAPI) ProcessMeeting(ctx context.Context, file domain.UploadSelection) (*domain.Meeting, error) {
	m.mu.Lock()
	m.processCalls++
	m.mu.Unlock()
	if m.processFn == nil {
		return &domain.Meeting{ID: "1"}, nil
	}
	return m.processFn(ctx, file)
}

func (m *mockMeetingAPI) Transcribe(ctx context.Context, file domain.UploadSelection) (string, error) {
	if m.transcribeFn == nil {
		return "", nil
	}
	return m.transcribeFn(ctx, file)
}

func (m *mockMeetingAPI) Summarize(ctx context.Context, transcript string) (string, error) {
	if m.summarizeFn == nil {
		return "", nil
	}
	return m.summarizeFn(ctx, transcript)
}

func (m *mockMeetingAPI) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	m.mu.Lock()
	m.searchCalls++
	m.mu.Unlock()
	if m.searchFn == nil {
		return []domain.SearchResult{}, nil
	}
	return m.searchFn(ctx, query)
}

func (m *mockMeetingAPI) ExportURL(id domain.MeetingID) string {
	return "http://backend.test" + domain.StaticPDFPath(id)
}

func (m *mockMeetingAPI) DownloadExport(ctx context.Context, id domain.MeetingID, w io.Writer) error {
	if m.downloadFn == nil {
		_, err := io.WriteString(w, "%PDF-1.4")
		return err
	}
	return m.downloadFn(ctx, id, w)
}

func (m *mockMeetingAPI) processCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.processCalls
}

// mockMeetingStore implements driven.MeetingStore with injectable errors.
type mockMeetingStore struct {
	saved     []domain.Meeting
	saveErr   error
	latest    *domain.Meeting
	latestErr error
	getErr    error
	listErr   error
}

var _ driven.MeetingStore = (*mockMeetingStore)(nil)

func (m *mockMeetingStore) Save(_ context.Context, meeting domain.Meeting) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, meeting)
	return nil
}

func (m *mockMeetingStore) Get(_ context.Context, id domain.MeetingID) (*domain.Meeting, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, meeting := range m.saved {
		if meeting.ID == id {
			found := meeting
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockMeetingStore) Latest(_ context.Context) (*domain.Meeting, error) {
	if m.latestErr != nil {
		return nil, m.latestErr
	}
	if m.latest == nil {
		return nil, domain.ErrNotFound
	}
	return m.latest, nil
}

func (m *mockMeetingStore) List(_ context.Context, _ int) ([]domain.Meeting, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.saved, nil
}

func (m *mockMeetingStore) Delete(_ context.Context, _ domain.MeetingID) error {
	return nil
}

// mockOpener implements driven.URLOpener and records opened URLs.
type mockOpener struct {
	opened []string
	err    error
}

var _ driven.URLOpener = (*mockOpener)(nil)

func (m *mockOpener) Open(_ context.Context, url string) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, url)
	return nil
}

// mockWatcher implements driven.AudioWatcher over test-owned channels.
type mockWatcher struct {
	paths chan string
	errs  chan error
	err   error
}

var _ driven.AudioWatcher = (*mockWatcher)(nil)

func newMockWatcher() *mockWatcher {
	return &mockWatcher{
		paths: make(chan string),
		errs:  make(chan error),
	}
}

func (m *mockWatcher) Watch(_ context.Context, _ string) (<-chan string, <-chan error, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.paths, m.errs, nil
}
