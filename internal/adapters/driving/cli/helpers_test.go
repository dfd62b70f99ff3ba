package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
)

// executeCommand runs the root command with svc installed and returns
// everything written to stdout and stderr.
func executeCommand(t *testing.T, svc *Services, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, svc, "", args...)
}

func executeWithInput(t *testing.T, svc *Services, input string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	prev := services
	services = svc
	t.Cleanup(func() { services = prev })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so values from one test do
// not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

type mockController struct {
	state domain.ViewState

	selectErr  error
	uploadErr  error
	searchErr  error
	exportErr  error
	restoreErr error

	results []domain.SearchResult
	restore *domain.Meeting
	history map[domain.MeetingID]*domain.Meeting

	uploadCalls   int
	searchCalls   int
	openCalls     int
	downloadCalls int
	downloadDir   string
}

func (m *mockController) SelectFile(path string) error {
	if m.selectErr != nil {
		return m.selectErr
	}
	m.state.Selection = domain.UploadSelection{Path: path, Name: path}
	return nil
}

func (m *mockController) SetQuery(query string) {
	m.state.Query = query
}

func (m *mockController) SubmitUpload(_ context.Context) (*domain.Meeting, error) {
	m.uploadCalls++
	if m.state.Selection.IsZero() {
		return nil, domain.ErrNoFileSelected
	}
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	meeting := &domain.Meeting{
		ID:         "42",
		Summary:    "Agreed to ship on Friday.",
		Transcript: "Alice: ship it.",
		FileName:   m.state.Selection.Name,
	}
	m.state.Meeting = meeting
	return meeting, nil
}

func (m *mockController) SubmitSearch(_ context.Context) ([]domain.SearchResult, error) {
	m.searchCalls++
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	m.state.Results = m.results
	if m.state.Results == nil {
		m.state.Results = []domain.SearchResult{}
	}
	return m.state.Results, nil
}

func (m *mockController) RequestExport(_ context.Context) (*domain.ExportTarget, error) {
	if m.state.Meeting == nil {
		return nil, domain.ErrNoMeeting
	}
	if m.exportErr != nil {
		return nil, m.exportErr
	}
	m.openCalls++
	return &domain.ExportTarget{
		MeetingID: m.state.Meeting.ID,
		URL:       "http://backend" + domain.StaticPDFPath(m.state.Meeting.ID),
		Mode:      domain.ExportModeOpen,
	}, nil
}

func (m *mockController) DownloadExport(_ context.Context, dir string) (*domain.ExportTarget, error) {
	if m.state.Meeting == nil {
		return nil, domain.ErrNoMeeting
	}
	if m.exportErr != nil {
		return nil, m.exportErr
	}
	m.downloadCalls++
	m.downloadDir = dir
	return &domain.ExportTarget{
		MeetingID: m.state.Meeting.ID,
		Path:      dir + "/" + domain.PDFFileName(m.state.Meeting.ID),
		Mode:      domain.ExportModeDownload,
	}, nil
}

func (m *mockController) SelectMeeting(_ context.Context, id domain.MeetingID) error {
	if id.IsZero() {
		return domain.ErrInvalidInput
	}
	if meeting, ok := m.history[id]; ok {
		m.state.Meeting = meeting
		return nil
	}
	m.state.Meeting = &domain.Meeting{ID: id}
	return nil
}

func (m *mockController) Restore(_ context.Context) error {
	if m.restoreErr != nil {
		return m.restoreErr
	}
	if m.state.Meeting == nil && m.restore != nil {
		m.state.Meeting = m.restore
	}
	return nil
}

func (m *mockController) State() domain.ViewState {
	return m.state
}

type mockMeetingService struct {
	transcript    string
	summary       string
	history       []domain.Meeting
	err           error
	summarizeArgs []string
	historyLimit  int
}

func (m *mockMeetingService) Process(_ context.Context, file domain.UploadSelection) (*domain.Meeting, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Meeting{ID: "1", FileName: file.Name}, nil
}

func (m *mockMeetingService) Transcribe(_ context.Context, _ domain.UploadSelection) (string, error) {
	return m.transcript, m.err
}

func (m *mockMeetingService) Summarize(_ context.Context, transcript string) (string, error) {
	m.summarizeArgs = append(m.summarizeArgs, transcript)
	return m.summary, m.err
}

func (m *mockMeetingService) Search(_ context.Context, _ string) ([]domain.SearchResult, error) {
	return []domain.SearchResult{}, m.err
}

func (m *mockMeetingService) ExportLink(id domain.MeetingID) (string, error) {
	if id.IsZero() {
		return "", domain.ErrNoMeeting
	}
	return "http://backend" + domain.StaticPDFPath(id), nil
}

func (m *mockMeetingService) DownloadExport(_ context.Context, _ domain.MeetingID, w io.Writer) error {
	_, err := w.Write([]byte("%PDF-1.4"))
	return err
}

func (m *mockMeetingService) Get(_ context.Context, id domain.MeetingID) (*domain.Meeting, error) {
	for i := range m.history {
		if m.history[i].ID == id {
			return &m.history[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockMeetingService) Latest(_ context.Context) (*domain.Meeting, error) {
	if len(m.history) == 0 {
		return nil, domain.ErrNotFound
	}
	return &m.history[0], nil
}

func (m *mockMeetingService) History(_ context.Context, limit int) ([]domain.Meeting, error) {
	m.historyLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.history, nil
}

type mockSettingsService struct {
	settings domain.AppSettings
	setErr   error
	sets     map[string]string
	path     string
}

func newMockSettings() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultAppSettings(),
		sets:     make(map[string]string),
		path:     "/home/user/.minutes/config.toml",
	}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"api.base_url", "api.token"}
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) Path() string {
	return m.path
}

type mockWatchService struct {
	events []driving.WatchEvent
	err    error
	dir    string
}

func (m *mockWatchService) Watch(_ context.Context, dir string, report func(driving.WatchEvent)) error {
	m.dir = dir
	for _, ev := range m.events {
		report(ev)
	}
	return m.err
}
