package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minutes/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/minutes/internal/core/domain"
)

func newTestController(api *mockMeetingAPI, opener *mockOpener) *Controller {
	return NewController(NewMeetingService(api, memory.NewMeetingStore()), opener)
}

func TestController_SelectFile(t *testing.T) {
	c := newTestController(&mockMeetingAPI{}, nil)
	path := writeAudio(t, "call.m4a")

	require.NoError(t, c.SelectFile(path))

	state := c.State()
	assert.Equal(t, "call.m4a", state.Selection.Name)
	assert.Equal(t, int64(12), state.Selection.Size)
}

func TestController_SelectFile_InvalidKeepsPrevious(t *testing.T) {
	c := newTestController(&mockMeetingAPI{}, nil)
	require.NoError(t, c.SelectFile(writeAudio(t, "first.mp3")))

	err := c.SelectFile(t.TempDir())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	state := c.State()
	assert.Equal(t, "first.mp3", state.Selection.Name)
	assert.NotEmpty(t, state.Notice)
}

func TestController_SubmitUpload_PopulatesStateExactly(t *testing.T) {
	api := &mockMeetingAPI{
		processFn: func(context.Context, domain.UploadSelection) (*domain.Meeting, error) {
			return &domain.Meeting{ID: "42", Summary: "S", Transcript: "T"}, nil
		},
	}
	c := newTestController(api, nil)
	require.NoError(t, c.SelectFile(writeAudio(t, "a.mp3")))

	meeting, err := c.SubmitUpload(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.MeetingID("42"), meeting.ID)

	state := c.State()
	require.NotNil(t, state.Meeting)
	assert.Equal(t, "S", state.Meeting.Summary)
	assert.Equal(t, "T", state.Meeting.Transcript)
	assert.Equal(t, domain.MeetingID("42"), state.MeetingID())
	assert.False(t, state.Uploading)
	assert.Empty(t, state.Notice)
}

func TestController_SubmitUpload_ReplacesPreviousMeeting(t *testing.T) {
	n := 0
	api := &mockMeetingAPI{
		processFn: func(context.Context, domain.UploadSelection) (*domain.Meeting, error) {
			n++
			if n == 1 {
				return &domain.Meeting{ID: "1", Summary: "first", Transcript: "one"}, nil
			}
			return &domain.Meeting{ID: "2", Summary: "second"}, nil
		},
	}
	c := newTestController(api, nil)
	require.NoError(t, c.SelectFile(writeAudio(t, "a.mp3")))

	_, err := c.SubmitUpload(context.Background())
	require.NoError(t, err)
	_, err = c.SubmitUpload(context.Background())
	require.NoError(t, err)

	state := c.State()
	assert.Equal(t, domain.MeetingID("2"), state.Meeting.ID)
	assert.Equal(t, "second", state.Meeting.Summary)
	assert.Empty(t, state.Meeting.Transcript, "fields are replaced, not merged")
}

func TestController_SubmitUpload_NoSelectionMakesNoCall(t *testing.T) {
	api := &mockMeetingAPI{}
	c := newTestController(api, nil)

	_, err := c.SubmitUpload(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoFileSelected)
	assert.Zero(t, api.processCount())
	assert.Equal(t, "Please select a file to upload", c.State().Notice)
}

func TestController_SubmitUpload_FailureSetsNotice(t *testing.T) {
	api := &mockMeetingAPI{
		processFn: func(context.Context, domain.UploadSelection) (*domain.Meeting, error) {
			return nil, &domain.APIError{Operation: "process meeting", StatusCode: 422, Detail: "bad audio"}
		},
	}
	c := newTestController(api, nil)
	require.NoError(t, c.SelectFile(writeAudio(t, "a.mp3")))

	_, err := c.SubmitUpload(context.Background())

	require.Error(t, err)
	state := c.State()
	assert.Nil(t, state.Meeting)
	assert.False(t, state.Uploading)
	assert.Equal(t, "Server error (422): bad audio", state.Notice)
}

func TestController_SubmitUpload_SingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	api := &mockMeetingAPI{
		processFn: func(context.Context, domain.UploadSelection) (*domain.Meeting, error) {
			close(started)
			<-release
			return &domain.Meeting{ID: "1"}, nil
		},
	}
	c := newTestController(api, nil)
	require.NoError(t, c.SelectFile(writeAudio(t, "a.mp3")))

	done := make(chan error, 1)
	go func() {
		_, err := c.SubmitUpload(context.Background())
		done <- err
	}()
	<-started

	assert.True(t, c.State().Uploading)
	_, err := c.SubmitUpload(context.Background())
	assert.ErrorIs(t, err, domain.ErrUploadInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, api.processCount())
}

func TestController_SubmitSearch(t *testing.T) {
	api := &mockMeetingAPI{
		searchFn: func(_ context.Context, query string) ([]domain.SearchResult, error) {
			return []domain.SearchResult{{ID: "3", Summary: "about " + query}}, nil
		},
	}
	c := newTestController(api, nil)
	c.SetQuery("budget")

	results, err := c.SubmitSearch(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	state := c.State()
	assert.Equal(t, "budget", state.Query)
	assert.Equal(t, "about budget", state.Results[0].Summary)
	assert.False(t, state.Searching)
}

func TestController_SubmitSearch_EmptyIsSuccess(t *testing.T) {
	api := &mockMeetingAPI{
		searchFn: func(context.Context, string) ([]domain.SearchResult, error) {
			return nil, nil
		},
	}
	c := newTestController(api, nil)

	results, err := c.SubmitSearch(context.Background())

	require.NoError(t, err)
	assert.Empty(t, results)
	state := c.State()
	assert.True(t, state.HasResults())
	assert.Empty(t, state.Results)
	assert.Empty(t, state.Notice)
}

func TestController_SubmitSearch_FailureKeepsResults(t *testing.T) {
	fail := false
	api := &mockMeetingAPI{
		searchFn: func(context.Context, string) ([]domain.SearchResult, error) {
			if fail {
				return nil, domain.ErrTransport
			}
			return []domain.SearchResult{{ID: "1"}}, nil
		},
	}
	c := newTestController(api, nil)
	_, err := c.SubmitSearch(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = c.SubmitSearch(context.Background())

	assert.ErrorIs(t, err, domain.ErrTransport)
	state := c.State()
	assert.Len(t, state.Results, 1)
	assert.Equal(t, "Cannot reach the meeting service", state.Notice)
}

func TestController_SubmitSearch_StaleResponseDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	api := &mockMeetingAPI{
		searchFn: func(_ context.Context, query string) ([]domain.SearchResult, error) {
			if query == "first" {
				close(firstStarted)
				<-releaseFirst
				return []domain.SearchResult{{ID: "old", Summary: "first"}}, nil
			}
			return []domain.SearchResult{{ID: "new", Summary: "second"}}, nil
		},
	}
	c := newTestController(api, nil)

	c.SetQuery("first")
	firstDone := make(chan error, 1)
	go func() {
		_, err := c.SubmitSearch(context.Background())
		firstDone <- err
	}()
	<-firstStarted

	c.SetQuery("second")
	results, err := c.SubmitSearch(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	close(releaseFirst)
	assert.ErrorIs(t, <-firstDone, domain.ErrStaleResponse)

	state := c.State()
	require.Len(t, state.Results, 1)
	assert.Equal(t, domain.MeetingID("new"), state.Results[0].ID)
	assert.False(t, state.Searching)
}

func TestController_RequestExport_NoMeetingDoesNotNavigate(t *testing.T) {
	opener := &mockOpener{}
	c := newTestController(&mockMeetingAPI{}, opener)

	_, err := c.RequestExport(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoMeeting)
	assert.Empty(t, opener.opened)
	assert.Equal(t, "Upload a meeting first", c.State().Notice)
}

func TestController_RequestExport_OpensStaticPDF(t *testing.T) {
	api := &mockMeetingAPI{
		processFn: func(context.Context, domain.UploadSelection) (*domain.Meeting, error) {
			return &domain.Meeting{ID: "42"}, nil
		},
	}
	opener := &mockOpener{}
	c := newTestController(api, opener)
	require.NoError(t, c.SelectFile(writeAudio(t, "a.mp3")))
	_, err := c.SubmitUpload(context.Background())
	require.NoError(t, err)

	target, err := c.RequestExport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"http://backend.test/static/meeting_42_summary.pdf"}, opener.opened)
	assert.Equal(t, domain.ExportModeOpen, target.Mode)
	assert.Equal(t, domain.MeetingID("42"), target.MeetingID)
}

func TestController_RequestExport_OpenerFailure(t *testing.T) {
	opener := &mockOpener{err: errors.New("no browser")}
	c := newTestController(&mockMeetingAPI{}, opener)
	require.NoError(t, c.SelectMeeting(context.Background(), "9"))

	_, err := c.RequestExport(context.Background())

	require.Error(t, err)
	assert.Contains(t, c.State().Notice, "no browser")
}

func TestController_DownloadExport(t *testing.T) {
	c := newTestController(&mockMeetingAPI{}, nil)
	require.NoError(t, c.SelectMeeting(context.Background(), "5"))
	dir := t.TempDir()

	target, err := c.DownloadExport(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "meeting_5_summary.pdf"), target.Path)
	assert.Equal(t, domain.ExportModeDownload, target.Mode)
	data, err := os.ReadFile(target.Path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestController_DownloadExport_FailureRemovesFile(t *testing.T) {
	api := &mockMeetingAPI{
		downloadFn: func(_ context.Context, _ domain.MeetingID, w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return &domain.APIError{Operation: "export", StatusCode: 404, Detail: "Meeting not found"}
		},
	}
	c := newTestController(api, nil)
	require.NoError(t, c.SelectMeeting(context.Background(), "5"))
	dir := t.TempDir()

	_, err := c.DownloadExport(context.Background(), dir)

	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "meeting_5_summary.pdf"))
}

func TestController_DownloadExport_RejectsPathLikeID(t *testing.T) {
	downloads := 0
	api := &mockMeetingAPI{
		downloadFn: func(context.Context, domain.MeetingID, io.Writer) error {
			downloads++
			return nil
		},
	}
	c := newTestController(api, nil)
	require.NoError(t, c.SelectMeeting(context.Background(), "../escaped"))
	root := t.TempDir()
	dir := filepath.Join(root, "exports")
	require.NoError(t, os.Mkdir(dir, 0o700))

	_, err := c.DownloadExport(context.Background(), dir)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, downloads)
	assert.NoFileExists(t, filepath.Join(root, "escaped_summary.pdf"))
	assert.NotEmpty(t, c.State().Notice)
}

func TestController_DownloadExport_NoMeeting(t *testing.T) {
	c := newTestController(&mockMeetingAPI{}, nil)

	_, err := c.DownloadExport(context.Background(), t.TempDir())

	assert.ErrorIs(t, err, domain.ErrNoMeeting)
}

func TestController_SelectMeeting_UsesHistory(t *testing.T) {
	store := memory.NewMeetingStore()
	require.NoError(t, store.Save(context.Background(), domain.Meeting{ID: "8", Summary: "kept"}))
	c := NewController(NewMeetingService(&mockMeetingAPI{}, store), nil)

	require.NoError(t, c.SelectMeeting(context.Background(), "8"))
	assert.Equal(t, "kept", c.State().Meeting.Summary)

	require.NoError(t, c.SelectMeeting(context.Background(), "99"))
	assert.Equal(t, domain.MeetingID("99"), c.State().MeetingID())

	assert.ErrorIs(t, c.SelectMeeting(context.Background(), ""), domain.ErrInvalidInput)
}

func TestController_Restore(t *testing.T) {
	store := &mockMeetingStore{latest: &domain.Meeting{ID: "11", Summary: "from history"}}
	c := NewController(NewMeetingService(&mockMeetingAPI{}, store), nil)

	require.NoError(t, c.Restore(context.Background()))

	assert.Equal(t, domain.MeetingID("11"), c.State().MeetingID())
}

func TestController_Restore_EmptyHistory(t *testing.T) {
	c := newTestController(&mockMeetingAPI{}, nil)

	require.NoError(t, c.Restore(context.Background()))

	assert.Nil(t, c.State().Meeting)
}

func TestController_Restore_Error(t *testing.T) {
	store := &mockMeetingStore{latestErr: errors.New("corrupt")}
	c := NewController(NewMeetingService(&mockMeetingAPI{}, store), nil)

	assert.Error(t, c.Restore(context.Background()))
}

func TestController_State_IsCopy(t *testing.T) {
	api := &mockMeetingAPI{
		searchFn: func(context.Context, string) ([]domain.SearchResult, error) {
			return []domain.SearchResult{{ID: "1", Summary: "original"}}, nil
		},
	}
	c := newTestController(api, nil)
	require.NoError(t, c.SelectMeeting(context.Background(), "1"))
	_, err := c.SubmitSearch(context.Background())
	require.NoError(t, err)

	state := c.State()
	state.Results[0].Summary = "mutated"
	state.Meeting.ID = "mutated"

	fresh := c.State()
	assert.Equal(t, "original", fresh.Results[0].Summary)
	assert.Equal(t, domain.MeetingID("1"), fresh.MeetingID())
}

func TestController_ConcurrentAccess(t *testing.T) {
	c := newTestController(&mockMeetingAPI{}, nil)
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.SetQuery("q")
			_, _ = c.SubmitSearch(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = c.State()
		}()
	}
	wg.Wait()

	assert.False(t, c.State().Searching)
}
