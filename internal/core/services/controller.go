package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
	"github.com/custodia-labs/minutes/internal/logger"
)

// Ensure Controller implements the interface.
var _ driving.MeetingController = (*Controller)(nil)

// Controller owns the view state shared by the front ends.
// All methods are safe for concurrent use.
type Controller struct {
	meetings driving.MeetingService
	opener   driven.URLOpener

	mu        sync.Mutex
	state     domain.ViewState
	searchSeq uint64
}

// NewController creates a controller over the meeting service.
// The opener is used by RequestExport and may be nil when only downloads
// are needed.
func NewController(meetings driving.MeetingService, opener driven.URLOpener) *Controller {
	return &Controller{
		meetings: meetings,
		opener:   opener,
	}
}

// SelectFile replaces the upload selection with the file at path.
// A failed selection keeps the previous one.
func (c *Controller) SelectFile(path string) error {
	selection, err := domain.NewUploadSelection(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state.Notice = domain.Describe(err)
		return err
	}
	c.state.Selection = selection
	c.state.Notice = ""
	return nil
}

// SetQuery replaces the current search text.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Query = query
}

// SubmitUpload processes the selected file.
func (c *Controller) SubmitUpload(ctx context.Context) (*domain.Meeting, error) {
	c.mu.Lock()
	selection := c.state.Selection
	if selection.IsZero() {
		c.state.Notice = domain.Describe(domain.ErrNoFileSelected)
		c.mu.Unlock()
		return nil, domain.ErrNoFileSelected
	}
	if c.state.Uploading {
		c.mu.Unlock()
		return nil, domain.ErrUploadInProgress
	}
	c.state.Uploading = true
	c.state.Notice = ""
	c.mu.Unlock()

	meeting, err := c.meetings.Process(ctx, selection)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Uploading = false

	if err != nil {
		c.state.Notice = domain.Describe(err)
		return nil, err
	}

	// The previous meeting is replaced, never merged.
	stored := *meeting
	c.state.Meeting = &stored
	return meeting, nil
}

// SubmitSearch searches with the current query.
// Only the latest issued search may update state.
func (c *Controller) SubmitSearch(ctx context.Context) ([]domain.SearchResult, error) {
	c.mu.Lock()
	c.searchSeq++
	seq := c.searchSeq
	query := c.state.Query
	c.state.Searching = true
	c.mu.Unlock()

	results, err := c.meetings.Search(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.searchSeq {
		logger.Debug("Discarding search %d (latest is %d)", seq, c.searchSeq)
		return nil, domain.ErrStaleResponse
	}
	c.state.Searching = false

	if err != nil {
		// Previous results stay on display.
		c.state.Notice = domain.Describe(err)
		return nil, err
	}

	if results == nil {
		results = []domain.SearchResult{}
	}
	c.state.Results = results
	c.state.Notice = ""
	return cloneResults(results), nil
}

// RequestExport opens the static PDF of the current meeting.
func (c *Controller) RequestExport(ctx context.Context) (*domain.ExportTarget, error) {
	id := c.currentMeetingID()
	if id.IsZero() {
		c.setNotice(domain.ErrNoMeeting)
		return nil, domain.ErrNoMeeting
	}

	url, err := c.meetings.ExportLink(id)
	if err != nil {
		c.setNotice(err)
		return nil, err
	}

	if c.opener == nil {
		err := errors.New("no URL opener configured")
		c.setNotice(err)
		return nil, err
	}
	if err := c.opener.Open(ctx, url); err != nil {
		err = fmt.Errorf("open %s: %w", url, err)
		c.setNotice(err)
		return nil, err
	}

	c.setNotice(nil)
	return &domain.ExportTarget{
		MeetingID: id,
		URL:       url,
		Mode:      domain.ExportModeOpen,
	}, nil
}

// DownloadExport saves the PDF of the current meeting into dir.
// A partially written file is removed on failure.
func (c *Controller) DownloadExport(ctx context.Context, dir string) (*domain.ExportTarget, error) {
	id := c.currentMeetingID()
	if id.IsZero() {
		c.setNotice(domain.ErrNoMeeting)
		return nil, domain.ErrNoMeeting
	}

	name, err := domain.ExportFileName(id)
	if err != nil {
		c.setNotice(err)
		return nil, err
	}

	url, err := c.meetings.ExportLink(id)
	if err != nil {
		c.setNotice(err)
		return nil, err
	}

	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, name)

	if err := c.writeExport(ctx, id, path); err != nil {
		c.setNotice(err)
		return nil, err
	}

	c.setNotice(nil)
	return &domain.ExportTarget{
		MeetingID: id,
		URL:       url,
		Path:      path,
		Mode:      domain.ExportModeDownload,
	}, nil
}

func (c *Controller) writeExport(ctx context.Context, id domain.MeetingID, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := c.meetings.DownloadExport(ctx, id, f); err != nil {
		f.Close()
		_ = os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// SelectMeeting makes id the current meeting.
func (c *Controller) SelectMeeting(ctx context.Context, id domain.MeetingID) error {
	if id.IsZero() {
		return fmt.Errorf("%w: empty meeting id", domain.ErrInvalidInput)
	}

	meeting, err := c.meetings.Get(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		meeting = &domain.Meeting{ID: id}
	case err != nil:
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Meeting = meeting
	return nil
}

// Restore loads the most recent meeting from history into view state.
// An empty history is not an error.
func (c *Controller) Restore(ctx context.Context) error {
	meeting, err := c.meetings.Latest(ctx)
	if isNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Meeting == nil {
		c.state.Meeting = meeting
	}
	return nil
}

// State returns a copy of the current view state.
func (c *Controller) State() domain.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.state
	if c.state.Meeting != nil {
		meeting := *c.state.Meeting
		snapshot.Meeting = &meeting
	}
	snapshot.Results = cloneResults(c.state.Results)
	return snapshot
}

func (c *Controller) currentMeetingID() domain.MeetingID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.MeetingID()
}

// setNotice replaces the notice with the description of err ("" for nil).
func (c *Controller) setNotice(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Notice = domain.Describe(err)
}

// cloneResults copies a result set, preserving nil versus empty.
func cloneResults(results []domain.SearchResult) []domain.SearchResult {
	if results == nil {
		return nil
	}
	out := make([]domain.SearchResult, len(results))
	copy(out, results)
	return out
}
