package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
	"github.com/custodia-labs/minutes/internal/logger"
)

// Ensure MeetingService implements the interface.
var _ driving.MeetingService = (*MeetingService)(nil)

// MeetingService orchestrates calls to the meeting backend and records
// processed meetings in the local history.
type MeetingService struct {
	api   driven.MeetingAPI
	store driven.MeetingStore
	now   func() time.Time
}

// NewMeetingService creates a new meeting service.
// The store parameter is optional (can be nil); without it nothing is
// remembered between runs.
func NewMeetingService(api driven.MeetingAPI, store driven.MeetingStore) *MeetingService {
	return &MeetingService{
		api:   api,
		store: store,
		now:   time.Now,
	}
}

// Process uploads a file and returns the processed meeting.
func (s *MeetingService) Process(ctx context.Context, file domain.UploadSelection) (*domain.Meeting, error) {
	logger.Section("Process Meeting")

	if file.IsZero() {
		return nil, domain.ErrNoFileSelected
	}
	logger.Debug("File: %s (%d bytes)", file.Path, file.Size)

	meeting, err := s.api.ProcessMeeting(ctx, file)
	if err != nil {
		logger.Debug("Processing failed: %v", err)
		return nil, fmt.Errorf("process meeting: %w", err)
	}

	if meeting.FileName == "" {
		meeting.FileName = file.Name
	}
	if meeting.ProcessedAt.IsZero() {
		meeting.ProcessedAt = s.now().UTC()
	}
	logger.Info("Meeting %s processed", meeting.ID)

	s.record(ctx, *meeting)
	return meeting, nil
}

// record saves a meeting to history. Failures are logged, not returned:
// the backend already holds the meeting.
func (s *MeetingService) record(ctx context.Context, meeting domain.Meeting) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, meeting); err != nil {
		logger.Warn("could not record meeting %s in history: %v", meeting.ID, err)
	}
}

// Transcribe returns the transcript of a file.
func (s *MeetingService) Transcribe(ctx context.Context, file domain.UploadSelection) (string, error) {
	logger.Section("Transcribe")

	if file.IsZero() {
		return "", domain.ErrNoFileSelected
	}

	transcript, err := s.api.Transcribe(ctx, file)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return transcript, nil
}

// Summarize returns a summary of a transcript.
func (s *MeetingService) Summarize(ctx context.Context, transcript string) (string, error) {
	logger.Section("Summarize")
	logger.Debug("Transcript length: %d bytes", len(transcript))

	summary, err := s.api.Summarize(ctx, transcript)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return summary, nil
}

// Search returns meetings matching query.
// The query is not trimmed or validated; an empty query is sent as-is.
func (s *MeetingService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	logger.Section("Search")
	logger.Debug("Query: %q", query)

	results, err := s.api.Search(ctx, query)
	if err != nil {
		logger.Debug("Search failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	logger.Debug("Results: %d", len(results))
	return results, nil
}

// ExportLink returns the absolute URL of the static PDF for id.
func (s *MeetingService) ExportLink(id domain.MeetingID) (string, error) {
	if id.IsZero() {
		return "", domain.ErrNoMeeting
	}
	return s.api.ExportURL(id), nil
}

// DownloadExport writes the PDF of id to w.
func (s *MeetingService) DownloadExport(ctx context.Context, id domain.MeetingID, w io.Writer) error {
	logger.Section("Download Export")

	if id.IsZero() {
		return domain.ErrNoMeeting
	}
	if err := s.api.DownloadExport(ctx, id, w); err != nil {
		return fmt.Errorf("download export: %w", err)
	}
	return nil
}

// Get returns a meeting from history.
func (s *MeetingService) Get(ctx context.Context, id domain.MeetingID) (*domain.Meeting, error) {
	if s.store == nil {
		return nil, domain.ErrNotFound
	}
	return s.store.Get(ctx, id)
}

// Latest returns the most recent meeting from history.
func (s *MeetingService) Latest(ctx context.Context) (*domain.Meeting, error) {
	if s.store == nil {
		return nil, domain.ErrNotFound
	}
	return s.store.Latest(ctx)
}

// History returns up to limit meetings from history, newest first.
func (s *MeetingService) History(ctx context.Context, limit int) ([]domain.Meeting, error) {
	if s.store == nil {
		return []domain.Meeting{}, nil
	}
	meetings, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return meetings, nil
}

// isNotFound reports whether err means "nothing stored".
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
