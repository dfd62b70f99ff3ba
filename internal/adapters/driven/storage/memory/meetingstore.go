package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
)

// Ensure MeetingStore implements the interface.
var _ driven.MeetingStore = (*MeetingStore)(nil)

// MeetingStore is an in-memory implementation of driven.MeetingStore.
// It backs the --no-history mode and tests.
type MeetingStore struct {
	mu       sync.RWMutex
	meetings map[domain.MeetingID]storedMeeting
	seq      uint64
}

// storedMeeting remembers insertion order to break ProcessedAt ties.
type storedMeeting struct {
	meeting domain.Meeting
	seq     uint64
}

// NewMeetingStore creates a new in-memory meeting store.
func NewMeetingStore() *MeetingStore {
	return &MeetingStore{
		meetings: make(map[domain.MeetingID]storedMeeting),
	}
}

// Save stores or replaces a meeting.
func (s *MeetingStore) Save(_ context.Context, meeting domain.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.meetings[meeting.ID] = storedMeeting{meeting: meeting, seq: s.seq}
	return nil
}

// Get retrieves a meeting by ID.
func (s *MeetingStore) Get(_ context.Context, id domain.MeetingID) (*domain.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.meetings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	meeting := stored.meeting
	return &meeting, nil
}

// Latest returns the most recently processed meeting.
func (s *MeetingStore) Latest(ctx context.Context) (*domain.Meeting, error) {
	meetings, err := s.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(meetings) == 0 {
		return nil, domain.ErrNotFound
	}
	return &meetings[0], nil
}

// List returns up to limit meetings, newest first.
func (s *MeetingStore) List(_ context.Context, limit int) ([]domain.Meeting, error) {
	s.mu.RLock()
	stored := make([]storedMeeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		stored = append(stored, m)
	}
	s.mu.RUnlock()

	sort.Slice(stored, func(i, j int) bool {
		a, b := stored[i], stored[j]
		if !a.meeting.ProcessedAt.Equal(b.meeting.ProcessedAt) {
			return a.meeting.ProcessedAt.After(b.meeting.ProcessedAt)
		}
		return a.seq > b.seq
	})

	if limit > 0 && len(stored) > limit {
		stored = stored[:limit]
	}

	result := make([]domain.Meeting, 0, len(stored))
	for _, m := range stored {
		result = append(result, m.meeting)
	}
	return result, nil
}

// Delete removes a meeting.
func (s *MeetingStore) Delete(_ context.Context, id domain.MeetingID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.meetings, id)
	return nil
}
