package driven

import (
	"context"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

// MeetingStore persists processed meetings on the local machine.
type MeetingStore interface {
	// Save stores or replaces a meeting.
	Save(ctx context.Context, meeting domain.Meeting) error

	// Get retrieves a meeting by ID.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, id domain.MeetingID) (*domain.Meeting, error)

	// Latest returns the most recently processed meeting.
	// Returns domain.ErrNotFound when the store is empty.
	Latest(ctx context.Context) (*domain.Meeting, error)

	// List returns up to limit meetings, newest first. limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]domain.Meeting, error)

	// Delete removes a meeting.
	Delete(ctx context.Context, id domain.MeetingID) error
}
